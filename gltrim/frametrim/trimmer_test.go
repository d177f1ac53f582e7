// Copyright (C) 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frametrim_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/config"
	"github.com/google/frametrim/gltrim/frametrim"
	"github.com/google/frametrim/gltrim/trace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const (
	glArrayBuffer = 0x8892
	glTriangles   = 0x0004
	glStaticDraw  = 0x88E4
)

// stream builds a numbered call sequence.
type stream struct {
	calls []*api.Record
}

func (s *stream) add(name string, args ...api.Value) *api.Record {
	r := api.NewRecord(api.CallID(len(s.calls)+1), name, args...)
	s.calls = append(s.calls, r)
	return r
}

func (s *stream) swap() { s.add("glXSwapBuffers", api.Ptr(1), api.Uint(2)) }

func (s *stream) draw() { s.add("glDrawArrays", api.GLenum(glTriangles, ""), api.Int(0), api.Int(3)) }

func (s *stream) upload() {
	s.add("glGenBuffers", api.Uint(1), api.Uints(1))
	s.add("glBindBuffer", api.GLenum(glArrayBuffer, ""), api.Uint(1))
	s.add("glBufferData", api.GLenum(glArrayBuffer, ""), api.Uint(1024), api.Ptr(0), api.GLenum(glStaticDraw, ""))
	s.add("glBufferSubData", api.GLenum(glArrayBuffer, ""), api.Uint(0), api.Uint(256), api.Ptr(0x1000))
}

func run(ctx context.Context, tr *frametrim.Trimmer, s *stream) []api.CallID {
	for _, c := range s.calls {
		err := tr.Process(ctx, c)
		assert.For(ctx, "Process %v", c).ThatError(err).Succeeded()
	}
	return tr.SortedCallIDs(ctx)
}

func policy(keepSwap bool) config.Policy {
	p := config.Default()
	p.KeepFinalSwap = keepSwap
	return p
}

func TestUploadBeforeDraw(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.upload()
	s.draw()
	s.swap()
	tr := frametrim.New(policy(false), frametrim.Frame(0), nil)
	assert.For(ctx, "required").ThatSlice(run(ctx, tr, s)).Equals([]api.CallID{1, 2, 3, 4, 5})
}

func TestSetupFrameDropped(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.upload()
	s.draw()
	s.swap()
	s.draw()
	s.swap()
	for _, test := range []struct {
		name     string
		keepSwap bool
		expected []api.CallID
	}{
		{"no final swap", false, []api.CallID{1, 2, 3, 4, 7}},
		{"final swap", true, []api.CallID{1, 2, 3, 4, 7, 8}},
	} {
		tr := frametrim.New(policy(test.keepSwap), frametrim.Frame(1), nil)
		assert.For(ctx, test.name).ThatSlice(run(ctx, tr, s)).Equals(test.expected)
	}
}

func TestSwapsBetweenRetainedFrames(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.add("glViewport", api.Int(0), api.Int(0), api.Int(64), api.Int(64))
	s.swap()
	for i := 0; i < 3; i++ {
		s.draw()
		s.swap()
	}
	frames, err := frametrim.ParseFrames("1-2")
	assert.For(ctx, "ParseFrames").ThatError(err).Succeeded()

	tr := frametrim.New(policy(true), frames, nil)
	assert.For(ctx, "required").ThatSlice(run(ctx, tr, s)).Equals([]api.CallID{1, 3, 4, 5, 6})
	assert.For(ctx, "done").ThatBoolean(tr.Done()).IsTrue()
	assert.For(ctx, "calls").That(tr.Calls()).Equals(uint64(6))

	tr = frametrim.New(policy(false), frames, nil)
	assert.For(ctx, "no final swap").ThatSlice(run(ctx, tr, s)).Equals([]api.CallID{1, 3, 4, 5})
}

func TestEndOfFrameFlag(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.draw()
	s.add("vkQueuePresentKHR").WithFlags(api.EndOfFrame)
	s.draw()
	s.add("vkQueuePresentKHR").WithFlags(api.EndOfFrame)
	tr := frametrim.New(policy(false), frametrim.Frame(1), nil)
	assert.For(ctx, "required").ThatSlice(run(ctx, tr, s)).Equals([]api.CallID{3})
	assert.For(ctx, "unhandled").ThatSlice(tr.Unhandled()).IsEmpty()
	assert.For(ctx, "frame").That(tr.Frame()).Equals(uint64(2))
}

func TestUnhandledWarnedOnce(t *testing.T) {
	ctx := log.Testing(t)
	warnings := 0
	ctx = log.PutHandler(ctx, log.NewHandler(func(m *log.Message) {
		if m.Severity == log.Warning {
			warnings++
		}
	}, func() {}))

	reg := prometheus.NewRegistry()
	s := &stream{}
	s.add("glFoo")
	s.add("glBar")
	s.add("glFoo")
	s.draw()
	tr := frametrim.New(policy(false), frametrim.Frame(0), reg)
	assert.For(ctx, "required").ThatSlice(run(ctx, tr, s)).Equals([]api.CallID{4})
	assert.For(ctx, "warnings").ThatInteger(warnings).Equals(2)
	assert.For(ctx, "names").ThatSlice(tr.Unhandled()).Equals([]string{"glBar", "glFoo"})
	assert.For(ctx, "unhandled").That(testutil.ToFloat64(tr.Stats().Unhandled)).Equals(3.0)
	assert.For(ctx, "calls").That(testutil.ToFloat64(tr.Stats().Calls)).Equals(4.0)
	assert.For(ctx, "required").That(testutil.ToFloat64(tr.Stats().Required)).Equals(1.0)

	n, err := testutil.GatherAndCount(reg)
	assert.For(ctx, "gather").ThatError(err).Succeeded()
	assert.For(ctx, "metrics").ThatInteger(n).Equals(4)
}

func TestErrorsNameTheCall(t *testing.T) {
	ctx := log.Testing(t)
	tr := frametrim.New(policy(false), frametrim.Frame(0), nil)
	err := tr.Process(ctx, api.NewRecord(3, "glBindBuffer", api.GLenum(glArrayBuffer, ""), api.Uint(9)))
	assert.For(ctx, "cause").ThatError(err).HasCause(api.ErrMissingObject)
	assert.For(ctx, "message").ThatString(err).Contains("call 3 glBindBuffer")

	tr.Finalize(ctx)
	err = tr.Process(ctx, api.NewRecord(4, "glFlush"))
	assert.For(ctx, "after finalize").ThatError(err).Failed()
}

func TestNoRetainedFrame(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.upload()
	s.draw()
	s.swap()
	tr := frametrim.New(policy(true), frametrim.Frame(10), nil)
	assert.For(ctx, "required").ThatSlice(run(ctx, tr, s)).IsEmpty()
	assert.For(ctx, "done").ThatBoolean(tr.Done()).IsFalse()
}

func TestTrimContainer(t *testing.T) {
	ctx := log.Testing(t)
	s := &stream{}
	s.upload()
	s.swap()
	s.draw()
	s.swap()
	// Never processed: reading stops after the last retained frame.
	s.add("glBindBuffer", api.GLenum(glArrayBuffer, ""), api.Uint(99))

	buf := &bytes.Buffer{}
	w, err := trace.NewWriter(buf)
	assert.For(ctx, "NewWriter").ThatError(err).Succeeded()
	for _, c := range s.calls {
		assert.For(ctx, "Write").ThatError(w.Write(c)).Succeeded()
	}
	assert.For(ctx, "Flush").ThatError(w.Flush()).Succeeded()

	tr := frametrim.New(policy(true), frametrim.Frame(1), nil)
	ids, err := frametrim.Trim(ctx, tr, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "Trim").ThatError(err).Succeeded()
	assert.For(ctx, "required").ThatSlice(ids).Equals([]api.CallID{1, 2, 3, 4, 6, 7})

	out := &bytes.Buffer{}
	n, err := trace.Copy(ctx, bytes.NewReader(buf.Bytes()), out, ids)
	assert.For(ctx, "Copy").ThatError(err).Succeeded()
	assert.For(ctx, "copied").ThatInteger(n).Equals(len(ids))
}
