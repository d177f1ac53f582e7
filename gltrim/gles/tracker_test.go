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

package gles_test

import (
	"context"
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/config"
	"github.com/google/frametrim/gltrim/gles"
)

var (
	u = api.Uint
	i = api.Int
	f = api.Real
	e = func(v uint32) api.Value { return api.GLenum(v, "") }
)

const (
	glTriangles    = 0x0004
	glRGBA         = 0x1908
	glUnsignedByte = 0x1401
	glStaticDraw   = 0x88E4
	glMapWrite     = 0x0002
)

// recorder feeds numbered calls to a tracker.
type recorder struct {
	ctx  context.Context
	tr   *gles.Tracker
	next api.CallID
}

func newRecorder(ctx context.Context, p config.Policy) *recorder {
	return &recorder{ctx: ctx, tr: gles.New(p), next: 1}
}

func (r *recorder) handle(rec *api.Record) error {
	r.next++
	known, err := r.tr.Handle(r.ctx, rec)
	assert.For(r.ctx, "%v known", rec).ThatBoolean(known).IsTrue()
	return err
}

// do handles a call that must succeed and returns its id.
func (r *recorder) do(name string, args ...api.Value) api.CallID {
	id := r.next
	err := r.handle(api.NewRecord(id, name, args...))
	assert.For(r.ctx, "%v %s", id, name).ThatError(err).Succeeded()
	return id
}

// ret handles a call with a return value that must succeed.
func (r *recorder) ret(v uint64, name string, args ...api.Value) api.CallID {
	id := r.next
	err := r.handle(api.NewRecord(id, name, args...).Returning(u(v)))
	assert.For(r.ctx, "%v %s", id, name).ThatError(err).Succeeded()
	return id
}

// fail handles a call and returns its error.
func (r *recorder) fail(name string, args ...api.Value) error {
	return r.handle(api.NewRecord(r.next, name, args...))
}

func (r *recorder) start() { r.tr.StartRecording(r.ctx) }

func (r *recorder) required() []api.CallID { return r.tr.Required().SortedIDs() }

func contains(ids []api.CallID, id api.CallID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestBufferUploadKeptForDraw(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenBuffers", u(1), api.Uints(1))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(1))
	r.do("glBufferData", e(gles.GL_ARRAY_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	r.do("glBufferSubData", e(gles.GL_ARRAY_BUFFER), u(0), u(16), api.Bytes(make([]byte, 16)))
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5})
}

func TestUnboundTextureDropped(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenTextures", u(1), api.Uints(1))
	r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(1))
	r.do("glTexImage2D", e(gles.GL_TEXTURE_2D), i(0), e(glRGBA), i(64), i(64), i(0),
		e(glRGBA), e(glUnsignedByte), api.Bytes(nil))
	unbind := r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(0))
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{unbind, draw})
}

func TestTextureStateLastWins(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glActiveTexture", e(gles.GL_TEXTURE0+1))
	r.do("glGenTextures", u(1), api.Uints(4))
	r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(4))
	r.do("glTexParameteri", e(gles.GL_TEXTURE_2D), e(0x2801), e(0x2600))
	r.do("glTexParameterf", e(gles.GL_TEXTURE_2D), e(0x2801), f(0x2601))
	r.do("glTexParameteri", e(gles.GL_TEXTURE_2D), e(0x2800), e(0x2601))
	r.start()
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 5, 6})
}

func TestFullClearDropsEarlierDraws(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	viewport := r.do("glViewport", i(0), i(0), i(800), i(600))
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	clear := r.do("glClear", u(gles.GL_COLOR_BUFFER_BIT|gles.GL_DEPTH_BUFFER_BIT))
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{viewport, clear, draw})
}

func TestPartialClearKeepsEarlierDraws(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name  string
		calls func(r *recorder)
	}{
		{"viewport", func(r *recorder) {
			r.do("glViewport", i(0), i(0), i(400), i(300))
		}},
		{"mask", func(r *recorder) {
			r.do("glViewport", i(0), i(0), i(800), i(600))
		}},
		{"scissor", func(r *recorder) {
			r.do("glViewport", i(0), i(0), i(800), i(600))
			r.do("glScissor", i(10), i(10), i(100), i(100))
			r.do("glEnable", e(gles.GL_SCISSOR_TEST))
		}},
	} {
		p := config.Default()
		p.DefaultFramebufferWidth, p.DefaultFramebufferHeight = 800, 600
		r := newRecorder(ctx, p)
		test.calls(r)
		draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
		mask := uint64(gles.GL_COLOR_BUFFER_BIT | gles.GL_DEPTH_BUFFER_BIT)
		if test.name == "mask" {
			mask = gles.GL_COLOR_BUFFER_BIT
		}
		r.do("glClear", u(mask))
		r.start()
		assert.For(ctx, "%s keeps draw", test.name).ThatBoolean(contains(r.required(), draw)).IsTrue()
	}
}

func TestFrameEndForgetsWindowDraws(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	r.tr.EndFrame(ctx)
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{draw})
}

func TestRenderToTexture(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenTextures", u(1), api.Uints(1))
	r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(1))
	r.do("glTexImage2D", e(gles.GL_TEXTURE_2D), i(0), e(glRGBA), i(256), i(256), i(0),
		e(glRGBA), e(glUnsignedByte), api.Bytes(nil))
	r.do("glGenFramebuffers", u(1), api.Uints(1))
	r.do("glBindFramebuffer", e(gles.GL_FRAMEBUFFER), u(1))
	r.do("glFramebufferTexture2D", e(gles.GL_FRAMEBUFFER), e(gles.GL_COLOR_ATTACHMENT0),
		e(gles.GL_TEXTURE_2D), u(1), i(0))
	offscreen := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	r.do("glBindFramebuffer", e(gles.GL_FRAMEBUFFER), u(0))
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "offscreen draw").ThatBoolean(contains(r.required(), offscreen)).IsTrue()
}

func TestRenderToTextureUnused(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenTextures", u(1), api.Uints(1))
	r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(1))
	r.do("glTexImage2D", e(gles.GL_TEXTURE_2D), i(0), e(glRGBA), i(256), i(256), i(0),
		e(glRGBA), e(glUnsignedByte), api.Bytes(nil))
	r.do("glGenFramebuffers", u(1), api.Uints(1))
	r.do("glBindFramebuffer", e(gles.GL_FRAMEBUFFER), u(1))
	r.do("glFramebufferTexture2D", e(gles.GL_FRAMEBUFFER), e(gles.GL_COLOR_ATTACHMENT0),
		e(gles.GL_TEXTURE_2D), u(1), i(0))
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	rebind := r.do("glBindFramebuffer", e(gles.GL_FRAMEBUFFER), u(0))
	unbind := r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(0))
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{rebind, unbind, draw})
}

func TestDeleteKeptOnlyForRequiredObjects(t *testing.T) {
	ctx := log.Testing(t)

	r := newRecorder(ctx, config.Default())
	r.do("glGenBuffers", u(1), api.Uints(1))
	r.start()
	r.do("glDeleteBuffers", u(1), api.Uints(1))
	assert.For(ctx, "dead delete").ThatSlice(r.required()).IsEmpty()

	r = newRecorder(ctx, config.Default())
	r.do("glGenBuffers", u(1), api.Uints(1))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(1))
	r.start()
	r.do("glDeleteBuffers", u(1), api.Uints(1))
	assert.For(ctx, "live delete").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3})
}

func TestUniformsLastWins(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.ret(5, "glCreateProgram")
	r.do("glUseProgram", u(5))
	r.do("glUniform1f", i(0), f(1))
	r.do("glUniform1f", i(0), f(2))
	r.do("glUniform1i", i(1), i(3))
	r.start()
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 4, 5})
}

func TestRelinkDropsUniforms(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.ret(5, "glCreateProgram")
	r.ret(6, "glCreateShader", e(0x8B31))
	r.do("glShaderSource", u(6), i(1), api.Str("void main() {}"), api.Ptr(0))
	r.do("glCompileShader", u(6))
	r.do("glAttachShader", u(5), u(6))
	r.do("glLinkProgram", u(5))
	r.do("glUseProgram", u(5))
	r.do("glUniform1f", i(0), f(1))
	r.do("glLinkProgram", u(5))
	r.start()
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5, 7, 9})
}

func TestMappedBufferWrites(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenBuffers", u(1), api.Uints(1))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(1))
	r.do("glBufferData", e(gles.GL_ARRAY_BUFFER), u(100), api.Ptr(0), e(glStaticDraw))
	r.ret(0x1000, "glMapBufferRange", e(gles.GL_ARRAY_BUFFER), u(0), u(100), u(glMapWrite))
	r.do("memcpy", api.Ptr(0x1000), api.Ptr(0x8000), u(10))
	r.do("memcpy", api.Ptr(0x9000), api.Ptr(0x8000), u(10))
	r.do("glUnmapBuffer", e(gles.GL_ARRAY_BUFFER))
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5, 7, 8})
}

func TestMatrixStack(t *testing.T) {
	ctx := log.Testing(t)

	r := newRecorder(ctx, config.Default())
	mode := r.do("glMatrixMode", e(gles.GL_MODELVIEW))
	r.do("glPushMatrix")
	r.do("glTranslatef", f(1), f(0), f(0))
	r.do("glPopMatrix")
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "unused push").ThatSlice(r.required()).Equals([]api.CallID{mode, draw})

	r = newRecorder(ctx, config.Default())
	r.do("glMatrixMode", e(gles.GL_MODELVIEW))
	push := r.do("glPushMatrix")
	r.do("glTranslatef", f(1), f(0), f(0))
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	pop := r.do("glPopMatrix")
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	got := r.required()
	assert.For(ctx, "push").ThatBoolean(contains(got, push)).IsTrue()
	assert.For(ctx, "pop").ThatBoolean(contains(got, pop)).IsTrue()

	r = newRecorder(ctx, config.Default())
	err := r.fail("glPopMatrix")
	assert.For(ctx, "underflow").ThatError(err).HasCause(api.ErrMalformedCall)
}

func TestLoadMatrixReplacesOperations(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	mode := r.do("glMatrixMode", e(gles.GL_PROJECTION))
	r.do("glOrtho", f(0), f(1), f(0), f(1), f(-1), f(1))
	load := r.do("glLoadIdentity")
	scale := r.do("glScalef", f(2), f(2), f(2))
	r.start()
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{mode, load, scale})
}

func TestDisplayList(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.ret(1, "glGenLists", i(1))
	r.do("glNewList", u(1), e(gles.GL_COMPILE))
	r.do("glBegin", e(glTriangles))
	r.do("glVertex3f", f(0), f(0), f(0))
	r.do("glEnd")
	r.do("glEndList")
	r.tr.EndFrame(ctx)
	r.start()
	r.do("glCallList", u(1))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5, 6, 7})
}

func TestImmediateMode(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	color := r.do("glColor3f", f(1), f(0), f(0))
	r.do("glColor3f", f(0), f(1), f(0))
	r.start()
	r.do("glBegin", e(glTriangles))
	r.do("glColor3f", f(0), f(0), f(1))
	r.do("glVertex2f", f(0), f(0))
	r.do("glEnd")
	got := r.required()
	assert.For(ctx, "overwritten color").ThatBoolean(contains(got, color)).IsFalse()
	assert.For(ctx, "required").ThatSlice(got).Equals([]api.CallID{2, 3, 4, 5, 6})
}

func TestVertexArrayPointers(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenVertexArrays", u(1), api.Uints(1))
	r.do("glBindVertexArray", u(1))
	r.do("glGenBuffers", u(2), api.Uints(1, 2))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(1))
	r.do("glVertexAttribPointer", u(0), i(3), e(0x1406), u(0), i(0), api.Ptr(0))
	r.do("glEnableVertexAttribArray", u(0))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(2))
	r.do("glVertexAttribPointer", u(0), i(3), e(0x1406), u(0), i(0), api.Ptr(0))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(0))
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	got := r.required()
	assert.For(ctx, "replaced pointer").ThatBoolean(contains(got, 5)).IsFalse()
	assert.For(ctx, "required").ThatSlice(got).Equals([]api.CallID{1, 2, 3, 6, 7, 8, 9, 10})
}

func TestSyncWait(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	fence := r.ret(0x77, "glFenceSync", e(0x9117), u(0))
	r.start()
	wait := r.do("glClientWaitSync", api.Ptr(0x77), u(1), u(1000))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{fence, wait})
}

func TestErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name  string
		call  string
		args  []api.Value
		cause error
	}{
		{"unknown buffer", "glBindBuffer", []api.Value{e(gles.GL_ARRAY_BUFFER), u(7)}, api.ErrMissingObject},
		{"bad target", "glBindBuffer", []api.Value{e(0x1234), u(0)}, api.ErrUnsupportedTarget},
		{"nothing bound", "glBufferData", []api.Value{e(gles.GL_ARRAY_BUFFER), u(4), api.Ptr(0), e(glStaticDraw)}, api.ErrMissingObject},
		{"missing argument", "glViewport", []api.Value{i(0), i(0)}, api.ErrMalformedCall},
		{"no program", "glUniform1f", []api.Value{i(0), f(1)}, api.ErrMissingObject},
		{"default framebuffer attachment", "glFramebufferRenderbuffer",
			[]api.Value{e(gles.GL_FRAMEBUFFER), e(gles.GL_COLOR_ATTACHMENT0), e(gles.GL_RENDERBUFFER), u(0)}, api.ErrMissingObject},
		{"end without begin", "glEnd", nil, api.ErrMalformedCall},
	} {
		r := newRecorder(ctx, config.Default())
		err := r.fail(test.call, test.args...)
		assert.For(ctx, test.name).ThatError(err).HasCause(test.cause)
	}
}

func TestUnknownCall(t *testing.T) {
	ctx := log.Testing(t)
	tr := gles.New(config.Default())
	known, err := tr.Handle(ctx, api.NewRecord(1, "glNotACall"))
	assert.For(ctx, "known").ThatBoolean(known).IsFalse()
	assert.For(ctx, "err").ThatError(err).Succeeded()
}

func TestContextCallsAlwaysKept(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	create := r.ret(1, "glXCreateContext", api.Ptr(1), api.Ptr(2), api.Ptr(0), u(1))
	current := r.do("glXMakeCurrent", api.Ptr(1), u(3), api.Ptr(1))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{create, current})
}

func TestCurrentAttributeOutlivesEnd(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glBegin", e(glTriangles))
	color := r.do("glColor3f", f(1), f(0), f(0))
	r.do("glVertex3f", f(0), f(0), f(0))
	r.do("glEnd")
	r.tr.EndFrame(ctx)
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{color, draw})
}

func TestBufferDataDropsCopySource(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	gen := r.do("glGenBuffers", u(2), api.Uints(1, 2))
	r.do("glBindBuffer", e(gles.GL_COPY_READ_BUFFER), u(1))
	r.do("glBufferData", e(gles.GL_COPY_READ_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	bind := r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(2))
	r.do("glBufferData", e(gles.GL_ARRAY_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	r.do("glCopyBufferSubData", e(gles.GL_COPY_READ_BUFFER), e(gles.GL_ARRAY_BUFFER), u(0), u(0), u(64))
	unbind := r.do("glBindBuffer", e(gles.GL_COPY_READ_BUFFER), u(0))
	data := r.do("glBufferData", e(gles.GL_ARRAY_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	r.start()
	draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{gen, bind, unbind, data, draw})
}

func TestCopyBufferKeepsSource(t *testing.T) {
	ctx := log.Testing(t)
	r := newRecorder(ctx, config.Default())
	r.do("glGenBuffers", u(2), api.Uints(1, 2))
	r.do("glBindBuffer", e(gles.GL_COPY_READ_BUFFER), u(1))
	r.do("glBufferData", e(gles.GL_COPY_READ_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	r.do("glBindBuffer", e(gles.GL_ARRAY_BUFFER), u(2))
	r.do("glBufferData", e(gles.GL_ARRAY_BUFFER), u(64), api.Ptr(0), e(glStaticDraw))
	r.do("glCopyBufferSubData", e(gles.GL_COPY_READ_BUFFER), e(gles.GL_ARRAY_BUFFER), u(0), u(0), u(64))
	r.do("glBindBuffer", e(gles.GL_COPY_READ_BUFFER), u(0))
	r.start()
	r.do("glDrawArrays", e(glTriangles), i(0), i(3))
	assert.For(ctx, "required").ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5, 6, 7, 8})
}

func TestCallListsNameTypes(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name  string
		typ   uint32
		names []byte
	}{
		{"unsigned int", gles.GL_UNSIGNED_INT, []byte{0, 1, 0, 0}},
		{"unsigned short", gles.GL_UNSIGNED_SHORT, []byte{0, 1}},
		{"two bytes", gles.GL_2_BYTES, []byte{1, 0}},
		{"four bytes", gles.GL_4_BYTES, []byte{0, 0, 1, 0}},
	} {
		r := newRecorder(ctx, config.Default())
		r.ret(256, "glGenLists", i(1))
		r.do("glNewList", u(256), e(gles.GL_COMPILE))
		r.do("glBegin", e(glTriangles))
		r.do("glVertex3f", f(0), f(0), f(0))
		r.do("glEnd")
		r.do("glEndList")
		r.tr.EndFrame(ctx)
		r.start()
		r.do("glCallLists", i(1), e(test.typ), api.Bytes(test.names))
		assert.For(ctx, test.name).ThatSlice(r.required()).Equals([]api.CallID{1, 2, 3, 4, 5, 6, 7})
	}

	r := newRecorder(ctx, config.Default())
	err := r.fail("glCallLists", i(1), e(0x1234), api.Bytes([]byte{1}))
	assert.For(ctx, "bad type").ThatError(err).HasCause(api.ErrUnsupportedTarget)
}

func TestBlitCoverage(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		w, h   int64
		mask   uint64
		drops bool
	}{
		{"full", 800, 600, gles.GL_COLOR_BUFFER_BIT | gles.GL_DEPTH_BUFFER_BIT, true},
		{"partial rectangle", 400, 300, gles.GL_COLOR_BUFFER_BIT | gles.GL_DEPTH_BUFFER_BIT, false},
		{"partial mask", 800, 600, gles.GL_COLOR_BUFFER_BIT, false},
	} {
		p := config.Default()
		p.DefaultFramebufferWidth, p.DefaultFramebufferHeight = 800, 600
		r := newRecorder(ctx, p)
		r.do("glGenFramebuffers", u(1), api.Uints(1))
		early := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
		r.do("glBindFramebuffer", e(gles.GL_READ_FRAMEBUFFER), u(1))
		blit := r.do("glBlitFramebuffer", i(0), i(0), i(test.w), i(test.h),
			i(0), i(0), i(test.w), i(test.h), u(test.mask), e(0x2600))
		r.start()
		draw := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
		got := r.required()
		assert.For(ctx, "%s keeps early draw", test.name).ThatBoolean(contains(got, early)).Equals(!test.drops)
		assert.For(ctx, "%s keeps blit", test.name).ThatBoolean(contains(got, blit)).IsTrue()
		assert.For(ctx, "%s keeps draw", test.name).ThatBoolean(contains(got, draw)).IsTrue()
	}
}

func TestClearBufferAttachments(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name        string
		attachments int
		drops       bool
	}{
		{"single color attachment", 1, true},
		{"two color attachments", 2, false},
	} {
		r := newRecorder(ctx, config.Default())
		r.do("glGenTextures", u(2), api.Uints(1, 2))
		for tex := uint64(1); tex <= 2; tex++ {
			r.do("glBindTexture", e(gles.GL_TEXTURE_2D), u(tex))
			r.do("glTexImage2D", e(gles.GL_TEXTURE_2D), i(0), e(glRGBA), i(800), i(600), i(0),
				e(glRGBA), e(glUnsignedByte), api.Bytes(nil))
		}
		r.do("glGenFramebuffers", u(1), api.Uints(1))
		r.do("glBindFramebuffer", e(gles.GL_FRAMEBUFFER), u(1))
		for n := 0; n < test.attachments; n++ {
			r.do("glFramebufferTexture2D", e(gles.GL_FRAMEBUFFER), e(gles.GL_COLOR_ATTACHMENT0+uint32(n)),
				e(gles.GL_TEXTURE_2D), u(uint64(n+1)), i(0))
		}
		r.do("glViewport", i(0), i(0), i(800), i(600))
		offscreen := r.do("glDrawArrays", e(glTriangles), i(0), i(3))
		clear := r.do("glClearBufferfv", e(gles.GL_COLOR), i(0), api.Ptr(0))
		r.start()
		got := r.required()
		assert.For(ctx, "%s keeps draw", test.name).ThatBoolean(contains(got, offscreen)).Equals(!test.drops)
		assert.For(ctx, "%s keeps clear", test.name).ThatBoolean(contains(got, clear)).IsTrue()
	}
}
