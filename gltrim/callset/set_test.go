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

package callset_test

import (
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
)

func call(id api.CallID, name string) *callset.TraceCall {
	return callset.New(api.NewRecord(id, name))
}

func TestInsertRequiredChain(t *testing.T) {
	ctx := log.Testing(t)
	active := call(1, "glActiveTexture")
	bind := call(2, "glBindTexture").Requires(active)
	image := call(3, "glTexImage2D").Requires(bind)

	s := callset.NewSet()
	s.Insert(image)
	assert.For(ctx, "closure").ThatSlice(s.IDs()).Equals([]api.CallID{1, 2, 3})
	for _, c := range s.Calls() {
		if c.Required != nil {
			assert.For(ctx, "required of %v", c).ThatBoolean(s.Contains(c.Required.ID)).IsTrue()
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	s := callset.NewSet()
	c := call(5, "glDrawArrays")
	s.Insert(c)
	s.Insert(c)
	s.Insert(call(5, "glDrawArrays"))
	s.Insert(nil)
	assert.For(ctx, "len").ThatInteger(s.Len()).Equals(1)
}

func TestRequiresSelf(t *testing.T) {
	ctx := log.Testing(t)
	c := call(4, "glUnmapBuffer")
	c.Requires(c)
	assert.For(ctx, "self link").That(c.Required).IsNil()
}

func TestKey(t *testing.T) {
	ctx := log.Testing(t)
	r := api.NewRecord(9, "glTexParameteri",
		api.GLenum(0x0DE1, "GL_TEXTURE_2D"), api.GLenum(0x2801, "GL_TEXTURE_MIN_FILTER"), api.Int(9729))
	assert.For(ctx, "key").ThatString(callset.New(r, 1).Key).Equals("glTexParameteri_GL_TEXTURE_MIN_FILTER")
	assert.For(ctx, "no args").ThatString(callset.New(r).Key).Equals("glTexParameteri")
	assert.For(ctx, "out of range").ThatString(callset.New(r, 7).Key).Equals("glTexParameteri")
	assert.For(ctx, "keyed").ThatString(callset.Keyed(r, "tex:filter").Key).Equals("tex:filter")
}

func TestResolve(t *testing.T) {
	ctx := log.Testing(t)
	parent := callset.NewSet()
	parent.Insert(call(10, "glClear"))

	live := callset.NewSet()
	live.Insert(call(3, "glBufferData"))
	parent.InsertSubset("buffer", live)

	assert.For(ctx, "unresolved").ThatSlice(parent.IDs()).Equals([]api.CallID{10})

	// The subset keeps changing until the parent resolves it.
	live.Insert(call(4, "glBufferSubData"))
	parent.Resolve()
	assert.For(ctx, "resolved").ThatSlice(parent.IDs()).Equals([]api.CallID{3, 4, 10})
	assert.For(ctx, "registrations").ThatInteger(parent.Subsets()).Equals(0)

	live.Insert(call(6, "glBufferSubData"))
	parent.Resolve()
	assert.For(ctx, "idempotent").ThatSlice(parent.IDs()).Equals([]api.CallID{3, 4, 10})
}

func TestResolveShallow(t *testing.T) {
	ctx := log.Testing(t)
	a, b, c := callset.NewSet(), callset.NewSet(), callset.NewSet()
	a.Insert(call(1, "a"))
	b.Insert(call(2, "b"))
	c.Insert(call(3, "c"))
	b.InsertSubset("c", c)
	a.InsertSubset("b", b)

	a.Resolve()
	assert.For(ctx, "one level").ThatSlice(a.IDs()).Equals([]api.CallID{1, 2})
	assert.For(ctx, "carried").ThatInteger(a.Subsets()).Equals(1)
	a.Resolve()
	assert.For(ctx, "two levels").ThatSlice(a.IDs()).Equals([]api.CallID{1, 2, 3})
}

func TestDeepResolveCycle(t *testing.T) {
	ctx := log.Testing(t)
	a, b, c := callset.NewSet(), callset.NewSet(), callset.NewSet()
	a.Insert(call(1, "a"))
	b.Insert(call(2, "b"))
	c.Insert(call(3, "c"))
	a.InsertSubset("b", b)
	b.InsertSubset("c", c)
	c.InsertSubset("a", a)

	a.DeepResolve()
	assert.For(ctx, "flattened").ThatSlice(a.IDs()).Equals([]api.CallID{1, 2, 3})
	assert.For(ctx, "registrations").ThatInteger(a.Subsets()).Equals(0)
	a.DeepResolve()
	assert.For(ctx, "idempotent").ThatSlice(a.IDs()).Equals([]api.CallID{1, 2, 3})
}

func TestSortedIDs(t *testing.T) {
	ctx := log.Testing(t)
	s := callset.NewSet()
	shared := call(2, "glBindBuffer")
	s.Insert(call(9, "glDrawArrays").Requires(shared))
	s.Insert(call(7, "glBufferData").Requires(shared))
	sub := callset.NewSet()
	sub.Insert(call(9, "glDrawArrays"))
	sub.Insert(call(1, "glGenBuffers"))
	s.InsertSubset("x", sub)

	ids := s.SortedIDs()
	assert.For(ctx, "ids").ThatSlice(ids).Equals([]api.CallID{1, 2, 7, 9})
	for i := 1; i < len(ids); i++ {
		assert.For(ctx, "ascending").ThatBoolean(ids[i-1] < ids[i]).IsTrue()
	}
	assert.For(ctx, "empty").ThatSlice(callset.NewSet().SortedIDs()).IsEmpty()
}

func TestCloneIsIndependent(t *testing.T) {
	ctx := log.Testing(t)
	s := callset.NewSet()
	s.Insert(call(1, "a"))
	c := s.Clone()
	s.Insert(call(2, "b"))
	assert.For(ctx, "clone").ThatSlice(c.IDs()).Equals([]api.CallID{1})
	s.Clear()
	assert.For(ctx, "cleared").ThatInteger(s.Len()).Equals(0)
}
