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

package object_test

import (
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
	"github.com/google/frametrim/gltrim/object"
)

func tc(id api.CallID, name string) *callset.TraceCall {
	return callset.New(api.NewRecord(id, name))
}

func emitted(objs ...*object.Object) []api.CallID {
	out := callset.NewSet()
	object.NewEmitter(out).Emit(objs...)
	return out.SortedIDs()
}

func TestEmitOwnCalls(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	o := pool.New(object.Program, 3)
	o.AddGen(tc(1, "glCreateProgram"))
	o.SetState(callset.Keyed(api.NewRecord(2, "glBindAttribLocation"), "loc0"))
	o.SetState(callset.Keyed(api.NewRecord(4, "glBindAttribLocation"), "loc0"))
	o.AddData(tc(5, "glLinkProgram"))
	o.SetBind(0, tc(6, "glUseProgram"))
	assert.For(ctx, "calls").ThatSlice(emitted(o)).Equals([]api.CallID{1, 4, 5, 6})
}

func TestEmitDependencies(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	vao := pool.New(object.VertexArray, 1)
	vao.AddGen(tc(1, "glGenVertexArrays"))
	buf := pool.New(object.Buffer, 2)
	buf.AddGen(tc(2, "glGenBuffers"))
	vao.AddDependency(buf)
	vao.AddDependency(buf)
	assert.For(ctx, "deps").ThatSlice(vao.Dependencies()).IsLength(1)
	assert.For(ctx, "calls").ThatSlice(emitted(vao)).Equals([]api.CallID{1, 2})
}

func TestActivity(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	tex := pool.New(object.Texture, 7)
	tex.AddGen(tc(1, "glGenTextures"))
	assert.For(ctx, "unused texture").ThatSlice(emitted(tex)).IsEmpty()

	tex.MarkBound()
	assert.For(ctx, "bound texture").ThatSlice(emitted(tex)).Equals([]api.CallID{1})
	tex.MarkUnbound()

	fb := pool.New(object.Framebuffer, 1)
	fb.Attach(0x8CE0, tex, tc(2, "glFramebufferTexture2D"), 0, 0)
	assert.For(ctx, "attached texture").ThatSlice(emitted(tex)).Equals([]api.CallID{1})

	frame := pool.New(object.MatrixFrame, 0)
	frame.AddData(tc(3, "glPushMatrix"))
	assert.For(ctx, "frame on stack").ThatSlice(emitted(frame)).Equals([]api.CallID{3})
	frame.SetOnStack(false)
	assert.For(ctx, "popped frame").ThatSlice(emitted(frame)).IsEmpty()
}

func TestEmitCycle(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	fb := pool.New(object.Framebuffer, 1)
	fb.AddGen(tc(1, "glGenFramebuffers"))
	tex := pool.New(object.Texture, 2)
	tex.AddGen(tc(2, "glGenTextures"))
	tex.Levels().Image(object.LevelKey(0, 0), tc(3, "glTexImage2D"), 800, 600)
	fb.Attach(0x8CE0, tex, tc(4, "glFramebufferTexture2D"), 0, 0)
	tex.SetDrawnBy(fb)
	fb.AddData(tc(5, "glDrawArrays"))

	expected := []api.CallID{1, 2, 3, 4, 5}
	assert.For(ctx, "from framebuffer").ThatSlice(emitted(fb)).Equals(expected)
	assert.For(ctx, "from texture").ThatSlice(emitted(tex)).Equals(expected)
	assert.For(ctx, "stamp").ThatBoolean(fb.Stamp() == tex.Stamp()).IsTrue()
}

func TestAttachFlushesOutgoing(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	prog := pool.New(object.Program, 1)
	prog.AddGen(tc(1, "glCreateProgram"))
	sh := pool.New(object.Shader, 2)
	sh.AddGen(tc(2, "glCreateShader"))
	sh.SetState(tc(3, "glShaderSource"))
	prog.Attach(2, sh, tc(4, "glAttachShader"), 0, 0)
	prog.AddData(tc(5, "glLinkProgram"))
	prog.Attach(2, nil, tc(6, "glDetachShader"), 0, 0)

	assert.For(ctx, "shader detached").ThatBoolean(sh.IsAttached()).IsFalse()
	assert.For(ctx, "shader inactive").ThatSlice(emitted(sh)).IsEmpty()
	assert.For(ctx, "program keeps shader").ThatSlice(emitted(prog)).Equals([]api.CallID{1, 2, 3, 4, 5, 6})
}

func TestStateCacheVersions(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	fb := pool.New(object.Framebuffer, 1)
	vao := pool.New(object.VertexArray, 2)
	vao.AddGen(tc(1, "glGenVertexArrays"))
	buf := pool.New(object.Buffer, 3)
	buf.AddGen(tc(2, "glGenBuffers"))
	vao.AddDependency(buf)

	fb.PassStateCache(vao)
	first, ok := fb.CachedStamp(vao)
	assert.For(ctx, "cached").ThatBoolean(ok).IsTrue()

	fb.PassStateCache(vao)
	again, _ := fb.CachedStamp(vao)
	assert.For(ctx, "unchanged source").That(again).Equals(first)

	buf.Store().Data(tc(3, "glBufferData"), 64)
	fb.PassStateCache(vao)
	changed, _ := fb.CachedStamp(vao)
	assert.For(ctx, "dependency changed").ThatBoolean(changed > first).IsTrue()
	assert.For(ctx, "calls").ThatSlice(emitted(fb)).Equals([]api.CallID{1, 2, 3})

	fb.ResetData()
	_, ok = fb.CachedStamp(vao)
	assert.For(ctx, "reset drops caches").ThatBoolean(ok).IsFalse()
}

func TestCacheIsSnapshot(t *testing.T) {
	ctx := log.Testing(t)
	pool := object.NewPool()
	fb := pool.New(object.Framebuffer, 1)
	state := pool.New(object.State, 0)
	state.SetState(callset.Keyed(api.NewRecord(1, "glClearColor"), "glClearColor"))
	fb.PassStateCache(state)
	fb.AddData(tc(2, "glClear"))
	state.SetState(callset.Keyed(api.NewRecord(3, "glClearColor"), "glClearColor"))
	assert.For(ctx, "snapshot").ThatSlice(emitted(fb)).Equals([]api.CallID{1, 2})
}
