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

package gles

import (
	"sort"

	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
	"github.com/google/frametrim/gltrim/object"
	"github.com/pkg/errors"
)

// matrices holds the fixed function matrix stacks. Every stack entry is an
// object that depends on the entry below it, so that the top of a stack
// reaches every push it is nested in.
type matrices struct {
	pool     *object.Pool
	stacks   map[uint64][]*object.Object
	mode     uint32
	modeCall *callset.TraceCall
}

func newMatrices(pool *object.Pool) *matrices {
	return &matrices{
		pool:   pool,
		stacks: map[uint64][]*object.Object{},
		mode:   GL_MODELVIEW,
	}
}

// matrixStack returns the key of the current stack, creating the stack on
// first use. Texture matrices are per texture unit.
func (t *Tracker) matrixStack() uint64 {
	m := t.matrices
	key := uint64(m.mode)
	if m.mode == GL_TEXTURE {
		key |= uint64(t.activeUnit) << 32
	}
	if _, ok := m.stacks[key]; !ok {
		m.stacks[key] = []*object.Object{m.pool.New(object.MatrixFrame, key)}
	}
	return key
}

func (m *matrices) top(key uint64) *object.Object {
	s := m.stacks[key]
	return s[len(s)-1]
}

// tops returns the top of every stack.
func (m *matrices) tops() []*object.Object {
	keys := make([]uint64, 0, len(m.stacks))
	for k := range m.stacks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]*object.Object, len(keys))
	for i, k := range keys {
		out[i] = m.top(k)
	}
	return out
}

func (m *matrices) emitTops(e *object.Emitter) {
	e.Emit(m.tops()...)
}

func (t *Tracker) matrixMode(c *call) error {
	tc := c.trace()
	t.matrices.mode = c.a.Enum(0)
	t.matrices.modeCall = tc
	t.global.SetState(tc)
	return nil
}

func (t *Tracker) pushMatrix(c *call) error {
	m := t.matrices
	key := t.matrixStack()
	f := m.pool.New(object.MatrixFrame, key)
	f.AddGen(c.trace().Requires(m.modeCall))
	f.AddDependency(m.top(key))
	m.stacks[key] = append(m.stacks[key], f)
	return nil
}

// popMatrix leaves the entry below the top. If anything used the popped
// entry, its push, the pop and the pushes and pops nested in it stay with
// the new top so that the stack depth is replayed correctly.
func (t *Tracker) popMatrix(c *call) error {
	m := t.matrices
	key := t.matrixStack()
	s := m.stacks[key]
	if len(s) < 2 {
		return errors.Wrap(api.ErrMalformedCall, "matrix stack underflow")
	}
	f := s[len(s)-1]
	m.stacks[key] = s[:len(s)-1]
	f.SetOnStack(false)
	if !f.WasEmitted() {
		return nil
	}
	tc := c.trace().Requires(m.modeCall)
	parent := m.top(key)
	for _, g := range f.GenCalls() {
		parent.AddGen(g)
	}
	parent.AddGen(tc)
	if t.recording {
		t.required.InsertAll(f.GenCalls()...)
		t.required.Insert(tc)
	}
	return nil
}

// loadMatrix replaces the top matrix, making the operations before it
// irrelevant.
func (t *Tracker) loadMatrix(c *call) error {
	top := t.matrices.top(t.matrixStack())
	top.ResetData()
	top.AddData(c.trace().Requires(t.matrices.modeCall))
	return nil
}

func (t *Tracker) multMatrix(c *call) error {
	t.matrices.top(t.matrixStack()).AddData(c.trace().Requires(t.matrices.modeCall))
	return nil
}
