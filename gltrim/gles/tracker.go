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

// Package gles tracks the OpenGL state of a trace and decides which calls a
// set of retained frames depends on.
//
// Every call the trimmer knows is dispatched by name to a handler that
// records it on the objects whose state it changes. Draws, clears and the
// other calls that produce output add themselves to the framebuffer they
// render into. Outside the retained frames they take a snapshot of the state
// they consume; inside they pull that state into the required set directly.
package gles

import (
	"context"

	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
	"github.com/google/frametrim/gltrim/config"
	"github.com/google/frametrim/gltrim/object"
	"github.com/pkg/errors"
)

type rect struct {
	x, y, w, h int64
}

// Tracker follows the GL state of one trace.
type Tracker struct {
	policy    config.Policy
	pool      *object.Pool
	required  *callset.Set
	recording bool

	buffers        *object.Map
	textures       *object.Map
	samplers       *object.Map
	framebuffers   *object.Map
	renderbuffers  *object.Map
	shaders        *object.Map
	programs       *object.Map
	legacyPrograms *object.Map
	vertexArrays   *object.Map
	syncs          *object.Map
	lists          *object.Map

	// global holds the context state that is not part of any object.
	global   *object.Object
	matrices *matrices

	immediate   []*callset.TraceCall
	inBegin     bool
	compiling   *object.Object
	compileMode uint32
	listBase    uint64

	activeUnit        uint32
	activeTextureCall *callset.TraceCall
	clientUnit        uint32
	clientTextureCall *callset.TraceCall

	viewport    rect
	scissor     rect
	scissorTest bool

	mapped map[*object.Object]bool
}

// New returns a tracker that collects required calls according to policy.
func New(policy config.Policy) *Tracker {
	pool := object.NewPool()
	pool.KeepPersistentMaps = policy.KeepPersistentMaps
	t := &Tracker{
		policy:         policy,
		pool:           pool,
		required:       callset.NewSet(),
		buffers:        object.NewMap(pool, object.Buffer),
		textures:       object.NewMap(pool, object.Texture),
		samplers:       object.NewMap(pool, object.Sampler),
		framebuffers:   object.NewMap(pool, object.Framebuffer),
		renderbuffers:  object.NewMap(pool, object.Renderbuffer),
		shaders:        object.NewMap(pool, object.Shader),
		programs:       object.NewMap(pool, object.Program),
		legacyPrograms: object.NewMap(pool, object.LegacyProgram),
		vertexArrays:   object.NewMap(pool, object.VertexArray),
		syncs:          object.NewMap(pool, object.Sync),
		lists:          object.NewMap(pool, object.DisplayList),
		global:         pool.New(object.State, 0),
		mapped:         map[*object.Object]bool{},
	}
	t.matrices = newMatrices(pool)
	fb := t.framebuffers.SetDefault()
	fb.Width, fb.Height = policy.DefaultFramebufferWidth, policy.DefaultFramebufferHeight
	t.vertexArrays.SetDefault()
	return t
}

// Required returns the set of calls the retained frames depend on.
func (t *Tracker) Required() *callset.Set { return t.required }

// Recording returns true while the calls of a retained frame are processed.
func (t *Tracker) Recording() bool { return t.recording }

// Require adds c to the required set.
func (t *Tracker) Require(c api.Call) {
	t.required.Insert(callset.New(c))
}

// StartRecording adds everything the current state depends on to the
// required set and starts retaining calls directly.
func (t *Tracker) StartRecording(ctx context.Context) {
	log.D(ctx, "Recording starts with %d required calls", t.required.Len())
	t.emitBound(object.NewEmitter(t.required))
	t.recording = true
}

// StopRecording stops retaining calls directly.
func (t *Tracker) StopRecording(ctx context.Context) {
	t.recording = false
}

// EndFrame handles the end of a frame. While recording, what the current
// framebuffer still needs is retained. The window surface content is
// presented and its draws are forgotten otherwise.
func (t *Tracker) EndFrame(ctx context.Context) {
	if t.recording {
		object.NewEmitter(t.required).Emit(t.drawFramebuffer())
		return
	}
	t.framebuffers.Default().ResetData()
}

// Finalize retains what the state at the end of the last retained frame
// depends on.
func (t *Tracker) Finalize(ctx context.Context) {
	t.emitBound(object.NewEmitter(t.required))
}

func (t *Tracker) boundMaps() []*object.Map {
	return []*object.Map{
		t.buffers, t.textures, t.samplers, t.framebuffers, t.renderbuffers,
		t.programs, t.legacyPrograms, t.vertexArrays,
	}
}

// emitBound emits every bound object and the context state.
func (t *Tracker) emitBound(e *object.Emitter) {
	for _, m := range t.boundMaps() {
		m.EmitBound(e)
	}
	e.Emit(t.global)
	t.matrices.emitTops(e)
}

// snapshotBound stores the state of every bound object in the caches of fb.
func (t *Tracker) snapshotBound(fb *object.Object) {
	for _, m := range t.boundMaps() {
		for _, p := range m.Points() {
			fb.PassStateCache(m.BoundTo(p))
		}
	}
	fb.PassStateCache(t.vertexArray())
	fb.PassStateCache(t.global)
	for _, top := range t.matrices.tops() {
		fb.PassStateCache(top)
	}
}

// draw records calls that render into the current draw framebuffer using
// the bound state and the listed objects.
func (t *Tracker) draw(objs []*object.Object, calls ...*callset.TraceCall) {
	fb := t.drawFramebuffer()
	for _, c := range calls {
		fb.AddData(c)
	}
	if t.recording {
		t.required.InsertAll(calls...)
		e := object.NewEmitter(t.required)
		t.emitBound(e)
		e.Emit(objs...)
		return
	}
	t.snapshotBound(fb)
	for _, o := range objs {
		fb.PassStateCache(o)
	}
}

// clear records a clear of the buffers in mask of the draw framebuffer.
// A clear of every attachment over the whole framebuffer drops what was
// drawn before it.
func (t *Tracker) clear(c *callset.TraceCall, mask uint32) {
	fb := t.drawFramebuffer()
	if need := t.attachmentMask(fb); mask&need == need && t.coversFramebuffer(fb) {
		fb.ResetData()
	}
	fb.AddData(c)
	if t.recording {
		t.required.Insert(c)
		e := object.NewEmitter(t.required)
		t.framebuffers.EmitBound(e)
		e.Emit(t.global)
		return
	}
	fb.PassStateCache(t.global)
}

func (t *Tracker) drawFramebuffer() *object.Object {
	if fb := t.framebuffers.BoundTo(drawFramebuffer); fb != nil {
		return fb
	}
	return t.framebuffers.Default()
}

func (t *Tracker) vertexArray() *object.Object {
	if va := t.vertexArrays.BoundTo(0); va != nil {
		return va
	}
	return t.vertexArrays.Default()
}

func (t *Tracker) readFramebuffer() *object.Object {
	if fb := t.framebuffers.BoundTo(readFramebuffer); fb != nil {
		return fb
	}
	return t.framebuffers.Default()
}

// framebufferSize returns the size of fb, taken from its first sized
// attachment.
func (t *Tracker) framebufferSize(fb *object.Object) (int, int) {
	if fb == t.framebuffers.Default() {
		return fb.Width, fb.Height
	}
	for _, p := range fb.SlotPoints() {
		s := fb.Slot(p)
		if s.Object == nil {
			continue
		}
		w, h := s.Object.Width, s.Object.Height
		if lv := s.Object.Levels(); lv != nil {
			if w, h = lv.Size(object.LevelKey(s.Layer, s.Level)); w == 0 {
				w, h = lv.Size(object.LevelKey(0, s.Level))
			}
		}
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return 0, 0
}

// attachmentMask returns the clear bits that cover every attachment of fb.
func (t *Tracker) attachmentMask(fb *object.Object) uint32 {
	if fb == t.framebuffers.Default() {
		return GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT
	}
	mask := uint32(0)
	for _, p := range fb.SlotPoints() {
		if fb.Slot(p).Object == nil {
			continue
		}
		if bits, err := attachmentBits(uint32(p)); err == nil {
			mask |= bits
		}
	}
	if mask == 0 {
		mask = GL_COLOR_BUFFER_BIT
	}
	return mask
}

// coversFramebuffer returns true if the viewport and the scissor box include
// every pixel of fb.
func (t *Tracker) coversFramebuffer(fb *object.Object) bool {
	w, h := t.framebufferSize(fb)
	if w == 0 || h == 0 {
		return false
	}
	full := rect{0, 0, int64(w), int64(h)}
	if t.viewport != full {
		return false
	}
	if t.scissorTest {
		s := t.scissor
		if s.x > 0 || s.y > 0 || s.x+s.w < full.w || s.y+s.h < full.h {
			return false
		}
	}
	return true
}

// isRequired returns true if a call that created o is already required.
func (t *Tracker) isRequired(o *object.Object) bool {
	for _, g := range o.GenCalls() {
		if t.required.Contains(g.ID) {
			return true
		}
	}
	return false
}

// generate creates an object in m for every name.
func (t *Tracker) generate(m *object.Map, c *call, names []uint64) {
	tc := c.trace()
	for _, n := range names {
		m.Generate(n, tc)
	}
}

// deleteNames deletes the named objects of m. The delete call is only
// retained if the creation of a deleted object was.
func (t *Tracker) deleteNames(m *object.Map, c *call, names []uint64) {
	tc := c.trace()
	for _, n := range names {
		o := m.Delete(n)
		if o == nil {
			continue
		}
		delete(t.mapped, o)
		if t.recording && t.isRequired(o) {
			t.required.Insert(tc)
		}
	}
}

// lookup returns the live object called name, or nil for name 0.
func lookup(m *object.Map, name uint64) (*object.Object, error) {
	if name == 0 {
		return nil, nil
	}
	return m.Lookup(name)
}

func missing(what string, args ...interface{}) error {
	return errors.Wrapf(api.ErrMissingObject, what, args...)
}
