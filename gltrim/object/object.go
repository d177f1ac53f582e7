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

// Package object implements the trackable resource objects of the trimmer
// and the dependency graph between them.
//
// An Object owns the calls that make up its currently visible state and
// references the objects it depends on. Emitting an object inserts its calls
// and the calls of everything it depends on into a callset.Set, visiting each
// object at most once even when the dependencies form a cycle.
package object

import (
	"fmt"
	"sort"

	"github.com/google/frametrim/gltrim/callset"
)

// Object is a single tracked resource.
type Object struct {
	pool     *Pool
	kind     Kind
	name     uint64
	id       uint64
	activity Activity
	version  uint64

	gen   []*callset.TraceCall
	state map[string]*callset.TraceCall
	binds map[uint64]*callset.TraceCall
	data  *callset.Set

	deps    []*Object
	slots   map[uint64]*Slot
	caches  map[uint64]*cache
	store   *Store
	levels  *Levels
	drawnBy *Object

	bound    int
	holders  map[*Object]int
	onStack  bool
	deleted  bool
	emitting bool
	emitted  bool

	// Width and Height are the dimensions of sized objects.
	Width, Height int
}

// Slot is an object attached to another at a numbered point.
type Slot struct {
	Object *Object
	Call   *callset.TraceCall
	Level  int
	Layer  int
}

type cache struct {
	stamp uint64
	calls *callset.Set
}

func (o *Object) String() string {
	return fmt.Sprintf("%v %d (#%d)", o.kind, o.name, o.id)
}

// Kind returns the kind of resource the object tracks.
func (o *Object) Kind() Kind { return o.kind }

// Name returns the GL name of the object.
func (o *Object) Name() uint64 { return o.name }

// ID returns the internal id, unique across every object of the pool.
func (o *Object) ID() uint64 { return o.id }

// Version changes every time the object is modified.
func (o *Object) Version() uint64 { return o.version }

func (o *Object) touch() { o.version = o.pool.tick() }

// AddGen records a call that created the object.
func (o *Object) AddGen(c *callset.TraceCall) {
	o.gen = append(o.gen, c)
	o.touch()
}

// GenCalls returns the calls that created the object.
func (o *Object) GenCalls() []*callset.TraceCall { return o.gen }

// SetState records a state call. A later call with the same key replaces it.
func (o *Object) SetState(c *callset.TraceCall) {
	o.state[c.Key] = c
	o.touch()
}

// State returns the state call recorded under key, or nil.
func (o *Object) State(key string) *callset.TraceCall { return o.state[key] }

// ClearState removes the state calls whose key the predicate accepts.
func (o *Object) ClearState(pred func(key string) bool) {
	for k := range o.state {
		if pred(k) {
			delete(o.state, k)
		}
	}
	o.touch()
}

// AddData records a call that contributes to the object's contents.
func (o *Object) AddData(c *callset.TraceCall) {
	o.data.Insert(c)
	o.touch()
}

// ResetData drops every recorded content call and every state cache.
func (o *Object) ResetData() {
	o.data = callset.NewSet()
	o.caches = nil
	o.touch()
}

// Data returns the content calls of the object.
func (o *Object) Data() *callset.Set { return o.data }

// SetBind records the call that bound the object to point.
func (o *Object) SetBind(point uint64, c *callset.TraceCall) {
	o.binds[point] = c
	o.touch()
}

// ClearBind forgets the bind call for point.
func (o *Object) ClearBind(point uint64) {
	delete(o.binds, point)
	o.touch()
}

// BindCall returns the call that bound the object to point.
func (o *Object) BindCall(point uint64) *callset.TraceCall { return o.binds[point] }

// LastBind returns the most recent of the object's bind calls.
func (o *Object) LastBind() *callset.TraceCall {
	var last *callset.TraceCall
	for _, c := range o.binds {
		if last == nil || c.ID > last.ID {
			last = c
		}
	}
	return last
}

// AddDependency makes o depend on d. Adding the same dependency twice is a
// no-op.
func (o *Object) AddDependency(d *Object) {
	if d == nil || d == o {
		return
	}
	for _, e := range o.deps {
		if e == d {
			return
		}
	}
	o.deps = append(o.deps, d)
	o.touch()
}

// Dependencies returns the objects o depends on.
func (o *Object) Dependencies() []*Object { return o.deps }

// SetDrawnBy records the framebuffer that renders into this object.
func (o *Object) SetDrawnBy(fb *Object) {
	if o.drawnBy == fb {
		return
	}
	o.drawnBy = fb
	o.touch()
}

// DrawnBy returns the framebuffer that renders into this object, or nil.
func (o *Object) DrawnBy() *Object { return o.drawnBy }

// Store returns the sub-range tracker of a buffer object.
func (o *Object) Store() *Store { return o.store }

// Levels returns the image levels of a texture object.
func (o *Object) Levels() *Levels { return o.levels }

// MarkBound records that the object was bound to one more point.
func (o *Object) MarkBound() { o.bound++ }

// MarkUnbound records that the object was unbound from a point.
func (o *Object) MarkUnbound() {
	if o.bound > 0 {
		o.bound--
	}
}

// IsBound returns true if the object is bound to at least one point.
func (o *Object) IsBound() bool { return o.bound > 0 }

// IsAttached returns true if the object is attached to another object.
func (o *Object) IsAttached() bool { return len(o.holders) > 0 }

func (o *Object) hold(by *Object) {
	if o.holders == nil {
		o.holders = map[*Object]int{}
	}
	o.holders[by]++
}

func (o *Object) release(by *Object) {
	if o.holders[by] <= 1 {
		delete(o.holders, by)
		return
	}
	o.holders[by]--
}

// heldByActive returns true if an active object holds o in one of its slots.
func (o *Object) heldByActive() bool {
	for h := range o.holders {
		if h != o && h.Active() {
			return true
		}
	}
	return false
}

// SetOnStack marks a stack frame object as reachable or not.
func (o *Object) SetOnStack(on bool) {
	o.onStack = on
	o.touch()
}

// MarkDeleted records that the object's name was deleted. Everything
// attached to it is detached.
func (o *Object) MarkDeleted() {
	for _, p := range o.SlotPoints() {
		o.Attach(p, nil, nil, 0, 0)
	}
	o.deleted = true
	o.bound = 0
	o.touch()
}

// Deleted returns true if the object's name was deleted.
func (o *Object) Deleted() bool { return o.deleted }

// WasEmitted returns true if the object contributed its calls to any set.
func (o *Object) WasEmitted() bool { return o.emitted }

// Active returns true if the object should contribute its calls when it is
// reached.
func (o *Object) Active() bool {
	switch o.activity {
	case WhenUsed:
		return o.bound > 0 || o.heldByActive()
	case OnStack:
		return o.onStack
	default:
		return true
	}
}

// Attach places obj at point with the call c, returning the slot it
// replaced. A nil obj with a non-nil call leaves a slot that only holds the
// call, like a detach or a client memory pointer.
//
// Framebuffers and programs keep what an outgoing object contributed: its
// calls go to the state cache of o and its attach call stays with o.
func (o *Object) Attach(point uint64, obj *Object, c *callset.TraceCall, level, layer int) *Slot {
	old := o.slots[point]
	if old != nil {
		if obj != nil && old.Object == obj && old.Level == level && old.Layer == layer {
			old.Call = c
			o.touch()
			return old
		}
		if old.Object != nil {
			if o.kind.keepsDetached() {
				o.PassStateCache(old.Object)
				o.data.Insert(old.Call)
			}
			old.Object.release(o)
		}
	}
	if obj == nil && c == nil {
		delete(o.slots, point)
	} else {
		if obj != nil {
			obj.hold(o)
		}
		o.slots[point] = &Slot{Object: obj, Call: c, Level: level, Layer: layer}
	}
	o.touch()
	return old
}

// Slot returns the slot at point, or nil.
func (o *Object) Slot(point uint64) *Slot { return o.slots[point] }

// SlotPoints returns the occupied attachment points in ascending order.
func (o *Object) SlotPoints() []uint64 {
	points := make([]uint64, 0, len(o.slots))
	for p := range o.slots {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	return points
}

// PassStateCache stores a snapshot of everything src currently requires in
// the state cache of o. The snapshot is only rebuilt when src or one of its
// dependencies changed since the last one was taken.
func (o *Object) PassStateCache(src *Object) {
	if src == nil || src == o {
		return
	}
	stamp := src.Stamp()
	if c, ok := o.caches[src.id]; ok && c.stamp == stamp {
		return
	}
	snap := callset.NewSet()
	src.EmitCallsTo(snap)
	if o.caches == nil {
		o.caches = map[uint64]*cache{}
	}
	o.caches[src.id] = &cache{stamp: stamp, calls: snap}
	o.touch()
}

// CachedStamp returns the stamp of the snapshot o holds for src, and whether
// there is one.
func (o *Object) CachedStamp(src *Object) (uint64, bool) {
	c, ok := o.caches[src.id]
	if !ok {
		return 0, false
	}
	return c.stamp, true
}

// Stamp returns a value that changes whenever o or any object reachable from
// it is modified.
func (o *Object) Stamp() uint64 {
	max := uint64(0)
	o.walk(map[*Object]bool{}, func(v *Object) {
		if v.version > max {
			max = v.version
		}
	})
	return max
}

func (o *Object) walk(seen map[*Object]bool, f func(*Object)) {
	if o == nil || seen[o] {
		return
	}
	seen[o] = true
	f(o)
	for _, d := range o.deps {
		d.walk(seen, f)
	}
	for _, p := range o.SlotPoints() {
		o.slots[p].Object.walk(seen, f)
	}
	o.drawnBy.walk(seen, f)
}

// EmitCallsTo inserts every call o currently requires into out.
func (o *Object) EmitCallsTo(out *callset.Set) {
	NewEmitter(out).Emit(o)
}

// Emitter inserts the calls of several objects into one set, visiting every
// object at most once.
type Emitter struct {
	out  *callset.Set
	seen map[*Object]bool
}

// NewEmitter returns an emitter that writes to out.
func NewEmitter(out *callset.Set) *Emitter {
	return &Emitter{out: out, seen: map[*Object]bool{}}
}

// Out returns the set the emitter writes to.
func (e *Emitter) Out() *callset.Set { return e.out }

// Emit inserts the calls of every listed object and their dependencies.
func (e *Emitter) Emit(objs ...*Object) {
	for _, o := range objs {
		e.emit(o)
	}
}

func (e *Emitter) emit(o *Object) {
	if o == nil || o.emitting || e.seen[o] || !o.Active() {
		return
	}
	e.seen[o] = true
	o.emitted = true
	o.emitting = true
	defer func() { o.emitting = false }()

	e.out.InsertAll(o.gen...)
	e.out.InsertMap(o.state)
	for _, c := range o.binds {
		e.out.Insert(c)
	}
	e.out.InsertSet(o.data)
	if o.store != nil {
		o.store.emitTo(e.out)
	}
	if o.levels != nil {
		o.levels.emitTo(e.out)
	}
	for id, c := range o.caches {
		e.out.InsertSubset(fmt.Sprintf("%d/%d@%d", o.id, id, c.stamp), c.calls)
	}
	for _, p := range o.SlotPoints() {
		s := o.slots[p]
		e.out.Insert(s.Call)
		e.emit(s.Object)
	}
	for _, d := range o.deps {
		e.emit(d)
	}
	e.emit(o.drawnBy)
}
