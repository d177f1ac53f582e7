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

package object

import (
	"sort"

	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
	"github.com/pkg/errors"
)

// BindPoint composes a bind point id from a unit (texture unit, indexed
// buffer binding) and a target index.
func BindPoint(unit, target uint32) uint64 { return uint64(unit)<<32 | uint64(target) }

// Map holds the live objects of one kind by name, and which of them are
// bound to each bind point.
type Map struct {
	pool      *Pool
	kind      Kind
	objects   map[uint64]*Object
	bound     map[uint64]*Object
	bindCalls map[uint64]*callset.TraceCall
	def       *Object
}

// NewMap returns an empty map for objects of the given kind.
func NewMap(pool *Pool, kind Kind) *Map {
	return &Map{
		pool:      pool,
		kind:      kind,
		objects:   map[uint64]*Object{},
		bound:     map[uint64]*Object{},
		bindCalls: map[uint64]*callset.TraceCall{},
	}
}

// Kind returns the kind of objects held by the map.
func (m *Map) Kind() Kind { return m.kind }

// SetDefault installs the object that name 0 refers to, like the default
// framebuffer or vertex array.
func (m *Map) SetDefault() *Object {
	m.def = m.pool.New(m.kind, 0)
	m.objects[0] = m.def
	return m.def
}

// Default returns the object that name 0 refers to, or nil.
func (m *Map) Default() *Object { return m.def }

// Generate creates the object called name. A name that is still live is
// replaced by the new object.
func (m *Map) Generate(name uint64, c *callset.TraceCall) *Object {
	o := m.pool.New(m.kind, name)
	if c != nil {
		o.AddGen(c)
	}
	if old, ok := m.objects[name]; ok && old != m.def {
		m.unbindAll(old)
	}
	m.objects[name] = o
	return o
}

// Get returns the live object called name, or nil.
func (m *Map) Get(name uint64) *Object { return m.objects[name] }

// Lookup returns the live object called name.
func (m *Map) Lookup(name uint64) (*Object, error) {
	if o, ok := m.objects[name]; ok {
		return o, nil
	}
	return nil, errors.Wrapf(api.ErrMissingObject, "%v %d", m.kind, name)
}

// Bind binds the object called name to point with the call c. Binding name 0
// binds the default object if there is one, and otherwise leaves the point
// empty.
func (m *Map) Bind(point, name uint64, c *callset.TraceCall) (*Object, error) {
	var o *Object
	if name != 0 || m.def != nil {
		var err error
		if o, err = m.Lookup(name); err != nil {
			return nil, err
		}
	}
	if prev := m.bound[point]; prev != nil {
		prev.ClearBind(point)
		prev.MarkUnbound()
	}
	m.bindCalls[point] = c
	if o == nil {
		delete(m.bound, point)
		return nil, nil
	}
	o.SetBind(point, c)
	o.MarkBound()
	m.bound[point] = o
	return o, nil
}

// BoundTo returns the object bound to point, or nil.
func (m *Map) BoundTo(point uint64) *Object { return m.bound[point] }

// BindCall returns the last call that changed the binding of point.
func (m *Map) BindCall(point uint64) *callset.TraceCall { return m.bindCalls[point] }

// Points returns the bind points that hold an object, in ascending order.
func (m *Map) Points() []uint64 {
	points := make([]uint64, 0, len(m.bound))
	for p := range m.bound {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	return points
}

// Delete removes the object called name, unbinding it from every point.
// It returns the removed object, or nil if the name was not live.
func (m *Map) Delete(name uint64) *Object {
	o, ok := m.objects[name]
	if !ok || o == m.def {
		return nil
	}
	delete(m.objects, name)
	m.unbindAll(o)
	o.MarkDeleted()
	return o
}

func (m *Map) unbindAll(o *Object) {
	for p, b := range m.bound {
		if b == o {
			delete(m.bound, p)
			delete(m.bindCalls, p)
			o.ClearBind(p)
			o.MarkUnbound()
		}
	}
}

// Len returns the number of live objects.
func (m *Map) Len() int { return len(m.objects) }

// Each calls f for every live object in ascending name order.
func (m *Map) Each(f func(*Object)) {
	names := make([]uint64, 0, len(m.objects))
	for n := range m.objects {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, n := range names {
		f(m.objects[n])
	}
}

// EmitBound emits every bound object and the calls that established the
// current bindings, including those that left a point empty.
func (m *Map) EmitBound(e *Emitter) {
	for _, c := range m.bindCalls {
		e.Out().Insert(c)
	}
	for _, p := range m.Points() {
		e.Emit(m.bound[p])
	}
	e.Emit(m.def)
}
