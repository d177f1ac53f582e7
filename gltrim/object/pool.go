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

import "github.com/google/frametrim/gltrim/callset"

// Pool creates objects and hands out their internal ids and version stamps.
// Every object tracked by one trimmer must come from the same Pool.
type Pool struct {
	ids   uint64
	ticks uint64

	// KeepPersistentMaps retains persistent buffer mappings when pruning.
	KeepPersistentMaps bool
}

// NewPool returns a new object pool.
func NewPool() *Pool { return &Pool{KeepPersistentMaps: true} }

// New creates an object of the given kind with the capabilities that kind
// needs.
func (p *Pool) New(kind Kind, name uint64) *Object {
	p.ids++
	o := &Object{
		pool:     p,
		kind:     kind,
		name:     name,
		id:       p.ids,
		activity: kind.activity(),
		state:    map[string]*callset.TraceCall{},
		binds:    map[uint64]*callset.TraceCall{},
		data:     callset.NewSet(),
	}
	switch kind {
	case Buffer:
		o.store = &Store{owner: o}
	case Texture:
		o.levels = &Levels{owner: o, images: map[uint64]*level{}}
	}
	if kind.hasSlots() {
		o.slots = map[uint64]*Slot{}
	}
	if o.activity == OnStack {
		o.onStack = true
	}
	o.touch()
	return o
}

func (p *Pool) tick() uint64 {
	p.ticks++
	return p.ticks
}
