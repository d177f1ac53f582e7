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

package callset

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/frametrim/gltrim/api"
)

// Set is a deduplicated collection of calls, keyed by call index.
// A call inserted into the set brings its chain of required calls with it.
//
// A Set may also hold named references to other sets that are still being
// modified. Those subsets only contribute their calls when Resolve or
// DeepResolve is called.
type Set struct {
	calls   map[api.CallID]*TraceCall
	subsets map[string]*Set
}

// NewSet returns a new, empty set.
func NewSet() *Set {
	return &Set{calls: map[api.CallID]*TraceCall{}}
}

// Insert adds c and its required chain to the set.
// Inserting nil is a no-op.
func (s *Set) Insert(c *TraceCall) {
	for c != nil {
		if _, ok := s.calls[c.ID]; ok {
			return
		}
		s.calls[c.ID] = c
		c = c.Required
	}
}

// InsertAll adds every call in the list.
func (s *Set) InsertAll(calls ...*TraceCall) {
	for _, c := range calls {
		s.Insert(c)
	}
}

// InsertSet adds the calls of o. The subsets registered on o are registered
// on s as well, so they are resolved together with s.
func (s *Set) InsertSet(o *Set) {
	if o == nil || o == s {
		return
	}
	for _, c := range o.calls {
		s.Insert(c)
	}
	for k, sub := range o.subsets {
		s.InsertSubset(k, sub)
	}
}

// InsertMap adds every call held in the map.
func (s *Set) InsertMap(m map[string]*TraceCall) {
	for _, c := range m {
		s.Insert(c)
	}
}

// InsertSubset registers sub under key. A later registration with the same
// key replaces the earlier one.
func (s *Set) InsertSubset(key string, sub *Set) {
	if sub == nil || sub == s {
		return
	}
	if s.subsets == nil {
		s.subsets = map[string]*Set{}
	}
	s.subsets[key] = sub
}

// Resolve merges the current direct membership of every registered subset
// into s and drops the registrations. Subsets of subsets are registered on s
// and left unresolved.
func (s *Set) Resolve() {
	subsets := s.subsets
	s.subsets = nil
	for _, key := range sortedKeys(subsets) {
		s.InsertSet(subsets[key])
	}
}

// DeepResolve resolves every subset recursively before merging it, leaving s
// with no subset registrations. Subsets that refer back to each other are
// visited once.
func (s *Set) DeepResolve() {
	s.deepResolve(map[*Set]bool{})
}

func (s *Set) deepResolve(visiting map[*Set]bool) {
	visiting[s] = true
	for len(s.subsets) > 0 {
		subsets := s.subsets
		s.subsets = nil
		for _, key := range sortedKeys(subsets) {
			sub := subsets[key]
			if visiting[sub] {
				s.insertCalls(sub)
				continue
			}
			sub.deepResolve(visiting)
			s.insertCalls(sub)
		}
	}
}

func (s *Set) insertCalls(o *Set) {
	for _, c := range o.calls {
		s.Insert(c)
	}
}

// Len returns the number of calls directly held by the set.
func (s *Set) Len() int { return len(s.calls) }

// Subsets returns the number of unresolved subset registrations.
func (s *Set) Subsets() int { return len(s.subsets) }

// Contains returns true if the call with the given index is held directly.
func (s *Set) Contains(id api.CallID) bool {
	_, ok := s.calls[id]
	return ok
}

// Get returns the call with the given index, or nil.
func (s *Set) Get(id api.CallID) *TraceCall { return s.calls[id] }

// Clear removes every call and subset.
func (s *Set) Clear() {
	s.calls = map[api.CallID]*TraceCall{}
	s.subsets = nil
}

// Clone returns a copy of the set's direct membership and registrations.
func (s *Set) Clone() *Set {
	out := NewSet()
	out.InsertSet(s)
	return out
}

// Calls returns the directly held calls in ascending index order.
func (s *Set) Calls() []*TraceCall {
	out := make([]*TraceCall, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the indices of the directly held calls in ascending order.
// Unresolved subsets are not included.
func (s *Set) IDs() []api.CallID {
	if len(s.calls) == 0 {
		return nil
	}
	max := api.CallID(0)
	for id := range s.calls {
		if id > max {
			max = id
		}
	}
	bits := bitset.New(uint(max) + 1)
	for id := range s.calls {
		bits.Set(uint(id))
	}
	out := make([]api.CallID, 0, len(s.calls))
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		out = append(out, api.CallID(i))
	}
	return out
}

// SortedIDs flattens every subset and returns the ascending, duplicate free
// list of call indices.
func (s *Set) SortedIDs() []api.CallID {
	s.DeepResolve()
	return s.IDs()
}

func sortedKeys(m map[string]*Set) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
