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
	"github.com/google/frametrim/core/math/interval"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
	"github.com/pkg/errors"
)

// maxBinds is the number of bind calls a buffer collects before it prunes
// them.
const maxBinds = 32

// Range is a span of a buffer together with the call that last wrote it.
type Range struct {
	Span    interval.U64Span
	Call    *callset.TraceCall
	Memcopy bool
}

// write is the tag of a written span. Memory copies keep the mapping they
// were written through.
type write struct {
	call    *callset.TraceCall
	mapping *mapping
}

type mapping struct {
	call       *callset.TraceCall
	flushes    []*callset.TraceCall
	unmap      *callset.TraceCall
	persistent bool
}

// Store tracks which call last wrote each byte of a buffer, the bind calls
// those writes need, and the mapping history used to attribute raw memory
// copies to the buffer.
type Store struct {
	owner *Object
	size  uint64
	alloc *callset.TraceCall

	ranges interval.TaggedList[write]
	binds  []*callset.TraceCall
	maps   []*mapping

	mapped *mapping
	window interval.U64Span
	offset uint64
}

// Size returns the size given by the last allocation.
func (s *Store) Size() uint64 { return s.size }

// Allocation returns the call that last allocated the buffer.
func (s *Store) Allocation() *callset.TraceCall { return s.alloc }

// Data records a call that (re)allocates the whole buffer. Everything written
// before it is superseded, including the content calls and state caches of
// the owner.
func (s *Store) Data(c *callset.TraceCall, size uint64) {
	s.owner.ResetData()
	s.alloc = c
	s.size = size
	s.ranges.Clear()
	s.binds = nil
	s.maps = nil
	s.mapped = nil
	s.window = interval.U64Span{}
	s.owner.touch()
}

// AppendData records a write of size bytes at start.
func (s *Store) AppendData(c *callset.TraceCall, start, size uint64) {
	s.ranges.Assign(interval.U64Span{Start: start, End: start + size}, write{call: c})
	s.owner.touch()
}

// Bind records a bind call of the buffer.
func (s *Store) Bind(c *callset.TraceCall) {
	s.binds = append(s.binds, c)
	if len(s.binds) > maxBinds {
		s.CleanBindCalls()
	}
	s.owner.touch()
}

// Binds returns the retained bind calls.
func (s *Store) Binds() []*callset.TraceCall { return s.binds }

// Map records a mapping of size bytes of the buffer, starting at offset, to
// the client address base.
func (s *Store) Map(c *callset.TraceCall, base, size, offset uint64, persistent bool) {
	m := &mapping{call: c, persistent: persistent}
	s.maps = append(s.maps, m)
	s.mapped = m
	s.window = interval.U64Span{Start: base, End: base + size}
	s.offset = offset
	s.owner.touch()
}

// Mapped returns the client address window of the current mapping.
func (s *Store) Mapped() (interval.U64Span, bool) {
	return s.window, s.mapped != nil
}

// Memcopy records a raw memory write of size bytes to the client address dst.
// It returns false if dst is not inside the current mapping.
func (s *Store) Memcopy(c *callset.TraceCall, dst, size uint64) bool {
	if s.mapped == nil || !s.window.Contains(dst) {
		return false
	}
	start := dst - s.window.Start + s.offset
	end := start + size
	if limit := s.window.End - s.window.Start + s.offset; end > limit {
		end = limit
	}
	s.ranges.Assign(interval.U64Span{Start: start, End: end}, write{call: c, mapping: s.mapped})
	s.owner.touch()
	return true
}

// Unmap ends the current mapping.
func (s *Store) Unmap(c *callset.TraceCall) error {
	if s.mapped == nil {
		return errors.Wrapf(api.ErrMissingObject, "unmap of %v without a mapping", s.owner)
	}
	s.mapped.unmap = c
	s.mapped = nil
	s.window = interval.U64Span{}
	s.owner.touch()
	return nil
}

// Flush records an explicit flush of part of the current mapping.
func (s *Store) Flush(c *callset.TraceCall) error {
	if s.mapped == nil {
		return errors.Wrapf(api.ErrMissingObject, "flush of %v without a mapping", s.owner)
	}
	s.mapped.flushes = append(s.mapped.flushes, c)
	s.owner.touch()
	return nil
}

// Ranges returns the written spans in ascending order.
func (s *Store) Ranges() []Range {
	out := make([]Range, 0, s.ranges.Len())
	s.ranges.Each(func(e interval.TaggedSpan[write]) {
		out = append(out, Range{Span: e.Span, Call: e.Tag.call, Memcopy: e.Tag.mapping != nil})
	})
	return out
}

func (s *Store) oldestWrite() api.CallID {
	oldest := api.NoID
	s.ranges.Each(func(e interval.TaggedSpan[write]) {
		if id := e.Tag.call.ID; id < oldest {
			oldest = id
		}
	})
	return oldest
}

// CleanBindCalls drops the bind and mapping calls no live write needs.
//
// Of the bind calls, the last one issued before the oldest live write and all
// later ones are kept. Of the mappings, those that a live memory copy was
// written through are kept, together with the open mapping and, when the
// pool says so, the persistent ones.
func (s *Store) CleanBindCalls() {
	oldest := s.oldestWrite()

	keepFrom := 0
	if oldest == api.NoID {
		keepFrom = len(s.binds) - 1
	} else {
		for i, b := range s.binds {
			if b.ID < oldest {
				keepFrom = i
			}
		}
	}
	if keepFrom > 0 {
		s.binds = append([]*callset.TraceCall{}, s.binds[keepFrom:]...)
	}

	live := map[*mapping]bool{}
	s.ranges.Each(func(e interval.TaggedSpan[write]) {
		if e.Tag.mapping != nil {
			live[e.Tag.mapping] = true
		}
	})
	maps := s.maps[:0]
	for _, m := range s.maps {
		switch {
		case m.unmap == nil,
			m.persistent && s.owner.pool.KeepPersistentMaps,
			live[m]:
			maps = append(maps, m)
		}
	}
	for i := len(maps); i < len(s.maps); i++ {
		s.maps[i] = nil
	}
	s.maps = maps
}

func (s *Store) emitTo(out *callset.Set) {
	s.CleanBindCalls()
	out.Insert(s.alloc)
	s.ranges.Each(func(e interval.TaggedSpan[write]) { out.Insert(e.Tag.call) })
	out.InsertAll(s.binds...)
	for _, m := range s.maps {
		out.Insert(m.call)
		out.InsertAll(m.flushes...)
		out.Insert(m.unmap)
	}
}
