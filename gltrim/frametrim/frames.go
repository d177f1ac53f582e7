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

package frametrim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/frametrim/core/math/interval"
	"github.com/google/frametrim/gltrim/api"
	"github.com/pkg/errors"
)

// Region is where a frame lies relative to the retained frames.
type Region int

const (
	// Before frames precede a retained frame. Their calls only update state.
	Before Region = iota
	// Inside frames are retained.
	Inside
	// After frames follow the last retained frame and are never needed.
	After
)

func (r Region) String() string {
	switch r {
	case Before:
		return "before"
	case Inside:
		return "inside"
	case After:
		return "after"
	default:
		return fmt.Sprintf("region(%d)", int(r))
	}
}

// Frames is a set of frame indices, held as sorted disjoint spans.
type Frames struct {
	spans []interval.U64Span
}

// Frame returns the set holding only frame n.
func Frame(n uint64) Frames {
	return Frames{spans: []interval.U64Span{{Start: n, End: n + 1}}}
}

// ParseFrames parses a frame selection like "5", "3-7" or "1,4-6,9".
// Ranges include both ends.
func ParseFrames(s string) (Frames, error) {
	f := Frames{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Frames{}, errors.Wrapf(api.ErrBadFrameSpec, "empty element in %q", s)
		}
		first, last, isRange := strings.Cut(part, "-")
		a, err := strconv.ParseUint(strings.TrimSpace(first), 10, 64)
		if err != nil {
			return Frames{}, errors.Wrapf(api.ErrBadFrameSpec, "%q: %v", part, err)
		}
		b := a
		if isRange {
			if b, err = strconv.ParseUint(strings.TrimSpace(last), 10, 64); err != nil {
				return Frames{}, errors.Wrapf(api.ErrBadFrameSpec, "%q: %v", part, err)
			}
			if b < a {
				return Frames{}, errors.Wrapf(api.ErrBadFrameSpec, "%q ends before it starts", part)
			}
		}
		f.spans = append(f.spans, interval.U64Span{Start: a, End: b + 1})
	}
	f.normalize()
	return f, nil
}

func (f *Frames) normalize() {
	sort.Slice(f.spans, func(i, j int) bool { return f.spans[i].Start < f.spans[j].Start })
	out := f.spans[:0]
	for _, s := range f.spans {
		if n := len(out); n > 0 && s.Start <= out[n-1].End {
			if s.End > out[n-1].End {
				out[n-1].End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	f.spans = out
}

// Empty returns true if no frame is selected.
func (f Frames) Empty() bool { return len(f.spans) == 0 }

// Contains returns true if frame n is selected.
func (f Frames) Contains(n uint64) bool {
	i := sort.Search(len(f.spans), func(i int) bool { return f.spans[i].End > n })
	return i < len(f.spans) && f.spans[i].Contains(n)
}

// Region returns where frame n lies relative to the selection.
func (f Frames) Region(n uint64) Region {
	switch {
	case f.Contains(n):
		return Inside
	case f.Empty() || n >= f.spans[len(f.spans)-1].End:
		return After
	default:
		return Before
	}
}

// Count returns the number of selected frames.
func (f Frames) Count() uint64 {
	n := uint64(0)
	for _, s := range f.spans {
		n += s.Len()
	}
	return n
}

func (f Frames) String() string {
	parts := make([]string, len(f.spans))
	for i, s := range f.spans {
		if s.Len() == 1 {
			parts[i] = strconv.FormatUint(s.Start, 10)
		} else {
			parts[i] = fmt.Sprintf("%d-%d", s.Start, s.End-1)
		}
	}
	return strings.Join(parts, ",")
}

// Set parses s into f, so Frames can be used as a command line flag.
func (f *Frames) Set(s string) error {
	v, err := ParseFrames(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
