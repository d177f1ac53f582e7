// Copyright (C) 2017 Google Inc.
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

// Package interval provides half open uint64 spans and an ordered,
// non-overlapping list of tagged spans.
package interval

import "fmt"

// U64Span is the base interval type understood by the algorithms in this package.
// It is a half open interval that includes the lower bound, but not the upper.
type U64Span struct {
	Start uint64 // the value at which the interval begins
	End   uint64 // the next value not included in the interval.
}

// Len returns the number of values in the span.
func (s U64Span) Len() uint64 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty returns true if the span holds no values.
func (s U64Span) Empty() bool { return s.End <= s.Start }

// Contains returns true if v lies within the span.
func (s U64Span) Contains(v uint64) bool { return s.Start <= v && v < s.End }

// Overlaps returns true if the two spans share at least one value.
func (s U64Span) Overlaps(o U64Span) bool { return s.Start < o.End && s.End > o.Start }

// Intersect returns the span of values held by both s and o.
func (s U64Span) Intersect(o U64Span) (U64Span, bool) {
	if !s.Overlaps(o) {
		return U64Span{}, false
	}
	r := s
	if o.Start > r.Start {
		r.Start = o.Start
	}
	if o.End < r.End {
		r.End = o.End
	}
	return r, true
}

func (s U64Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }
