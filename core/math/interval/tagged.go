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

package interval

import "sort"

// TaggedSpan is a span with an associated tag.
type TaggedSpan[T any] struct {
	Span U64Span
	Tag  T
}

// TaggedList is an ordered list of non-overlapping, non-empty tagged spans.
// The zero value is an empty list ready for use.
type TaggedList[T any] struct {
	spans []TaggedSpan[T]
}

// intersection holds the index range of the list entries that overlap a span,
// and whether the first and last of them stick out past it.
type intersection struct {
	low, high      int // entries [low, high) overlap the span
	intersectsLow  bool
	intersectsHigh bool
}

func (l *TaggedList[T]) intersect(span U64Span) intersection {
	s := intersection{}
	s.low = sort.Search(len(l.spans), func(i int) bool {
		return span.Start < l.spans[i].Span.End
	})
	s.high = s.low + sort.Search(len(l.spans)-s.low, func(i int) bool {
		return span.End <= l.spans[s.low+i].Span.Start
	})
	if s.high > s.low {
		s.intersectsLow = l.spans[s.low].Span.Start < span.Start
		s.intersectsHigh = span.End < l.spans[s.high-1].Span.End
	}
	return s
}

// Assign makes tag the owner of every value in span.
// Existing entries that overlap span are clipped, and an entry that strictly
// contains span is split in two, both halves keeping their original tag.
// Assigning an empty span leaves the list unchanged.
func (l *TaggedList[T]) Assign(span U64Span, tag T) {
	if span.Empty() {
		return
	}
	l.cut(span, &TaggedSpan[T]{Span: span, Tag: tag})
}

// Remove cuts span out of the list without assigning a new owner.
func (l *TaggedList[T]) Remove(span U64Span) {
	if span.Empty() {
		return
	}
	l.cut(span, nil)
}

func (l *TaggedList[T]) cut(span U64Span, add *TaggedSpan[T]) {
	s := l.intersect(span)
	replacement := make([]TaggedSpan[T], 0, 3)
	if s.intersectsLow {
		left := l.spans[s.low]
		left.Span.End = span.Start
		replacement = append(replacement, left)
	}
	if add != nil {
		replacement = append(replacement, *add)
	}
	if s.intersectsHigh {
		right := l.spans[s.high-1]
		right.Span.Start = span.End
		replacement = append(replacement, right)
	}
	tail := append([]TaggedSpan[T]{}, l.spans[s.high:]...)
	l.spans = append(append(l.spans[:s.low], replacement...), tail...)
}

// Clear removes every entry.
func (l *TaggedList[T]) Clear() { l.spans = l.spans[:0] }

// Len returns the number of entries in the list.
func (l *TaggedList[T]) Len() int { return len(l.spans) }

// At returns the entry at index i.
func (l *TaggedList[T]) At(i int) TaggedSpan[T] { return l.spans[i] }

// Spans returns a copy of the entries in ascending order.
func (l *TaggedList[T]) Spans() []TaggedSpan[T] {
	return append([]TaggedSpan[T]{}, l.spans...)
}

// IndexOf returns the index of the entry holding v, or -1.
func (l *TaggedList[T]) IndexOf(v uint64) int {
	i := sort.Search(len(l.spans), func(i int) bool { return v < l.spans[i].Span.End })
	if i < len(l.spans) && l.spans[i].Span.Contains(v) {
		return i
	}
	return -1
}

// Intersecting returns the entries that overlap span, clipped to it.
func (l *TaggedList[T]) Intersecting(span U64Span) []TaggedSpan[T] {
	s := l.intersect(span)
	out := make([]TaggedSpan[T], 0, s.high-s.low)
	for _, e := range l.spans[s.low:s.high] {
		e.Span, _ = e.Span.Intersect(span)
		out = append(out, e)
	}
	return out
}

// Each calls f for every entry in ascending order.
func (l *TaggedList[T]) Each(f func(TaggedSpan[T])) {
	for _, e := range l.spans {
		f(e)
	}
}
