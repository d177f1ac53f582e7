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

	"github.com/google/frametrim/gltrim/callset"
)

// LevelKey identifies one image of a texture: a cube face or array layer
// group and a mipmap level.
func LevelKey(face, level int) uint64 { return uint64(face)<<16 | uint64(level) }

type level struct {
	image  *callset.TraceCall
	subs   []*callset.TraceCall
	width  int
	height int
}

// Levels tracks the calls that define each image of a texture.
type Levels struct {
	owner   *Object
	storage *callset.TraceCall
	mipmap  *callset.TraceCall
	images  map[uint64]*level
}

func (l *Levels) get(key uint64) *level {
	lv, ok := l.images[key]
	if !ok {
		lv = &level{}
		l.images[key] = lv
	}
	return lv
}

// Storage records an immutable allocation of every level. Level 0 has the
// given size.
func (l *Levels) Storage(c *callset.TraceCall, width, height int) {
	l.storage = c
	l.mipmap = nil
	l.images = map[uint64]*level{}
	lv := l.get(LevelKey(0, 0))
	lv.width, lv.height = width, height
	l.owner.Width, l.owner.Height = width, height
	l.owner.touch()
}

// Image records a call that specifies the whole image at key.
func (l *Levels) Image(key uint64, c *callset.TraceCall, width, height int) {
	lv := l.get(key)
	lv.image = c
	lv.subs = nil
	lv.width, lv.height = width, height
	if key&0xffff == 0 {
		l.owner.Width, l.owner.Height = width, height
	}
	l.owner.touch()
}

// SubImage records a call that updates part of the image at key.
// An update covering the whole image replaces the earlier updates.
func (l *Levels) SubImage(key uint64, c *callset.TraceCall, x, y, width, height int) {
	lv := l.get(key)
	if x <= 0 && y <= 0 && width >= lv.width && height >= lv.height && lv.width > 0 {
		lv.subs = lv.subs[:0]
	}
	lv.subs = append(lv.subs, c)
	l.owner.touch()
}

// GenerateMipmap records a call that derives every level above the base
// level from it.
func (l *Levels) GenerateMipmap(c *callset.TraceCall) {
	for key := range l.images {
		if key&0xffff != 0 {
			delete(l.images, key)
		}
	}
	l.mipmap = c
	l.owner.touch()
}

// Size returns the dimensions of the image at key.
func (l *Levels) Size(key uint64) (int, int) {
	if lv, ok := l.images[key]; ok {
		return lv.width, lv.height
	}
	return 0, 0
}

// Calls returns the calls that define the image at key.
func (l *Levels) Calls(key uint64) []*callset.TraceCall {
	lv, ok := l.images[key]
	if !ok {
		return nil
	}
	out := []*callset.TraceCall{}
	if lv.image != nil {
		out = append(out, lv.image)
	}
	return append(out, lv.subs...)
}

// Keys returns the keys of the tracked images in ascending order.
func (l *Levels) Keys() []uint64 {
	keys := make([]uint64, 0, len(l.images))
	for k := range l.images {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (l *Levels) emitTo(out *callset.Set) {
	out.Insert(l.storage)
	out.Insert(l.mipmap)
	for _, lv := range l.images {
		out.Insert(lv.image)
		out.InsertAll(lv.subs...)
	}
}
