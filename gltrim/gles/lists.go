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

package gles

import (
	"encoding/binary"
	"math"

	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/object"
	"github.com/pkg/errors"
)

func (t *Tracker) genLists(c *call) error {
	base, n := c.a.Result(), c.a.Uint(0)
	tc := c.trace()
	for i := uint64(0); i < n; i++ {
		t.lists.Generate(base+i, tc)
	}
	return nil
}

// newList starts compiling a display list. The calls compiled into it
// replace its previous contents.
func (t *Tracker) newList(c *call) error {
	if t.compiling != nil {
		return errors.Wrap(api.ErrMalformedCall, "glNewList inside glNewList")
	}
	name, mode := c.a.Uint(0), c.a.Enum(1)
	o := t.lists.Get(name)
	if o == nil {
		o = t.lists.Generate(name, nil)
	}
	o.ResetData()
	o.AddData(c.trace())
	t.compiling, t.compileMode = o, mode
	return nil
}

func (t *Tracker) endList(c *call) error {
	if t.compiling == nil {
		return errors.Wrap(api.ErrMalformedCall, "glEndList without glNewList")
	}
	t.compiling.AddData(c.trace())
	t.compiling = nil
	return nil
}

func (t *Tracker) callList(c *call) error {
	o, err := t.lists.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	t.draw([]*object.Object{o}, c.trace())
	return nil
}

// callLists executes several display lists. Names that do not refer to a
// list are skipped, like GL does.
func (t *Tracker) callLists(c *call) error {
	lists, err := t.referencedLists(c)
	if err != nil {
		return err
	}
	t.draw(lists, c.trace())
	return nil
}

// referencedLists returns the live display lists a glCallList or
// glCallLists call executes.
func (t *Tracker) referencedLists(c *call) ([]*object.Object, error) {
	var names []int64
	if c.e.kind == kindCallList {
		names = []int64{int64(c.a.Uint(0))}
	} else if v := c.a.Value(2); v.Kind == api.Blob {
		var err error
		if names, err = listNames(c.a.Enum(1), v.Blob, c.a.Uint(0)); err != nil {
			return nil, err
		}
	} else {
		for _, n := range c.a.Uints(2) {
			names = append(names, int64(n))
		}
	}
	out := []*object.Object{}
	for _, n := range names {
		if c.e.kind == kindCallLists {
			n += int64(t.listBase)
		}
		if n <= 0 {
			continue
		}
		if o := t.lists.Get(uint64(n)); o != nil {
			out = append(out, o)
		}
	}
	return out, nil
}

// listNames decodes at most n list names of the given type from the client
// memory of a glCallLists call. GL_2_BYTES and the like are big endian and
// the plain integer types little endian.
func listNames(typ uint32, data []byte, n uint64) ([]int64, error) {
	var size int
	var decode func(b []byte) int64
	switch typ {
	case GL_BYTE:
		size, decode = 1, func(b []byte) int64 { return int64(int8(b[0])) }
	case GL_UNSIGNED_BYTE:
		size, decode = 1, func(b []byte) int64 { return int64(b[0]) }
	case GL_SHORT:
		size, decode = 2, func(b []byte) int64 { return int64(int16(binary.LittleEndian.Uint16(b))) }
	case GL_UNSIGNED_SHORT:
		size, decode = 2, func(b []byte) int64 { return int64(binary.LittleEndian.Uint16(b)) }
	case GL_INT:
		size, decode = 4, func(b []byte) int64 { return int64(int32(binary.LittleEndian.Uint32(b))) }
	case GL_UNSIGNED_INT:
		size, decode = 4, func(b []byte) int64 { return int64(binary.LittleEndian.Uint32(b)) }
	case GL_FLOAT:
		size, decode = 4, func(b []byte) int64 { return int64(math.Float32frombits(binary.LittleEndian.Uint32(b))) }
	case GL_2_BYTES, GL_3_BYTES, GL_4_BYTES:
		size = int(typ-GL_2_BYTES) + 2
		decode = func(b []byte) int64 {
			v := int64(0)
			for _, x := range b {
				v = v<<8 | int64(x)
			}
			return v
		}
	default:
		return nil, errors.Wrapf(api.ErrUnsupportedTarget, "glCallLists type 0x%x", typ)
	}
	out := []int64{}
	for i := 0; i+size <= len(data) && uint64(len(out)) < n; i += size {
		out = append(out, decode(data[i:i+size]))
	}
	return out, nil
}

func (t *Tracker) setListBase(c *call) error {
	t.listBase = c.a.Uint(0)
	t.global.SetState(c.trace())
	return nil
}

func (t *Tracker) deleteLists(c *call) error {
	first, n := c.a.Uint(0), c.a.Uint(1)
	names := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		names = append(names, first+i)
	}
	t.deleteNames(t.lists, c, names)
	return nil
}
