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
	"fmt"

	"github.com/google/frametrim/gltrim/api"
	"github.com/pkg/errors"
)

// bindSlot marks the vertex array slot that holds the buffer bind call of a
// pointer slot.
const bindSlot = uint64(1) << 62

func (t *Tracker) genVertexArrays(c *call) error {
	t.generate(t.vertexArrays, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindVertexArray(c *call) error {
	_, err := t.vertexArrays.Bind(0, c.a.Uint(0), c.trace())
	return err
}

// vertexAttribPointer attaches the buffer bound to GL_ARRAY_BUFFER, or only
// the call for client memory, to an attribute of the current vertex array.
func (t *Tracker) vertexAttribPointer(c *call) error {
	buf, bind := t.bufferBoundTo(GL_ARRAY_BUFFER)
	tc := c.trace()
	if buf != nil {
		tc.Requires(bind)
	}
	t.vertexArray().Attach(uint64(c.a.Uint32(0)), buf, tc, 0, 0)
	return nil
}

func (t *Tracker) vertexAttribArray(c *call) error {
	t.vertexArray().SetState(c.state())
	return nil
}

func (t *Tracker) vertexAttribDivisor(c *call) error {
	t.vertexArray().SetState(c.state())
	return nil
}

func (t *Tracker) vertexAttrib(c *call) error {
	tc := c.state()
	if t.inBegin {
		t.immediate = append(t.immediate, tc)
	}
	t.global.SetState(tc)
	return nil
}

// clientPointer handles the fixed function array pointers. The entry
// argument is the array the call sets. Texture coordinate arrays are per
// client texture unit.
func (t *Tracker) clientPointer(c *call) error {
	array := c.e.arg
	unit := uint32(0)
	tc := c.trace()
	if array == GL_TEXTURE_COORD_ARRAY {
		unit = t.clientUnit
		tc.Requires(t.clientTextureCall)
	}
	slot := clientSlot(array, unit)
	va := t.vertexArray()
	buf, bind := t.bufferBoundTo(GL_ARRAY_BUFFER)
	va.Attach(slot, buf, tc, 0, 0)
	if buf != nil {
		va.Attach(slot|bindSlot, nil, bind, 0, 0)
	} else {
		va.Attach(slot|bindSlot, nil, nil, 0, 0)
	}
	return nil
}

func (t *Tracker) clientActiveTexture(c *call) error {
	unit := c.a.Enum(0)
	if unit < GL_TEXTURE0 {
		return errors.Wrapf(api.ErrUnsupportedTarget, "texture unit 0x%x", unit)
	}
	tc := c.trace()
	t.clientUnit = unit - GL_TEXTURE0
	t.clientTextureCall = tc
	t.global.SetState(tc)
	return nil
}

// clientState enables or disables a fixed function array of the current
// vertex array.
func (t *Tracker) clientState(c *call) error {
	array := c.a.Enum(0)
	if array == GL_TEXTURE_COORD_ARRAY {
		key := fmt.Sprintf("clientState_%d_%d", array, t.clientUnit)
		t.vertexArray().SetState(c.keyed(key).Requires(t.clientTextureCall))
		return nil
	}
	t.vertexArray().SetState(c.keyed(fmt.Sprintf("clientState_%d", array)))
	return nil
}

func (t *Tracker) deleteVertexArrays(c *call) error {
	t.deleteNames(t.vertexArrays, c, c.a.Uints(1))
	return nil
}
