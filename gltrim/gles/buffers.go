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
	"github.com/google/frametrim/gltrim/callset"
	"github.com/google/frametrim/gltrim/object"
)

// boundBuffer returns the buffer bound to target and its bind point.
func (t *Tracker) boundBuffer(target uint32) (*object.Object, uint64, error) {
	point, err := bufferPoint(target)
	if err != nil {
		return nil, 0, err
	}
	o := t.buffers.BoundTo(point)
	if o == nil {
		return nil, point, missing("no buffer bound to 0x%x", target)
	}
	return o, point, nil
}

// bufferBoundTo returns the buffer bound to target, if any, and the call
// that bound it.
func (t *Tracker) bufferBoundTo(target uint32) (*object.Object, *callset.TraceCall) {
	point, err := bufferPoint(target)
	if err != nil {
		return nil, nil
	}
	return t.buffers.BoundTo(point), t.buffers.BindCall(point)
}

func (t *Tracker) genBuffers(c *call) error {
	t.generate(t.buffers, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindBuffer(c *call) error {
	target := c.a.Enum(0)
	point, err := bufferPoint(target)
	if err != nil {
		return err
	}
	tc := c.trace()
	o, err := t.buffers.Bind(point, c.a.Uint(1), tc)
	if err != nil {
		return err
	}
	if o != nil {
		o.Store().Bind(tc)
	}
	if target == GL_ELEMENT_ARRAY_BUFFER {
		t.vertexArray().Attach(elementArraySlot, o, tc, 0, 0)
	}
	return nil
}

// bindBufferBase handles glBindBufferBase and glBindBufferRange. Both bind
// the indexed and the generic binding of the target.
func (t *Tracker) bindBufferBase(c *call) error {
	target, index, name := c.a.Enum(0), c.a.Uint32(1), c.a.Uint(2)
	point, err := indexedBufferPoint(target, index)
	if err != nil {
		return err
	}
	generic, err := bufferPoint(target)
	if err != nil {
		return err
	}
	tc := c.trace()
	o, err := t.buffers.Bind(point, name, tc)
	if err != nil {
		return err
	}
	if _, err := t.buffers.Bind(generic, name, tc); err != nil {
		return err
	}
	if o != nil {
		o.Store().Bind(tc)
	}
	return nil
}

func (t *Tracker) bufferData(c *call) error {
	o, point, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	o.Store().Data(c.trace().Requires(t.buffers.BindCall(point)), c.a.Uint(1))
	return nil
}

func (t *Tracker) namedBufferData(c *call) error {
	o, err := t.buffers.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	o.Store().Data(c.trace(), c.a.Uint(1))
	return nil
}

// bufferSubData does not require the bind call directly. The buffer keeps
// the bind calls its writes need.
func (t *Tracker) bufferSubData(c *call) error {
	o, _, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	o.Store().AppendData(c.trace(), c.a.Uint(1), c.a.Uint(2))
	return nil
}

func (t *Tracker) namedBufferSubData(c *call) error {
	o, err := t.buffers.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	o.Store().AppendData(c.trace(), c.a.Uint(1), c.a.Uint(2))
	return nil
}

func (t *Tracker) mapBuffer(c *call) error {
	o, point, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	tc := c.trace().Requires(t.buffers.BindCall(point))
	o.Store().Map(tc, c.a.Result(), o.Store().Size(), 0, false)
	t.mapped[o] = true
	return nil
}

func (t *Tracker) mapBufferRange(c *call) error {
	o, point, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	tc := c.trace().Requires(t.buffers.BindCall(point))
	persistent := c.a.Uint32(3)&GL_MAP_PERSISTENT_BIT != 0
	o.Store().Map(tc, c.a.Result(), c.a.Uint(2), c.a.Uint(1), persistent)
	t.mapped[o] = true
	return nil
}

func (t *Tracker) mapNamedBufferRange(c *call) error {
	o, err := t.buffers.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	persistent := c.a.Uint32(3)&GL_MAP_PERSISTENT_BIT != 0
	o.Store().Map(c.trace(), c.a.Result(), c.a.Uint(2), c.a.Uint(1), persistent)
	t.mapped[o] = true
	return nil
}

func (t *Tracker) unmapBuffer(c *call) error {
	o, point, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	delete(t.mapped, o)
	return o.Store().Unmap(c.trace().Requires(t.buffers.BindCall(point)))
}

func (t *Tracker) unmapNamedBuffer(c *call) error {
	o, err := t.buffers.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	delete(t.mapped, o)
	return o.Store().Unmap(c.trace())
}

func (t *Tracker) flushMappedBufferRange(c *call) error {
	o, point, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	return o.Store().Flush(c.trace().Requires(t.buffers.BindCall(point)))
}

// copyBufferSubData writes a range of the write target and keeps a snapshot
// of the read target.
func (t *Tracker) copyBufferSubData(c *call) error {
	src, srcPoint, err := t.boundBuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	dst, _, err := t.boundBuffer(c.a.Enum(1))
	if err != nil {
		return err
	}
	tc := c.trace().Requires(t.buffers.BindCall(srcPoint))
	dst.Store().AppendData(tc, c.a.Uint(3), c.a.Uint(4))
	dst.PassStateCache(src)
	return nil
}

func (t *Tracker) deleteBuffers(c *call) error {
	t.deleteNames(t.buffers, c, c.a.Uints(1))
	return nil
}

// memcpy records a client memory copy into the buffer mapped at the
// destination address. Copies to other memory are ignored.
func (t *Tracker) memcpy(c *call) error {
	dst, size := c.a.Uint(0), c.a.Uint(2)
	tc := c.trace()
	for o := range t.mapped {
		if o.Store().Memcopy(tc, dst, size) {
			return nil
		}
	}
	return nil
}
