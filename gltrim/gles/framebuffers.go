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

// boundFramebuffer returns the framebuffer object bound to target. The
// window surface cannot be modified and is never returned.
func (t *Tracker) boundFramebuffer(target uint32) (*object.Object, uint64, error) {
	points, err := framebufferPoints(target)
	if err != nil {
		return nil, 0, err
	}
	fb := t.framebuffers.BoundTo(points[0])
	if fb == nil || fb == t.framebuffers.Default() {
		return nil, points[0], missing("no framebuffer object bound to 0x%x", target)
	}
	return fb, points[0], nil
}

func (t *Tracker) genFramebuffers(c *call) error {
	t.generate(t.framebuffers, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindFramebuffer(c *call) error {
	points, err := framebufferPoints(c.a.Enum(0))
	if err != nil {
		return err
	}
	name := c.a.Uint(1)
	tc := c.trace()
	for _, p := range points {
		if _, err := t.framebuffers.Bind(p, name, tc); err != nil {
			return err
		}
	}
	return nil
}

// framebufferTexture handles the texture attachment calls. The entry
// argument selects the argument layout:
//
//	0: target, attachment, texture, level
//	1: target, attachment, textarget, texture, level
//	3: target, attachment, textarget, texture, level, zoffset
//	4: target, attachment, texture, level, layer
func (t *Tracker) framebufferTexture(c *call) error {
	fb, point, err := t.boundFramebuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	var name uint64
	var level, layer int
	switch c.e.arg {
	case 0:
		name, level = c.a.Uint(2), int(c.a.Int(3))
	case 1:
		if _, layer, err = textureTarget(c.a.Enum(2)); err != nil {
			return err
		}
		name, level = c.a.Uint(3), int(c.a.Int(4))
	case 3:
		name, level, layer = c.a.Uint(3), int(c.a.Int(4)), int(c.a.Int(5))
	case 4:
		name, level, layer = c.a.Uint(2), int(c.a.Int(3)), int(c.a.Int(4))
	}
	tex, err := lookup(t.textures, name)
	if err != nil {
		return err
	}
	tc := c.trace().Requires(t.framebuffers.BindCall(point))
	return t.attach(fb, c.a.Enum(1), tex, tc, level, layer)
}

func (t *Tracker) framebufferRenderbuffer(c *call) error {
	fb, point, err := t.boundFramebuffer(c.a.Enum(0))
	if err != nil {
		return err
	}
	rb, err := lookup(t.renderbuffers, c.a.Uint(3))
	if err != nil {
		return err
	}
	tc := c.trace().Requires(t.framebuffers.BindCall(point))
	return t.attach(fb, c.a.Enum(1), rb, tc, 0, 0)
}

// attach places obj at an attachment point of fb. The attached object
// records fb as the framebuffer that renders into it.
func (t *Tracker) attach(fb *object.Object, attachment uint32, obj *object.Object, tc *callset.TraceCall, level, layer int) error {
	if _, err := attachmentBits(attachment); err != nil {
		return err
	}
	fb.Attach(uint64(attachment), obj, tc, level, layer)
	if obj != nil {
		obj.SetDrawnBy(fb)
	}
	return nil
}

func (t *Tracker) genRenderbuffers(c *call) error {
	t.generate(t.renderbuffers, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindRenderbuffer(c *call) error {
	_, err := t.renderbuffers.Bind(0, c.a.Uint(1), c.trace())
	return err
}

// renderbufferStorage allocates the bound renderbuffer. The entry argument
// is 1 for the multisample variant.
func (t *Tracker) renderbufferStorage(c *call) error {
	rb := t.renderbuffers.BoundTo(0)
	if rb == nil {
		return missing("no renderbuffer bound")
	}
	i := 2 + int(c.e.arg)
	rb.ResetData()
	rb.AddData(c.trace().Requires(t.renderbuffers.BindCall(0)))
	rb.Width, rb.Height = int(c.a.Int(i)), int(c.a.Int(i+1))
	return nil
}

func (t *Tracker) drawBuffer(c *call) error {
	tc := c.trace()
	if t.policy.DrawBufferRequiresBind {
		tc.Requires(t.framebuffers.BindCall(drawFramebuffer))
	}
	t.drawFramebuffer().SetState(tc)
	return nil
}

func (t *Tracker) readBuffer(c *call) error {
	tc := c.trace()
	if t.policy.DrawBufferRequiresBind {
		tc.Requires(t.framebuffers.BindCall(readFramebuffer))
	}
	t.readFramebuffer().SetState(tc)
	return nil
}

// blitFramebuffer copies from the read to the draw framebuffer. A blit of
// every attachment over the whole destination drops what was drawn into it
// before.
func (t *Tracker) blitFramebuffer(c *call) error {
	dst, src := t.drawFramebuffer(), t.readFramebuffer()
	x0, y0, x1, y1 := c.a.Int(4), c.a.Int(5), c.a.Int(6), c.a.Int(7)
	mask := c.a.Uint32(8)
	w, h := t.framebufferSize(dst)
	need := t.attachmentMask(dst)
	if src != dst && w > 0 && h > 0 && mask&need == need &&
		min(x0, x1) <= 0 && min(y0, y1) <= 0 && max(x0, x1) >= int64(w) && max(y0, y1) >= int64(h) {
		dst.ResetData()
	}
	tc := c.trace()
	dst.AddData(tc)
	if t.recording {
		t.required.Insert(tc)
		e := object.NewEmitter(t.required)
		t.framebuffers.EmitBound(e)
		e.Emit(t.global)
		return nil
	}
	dst.PassStateCache(src)
	dst.PassStateCache(t.global)
	return nil
}

func (t *Tracker) clearCall(c *call) error {
	t.clear(c.trace(), c.a.Uint32(0))
	return nil
}

// clearBuffer clears one buffer of the draw framebuffer. Clearing one of
// several color attachments never counts as a full clear.
func (t *Tracker) clearBuffer(c *call) error {
	bits, err := clearBufferBits(c.a.Enum(0))
	if err != nil {
		return err
	}
	if bits == GL_COLOR_BUFFER_BIT && t.colorAttachments(t.drawFramebuffer()) > 1 {
		bits = 0
	}
	t.clear(c.trace(), bits)
	return nil
}

func (t *Tracker) colorAttachments(fb *object.Object) int {
	n := 0
	for _, p := range fb.SlotPoints() {
		if p >= GL_COLOR_ATTACHMENT0 && p <= GL_COLOR_ATTACHMENT31 && fb.Slot(p).Object != nil {
			n++
		}
	}
	return n
}

// readPixels reads from the read framebuffer. It only has an effect on the
// trace when it writes to a pixel pack buffer or is part of a retained
// frame.
func (t *Tracker) readPixels(c *call) error {
	tc := c.trace()
	src := t.readFramebuffer()
	if buf, bind := t.bufferBoundTo(GL_PIXEL_PACK_BUFFER); buf != nil {
		tc.Requires(bind)
		buf.AddData(tc)
		buf.PassStateCache(src)
	}
	if t.recording {
		t.required.Insert(tc)
		e := object.NewEmitter(t.required)
		t.framebuffers.EmitBound(e)
		e.Emit(t.global)
	}
	return nil
}

func (t *Tracker) deleteFramebuffers(c *call) error {
	t.deleteNames(t.framebuffers, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) deleteRenderbuffers(c *call) error {
	t.deleteNames(t.renderbuffers, c, c.a.Uints(1))
	return nil
}
