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
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/object"
	"github.com/pkg/errors"
)

// texturePoint returns the bind point of target on the active unit and the
// cube face the target addresses.
func (t *Tracker) texturePoint(target uint32) (uint64, int, error) {
	tt, face, err := textureTarget(target)
	if err != nil {
		return 0, 0, err
	}
	return object.BindPoint(t.activeUnit, tt), face, nil
}

// boundTexture returns the texture bound to target on the active unit.
func (t *Tracker) boundTexture(target uint32) (*object.Object, uint64, int, error) {
	point, face, err := t.texturePoint(target)
	if err != nil {
		return nil, 0, 0, err
	}
	o := t.textures.BoundTo(point)
	if o == nil {
		return nil, point, face, missing("no texture bound to 0x%x on unit %d", target, t.activeUnit)
	}
	return o, point, face, nil
}

func (t *Tracker) genTextures(c *call) error {
	t.generate(t.textures, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) createTextures(c *call) error {
	t.generate(t.textures, c, c.a.Uints(2))
	return nil
}

func (t *Tracker) activeTexture(c *call) error {
	unit := c.a.Enum(0)
	if unit < GL_TEXTURE0 {
		return errors.Wrapf(api.ErrUnsupportedTarget, "texture unit 0x%x", unit)
	}
	tc := c.trace()
	t.activeUnit = unit - GL_TEXTURE0
	t.activeTextureCall = tc
	t.global.SetState(tc)
	return nil
}

func (t *Tracker) bindTexture(c *call) error {
	point, _, err := t.texturePoint(c.a.Enum(0))
	if err != nil {
		return err
	}
	_, err = t.textures.Bind(point, c.a.Uint(1), c.trace().Requires(t.activeTextureCall))
	return err
}

// texImage handles the glTexImage and glCompressedTexImage calls. The entry
// argument holds the number of dimensions.
func (t *Tracker) texImage(c *call) error {
	o, point, face, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	w, h := int(c.a.Int(3)), 1
	if c.e.arg >= 2 {
		h = int(c.a.Int(4))
	}
	tc := c.trace().Requires(t.textures.BindCall(point))
	o.Levels().Image(object.LevelKey(face, int(c.a.Int(1))), tc, w, h)
	if buf, _ := t.bufferBoundTo(GL_PIXEL_UNPACK_BUFFER); buf != nil {
		o.PassStateCache(buf)
	}
	return nil
}

// texSubImage handles the glTexSubImage and glCompressedTexSubImage calls.
// Updates of 3D images never replace earlier ones.
func (t *Tracker) texSubImage(c *call) error {
	o, point, face, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	var x, y, w, h int
	switch c.e.arg {
	case 1:
		x, w, h = int(c.a.Int(2)), int(c.a.Int(3)), 1
	case 2:
		x, y, w, h = int(c.a.Int(2)), int(c.a.Int(3)), int(c.a.Int(4)), int(c.a.Int(5))
	}
	tc := c.trace().Requires(t.textures.BindCall(point))
	o.Levels().SubImage(object.LevelKey(face, int(c.a.Int(1))), tc, x, y, w, h)
	if buf, _ := t.bufferBoundTo(GL_PIXEL_UNPACK_BUFFER); buf != nil {
		o.PassStateCache(buf)
	}
	return nil
}

func (t *Tracker) texStorage(c *call) error {
	o, point, _, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	w, h := int(c.a.Int(3)), 1
	if c.e.arg >= 2 {
		h = int(c.a.Int(4))
	}
	o.Levels().Storage(c.trace().Requires(t.textures.BindCall(point)), w, h)
	return nil
}

func (t *Tracker) texParameter(c *call) error {
	o, point, _, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	o.SetState(c.state().Requires(t.textures.BindCall(point)))
	return nil
}

func (t *Tracker) generateMipmap(c *call) error {
	o, point, _, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	o.Levels().GenerateMipmap(c.trace().Requires(t.textures.BindCall(point)))
	return nil
}

// copyTexImage specifies an image from the read framebuffer.
func (t *Tracker) copyTexImage(c *call) error {
	o, point, face, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	w, h := int(c.a.Int(5)), 1
	if c.e.arg >= 2 {
		h = int(c.a.Int(6))
	}
	tc := c.trace().Requires(t.textures.BindCall(point))
	o.Levels().Image(object.LevelKey(face, int(c.a.Int(1))), tc, w, h)
	o.PassStateCache(t.readFramebuffer())
	return nil
}

// copyTexSubImage updates an image from the read framebuffer.
func (t *Tracker) copyTexSubImage(c *call) error {
	o, point, face, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	var x, y, w, h int
	switch c.e.arg {
	case 1:
		x, w, h = int(c.a.Int(2)), int(c.a.Int(5)), 1
	case 2:
		x, y, w, h = int(c.a.Int(2)), int(c.a.Int(3)), int(c.a.Int(6)), int(c.a.Int(7))
	}
	tc := c.trace().Requires(t.textures.BindCall(point))
	o.Levels().SubImage(object.LevelKey(face, int(c.a.Int(1))), tc, x, y, w, h)
	o.PassStateCache(t.readFramebuffer())
	return nil
}

func (t *Tracker) texBuffer(c *call) error {
	o, point, _, err := t.boundTexture(c.a.Enum(0))
	if err != nil {
		return err
	}
	buf, err := lookup(t.buffers, c.a.Uint(2))
	if err != nil {
		return err
	}
	o.SetState(c.trace().Requires(t.textures.BindCall(point)))
	o.AddDependency(buf)
	return nil
}

func (t *Tracker) deleteTextures(c *call) error {
	t.deleteNames(t.textures, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) genSamplers(c *call) error {
	t.generate(t.samplers, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindSampler(c *call) error {
	_, err := t.samplers.Bind(object.BindPoint(c.a.Uint32(0), 0), c.a.Uint(1), c.trace())
	return err
}

func (t *Tracker) samplerParameter(c *call) error {
	o, err := t.samplers.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	o.SetState(c.state())
	return nil
}

func (t *Tracker) deleteSamplers(c *call) error {
	t.deleteNames(t.samplers, c, c.a.Uints(1))
	return nil
}
