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
	"github.com/pkg/errors"
)

func (t *Tracker) always(c *call) error {
	t.required.Insert(c.trace())
	return nil
}

func (t *Tracker) setState(c *call) error {
	tc := c.state()
	if t.inBegin {
		t.immediate = append(t.immediate, tc)
	}
	t.global.SetState(tc)
	return nil
}

func (t *Tracker) enable(c *call) error {
	if c.e.base == "enable" && c.a.Enum(0) == GL_SCISSOR_TEST {
		t.scissorTest = c.Name() == "glEnable"
	}
	t.global.SetState(c.state())
	return nil
}

// current sets a vertex attribute of the fixed function pipeline. Inside
// glBegin/glEnd it also belongs to the primitive being specified, and the
// value stays current after glEnd.
func (t *Tracker) current(c *call) error {
	return t.setState(c)
}

func (t *Tracker) vertex(c *call) error {
	if t.inBegin {
		t.immediate = append(t.immediate, c.trace())
	}
	return nil
}

func (t *Tracker) begin(c *call) error {
	if t.inBegin {
		return errors.Wrap(api.ErrMalformedCall, "glBegin inside glBegin")
	}
	t.inBegin = true
	t.immediate = append(t.immediate[:0], c.trace())
	return nil
}

func (t *Tracker) end(c *call) error {
	if !t.inBegin {
		return errors.Wrap(api.ErrMalformedCall, "glEnd without glBegin")
	}
	calls := append(t.immediate, c.trace())
	t.immediate = nil
	t.inBegin = false
	t.draw(nil, calls...)
	return nil
}

func (t *Tracker) drawCall(c *call) error {
	t.draw(nil, c.trace())
	return nil
}

func (t *Tracker) setViewport(c *call) error {
	t.viewport = rect{c.a.Int(0), c.a.Int(1), c.a.Int(2), c.a.Int(3)}
	t.global.SetState(c.trace())
	if fb := t.drawFramebuffer(); fb == t.framebuffers.Default() && fb.Width == 0 && fb.Height == 0 {
		fb.Width, fb.Height = int(t.viewport.w), int(t.viewport.h)
	}
	return nil
}

func (t *Tracker) setScissor(c *call) error {
	t.scissor = rect{c.a.Int(0), c.a.Int(1), c.a.Int(2), c.a.Int(3)}
	t.global.SetState(c.trace())
	return nil
}
