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
	"strings"

	"github.com/google/frametrim/gltrim/object"
)

func (t *Tracker) createShader(c *call) error {
	t.shaders.Generate(c.a.Result(), c.trace())
	return nil
}

// shaderState records glShaderSource and glCompileShader. A later call of
// the same kind replaces the earlier one.
func (t *Tracker) shaderState(c *call) error {
	o, err := t.shaders.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	o.SetState(c.trace())
	return nil
}

func (t *Tracker) createProgram(c *call) error {
	t.programs.Generate(c.a.Result(), c.trace())
	return nil
}

func (t *Tracker) attachShader(c *call) error {
	p, err := t.programs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	name := c.a.Uint(1)
	s, err := t.shaders.Lookup(name)
	if err != nil {
		return err
	}
	p.Attach(name, s, c.trace(), 0, 0)
	return nil
}

// detachShader keeps the detached shader in the state cache of the program,
// and the detach call with the program.
func (t *Tracker) detachShader(c *call) error {
	p, err := t.programs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	p.Attach(c.a.Uint(1), nil, nil, 0, 0)
	p.AddData(c.trace())
	return nil
}

func (t *Tracker) programState(c *call) error {
	p, err := t.programs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	p.SetState(c.state())
	return nil
}

// linkProgram snapshots the attached shaders as they are at link time and
// drops the uniform values set before.
func (t *Tracker) linkProgram(c *call) error {
	p, err := t.programs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	for _, point := range p.SlotPoints() {
		if s := p.Slot(point); s.Object != nil {
			p.PassStateCache(s.Object)
		}
	}
	p.ClearState(func(key string) bool { return strings.HasPrefix(key, "uniform_") })
	p.SetState(c.trace())
	return nil
}

func (t *Tracker) useProgram(c *call) error {
	_, err := t.programs.Bind(0, c.a.Uint(0), c.trace())
	return err
}

func (t *Tracker) uniform(c *call) error {
	p := t.programs.BoundTo(0)
	if p == nil {
		return missing("no program in use")
	}
	p.SetState(c.state().Requires(t.programs.BindCall(0)))
	return nil
}

func (t *Tracker) programUniform(c *call) error {
	p, err := t.programs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	p.SetState(c.state())
	return nil
}

func (t *Tracker) deleteShader(c *call) error {
	t.deleteNames(t.shaders, c, []uint64{c.a.Uint(0)})
	return nil
}

func (t *Tracker) deleteProgram(c *call) error {
	t.deleteNames(t.programs, c, []uint64{c.a.Uint(0)})
	return nil
}

// boundLegacyProgram returns the assembly program bound to target.
func (t *Tracker) boundLegacyProgram(target uint32) (*object.Object, uint64, error) {
	point, err := programPoint(target)
	if err != nil {
		return nil, 0, err
	}
	p := t.legacyPrograms.BoundTo(point)
	if p == nil {
		return nil, point, missing("no program bound to 0x%x", target)
	}
	return p, point, nil
}

func (t *Tracker) genProgramsARB(c *call) error {
	t.generate(t.legacyPrograms, c, c.a.Uints(1))
	return nil
}

func (t *Tracker) bindProgramARB(c *call) error {
	point, err := programPoint(c.a.Enum(0))
	if err != nil {
		return err
	}
	_, err = t.legacyPrograms.Bind(point, c.a.Uint(1), c.trace())
	return err
}

func (t *Tracker) programStringARB(c *call) error {
	p, point, err := t.boundLegacyProgram(c.a.Enum(0))
	if err != nil {
		return err
	}
	p.SetState(c.trace().Requires(t.legacyPrograms.BindCall(point)))
	return nil
}

func (t *Tracker) programLocalParameterARB(c *call) error {
	p, point, err := t.boundLegacyProgram(c.a.Enum(0))
	if err != nil {
		return err
	}
	p.SetState(c.state().Requires(t.legacyPrograms.BindCall(point)))
	return nil
}

func (t *Tracker) deleteProgramsARB(c *call) error {
	t.deleteNames(t.legacyPrograms, c, c.a.Uints(1))
	return nil
}
