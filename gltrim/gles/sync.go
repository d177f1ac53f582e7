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

import "github.com/google/frametrim/gltrim/object"

func (t *Tracker) fenceSync(c *call) error {
	t.syncs.Generate(c.a.Result(), c.trace())
	return nil
}

// waitSync records a wait on a fence. Inside a retained frame the wait is
// kept together with the fence.
func (t *Tracker) waitSync(c *call) error {
	o, err := t.syncs.Lookup(c.a.Uint(0))
	if err != nil {
		return err
	}
	tc := c.trace()
	if t.recording {
		t.required.Insert(tc)
		object.NewEmitter(t.required).Emit(o)
		return nil
	}
	o.AddData(tc)
	return nil
}

func (t *Tracker) deleteSync(c *call) error {
	t.deleteNames(t.syncs, c, []uint64{c.a.Uint(0)})
	return nil
}
