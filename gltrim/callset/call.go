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

// Package callset holds the trace call references the trimmer passes around
// and the deduplicating set that collects them.
package callset

import (
	"fmt"

	"github.com/google/frametrim/gltrim/api"
)

// TraceCall refers to one record of the input trace.
// It is shared by every tracker that needs the call and must not be modified
// once it has been handed out.
type TraceCall struct {
	// ID is the index of the record in the trace.
	ID api.CallID
	// Name is the entry point name.
	Name string
	// Key identifies the state the call sets. Two calls with the same key
	// overwrite each other.
	Key string
	// Required, when not nil, must be replayed whenever this call is.
	Required *TraceCall
}

// New returns a TraceCall for c keyed by its name and the arguments at the
// given indices.
func New(c api.Call, keyArgs ...int) *TraceCall {
	key := c.Name()
	args := c.Args()
	for _, i := range keyArgs {
		if i < len(args) {
			key += "_" + args[i].String()
		}
	}
	return &TraceCall{ID: c.ID(), Name: c.Name(), Key: key}
}

// Keyed returns a TraceCall for c with an explicit key.
func Keyed(c api.Call, key string) *TraceCall {
	return &TraceCall{ID: c.ID(), Name: c.Name(), Key: key}
}

// Requires sets the call that must be replayed before this one.
// It must only be used while the call is being built.
func (c *TraceCall) Requires(r *TraceCall) *TraceCall {
	if r != nil && r != c && r.ID != c.ID {
		c.Required = r
	}
	return c
}

func (c *TraceCall) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v %s", c.ID, c.Name)
}
