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

// Package api describes the call records the trimmer consumes.
package api

import (
	"fmt"
	"strings"
)

// Call is the read-only view of one trace record.
type Call interface {
	// ID returns the index of the call in the trace.
	ID() CallID
	// Name returns the entry point name, for example glBindBuffer.
	Name() string
	// Args returns the positional arguments.
	Args() []Value
	// Result returns the return value, if the call has one.
	Result() (Value, bool)
	// Flags returns the characteristics of the call.
	Flags() Flags
}

// Record is the concrete Call decoded from a trace container.
type Record struct {
	Index     CallID
	Call      string
	Arguments []Value
	Return    *Value
	Bits      Flags
}

var _ Call = (*Record)(nil)

// NewRecord returns a record with the given index, name and arguments.
func NewRecord(id CallID, name string, args ...Value) *Record {
	return &Record{Index: id, Call: name, Arguments: args}
}

// Returning sets the return value of the record.
func (r *Record) Returning(v Value) *Record {
	r.Return = &v
	return r
}

// WithFlags adds flags to the record.
func (r *Record) WithFlags(f Flags) *Record {
	r.Bits |= f
	return r
}

func (r *Record) ID() CallID    { return r.Index }
func (r *Record) Name() string  { return r.Call }
func (r *Record) Args() []Value { return r.Arguments }
func (r *Record) Flags() Flags  { return r.Bits }

func (r *Record) Result() (Value, bool) {
	if r.Return == nil {
		return Value{}, false
	}
	return *r.Return, true
}

func (r *Record) String() string {
	parts := make([]string, len(r.Arguments))
	for i, a := range r.Arguments {
		parts[i] = a.String()
	}
	s := fmt.Sprintf("%v %s(%s)", r.Index, r.Call, strings.Join(parts, ", "))
	if r.Return != nil {
		s += " = " + r.Return.String()
	}
	return s
}
