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

package api

import "github.com/pkg/errors"

// Args decodes the arguments of a call, remembering the first failure.
//
//	a := api.ArgsOf(c)
//	target, name := a.Enum(0), a.Uint32(1)
//	if err := a.Err(); err != nil { ... }
type Args struct {
	call Call
	err  error
}

// ArgsOf returns an argument decoder for c.
func ArgsOf(c Call) *Args { return &Args{call: c} }

// Err returns the first decode failure, wrapped with the call index and name.
func (a *Args) Err() error { return a.err }

// Count returns the number of arguments.
func (a *Args) Count() int { return len(a.call.Args()) }

// Value returns argument i, or records a failure if it does not exist.
func (a *Args) Value(i int) Value {
	args := a.call.Args()
	if i < 0 || i >= len(args) {
		a.fail("missing argument %d", i)
		return Value{}
	}
	return args[i]
}

func (a *Args) fail(msg string, args ...interface{}) {
	if a.err != nil {
		return
	}
	a.err = errors.Wrapf(errors.Wrapf(ErrMalformedCall, msg, args...),
		"%v %s", a.call.ID(), a.call.Name())
}

// Uint returns argument i as an unsigned integer.
func (a *Args) Uint(i int) uint64 {
	v := a.Value(i)
	u, ok := v.AsUint()
	if !ok {
		a.fail("argument %d is %v, not an integer", i, v.Kind)
	}
	return u
}

// Uint32 returns argument i truncated to 32 bits.
func (a *Args) Uint32(i int) uint32 { return uint32(a.Uint(i)) }

// Enum returns argument i as a GL enum.
func (a *Args) Enum(i int) uint32 { return uint32(a.Uint(i)) }

// Int returns argument i as a signed integer.
func (a *Args) Int(i int) int64 {
	v := a.Value(i)
	s, ok := v.AsInt()
	if !ok {
		a.fail("argument %d is %v, not an integer", i, v.Kind)
	}
	return s
}

// Float returns argument i as a float.
func (a *Args) Float(i int) float64 {
	v := a.Value(i)
	f, ok := v.AsFloat()
	if !ok {
		a.fail("argument %d is %v, not a number", i, v.Kind)
	}
	return f
}

// String returns argument i as a string.
func (a *Args) String(i int) string {
	v := a.Value(i)
	switch v.Kind {
	case String, Enum:
		return v.Str
	case Blob:
		return string(v.Blob)
	default:
		return v.String()
	}
}

// Uints returns argument i as a list of unsigned integers.
// A scalar argument is returned as a list of one.
func (a *Args) Uints(i int) []uint64 {
	v := a.Value(i)
	switch v.Kind {
	case Array:
		out := make([]uint64, 0, len(v.Array))
		for j, e := range v.Array {
			u, ok := e.AsUint()
			if !ok {
				a.fail("argument %d element %d is %v, not an integer", i, j, e.Kind)
				return nil
			}
			out = append(out, u)
		}
		return out
	case Null:
		return nil
	default:
		u, ok := v.AsUint()
		if !ok {
			a.fail("argument %d is %v, not an array", i, v.Kind)
			return nil
		}
		return []uint64{u}
	}
}

// Result returns the return value as an unsigned integer.
func (a *Args) Result() uint64 {
	v, ok := a.call.Result()
	if !ok {
		a.fail("missing return value")
		return 0
	}
	u, ok := v.AsUint()
	if !ok {
		a.fail("return value is %v, not an integer", v.Kind)
	}
	return u
}
