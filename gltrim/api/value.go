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

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Unsigned
	Signed
	Float
	Array
	Blob
	Pointer
	Enum
	String
)

var kindNames = [...]string{"null", "uint", "sint", "float", "array", "blob", "pointer", "enum", "string"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a single typed argument or return value of a call.
// Enum values carry both the numeric value in U and the symbolic name in Str.
type Value struct {
	Kind  Kind
	U     uint64
	S     int64
	F     float64
	Array []Value
	Blob  []byte
	Str   string
}

// Uint returns an unsigned value.
func Uint(v uint64) Value { return Value{Kind: Unsigned, U: v} }

// Int returns a signed value.
func Int(v int64) Value { return Value{Kind: Signed, S: v} }

// Real returns a floating point value.
func Real(v float64) Value { return Value{Kind: Float, F: v} }

// Ptr returns a pointer value.
func Ptr(v uint64) Value { return Value{Kind: Pointer, U: v} }

// GLenum returns an enum value with its symbolic name.
func GLenum(v uint32, name string) Value { return Value{Kind: Enum, U: uint64(v), Str: name} }

// Str returns a string value.
func Str(v string) Value { return Value{Kind: String, Str: v} }

// Bytes returns a blob value.
func Bytes(v []byte) Value { return Value{Kind: Blob, Blob: v} }

// Uints returns an array of unsigned values.
func Uints(v ...uint64) Value {
	a := make([]Value, len(v))
	for i, u := range v {
		a[i] = Uint(u)
	}
	return Value{Kind: Array, Array: a}
}

// AsUint converts the value to an unsigned integer.
func (v Value) AsUint() (uint64, bool) {
	switch v.Kind {
	case Unsigned, Pointer, Enum:
		return v.U, true
	case Signed:
		return uint64(v.S), true
	case Float:
		if v.F < 0 || v.F > math.MaxUint64 {
			return 0, false
		}
		return uint64(v.F), true
	case Null:
		return 0, true
	default:
		return 0, false
	}
}

// AsInt converts the value to a signed integer.
func (v Value) AsInt() (int64, bool) {
	switch v.Kind {
	case Signed:
		return v.S, true
	case Unsigned, Pointer, Enum:
		return int64(v.U), true
	case Float:
		return int64(v.F), true
	case Null:
		return 0, true
	default:
		return 0, false
	}
}

// AsFloat converts the value to a float.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case Float:
		return v.F, true
	case Signed:
		return float64(v.S), true
	case Unsigned, Enum:
		return float64(v.U), true
	default:
		return 0, false
	}
}

// String formats the value the way it is shown in call keys and diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case Null:
		return "NULL"
	case Unsigned:
		return fmt.Sprintf("%d", v.U)
	case Signed:
		return fmt.Sprintf("%d", v.S)
	case Float:
		return fmt.Sprintf("%g", v.F)
	case Pointer:
		return fmt.Sprintf("0x%x", v.U)
	case Enum:
		if v.Str != "" {
			return v.Str
		}
		return fmt.Sprintf("0x%x", v.U)
	case String:
		return fmt.Sprintf("%q", v.Str)
	case Blob:
		return fmt.Sprintf("blob(%d)", len(v.Blob))
	case Array:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}
