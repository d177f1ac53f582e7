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

package trace

import (
	"math"

	"github.com/google/frametrim/gltrim/api"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	recordIndex  protowire.Number = 1
	recordName   protowire.Number = 2
	recordArg    protowire.Number = 3
	recordReturn protowire.Number = 4
	recordFlags  protowire.Number = 5

	valueKind     protowire.Number = 1
	valueUnsigned protowire.Number = 2
	valueSigned   protowire.Number = 3
	valueFloat    protowire.Number = 4
	valueElement  protowire.Number = 5
	valueBlob     protowire.Number = 6
	valuePointer  protowire.Number = 7
	valueString   protowire.Number = 8
)

func appendRecord(b []byte, r *api.Record) []byte {
	b = protowire.AppendTag(b, recordIndex, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Index))
	b = protowire.AppendTag(b, recordName, protowire.BytesType)
	b = protowire.AppendString(b, r.Call)
	for _, a := range r.Arguments {
		b = protowire.AppendTag(b, recordArg, protowire.BytesType)
		b = protowire.AppendBytes(b, appendValue(nil, a))
	}
	if r.Return != nil {
		b = protowire.AppendTag(b, recordReturn, protowire.BytesType)
		b = protowire.AppendBytes(b, appendValue(nil, *r.Return))
	}
	if r.Bits != 0 {
		b = protowire.AppendTag(b, recordFlags, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Bits))
	}
	return b
}

func appendValue(b []byte, v api.Value) []byte {
	b = protowire.AppendTag(b, valueKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.Kind))
	switch v.Kind {
	case api.Unsigned:
		b = protowire.AppendTag(b, valueUnsigned, protowire.VarintType)
		b = protowire.AppendVarint(b, v.U)
	case api.Signed:
		b = protowire.AppendTag(b, valueSigned, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(v.S))
	case api.Float:
		b = protowire.AppendTag(b, valueFloat, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v.F))
	case api.Array:
		for _, e := range v.Array {
			b = protowire.AppendTag(b, valueElement, protowire.BytesType)
			b = protowire.AppendBytes(b, appendValue(nil, e))
		}
	case api.Blob:
		b = protowire.AppendTag(b, valueBlob, protowire.BytesType)
		b = protowire.AppendBytes(b, v.Blob)
	case api.Pointer:
		b = protowire.AppendTag(b, valuePointer, protowire.VarintType)
		b = protowire.AppendVarint(b, v.U)
	case api.Enum:
		b = protowire.AppendTag(b, valueUnsigned, protowire.VarintType)
		b = protowire.AppendVarint(b, v.U)
		if v.Str != "" {
			b = protowire.AppendTag(b, valueString, protowire.BytesType)
			b = protowire.AppendString(b, v.Str)
		}
	case api.String:
		b = protowire.AppendTag(b, valueString, protowire.BytesType)
		b = protowire.AppendString(b, v.Str)
	}
	return b
}

// field walks the fields of an encoded message.
type field struct {
	num  protowire.Number
	typ  protowire.Type
	data []byte
	u    uint64
	b    []byte
}

func (f *field) next() (bool, error) {
	if len(f.data) == 0 {
		return false, nil
	}
	num, typ, n := protowire.ConsumeTag(f.data)
	if n < 0 {
		return false, protowire.ParseError(n)
	}
	f.data = f.data[n:]
	f.num, f.typ = num, typ
	switch typ {
	case protowire.VarintType:
		f.u, n = protowire.ConsumeVarint(f.data)
	case protowire.Fixed64Type:
		f.u, n = protowire.ConsumeFixed64(f.data)
	case protowire.BytesType:
		f.b, n = protowire.ConsumeBytes(f.data)
	default:
		n = protowire.ConsumeFieldValue(num, typ, f.data)
	}
	if n < 0 {
		return false, protowire.ParseError(n)
	}
	f.data = f.data[n:]
	return true, nil
}

// want checks that the current field has the wire type typ.
func (f *field) want(typ protowire.Type) error {
	if f.typ != typ {
		return errors.Wrapf(api.ErrBadContainer, "field %d has wire type %d, want %d", f.num, f.typ, typ)
	}
	return nil
}

func decodeRecord(data []byte) (*api.Record, error) {
	r := &api.Record{}
	f := field{data: data}
	for {
		ok, err := f.next()
		if err != nil {
			return nil, errors.Wrap(api.ErrBadContainer, err.Error())
		}
		if !ok {
			return r, nil
		}
		switch f.num {
		case recordIndex:
			err = f.want(protowire.VarintType)
			r.Index = api.CallID(f.u)
		case recordName:
			err = f.want(protowire.BytesType)
			r.Call = string(f.b)
		case recordArg:
			if err = f.want(protowire.BytesType); err == nil {
				var v api.Value
				if v, err = decodeValue(f.b); err == nil {
					r.Arguments = append(r.Arguments, v)
				}
			}
		case recordReturn:
			if err = f.want(protowire.BytesType); err == nil {
				var v api.Value
				if v, err = decodeValue(f.b); err == nil {
					r.Return = &v
				}
			}
		case recordFlags:
			err = f.want(protowire.VarintType)
			r.Bits = api.Flags(f.u)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "record %v", r.Index)
		}
	}
}

func decodeValue(data []byte) (api.Value, error) {
	v := api.Value{}
	f := field{data: data}
	for {
		ok, err := f.next()
		if err != nil {
			return v, errors.Wrap(api.ErrBadContainer, err.Error())
		}
		if !ok {
			return v, nil
		}
		switch f.num {
		case valueKind:
			err = f.want(protowire.VarintType)
			v.Kind = api.Kind(f.u)
		case valueUnsigned, valuePointer:
			err = f.want(protowire.VarintType)
			v.U = f.u
		case valueSigned:
			err = f.want(protowire.VarintType)
			v.S = protowire.DecodeZigZag(f.u)
		case valueFloat:
			err = f.want(protowire.Fixed64Type)
			v.F = math.Float64frombits(f.u)
		case valueElement:
			if err = f.want(protowire.BytesType); err == nil {
				var e api.Value
				if e, err = decodeValue(f.b); err == nil {
					v.Array = append(v.Array, e)
				}
			}
		case valueBlob:
			err = f.want(protowire.BytesType)
			v.Blob = append([]byte{}, f.b...)
		case valueString:
			err = f.want(protowire.BytesType)
			v.Str = string(f.b)
		}
		if err != nil {
			return v, err
		}
	}
}
