// Copyright (C) 2017 Google Inc.
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

package assert

import "reflect"

// OnValue is the result of calling That on an Assertion.
// It provides assertions that work for any type.
type OnValue struct {
	Assertion
	value interface{}
}

// That returns an OnValue for the specified untyped value.
func (a Assertion) That(value interface{}) OnValue {
	return OnValue{Assertion: a, value: value}
}

// isNil returns true for nil and for typed nils of the nillable kinds.
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func (o OnValue) check(op string, expect interface{}, ok bool) bool {
	return o.Compare(o.value, op, expect).Test(ok)
}

// IsNil asserts that the value is nil. Typed nils are allowed.
func (o OnValue) IsNil() bool { return o.check("==", "nil", isNil(o.value)) }

// IsNotNil asserts that the value is not nil. Typed nils fail.
func (o OnValue) IsNotNil() bool { return o.check("!=", "nil", !isNil(o.value)) }

// Equals asserts that the value is == to expect.
func (o OnValue) Equals(expect interface{}) bool {
	return o.check("==", expect, o.value == expect)
}

// NotEquals asserts that the value is != to test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.check("!=", test, o.value != test)
}

// DeepEquals asserts that the value matches expect using reflect.DeepEqual.
func (o OnValue) DeepEquals(expect interface{}) bool {
	return o.check("deep ==", expect, reflect.DeepEqual(o.value, expect))
}
