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

import (
	"reflect"
	"strconv"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests that are specific to slice types.
type OnSlice struct {
	Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for assertions on slice type objects.
// Calling any methods on the OnSlice will panic if slice is not a slice
// type.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

// IsEmpty asserts that the slice was of length 0
func (o OnSlice) IsEmpty() bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "is", "empty").Test(value.Len() == 0)
}

// IsNotEmpty asserts that the slice has elements
func (o OnSlice) IsNotEmpty() bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length >", 0).Test(value.Len() > 0)
}

// IsLength asserts that the slice has exactly the specified number of elements
func (o OnSlice) IsLength(length int) bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length ==", length).Test(value.Len() == length)
}

// Equals asserts the array or slice matches expected.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.slicesEqual(expected, func(a, b interface{}) bool { return a == b })
}

// DeepEquals asserts the array or slice matches expected using a deep-equal
// comparison.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return o.slicesEqual(expected, reflect.DeepEqual)
}

func (o OnSlice) slicesEqual(expected interface{}, same func(a, b interface{}) bool) bool {
	got, want := reflect.ValueOf(o.slice), reflect.ValueOf(expected)
	n := got.Len()
	if want.Len() > n {
		n = want.Len()
	}
	equal := true
	for i := 0; i < n; i++ {
		index := strconv.Itoa(i)
		switch {
		case i >= got.Len():
			o.row("-", index, want.Index(i).Interface())
			equal = false
		case i >= want.Len():
			o.row("+", index, got.Index(i).Interface())
			equal = false
		default:
			g, w := got.Index(i).Interface(), want.Index(i).Interface()
			if same(g, w) {
				o.row("", index, g)
			} else {
				o.row("*", index, g, "==>", w)
				equal = false
			}
		}
	}
	return o.Test(equal)
}

// OnMap is the result of calling ThatMap on an Assertion.
// It provides assertion tests that are specific to map types.
type OnMap struct {
	Assertion
	mp interface{}
}

// ThatMap returns an OnMap for assertions on map type objects.
// Calling any methods on the OnMap will panic if the argument is not a map.
func (a Assertion) ThatMap(mp interface{}) OnMap {
	return OnMap{Assertion: a, mp: mp}
}

// IsEmpty asserts that the map was of length 0
func (o OnMap) IsEmpty() bool {
	value := reflect.ValueOf(o.mp)
	return o.Compare(value.Len(), "is", "empty").Test(value.Len() == 0)
}

// IsLength asserts that the map has exactly the specified number of elements
func (o OnMap) IsLength(length int) bool {
	value := reflect.ValueOf(o.mp)
	return o.Compare(value.Len(), "length ==", length).Test(value.Len() == length)
}

// DeepEquals asserts the map matches expected using a deep-equal comparison.
func (o OnMap) DeepEquals(expected interface{}) bool {
	return o.Compare(o.mp, "deep ==", expected).Test(reflect.DeepEqual(o.mp, expected))
}
