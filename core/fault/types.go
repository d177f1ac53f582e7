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

// Package fault holds the error primitives shared by the trimmer packages.
package fault

import "github.com/pkg/errors"

// Const is the type for constant error values. Being a string, a Const can
// be declared with const and compared with ==.
type Const string

// Error implements error for Const returning the string value of the const.
func (e Const) Error() string { return string(e) }

// Is reports whether the root cause of err is the constant c. Causes are
// followed through github.com/pkg/errors wrapping.
func Is(err error, c Const) bool {
	cause, ok := errors.Cause(err).(Const)
	return ok && cause == c
}
