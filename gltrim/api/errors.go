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

import "github.com/google/frametrim/core/fault"

const (
	// ErrMissingObject is returned when a call references an object or bind
	// point that is not tracked.
	ErrMissingObject = fault.Const("Missing object")
	// ErrUnsupportedTarget is returned for an unknown binding target or
	// attachment enum.
	ErrUnsupportedTarget = fault.Const("Unsupported target")
	// ErrMalformedCall is returned when a call does not carry the arguments
	// its name implies.
	ErrMalformedCall = fault.Const("Malformed call")
	// ErrBadFrameSpec is returned for an unparsable frame selection.
	ErrBadFrameSpec = fault.Const("Bad frame selection")
	// ErrBadContainer is returned when a trace container cannot be decoded.
	ErrBadContainer = fault.Const("Bad trace container")
)
