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

// Flags is a bitfield describing characteristics of a call record.
type Flags uint32

const (
	// EndOfFrame marks the call that presents a frame.
	EndOfFrame Flags = 1 << iota
	// DrawCall marks calls that render geometry.
	DrawCall
	// Clear marks calls that clear framebuffer attachments.
	Clear
	// Verbose marks calls that query state and have no side effects.
	Verbose
)

// IsEndOfFrame returns true if the call represents the end of a frame.
func (f Flags) IsEndOfFrame() bool { return (f & EndOfFrame) != 0 }

// IsDrawCall returns true if the call is a draw call.
func (f Flags) IsDrawCall() bool { return (f & DrawCall) != 0 }

// IsClear returns true if the call is a clear call.
func (f Flags) IsClear() bool { return (f & Clear) != 0 }

// IsVerbose returns true if the call is a side effect free query.
func (f Flags) IsVerbose() bool { return (f & Verbose) != 0 }
