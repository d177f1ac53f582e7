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

package object

import "fmt"

// Kind is the type of resource an Object tracks.
type Kind uint8

const (
	Buffer Kind = iota
	Texture
	Sampler
	Framebuffer
	Renderbuffer
	Shader
	Program
	LegacyProgram
	VertexArray
	Sync
	DisplayList
	MatrixFrame
	State
)

var kindNames = [...]string{
	Buffer:        "buffer",
	Texture:       "texture",
	Sampler:       "sampler",
	Framebuffer:   "framebuffer",
	Renderbuffer:  "renderbuffer",
	Shader:        "shader",
	Program:       "program",
	LegacyProgram: "legacy-program",
	VertexArray:   "vertex-array",
	Sync:          "sync",
	DisplayList:   "display-list",
	MatrixFrame:   "matrix",
	State:         "state",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Activity decides whether an object contributes its calls when it is reached.
type Activity uint8

const (
	// Always active.
	Always Activity = iota
	// WhenUsed objects are active while bound, or while attached to an
	// active object.
	WhenUsed
	// OnStack objects are active while reachable from the top of their stack.
	OnStack
)

func (k Kind) activity() Activity {
	switch k {
	case Texture, Sampler, Shader, Renderbuffer:
		return WhenUsed
	case MatrixFrame:
		return OnStack
	default:
		return Always
	}
}

// hasSlots reports whether objects of this kind attach other objects at
// numbered points.
func (k Kind) hasSlots() bool {
	switch k {
	case Framebuffer, VertexArray, Program:
		return true
	default:
		return false
	}
}

// keepsDetached reports whether objects of this kind keep the calls of the
// objects detached from them.
func (k Kind) keepsDetached() bool {
	return k == Framebuffer || k == Program
}
