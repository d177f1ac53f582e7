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

package gles

import (
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/object"
	"github.com/pkg/errors"
)

var bufferTargets = map[uint32]uint32{
	GL_ARRAY_BUFFER:              1,
	GL_ELEMENT_ARRAY_BUFFER:      2,
	GL_PIXEL_PACK_BUFFER:         3,
	GL_PIXEL_UNPACK_BUFFER:       4,
	GL_UNIFORM_BUFFER:            5,
	GL_TEXTURE_BUFFER:            6,
	GL_TRANSFORM_FEEDBACK_BUFFER: 7,
	GL_COPY_READ_BUFFER:          8,
	GL_COPY_WRITE_BUFFER:         9,
	GL_DRAW_INDIRECT_BUFFER:      10,
	GL_SHADER_STORAGE_BUFFER:     11,
	GL_DISPATCH_INDIRECT_BUFFER:  12,
	GL_QUERY_BUFFER:              13,
	GL_ATOMIC_COUNTER_BUFFER:     14,
}

var textureTargets = map[uint32]uint32{
	GL_TEXTURE_1D:                   1,
	GL_TEXTURE_2D:                   2,
	GL_TEXTURE_3D:                   3,
	GL_TEXTURE_RECTANGLE:            4,
	GL_TEXTURE_CUBE_MAP:             5,
	GL_TEXTURE_1D_ARRAY:             6,
	GL_TEXTURE_2D_ARRAY:             7,
	GL_TEXTURE_BUFFER:               8,
	GL_TEXTURE_CUBE_MAP_ARRAY:       9,
	GL_TEXTURE_2D_MULTISAMPLE:       10,
	GL_TEXTURE_2D_MULTISAMPLE_ARRAY: 11,
}

var programTargets = map[uint32]uint32{
	GL_VERTEX_PROGRAM_ARB:   1,
	GL_FRAGMENT_PROGRAM_ARB: 2,
}

// Bind points of the framebuffer map.
const (
	drawFramebuffer = uint64(0)
	readFramebuffer = uint64(1)
)

// bufferPoint returns the non-indexed bind point of a buffer target.
func bufferPoint(target uint32) (uint64, error) {
	t, ok := bufferTargets[target]
	if !ok {
		return 0, errors.Wrapf(api.ErrUnsupportedTarget, "buffer target 0x%x", target)
	}
	return object.BindPoint(0, t), nil
}

// indexedBufferPoint returns the bind point of binding index of an indexed
// buffer target.
func indexedBufferPoint(target uint32, index uint32) (uint64, error) {
	t, ok := bufferTargets[target]
	if !ok {
		return 0, errors.Wrapf(api.ErrUnsupportedTarget, "buffer target 0x%x", target)
	}
	return object.BindPoint(index+1, t), nil
}

// textureTarget maps a texture or cube face target to the target the texture
// is bound to and the face index the target addresses.
func textureTarget(target uint32) (uint32, int, error) {
	if target >= GL_TEXTURE_CUBE_MAP_POSITIVE_X && target <= GL_TEXTURE_CUBE_MAP_NEGATIVE_Z {
		return textureTargets[GL_TEXTURE_CUBE_MAP], int(target-GL_TEXTURE_CUBE_MAP_POSITIVE_X) + 1, nil
	}
	t, ok := textureTargets[target]
	if !ok {
		return 0, 0, errors.Wrapf(api.ErrUnsupportedTarget, "texture target 0x%x", target)
	}
	return t, 0, nil
}

// framebufferPoints returns the bind points a framebuffer target refers to.
func framebufferPoints(target uint32) ([]uint64, error) {
	switch target {
	case GL_FRAMEBUFFER:
		return []uint64{drawFramebuffer, readFramebuffer}, nil
	case GL_DRAW_FRAMEBUFFER:
		return []uint64{drawFramebuffer}, nil
	case GL_READ_FRAMEBUFFER:
		return []uint64{readFramebuffer}, nil
	default:
		return nil, errors.Wrapf(api.ErrUnsupportedTarget, "framebuffer target 0x%x", target)
	}
}

// attachmentBits returns the clear mask bits that cover an attachment point.
func attachmentBits(attachment uint32) (uint32, error) {
	switch {
	case attachment >= GL_COLOR_ATTACHMENT0 && attachment <= GL_COLOR_ATTACHMENT31:
		return GL_COLOR_BUFFER_BIT, nil
	case attachment == GL_DEPTH_ATTACHMENT:
		return GL_DEPTH_BUFFER_BIT, nil
	case attachment == GL_STENCIL_ATTACHMENT:
		return GL_STENCIL_BUFFER_BIT, nil
	case attachment == GL_DEPTH_STENCIL_ATTACHMENT:
		return GL_DEPTH_BUFFER_BIT | GL_STENCIL_BUFFER_BIT, nil
	default:
		return 0, errors.Wrapf(api.ErrUnsupportedTarget, "framebuffer attachment 0x%x", attachment)
	}
}

// clearBufferBits returns the clear mask bits of a glClearBuffer buffer.
func clearBufferBits(buffer uint32) (uint32, error) {
	switch buffer {
	case GL_COLOR:
		return GL_COLOR_BUFFER_BIT, nil
	case GL_DEPTH:
		return GL_DEPTH_BUFFER_BIT, nil
	case GL_STENCIL:
		return GL_STENCIL_BUFFER_BIT, nil
	case GL_DEPTH_STENCIL:
		return GL_DEPTH_BUFFER_BIT | GL_STENCIL_BUFFER_BIT, nil
	default:
		return 0, errors.Wrapf(api.ErrUnsupportedTarget, "clear buffer 0x%x", buffer)
	}
}

// programPoint returns the bind point of an assembly program target.
func programPoint(target uint32) (uint64, error) {
	t, ok := programTargets[target]
	if !ok {
		return 0, errors.Wrapf(api.ErrUnsupportedTarget, "program target 0x%x", target)
	}
	return object.BindPoint(0, t), nil
}

// Attachment points of vertex array objects that are not generic attributes.
const (
	elementArraySlot = uint64(1) << 20
	clientArraySlot  = uint64(1) << 21
)

// clientSlot returns the vertex array slot of a legacy client array. Texture
// coordinate arrays are per client texture unit.
func clientSlot(array uint32, unit uint32) uint64 {
	return clientArraySlot | uint64(array)<<32 | uint64(unit)
}
