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

// GL enum values the trackers interpret.
const (
	GL_DEPTH_BUFFER_BIT   = 0x00000100
	GL_STENCIL_BUFFER_BIT = 0x00000400
	GL_COLOR_BUFFER_BIT   = 0x00004000

	GL_SCISSOR_TEST = 0x0C11

	GL_TEXTURE_1D                   = 0x0DE0
	GL_TEXTURE_2D                   = 0x0DE1
	GL_TEXTURE_3D                   = 0x806F
	GL_TEXTURE_RECTANGLE            = 0x84F5
	GL_TEXTURE_CUBE_MAP             = 0x8513
	GL_TEXTURE_CUBE_MAP_POSITIVE_X  = 0x8515
	GL_TEXTURE_CUBE_MAP_NEGATIVE_Z  = 0x851A
	GL_TEXTURE_1D_ARRAY             = 0x8C18
	GL_TEXTURE_2D_ARRAY             = 0x8C1A
	GL_TEXTURE_BUFFER               = 0x8C2A
	GL_TEXTURE_CUBE_MAP_ARRAY       = 0x9009
	GL_TEXTURE_2D_MULTISAMPLE       = 0x9100
	GL_TEXTURE_2D_MULTISAMPLE_ARRAY = 0x9102
	GL_TEXTURE0                     = 0x84C0

	GL_ARRAY_BUFFER              = 0x8892
	GL_ELEMENT_ARRAY_BUFFER      = 0x8893
	GL_PIXEL_PACK_BUFFER         = 0x88EB
	GL_PIXEL_UNPACK_BUFFER       = 0x88EC
	GL_UNIFORM_BUFFER            = 0x8A11
	GL_TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	GL_COPY_READ_BUFFER          = 0x8F36
	GL_COPY_WRITE_BUFFER         = 0x8F37
	GL_DRAW_INDIRECT_BUFFER      = 0x8F3F
	GL_SHADER_STORAGE_BUFFER     = 0x90D2
	GL_DISPATCH_INDIRECT_BUFFER  = 0x90EE
	GL_QUERY_BUFFER              = 0x9192
	GL_ATOMIC_COUNTER_BUFFER     = 0x92C0

	GL_MAP_PERSISTENT_BIT = 0x0040

	GL_READ_FRAMEBUFFER         = 0x8CA8
	GL_DRAW_FRAMEBUFFER         = 0x8CA9
	GL_FRAMEBUFFER              = 0x8D40
	GL_RENDERBUFFER             = 0x8D41
	GL_COLOR_ATTACHMENT0        = 0x8CE0
	GL_COLOR_ATTACHMENT31       = 0x8CFF
	GL_DEPTH_ATTACHMENT         = 0x8D00
	GL_STENCIL_ATTACHMENT       = 0x8D20
	GL_DEPTH_STENCIL_ATTACHMENT = 0x821A
	GL_COLOR                    = 0x1800
	GL_DEPTH                    = 0x1801
	GL_STENCIL                  = 0x1802
	GL_DEPTH_STENCIL            = 0x84F9

	GL_MODELVIEW  = 0x1700
	GL_PROJECTION = 0x1701
	GL_TEXTURE    = 0x1702

	GL_VERTEX_ARRAY          = 0x8074
	GL_NORMAL_ARRAY          = 0x8075
	GL_COLOR_ARRAY           = 0x8076
	GL_INDEX_ARRAY           = 0x8077
	GL_TEXTURE_COORD_ARRAY   = 0x8078
	GL_EDGE_FLAG_ARRAY       = 0x8079
	GL_FOG_COORD_ARRAY       = 0x8457
	GL_SECONDARY_COLOR_ARRAY = 0x845E

	GL_BYTE           = 0x1400
	GL_UNSIGNED_BYTE  = 0x1401
	GL_SHORT          = 0x1402
	GL_UNSIGNED_SHORT = 0x1403
	GL_INT            = 0x1404
	GL_UNSIGNED_INT   = 0x1405
	GL_FLOAT          = 0x1406
	GL_2_BYTES        = 0x1407
	GL_3_BYTES        = 0x1408
	GL_4_BYTES        = 0x1409

	GL_COMPILE             = 0x1300
	GL_COMPILE_AND_EXECUTE = 0x1301

	GL_VERTEX_PROGRAM_ARB   = 0x8620
	GL_FRAGMENT_PROGRAM_ARB = 0x8804
)
