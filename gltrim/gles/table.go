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

// group registers a list of call names with one handler.
type group struct {
	kind  CallKind
	base  string
	key   []int
	arg   uint32
	names []string
}

// expand returns every concatenation of base with one suffix taken from each
// of parts, in order.
func expand(base string, parts ...[]string) []string {
	out := []string{base}
	for _, p := range parts {
		next := make([]string, 0, len(out)*len(p))
		for _, prefix := range out {
			for _, s := range p {
				next = append(next, prefix+s)
			}
		}
		out = next
	}
	return out
}

func names(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func list(n ...string) []string { return n }

var (
	vec    = list("", "v")
	fi     = list("f", "i")
	fid    = list("f", "i", "d")
	fd     = list("f", "d")
	dfis   = list("d", "f", "i", "s")
	dfs    = list("d", "f", "s")
	n234   = list("2", "3", "4")
	n1234  = list("1", "2", "3", "4")
	ext    = list("", "EXT")
	arb    = list("", "ARB")
	colors = list("b", "d", "f", "i", "s", "ub", "ui", "us")
)

var groups = []group{
	{kind: kindAlways, names: list(
		"glXChooseVisual", "glXChooseFBConfig", "glXGetVisualFromFBConfig",
		"glXCreateContext", "glXCreateNewContext", "glXCreateContextAttribsARB",
		"glXMakeCurrent", "glXMakeContextCurrent", "glXDestroyContext",
		"glXCreateWindow", "glXCreatePbuffer", "glXSwapIntervalEXT",
		"glXSwapIntervalMESA", "glXSwapIntervalSGI",
		"eglGetDisplay", "eglInitialize", "eglChooseConfig", "eglBindAPI",
		"eglCreateContext", "eglCreateWindowSurface", "eglCreatePbufferSurface",
		"eglMakeCurrent", "eglSwapInterval", "eglDestroyContext",
		"eglDestroySurface", "eglTerminate",
		"wglCreateContext", "wglCreateContextAttribsARB", "wglMakeCurrent",
		"wglDeleteContext", "wglChoosePixelFormatARB", "wglSwapIntervalEXT",
		"CGLChoosePixelFormat", "CGLCreateContext", "CGLSetCurrentContext",
		"CGLDestroyContext",
	)},
	{kind: kindSwap, names: list(
		"glXSwapBuffers", "eglSwapBuffers", "eglSwapBuffersWithDamageKHR",
		"wglSwapBuffers", "wglSwapLayerBuffers", "CGLFlushDrawable",
	)},
	{kind: kindIgnore, names: names(
		list("glGetError", "glGetString", "glGetStringi", "glIsEnabled", "glIsEnabledi",
			"glFinish", "glFlush", "glCheckFramebufferStatus", "glCheckFramebufferStatusEXT",
			"glGetShaderiv", "glGetProgramiv", "glGetShaderInfoLog", "glGetProgramInfoLog",
			"glGetShaderSource", "glGetActiveUniform", "glGetActiveAttrib",
			"glGetActiveUniformBlockiv", "glGetActiveUniformsiv", "glGetProgramivARB",
			"glGetTexImage", "glGetTexLevelParameteriv", "glGetTexLevelParameterfv",
			"glGetTexParameteriv", "glGetTexParameterfv", "glGetBufferParameteriv",
			"glGetBufferSubData", "glGetFramebufferAttachmentParameteriv",
			"glGetRenderbufferParameteriv", "glGetSynciv", "glGetVertexAttribiv",
			"glGetVertexAttribPointerv", "glGetPointerv", "glGetUniformfv", "glGetUniformiv",
			"glGetQueryiv", "glGetQueryObjectiv", "glGetQueryObjectuiv",
			"glGetQueryObjecti64v", "glGetQueryObjectui64v", "glGetInternalformativ",
			"glIsTexture", "glIsBuffer", "glIsProgram", "glIsShader", "glIsSync",
			"glIsFramebuffer", "glIsRenderbuffer", "glIsVertexArray", "glIsList",
			"glDebugMessageCallback", "glDebugMessageControl", "glDebugMessageInsert",
			"glObjectLabel", "glPushDebugGroup", "glPopDebugGroup",
			"glStringMarkerGREMEDY", "glFrameTerminatorGREMEDY",
			"glXGetProcAddress", "glXGetProcAddressARB", "glXQueryExtension",
			"glXQueryExtensionsString", "glXQueryVersion", "glXGetFBConfigAttrib",
			"glXGetFBConfigs", "glXQueryDrawable", "glXGetCurrentContext",
			"glXGetCurrentDisplay", "glXGetCurrentDrawable",
			"eglGetProcAddress", "eglGetError", "eglQuerySurface", "eglQueryString",
			"eglGetCurrentContext", "eglGetCurrentSurface", "eglGetCurrentDisplay",
			"wglGetProcAddress", "wglGetCurrentContext", "wglGetCurrentDC",
		),
		expand("glGet", list("Booleanv", "Integerv", "Floatv", "Doublev", "Integer64v", "Integeri_v")),
	)},

	// Context state.
	{kind: kindState, names: list(
		"glBlendFunc", "glBlendFuncSeparate", "glBlendEquation",
		"glBlendEquationSeparate", "glBlendColor", "glDepthFunc", "glDepthMask",
		"glColorMask", "glStencilFunc", "glStencilOp", "glStencilMask",
		"glCullFace", "glFrontFace", "glPolygonOffset", "glLineWidth", "glPointSize",
		"glShadeModel", "glAlphaFunc", "glColorMaterial", "glLogicOp",
		"glSampleCoverage", "glPrimitiveRestartIndex", "glProvokingVertex",
		"glMinSampleShading", "glLineStipple", "glPolygonStipple", "glClearColor",
		"glClearStencil", "glClearIndex", "glClearAccum", "glPixelZoom",
	)},
	{kind: kindState, base: "glDepthRange", names: list("glDepthRange", "glDepthRangef")},
	{kind: kindState, base: "glClearDepth", names: list("glClearDepth", "glClearDepthf")},
	{kind: kindState, key: []int{0}, names: list(
		"glStencilFuncSeparate", "glStencilOpSeparate", "glStencilMaskSeparate",
		"glPolygonMode", "glHint", "glClipPlane",
	)},
	{kind: kindState, base: "glPixelStore", key: []int{0}, names: expand("glPixelStore", fi)},
	{kind: kindState, base: "glPixelTransfer", key: []int{0}, names: expand("glPixelTransfer", fi)},
	{kind: kindState, base: "glPatchParameter", key: []int{0}, names: list("glPatchParameteri", "glPatchParameterfv")},
	{kind: kindState, base: "glPointParameter", key: []int{0}, names: expand("glPointParameter", fi, vec)},
	{kind: kindState, base: "glLightModel", key: []int{0}, names: expand("glLightModel", fi, vec)},
	{kind: kindState, base: "glFog", key: []int{0}, names: expand("glFog", fi, vec)},
	{kind: kindState, base: "glLight", key: []int{0, 1}, names: expand("glLight", fi, vec)},
	{kind: kindState, base: "glMaterial", key: []int{0, 1}, names: expand("glMaterial", fi, vec)},
	{kind: kindState, base: "glTexEnv", key: []int{0, 1}, names: expand("glTexEnv", fi, vec)},
	{kind: kindState, base: "glTexGen", key: []int{0, 1}, names: expand("glTexGen", fid, vec)},
	{kind: kindState, base: "glRasterPos", names: names(
		expand("glRasterPos", n234, dfis, vec),
		expand("glWindowPos", list("2", "3"), dfis, vec),
	)},
	{kind: kindState, base: "glProgramEnvParameter", key: []int{0, 1},
		names: expand("glProgramEnvParameter4", fd, vec, list("ARB"))},
	{kind: kindEnable, base: "enable", key: []int{0}, names: list("glEnable", "glDisable")},
	{kind: kindEnable, base: "enablei", key: []int{0, 1}, names: list("glEnablei", "glDisablei")},
	{kind: kindViewport, names: list("glViewport")},
	{kind: kindScissor, names: list("glScissor")},

	// Immediate mode.
	{kind: kindBegin, names: list("glBegin")},
	{kind: kindEnd, names: list("glEnd")},
	{kind: kindVertex, names: names(expand("glVertex", n234, dfis, vec), list("glArrayElement"))},
	{kind: kindCurrent, base: "glColor", names: expand("glColor", list("3", "4"), colors, vec)},
	{kind: kindCurrent, base: "glSecondaryColor", names: expand("glSecondaryColor3", colors, vec)},
	{kind: kindCurrent, base: "glNormal", names: expand("glNormal3", list("b", "d", "f", "i", "s"), vec)},
	{kind: kindCurrent, base: "glTexCoord", names: expand("glTexCoord", n1234, dfis, vec)},
	{kind: kindCurrent, base: "glMultiTexCoord", key: []int{0}, names: expand("glMultiTexCoord", n1234, dfis, vec, arb)},
	{kind: kindCurrent, base: "glFogCoord", names: expand("glFogCoord", fd, vec)},
	{kind: kindCurrent, base: "glEdgeFlag", names: expand("glEdgeFlag", vec)},
	{kind: kindCurrent, base: "glIndex", names: expand("glIndex", list("d", "f", "i", "s", "ub"), vec)},

	// Draws.
	{kind: kindDraw, names: names(
		list("glDrawArrays", "glDrawArraysEXT", "glDrawArraysInstancedBaseInstance",
			"glDrawElements", "glDrawElementsBaseVertex",
			"glDrawElementsInstancedBaseVertex", "glDrawElementsInstancedBaseInstance",
			"glDrawElementsInstancedBaseVertexBaseInstance",
			"glDrawRangeElements", "glDrawRangeElementsEXT", "glDrawRangeElementsBaseVertex",
			"glMultiDrawArrays", "glMultiDrawArraysEXT", "glMultiDrawElements",
			"glMultiDrawElementsEXT", "glMultiDrawElementsBaseVertex",
			"glDrawArraysIndirect", "glDrawElementsIndirect",
			"glMultiDrawArraysIndirect", "glMultiDrawElementsIndirect",
			"glDrawPixels", "glBitmap"),
		expand("glDrawArraysInstanced", list("", "ARB", "EXT")),
		expand("glDrawElementsInstanced", list("", "ARB", "EXT")),
		expand("glRect", dfis, vec),
	)},

	// Buffers.
	{kind: kindGenBuffers, names: list("glGenBuffers", "glGenBuffersARB", "glCreateBuffers")},
	{kind: kindBindBuffer, names: expand("glBindBuffer", arb)},
	{kind: kindBindBufferBase, names: list("glBindBufferBase", "glBindBufferRange")},
	{kind: kindBufferData, names: list("glBufferData", "glBufferDataARB", "glBufferStorage")},
	{kind: kindNamedBufferData, names: list("glNamedBufferData", "glNamedBufferStorage")},
	{kind: kindBufferSubData, names: expand("glBufferSubData", arb)},
	{kind: kindNamedBufferSubData, names: list("glNamedBufferSubData")},
	{kind: kindMapBuffer, names: expand("glMapBuffer", arb)},
	{kind: kindMapBufferRange, names: list("glMapBufferRange")},
	{kind: kindMapNamedBufferRange, names: list("glMapNamedBufferRange")},
	{kind: kindUnmapBuffer, names: expand("glUnmapBuffer", arb)},
	{kind: kindUnmapNamedBuffer, names: list("glUnmapNamedBuffer")},
	{kind: kindFlushMappedBufferRange, names: list("glFlushMappedBufferRange")},
	{kind: kindCopyBufferSubData, names: list("glCopyBufferSubData")},
	{kind: kindDeleteBuffers, names: expand("glDeleteBuffers", arb)},
	{kind: kindMemcpy, names: list("memcpy")},

	// Textures and samplers.
	{kind: kindGenTextures, names: expand("glGenTextures", ext)},
	{kind: kindCreateTextures, names: list("glCreateTextures")},
	{kind: kindActiveTexture, names: expand("glActiveTexture", arb)},
	{kind: kindBindTexture, names: expand("glBindTexture", ext)},
	{kind: kindTexImage, arg: 1, names: list("glTexImage1D", "glCompressedTexImage1D")},
	{kind: kindTexImage, arg: 2, names: list("glTexImage2D", "glCompressedTexImage2D")},
	{kind: kindTexImage, arg: 3, names: list("glTexImage3D", "glCompressedTexImage3D")},
	{kind: kindTexSubImage, arg: 1, names: list("glTexSubImage1D", "glCompressedTexSubImage1D")},
	{kind: kindTexSubImage, arg: 2, names: list("glTexSubImage2D", "glCompressedTexSubImage2D")},
	{kind: kindTexSubImage, arg: 3, names: list("glTexSubImage3D", "glCompressedTexSubImage3D")},
	{kind: kindTexStorage, arg: 1, names: list("glTexStorage1D")},
	{kind: kindTexStorage, arg: 2, names: list("glTexStorage2D")},
	{kind: kindTexStorage, arg: 3, names: list("glTexStorage3D")},
	{kind: kindTexParameter, base: "glTexParameter", key: []int{1},
		names: expand("glTexParameter", list("i", "f", "iv", "fv", "Iiv", "Iuiv"))},
	{kind: kindGenerateMipmap, names: expand("glGenerateMipmap", ext)},
	{kind: kindCopyTexImage, arg: 1, names: list("glCopyTexImage1D")},
	{kind: kindCopyTexImage, arg: 2, names: list("glCopyTexImage2D")},
	{kind: kindCopyTexSubImage, arg: 1, names: list("glCopyTexSubImage1D")},
	{kind: kindCopyTexSubImage, arg: 2, names: list("glCopyTexSubImage2D")},
	{kind: kindCopyTexSubImage, arg: 3, names: list("glCopyTexSubImage3D")},
	{kind: kindTexBuffer, names: expand("glTexBuffer", arb)},
	{kind: kindDeleteTextures, names: expand("glDeleteTextures", ext)},
	{kind: kindGenSamplers, names: list("glGenSamplers", "glCreateSamplers")},
	{kind: kindBindSampler, names: list("glBindSampler")},
	{kind: kindSamplerParameter, base: "glSamplerParameter", key: []int{1},
		names: expand("glSamplerParameter", list("i", "f", "iv", "fv", "Iiv", "Iuiv"))},
	{kind: kindDeleteSamplers, names: list("glDeleteSamplers")},

	// Framebuffers and renderbuffers.
	{kind: kindGenFramebuffers, names: list("glGenFramebuffers", "glGenFramebuffersEXT", "glCreateFramebuffers")},
	{kind: kindBindFramebuffer, names: expand("glBindFramebuffer", ext)},
	{kind: kindFramebufferTexture, arg: 0, names: expand("glFramebufferTexture", ext)},
	{kind: kindFramebufferTexture, arg: 1, names: names(expand("glFramebufferTexture1D", ext), expand("glFramebufferTexture2D", ext))},
	{kind: kindFramebufferTexture, arg: 3, names: expand("glFramebufferTexture3D", ext)},
	{kind: kindFramebufferTexture, arg: 4, names: expand("glFramebufferTextureLayer", ext)},
	{kind: kindFramebufferRenderbuffer, names: expand("glFramebufferRenderbuffer", ext)},
	{kind: kindGenRenderbuffers, names: list("glGenRenderbuffers", "glGenRenderbuffersEXT", "glCreateRenderbuffers")},
	{kind: kindBindRenderbuffer, names: expand("glBindRenderbuffer", ext)},
	{kind: kindRenderbufferStorage, arg: 0, names: expand("glRenderbufferStorage", ext)},
	{kind: kindRenderbufferStorage, arg: 1, names: expand("glRenderbufferStorageMultisample", ext)},
	{kind: kindDrawBuffer, names: list("glDrawBuffer", "glDrawBuffers", "glDrawBuffersARB")},
	{kind: kindReadBuffer, names: list("glReadBuffer")},
	{kind: kindBlitFramebuffer, names: expand("glBlitFramebuffer", ext)},
	{kind: kindClear, names: list("glClear")},
	{kind: kindClearBuffer, names: expand("glClearBuffer", list("iv", "uiv", "fv", "fi"))},
	{kind: kindReadPixels, names: list("glReadPixels")},
	{kind: kindDeleteFramebuffers, names: expand("glDeleteFramebuffers", ext)},
	{kind: kindDeleteRenderbuffers, names: expand("glDeleteRenderbuffers", ext)},

	// Shaders and programs.
	{kind: kindCreateShader, names: list("glCreateShader")},
	{kind: kindShaderState, names: list("glShaderSource", "glCompileShader")},
	{kind: kindCreateProgram, names: list("glCreateProgram")},
	{kind: kindAttachShader, names: list("glAttachShader")},
	{kind: kindDetachShader, names: list("glDetachShader")},
	{kind: kindProgramState, key: []int{1}, names: list(
		"glBindAttribLocation", "glBindFragDataLocation", "glProgramParameteri",
		"glGetUniformLocation", "glGetAttribLocation", "glGetUniformBlockIndex",
		"glUniformBlockBinding", "glShaderStorageBlockBinding",
	)},
	{kind: kindProgramState, key: []int{1, 2}, names: list("glBindFragDataLocationIndexed")},
	{kind: kindProgramState, names: list("glTransformFeedbackVaryings")},
	{kind: kindLinkProgram, names: list("glLinkProgram")},
	{kind: kindUseProgram, names: list("glUseProgram")},
	{kind: kindUniform, base: "uniform", key: []int{0}, names: uniformNames("glUniform")},
	{kind: kindProgramUniform, base: "uniform", key: []int{1}, names: uniformNames("glProgramUniform")},
	{kind: kindDeleteShader, names: list("glDeleteShader")},
	{kind: kindDeleteProgram, names: list("glDeleteProgram")},
	{kind: kindGenProgramsARB, names: list("glGenProgramsARB")},
	{kind: kindBindProgramARB, names: list("glBindProgramARB")},
	{kind: kindProgramStringARB, names: list("glProgramStringARB")},
	{kind: kindProgramLocalParameterARB, base: "local", key: []int{1},
		names: expand("glProgramLocalParameter4", fd, vec, list("ARB"))},
	{kind: kindDeleteProgramsARB, names: list("glDeleteProgramsARB")},

	// Vertex arrays.
	{kind: kindGenVertexArrays, names: list("glGenVertexArrays", "glCreateVertexArrays")},
	{kind: kindBindVertexArray, names: list("glBindVertexArray")},
	{kind: kindVertexAttribPointer, names: list("glVertexAttribPointer", "glVertexAttribIPointer", "glVertexAttribLPointer")},
	{kind: kindVertexAttribArray, base: "attribArray", key: []int{0}, names: list("glEnableVertexAttribArray", "glDisableVertexAttribArray")},
	{kind: kindVertexAttribDivisor, key: []int{0}, names: expand("glVertexAttribDivisor", arb)},
	{kind: kindVertexAttrib, base: "attrib", key: []int{0}, names: names(
		expand("glVertexAttrib", list("1", "2", "3", "4"), dfs, vec),
		expand("glVertexAttrib4N", list("bv", "iv", "sv", "ub", "ubv", "uiv", "usv")),
		expand("glVertexAttribI", n1234, list("i", "ui"), vec),
	)},
	{kind: kindClientPointer, arg: GL_VERTEX_ARRAY, names: list("glVertexPointer")},
	{kind: kindClientPointer, arg: GL_NORMAL_ARRAY, names: list("glNormalPointer")},
	{kind: kindClientPointer, arg: GL_COLOR_ARRAY, names: list("glColorPointer")},
	{kind: kindClientPointer, arg: GL_INDEX_ARRAY, names: list("glIndexPointer")},
	{kind: kindClientPointer, arg: GL_TEXTURE_COORD_ARRAY, names: list("glTexCoordPointer")},
	{kind: kindClientPointer, arg: GL_EDGE_FLAG_ARRAY, names: list("glEdgeFlagPointer")},
	{kind: kindClientPointer, arg: GL_FOG_COORD_ARRAY, names: list("glFogCoordPointer")},
	{kind: kindClientPointer, arg: GL_SECONDARY_COLOR_ARRAY, names: list("glSecondaryColorPointer")},
	{kind: kindClientActiveTexture, names: expand("glClientActiveTexture", arb)},
	{kind: kindClientState, names: list("glEnableClientState", "glDisableClientState")},
	{kind: kindDeleteVertexArrays, names: list("glDeleteVertexArrays")},

	// Sync objects.
	{kind: kindFenceSync, names: list("glFenceSync")},
	{kind: kindWaitSync, names: list("glClientWaitSync", "glWaitSync")},
	{kind: kindDeleteSync, names: list("glDeleteSync")},

	// Matrix stacks.
	{kind: kindMatrixMode, names: list("glMatrixMode")},
	{kind: kindPushMatrix, names: list("glPushMatrix")},
	{kind: kindPopMatrix, names: list("glPopMatrix")},
	{kind: kindLoadMatrix, names: names(
		list("glLoadIdentity"),
		expand("glLoadMatrix", fd),
		expand("glLoadTransposeMatrix", fd),
	)},
	{kind: kindMultMatrix, names: names(
		expand("glMultMatrix", fd),
		expand("glMultTransposeMatrix", fd),
		expand("glTranslate", fd),
		expand("glRotate", fd),
		expand("glScale", fd),
		list("glOrtho", "glFrustum"),
	)},

	// Display lists.
	{kind: kindGenLists, names: list("glGenLists")},
	{kind: kindNewList, names: list("glNewList")},
	{kind: kindEndList, names: list("glEndList")},
	{kind: kindCallList, names: list("glCallList")},
	{kind: kindCallLists, names: list("glCallLists")},
	{kind: kindListBase, names: list("glListBase")},
	{kind: kindDeleteLists, names: list("glDeleteLists")},
}

func uniformNames(prefix string) []string {
	return names(
		expand(prefix, n1234, list("f", "i", "ui", "d"), vec),
		expand(prefix+"Matrix", list("2", "3", "4", "2x3", "3x2", "2x4", "4x2", "3x4", "4x3"), list("fv", "dv")),
	)
}

var table = buildTable()

func buildTable() map[string]entry {
	t := map[string]entry{}
	for _, g := range groups {
		for _, n := range g.names {
			base := g.base
			if base == "" {
				base = n
			}
			t[n] = entry{kind: g.kind, base: base, key: g.key, arg: g.arg}
		}
	}
	return t
}
