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
	"context"

	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/callset"
)

// CallKind selects the handler of a call.
type CallKind uint16

const (
	kindUnknown CallKind = iota
	kindIgnore
	kindAlways
	kindSwap
	kindState
	kindEnable
	kindCurrent
	kindVertex
	kindBegin
	kindEnd
	kindDraw
	kindViewport
	kindScissor

	kindGenBuffers
	kindBindBuffer
	kindBindBufferBase
	kindBufferData
	kindNamedBufferData
	kindBufferSubData
	kindNamedBufferSubData
	kindMapBuffer
	kindMapBufferRange
	kindMapNamedBufferRange
	kindUnmapBuffer
	kindUnmapNamedBuffer
	kindFlushMappedBufferRange
	kindCopyBufferSubData
	kindDeleteBuffers
	kindMemcpy

	kindGenTextures
	kindCreateTextures
	kindActiveTexture
	kindBindTexture
	kindTexImage
	kindTexSubImage
	kindTexStorage
	kindTexParameter
	kindGenerateMipmap
	kindCopyTexImage
	kindCopyTexSubImage
	kindTexBuffer
	kindDeleteTextures
	kindGenSamplers
	kindBindSampler
	kindSamplerParameter
	kindDeleteSamplers

	kindGenFramebuffers
	kindBindFramebuffer
	kindFramebufferTexture
	kindFramebufferRenderbuffer
	kindGenRenderbuffers
	kindBindRenderbuffer
	kindRenderbufferStorage
	kindDrawBuffer
	kindReadBuffer
	kindBlitFramebuffer
	kindClear
	kindClearBuffer
	kindReadPixels
	kindDeleteFramebuffers
	kindDeleteRenderbuffers

	kindCreateShader
	kindShaderState
	kindCreateProgram
	kindAttachShader
	kindDetachShader
	kindProgramState
	kindLinkProgram
	kindUseProgram
	kindUniform
	kindProgramUniform
	kindDeleteShader
	kindDeleteProgram
	kindGenProgramsARB
	kindBindProgramARB
	kindProgramStringARB
	kindProgramLocalParameterARB
	kindDeleteProgramsARB

	kindGenVertexArrays
	kindBindVertexArray
	kindVertexAttribPointer
	kindVertexAttribArray
	kindVertexAttribDivisor
	kindVertexAttrib
	kindClientPointer
	kindClientActiveTexture
	kindClientState
	kindDeleteVertexArrays

	kindFenceSync
	kindWaitSync
	kindDeleteSync

	kindMatrixMode
	kindPushMatrix
	kindPopMatrix
	kindLoadMatrix
	kindMultMatrix

	kindGenLists
	kindNewList
	kindEndList
	kindCallList
	kindCallLists
	kindListBase
	kindDeleteLists
)

// entry describes how one call name is handled.
type entry struct {
	kind CallKind
	// base is the name shared by every variant of the call. State keys are
	// built from it so that the variants overwrite each other.
	base string
	// key lists the arguments that select the state the call sets.
	key []int
	// arg is a kind specific constant, like the dimensions of an image call
	// or the array of a client pointer call.
	arg uint32
}

// call is a call being handled together with its decoded arguments.
type call struct {
	api.Call
	a *api.Args
	e entry
}

// trace returns a TraceCall for c keyed by its name and the given arguments.
func (c *call) trace(keyArgs ...int) *callset.TraceCall {
	return callset.New(c.Call, keyArgs...)
}

// keyed returns a TraceCall for c with an explicit key.
func (c *call) keyed(key string) *callset.TraceCall {
	return callset.Keyed(c.Call, key)
}

// state returns a TraceCall for c keyed by the base name of the call and the
// key arguments of its table entry.
func (c *call) state() *callset.TraceCall {
	key := c.e.base
	args := c.Call.Args()
	for _, i := range c.e.key {
		if i < len(args) {
			key += "_" + args[i].String()
		}
	}
	return callset.Keyed(c.Call, key)
}

type handler func(t *Tracker, c *call) error

var handlers = map[CallKind]handler{
	kindAlways:   (*Tracker).always,
	kindState:    (*Tracker).setState,
	kindEnable:   (*Tracker).enable,
	kindCurrent:  (*Tracker).current,
	kindVertex:   (*Tracker).vertex,
	kindBegin:    (*Tracker).begin,
	kindEnd:      (*Tracker).end,
	kindDraw:     (*Tracker).drawCall,
	kindViewport: (*Tracker).setViewport,
	kindScissor:  (*Tracker).setScissor,

	kindGenBuffers:             (*Tracker).genBuffers,
	kindBindBuffer:             (*Tracker).bindBuffer,
	kindBindBufferBase:         (*Tracker).bindBufferBase,
	kindBufferData:             (*Tracker).bufferData,
	kindNamedBufferData:        (*Tracker).namedBufferData,
	kindBufferSubData:          (*Tracker).bufferSubData,
	kindNamedBufferSubData:     (*Tracker).namedBufferSubData,
	kindMapBuffer:              (*Tracker).mapBuffer,
	kindMapBufferRange:         (*Tracker).mapBufferRange,
	kindMapNamedBufferRange:    (*Tracker).mapNamedBufferRange,
	kindUnmapBuffer:            (*Tracker).unmapBuffer,
	kindUnmapNamedBuffer:       (*Tracker).unmapNamedBuffer,
	kindFlushMappedBufferRange: (*Tracker).flushMappedBufferRange,
	kindCopyBufferSubData:      (*Tracker).copyBufferSubData,
	kindDeleteBuffers:          (*Tracker).deleteBuffers,
	kindMemcpy:                 (*Tracker).memcpy,

	kindGenTextures:      (*Tracker).genTextures,
	kindCreateTextures:   (*Tracker).createTextures,
	kindActiveTexture:    (*Tracker).activeTexture,
	kindBindTexture:      (*Tracker).bindTexture,
	kindTexImage:         (*Tracker).texImage,
	kindTexSubImage:      (*Tracker).texSubImage,
	kindTexStorage:       (*Tracker).texStorage,
	kindTexParameter:     (*Tracker).texParameter,
	kindGenerateMipmap:   (*Tracker).generateMipmap,
	kindCopyTexImage:     (*Tracker).copyTexImage,
	kindCopyTexSubImage:  (*Tracker).copyTexSubImage,
	kindTexBuffer:        (*Tracker).texBuffer,
	kindDeleteTextures:   (*Tracker).deleteTextures,
	kindGenSamplers:      (*Tracker).genSamplers,
	kindBindSampler:      (*Tracker).bindSampler,
	kindSamplerParameter: (*Tracker).samplerParameter,
	kindDeleteSamplers:   (*Tracker).deleteSamplers,

	kindGenFramebuffers:         (*Tracker).genFramebuffers,
	kindBindFramebuffer:         (*Tracker).bindFramebuffer,
	kindFramebufferTexture:      (*Tracker).framebufferTexture,
	kindFramebufferRenderbuffer: (*Tracker).framebufferRenderbuffer,
	kindGenRenderbuffers:        (*Tracker).genRenderbuffers,
	kindBindRenderbuffer:        (*Tracker).bindRenderbuffer,
	kindRenderbufferStorage:     (*Tracker).renderbufferStorage,
	kindDrawBuffer:              (*Tracker).drawBuffer,
	kindReadBuffer:              (*Tracker).readBuffer,
	kindBlitFramebuffer:         (*Tracker).blitFramebuffer,
	kindClear:                   (*Tracker).clearCall,
	kindClearBuffer:             (*Tracker).clearBuffer,
	kindReadPixels:              (*Tracker).readPixels,
	kindDeleteFramebuffers:      (*Tracker).deleteFramebuffers,
	kindDeleteRenderbuffers:     (*Tracker).deleteRenderbuffers,

	kindCreateShader:             (*Tracker).createShader,
	kindShaderState:              (*Tracker).shaderState,
	kindCreateProgram:            (*Tracker).createProgram,
	kindAttachShader:             (*Tracker).attachShader,
	kindDetachShader:             (*Tracker).detachShader,
	kindProgramState:             (*Tracker).programState,
	kindLinkProgram:              (*Tracker).linkProgram,
	kindUseProgram:               (*Tracker).useProgram,
	kindUniform:                  (*Tracker).uniform,
	kindProgramUniform:           (*Tracker).programUniform,
	kindDeleteShader:             (*Tracker).deleteShader,
	kindDeleteProgram:            (*Tracker).deleteProgram,
	kindGenProgramsARB:           (*Tracker).genProgramsARB,
	kindBindProgramARB:           (*Tracker).bindProgramARB,
	kindProgramStringARB:         (*Tracker).programStringARB,
	kindProgramLocalParameterARB: (*Tracker).programLocalParameterARB,
	kindDeleteProgramsARB:        (*Tracker).deleteProgramsARB,

	kindGenVertexArrays:     (*Tracker).genVertexArrays,
	kindBindVertexArray:     (*Tracker).bindVertexArray,
	kindVertexAttribPointer: (*Tracker).vertexAttribPointer,
	kindVertexAttribArray:   (*Tracker).vertexAttribArray,
	kindVertexAttribDivisor: (*Tracker).vertexAttribDivisor,
	kindVertexAttrib:        (*Tracker).vertexAttrib,
	kindClientPointer:       (*Tracker).clientPointer,
	kindClientActiveTexture: (*Tracker).clientActiveTexture,
	kindClientState:         (*Tracker).clientState,
	kindDeleteVertexArrays:  (*Tracker).deleteVertexArrays,

	kindFenceSync:  (*Tracker).fenceSync,
	kindWaitSync:   (*Tracker).waitSync,
	kindDeleteSync: (*Tracker).deleteSync,

	kindMatrixMode: (*Tracker).matrixMode,
	kindPushMatrix: (*Tracker).pushMatrix,
	kindPopMatrix:  (*Tracker).popMatrix,
	kindLoadMatrix: (*Tracker).loadMatrix,
	kindMultMatrix: (*Tracker).multMatrix,

	kindGenLists:    (*Tracker).genLists,
	kindNewList:     (*Tracker).newList,
	kindEndList:     (*Tracker).endList,
	kindCallList:    (*Tracker).callList,
	kindCallLists:   (*Tracker).callLists,
	kindListBase:    (*Tracker).setListBase,
	kindDeleteLists: (*Tracker).deleteLists,
}

// listable kinds are compiled into a display list instead of, or in
// addition to, being executed.
var listable = map[CallKind]bool{
	kindState:         true,
	kindEnable:        true,
	kindCurrent:       true,
	kindVertex:        true,
	kindBegin:         true,
	kindEnd:           true,
	kindDraw:          true,
	kindViewport:      true,
	kindScissor:       true,
	kindActiveTexture: true,
	kindBindTexture:   true,
	kindTexImage:      true,
	kindTexSubImage:   true,
	kindTexParameter:  true,
	kindClear:         true,
	kindUniform:       true,
	kindVertexAttrib:  true,
	kindMatrixMode:    true,
	kindPushMatrix:    true,
	kindPopMatrix:     true,
	kindLoadMatrix:    true,
	kindMultMatrix:    true,
	kindCallList:      true,
	kindCallLists:     true,
	kindListBase:      true,
}

// Lookup returns the kind of handler for the named call.
func Lookup(name string) (CallKind, bool) {
	e, ok := table[name]
	return e.kind, ok
}

// EndsFrame returns true if the named call presents a frame.
func EndsFrame(name string) bool {
	return table[name].kind == kindSwap
}

// Handle updates the state with c. It returns false if the call is not
// known to the tracker.
func (t *Tracker) Handle(ctx context.Context, c api.Call) (bool, error) {
	e, ok := table[c.Name()]
	if !ok {
		return false, nil
	}
	cc := &call{Call: c, a: api.ArgsOf(c), e: e}
	if t.compiling != nil && listable[e.kind] {
		t.compiling.AddData(callset.New(c))
		if e.kind == kindCallList || e.kind == kindCallLists {
			lists, err := t.referencedLists(cc)
			if err != nil {
				return true, err
			}
			for _, o := range lists {
				t.compiling.AddDependency(o)
			}
		}
		if t.compileMode == GL_COMPILE {
			return true, cc.a.Err()
		}
	}
	h, ok := handlers[e.kind]
	if !ok {
		return true, nil
	}
	err := h(t, cc)
	if aerr := cc.a.Err(); aerr != nil {
		return true, aerr
	}
	return true, err
}
