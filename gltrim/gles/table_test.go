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
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
)

func TestExpand(t *testing.T) {
	ctx := log.Testing(t)
	got := expand("glVertex", list("2", "3"), list("f", "i"), vec)
	assert.For(ctx, "names").ThatSlice(got).Equals([]string{
		"glVertex2f", "glVertex2fv", "glVertex2i", "glVertex2iv",
		"glVertex3f", "glVertex3fv", "glVertex3i", "glVertex3iv",
	})
}

func TestLookup(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name string
		kind CallKind
		base string
	}{
		{"glVertex3fv", kindVertex, "glVertex3fv"},
		{"glColor4ub", kindCurrent, "glColor"},
		{"glMultiTexCoord2fARB", kindCurrent, "glMultiTexCoord"},
		{"glUniformMatrix4fv", kindUniform, "uniform"},
		{"glProgramUniform3i", kindProgramUniform, "uniform"},
		{"glTexParameteri", kindTexParameter, "glTexParameter"},
		{"glTexParameterfv", kindTexParameter, "glTexParameter"},
		{"glDisable", kindEnable, "enable"},
		{"glLightfv", kindState, "glLight"},
		{"glDepthRangef", kindState, "glDepthRange"},
		{"glDrawElementsInstancedARB", kindDraw, "glDrawElementsInstancedARB"},
		{"glRectf", kindDraw, "glRectf"},
		{"glTranslated", kindMultMatrix, "glTranslated"},
		{"glBindFramebufferEXT", kindBindFramebuffer, "glBindFramebufferEXT"},
		{"glXSwapBuffers", kindSwap, "glXSwapBuffers"},
		{"glGetIntegerv", kindIgnore, "glGetIntegerv"},
	} {
		e, ok := table[test.name]
		if assert.For(ctx, "%s known", test.name).ThatBoolean(ok).IsTrue() {
			assert.For(ctx, "%s kind", test.name).That(e.kind).Equals(test.kind)
			assert.For(ctx, "%s base", test.name).ThatString(e.base).Equals(test.base)
		}
	}
	_, ok := Lookup("glNotACall")
	assert.For(ctx, "unknown").ThatBoolean(ok).IsFalse()
}

func TestEveryKindHasAHandler(t *testing.T) {
	ctx := log.Testing(t)
	for name, e := range table {
		switch e.kind {
		case kindIgnore, kindSwap:
			continue
		}
		_, ok := handlers[e.kind]
		assert.For(ctx, "handler of %s", name).ThatBoolean(ok).IsTrue()
	}
}

func TestEndsFrame(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "eglSwapBuffers").ThatBoolean(EndsFrame("eglSwapBuffers")).IsTrue()
	assert.For(ctx, "glFlush").ThatBoolean(EndsFrame("glFlush")).IsFalse()
	assert.For(ctx, "unknown").ThatBoolean(EndsFrame("glNotACall")).IsFalse()
}
