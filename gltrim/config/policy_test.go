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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/config"
)

func TestDefault(t *testing.T) {
	ctx := log.Testing(t)
	p := config.Default()
	assert.For(ctx, "draw buffer").ThatBoolean(p.DrawBufferRequiresBind).IsTrue()
	assert.For(ctx, "persistent").ThatBoolean(p.KeepPersistentMaps).IsTrue()
	assert.For(ctx, "swap").ThatBoolean(p.KeepFinalSwap).IsTrue()
	assert.For(ctx, "width").ThatInteger(p.DefaultFramebufferWidth).Equals(0)
}

func TestDecode(t *testing.T) {
	ctx := log.Testing(t)
	p := config.Default()
	err := p.Decode([]byte("keep_final_swap: false\ndefault_framebuffer_width: 1024\n"))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "swap").ThatBoolean(p.KeepFinalSwap).IsFalse()
	assert.For(ctx, "width").ThatInteger(p.DefaultFramebufferWidth).Equals(1024)
	assert.For(ctx, "untouched").ThatBoolean(p.KeepPersistentMaps).IsTrue()

	assert.For(ctx, "empty").ThatError(p.Decode([]byte("  \n"))).Succeeded()
	assert.For(ctx, "unknown").ThatError(p.Decode([]byte("no_such_switch: true\n"))).Failed()
}

func TestLoad(t *testing.T) {
	ctx := log.Testing(t)
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("warn_unhandled: false\ndefault_framebuffer_height: 600\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FRAMETRIM_DEFAULT_FRAMEBUFFER_WIDTH", "800")
	t.Setenv("FRAMETRIM_KEEP_PERSISTENT_MAPS", "false")

	p, err := config.Load(path)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "file").ThatBoolean(p.WarnUnhandled).IsFalse()
	assert.For(ctx, "file height").ThatInteger(p.DefaultFramebufferHeight).Equals(600)
	assert.For(ctx, "env width").ThatInteger(p.DefaultFramebufferWidth).Equals(800)
	assert.For(ctx, "env persistent").ThatBoolean(p.KeepPersistentMaps).IsFalse()
}

func TestLoadErrors(t *testing.T) {
	ctx := log.Testing(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.For(ctx, "missing file").ThatError(err).Failed()

	t.Setenv("FRAMETRIM_DEFAULT_FRAMEBUFFER_WIDTH", "-5")
	_, err = config.Load("")
	assert.For(ctx, "negative").ThatError(err).Failed()
}
