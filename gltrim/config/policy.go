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

// Package config holds the trimming policy switches.
//
// A policy starts from the defaults, is overlaid with an optional YAML file
// and finally with FRAMETRIM_ prefixed environment variables.
package config

import (
	"bytes"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "FRAMETRIM_"

// Policy selects between trimming behaviours that traces disagree on.
type Policy struct {
	// DrawBufferRequiresBind makes glDrawBuffer(s) and glReadBuffer require the
	// call that bound the framebuffer they apply to.
	DrawBufferRequiresBind bool `yaml:"draw_buffer_requires_bind" env:"DRAW_BUFFER_REQUIRES_BIND"`
	// KeepPersistentMaps keeps persistent buffer mappings when pruning the
	// mappings of a buffer.
	KeepPersistentMaps bool `yaml:"keep_persistent_maps" env:"KEEP_PERSISTENT_MAPS"`
	// KeepFinalSwap keeps the frame end call of the last retained frame.
	KeepFinalSwap bool `yaml:"keep_final_swap" env:"KEEP_FINAL_SWAP"`
	// DefaultFramebufferWidth and DefaultFramebufferHeight give the size of
	// the window surface. Zero takes the size of the first viewport set while
	// the window surface is bound.
	DefaultFramebufferWidth  int `yaml:"default_framebuffer_width" env:"DEFAULT_FRAMEBUFFER_WIDTH"`
	DefaultFramebufferHeight int `yaml:"default_framebuffer_height" env:"DEFAULT_FRAMEBUFFER_HEIGHT"`
	// WarnUnhandled logs a warning the first time each unknown call name is
	// seen.
	WarnUnhandled bool `yaml:"warn_unhandled" env:"WARN_UNHANDLED"`
}

// Default returns the default policy.
func Default() Policy {
	return Policy{
		DrawBufferRequiresBind: true,
		KeepPersistentMaps:     true,
		KeepFinalSwap:          true,
		WarnUnhandled:          true,
	}
}

// Load returns the default policy overlaid with the YAML file at path, if
// path is not empty, and then with the environment.
func Load(path string) (Policy, error) {
	p := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return p, errors.Wrapf(err, "reading policy %s", path)
		}
		if err := p.Decode(data); err != nil {
			return p, errors.Wrapf(err, "parsing policy %s", path)
		}
	}
	if err := p.ApplyEnv(); err != nil {
		return p, err
	}
	return p, p.Validate()
}

// Decode overlays the YAML document in data onto p. Fields the document does
// not mention keep their current values.
func (p *Policy) Decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(p)
}

// ApplyEnv overlays the FRAMETRIM_ environment variables onto p.
func (p *Policy) ApplyEnv() error {
	if err := env.ParseWithOptions(p, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Validate checks the policy for impossible values.
func (p Policy) Validate() error {
	if p.DefaultFramebufferWidth < 0 || p.DefaultFramebufferHeight < 0 {
		return errors.Errorf("negative default framebuffer size %dx%d",
			p.DefaultFramebufferWidth, p.DefaultFramebufferHeight)
	}
	return nil
}
