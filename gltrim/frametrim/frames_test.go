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

package frametrim_test

import (
	"testing"

	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/frametrim"
)

func TestParseFrames(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		spec  string
		str   string
		count uint64
	}{
		{"5", "5", 1},
		{"3-7", "3-7", 5},
		{"1,4-6,9", "1,4-6,9", 5},
		{" 2 , 3 ", "2-3", 2},
		{"4-6,1,5-8", "1,4-8", 6},
		{"0", "0", 1},
		{"7-7", "7", 1},
	} {
		f, err := frametrim.ParseFrames(test.spec)
		if !assert.For(ctx, "ParseFrames(%q)", test.spec).ThatError(err).Succeeded() {
			continue
		}
		assert.For(ctx, "%q String", test.spec).ThatString(f.String()).Equals(test.str)
		assert.For(ctx, "%q Count", test.spec).That(f.Count()).Equals(test.count)
	}
}

func TestParseFramesErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, spec := range []string{"", "a", "1,", "3-1", "-2", "4-", "1,,2", "1-2-3"} {
		_, err := frametrim.ParseFrames(spec)
		assert.For(ctx, "ParseFrames(%q)", spec).ThatError(err).HasCause(api.ErrBadFrameSpec)
	}
}

func TestRegion(t *testing.T) {
	ctx := log.Testing(t)
	f, err := frametrim.ParseFrames("2,5-6")
	assert.For(ctx, "ParseFrames").ThatError(err).Succeeded()
	for _, test := range []struct {
		frame  uint64
		region frametrim.Region
	}{
		{0, frametrim.Before},
		{2, frametrim.Inside},
		{3, frametrim.Before},
		{5, frametrim.Inside},
		{6, frametrim.Inside},
		{7, frametrim.After},
		{100, frametrim.After},
	} {
		assert.For(ctx, "Region(%d)", test.frame).That(f.Region(test.frame)).Equals(test.region)
	}
	assert.For(ctx, "empty").That(frametrim.Frames{}.Region(0)).Equals(frametrim.After)
}

func TestFramesFlag(t *testing.T) {
	ctx := log.Testing(t)
	f := frametrim.Frame(1)
	assert.For(ctx, "Set").ThatError(f.Set("3-4")).Succeeded()
	assert.For(ctx, "value").ThatString(f).Equals("3-4")
	assert.For(ctx, "Set bad").ThatError(f.Set("x")).HasCause(api.ErrBadFrameSpec)
	assert.For(ctx, "unchanged").ThatString(f).Equals("3-4")
}
