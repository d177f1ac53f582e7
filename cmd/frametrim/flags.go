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

package main

import (
	"github.com/google/frametrim/gltrim/frametrim"
)

type (
	TrimFlags struct {
		Frames frametrim.Frames `help:"frames to keep, for example 10, 10-12 or 3,7-9"`
		Out    string           `help:"path of the trimmed trace, defaults to <trace>.trimmed"`
		Config string           `help:"YAML file holding the trimming policy"`
		Stats  bool             `help:"print the trimming statistics"`
	}
	DumpFlags struct {
		Frames frametrim.Frames `help:"only print the calls of these frames"`
	}
)
