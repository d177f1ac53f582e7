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

// The frametrim command trims OpenGL traces down to the calls a selection of
// frames depends on.
package main

import (
	"github.com/google/frametrim/core/app"
)

func main() {
	app.ShortHelp = "frametrim keeps only the calls that a range of frames of a GL trace needs"
	app.Version = app.VersionSpec{Major: 1, Minor: 0, Point: 0}
	app.Run(app.VerbMain)
}
