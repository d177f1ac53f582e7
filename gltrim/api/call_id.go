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

package api

import "fmt"

// CallID is the index of a call in a trace.
type CallID uint64

// NoID is used when you have to pass an ID, but don't have one to use.
const NoID = CallID(1<<63 - 1)

func (id CallID) String() string {
	if id == NoID {
		return "(NoID)"
	}
	return fmt.Sprintf("%d", uint64(id))
}
