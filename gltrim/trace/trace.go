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

// Package trace reads and writes the binary container that holds a call
// trace.
//
// The file starts with a magic marker and a uvarint format version. After
// that is a repeated sequence of uvarint length and encoded record pairs.
// Records and their values use the protobuf wire format:
//
//	Record: 1 call index, 2 name, 3 argument (repeated Value),
//	        4 return Value, 5 flags
//	Value:  1 kind, 2 unsigned, 3 signed (zigzag), 4 float (fixed64),
//	        5 array element (repeated Value), 6 blob, 7 pointer,
//	        8 string or enum name
package trace

import "fmt"

const (
	// Version is the container version written by this package.
	Version = 1

	maxVarintSize = 10
	// maxRecordSize bounds the length prefix accepted by the reader.
	maxRecordSize = 1 << 30
)

// magic is the marker every trace container starts with.
var magic = []byte("FTRC")

// ErrUnsupportedVersion is the error returned when the header version is one
// this package cannot handle.
type ErrUnsupportedVersion struct{ Version uint64 }

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("Unsupported trace container version: %v", e.Version)
}
