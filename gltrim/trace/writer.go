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

package trace

import (
	"bufio"
	"io"

	"github.com/google/frametrim/gltrim/api"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Writer is the type for a trace container writer.
// They should only be constructed by NewWriter.
type Writer struct {
	to      *bufio.Writer
	buf     []byte
	sizebuf []byte
	count   int
}

// NewWriter constructs and returns a new Writer that writes to the supplied
// output stream. The magic marker and version are written immediately.
// Flush must be called once the last record has been written.
func NewWriter(to io.Writer) (*Writer, error) {
	w := &Writer{
		to:      bufio.NewWriter(to),
		sizebuf: make([]byte, 0, maxVarintSize),
	}
	if _, err := w.to.Write(magic); err != nil {
		return nil, err
	}
	if _, err := w.to.Write(protowire.AppendVarint(w.sizebuf[:0], Version)); err != nil {
		return nil, err
	}
	return w, nil
}

// Write appends r to the container.
func (w *Writer) Write(r *api.Record) error {
	w.buf = appendRecord(w.buf[:0], r)
	w.sizebuf = protowire.AppendVarint(w.sizebuf[:0], uint64(len(w.buf)))
	if _, err := w.to.Write(w.sizebuf); err != nil {
		return errors.Wrapf(err, "writing record %v", r.Index)
	}
	if _, err := w.to.Write(w.buf); err != nil {
		return errors.Wrapf(err, "writing record %v", r.Index)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Flush writes any buffered data to the underlying stream.
func (w *Writer) Flush() error { return w.to.Flush() }
