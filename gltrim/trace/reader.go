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
	"bytes"
	"context"
	"encoding/binary"
	"io"

	"github.com/google/frametrim/gltrim/api"
	"github.com/pkg/errors"
)

// Reader is the type for a trace container reader.
// They should only be constructed by NewReader.
type Reader struct {
	from    *bufio.Reader
	buf     []byte
	version uint64
}

// NewReader reads the container header from the supplied stream and returns
// a Reader for the records that follow it.
func NewReader(from io.Reader) (*Reader, error) {
	r := &Reader{from: bufio.NewReader(from)}
	head := make([]byte, len(magic))
	if _, err := io.ReadFull(r.from, head); err != nil || !bytes.Equal(head, magic) {
		return nil, errors.Wrap(api.ErrBadContainer, "incorrect magic marker")
	}
	v, err := binary.ReadUvarint(r.from)
	if err != nil {
		return nil, errors.Wrap(api.ErrBadContainer, "missing version")
	}
	if v == 0 || v > Version {
		return nil, ErrUnsupportedVersion{Version: v}
	}
	r.version = v
	return r, nil
}

// Version returns the container version read from the header.
func (r *Reader) Version() uint64 { return r.version }

// Read returns the next record. It returns io.EOF when the container ends
// cleanly between two records.
func (r *Reader) Read() (*api.Record, error) {
	size, err := binary.ReadUvarint(r.from)
	switch {
	case err == io.EOF:
		return nil, io.EOF
	case err != nil:
		return nil, errors.Wrap(api.ErrBadContainer, "truncated record length")
	case size > maxRecordSize:
		return nil, errors.Wrapf(api.ErrBadContainer, "record of %d bytes", size)
	}
	if uint64(cap(r.buf)) < size {
		r.buf = make([]byte, size+size/4)
	}
	r.buf = r.buf[:size]
	if _, err := io.ReadFull(r.from, r.buf); err != nil {
		return nil, errors.Wrap(api.ErrBadContainer, "truncated record")
	}
	return decodeRecord(r.buf)
}

// Read reads every record of the container in from and calls f with it, in
// order, until f returns an error or ctx is cancelled.
func Read(ctx context.Context, from io.Reader, f func(context.Context, *api.Record) error) error {
	r, err := NewReader(from)
	if err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := f(ctx, rec); err != nil {
			return err
		}
	}
}
