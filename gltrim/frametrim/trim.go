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

package frametrim

import (
	"context"
	"io"

	"github.com/google/frametrim/core/fault"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/trace"
)

// errStop ends reading a trace once the trimmer is done with it.
const errStop = fault.Const("stop")

// Trim reads the trace container from and returns the ascending indices of
// the calls t needs. Reading stops after the last retained frame.
func Trim(ctx context.Context, t *Trimmer, from io.Reader) ([]api.CallID, error) {
	ctx = log.Enter(ctx, "Trim")
	err := trace.Read(ctx, from, func(ctx context.Context, r *api.Record) error {
		if err := t.Process(ctx, r); err != nil {
			return err
		}
		if t.Done() {
			return errStop
		}
		return nil
	})
	if err != nil && !fault.Is(err, errStop) {
		return nil, err
	}
	ids := t.SortedCallIDs(ctx)
	log.I(ctx, "Kept %d calls of %d for frames %v", len(ids), t.Calls(), t.frames)
	return ids, nil
}
