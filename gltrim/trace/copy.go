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
	"context"
	"io"

	"github.com/google/frametrim/gltrim/api"
)

// Copy reads the container in from and writes the records whose index is in
// ids to a new container in to. ids must be sorted in ascending order. It
// returns the number of records written.
func Copy(ctx context.Context, from io.Reader, to io.Writer, ids []api.CallID) (int, error) {
	w, err := NewWriter(to)
	if err != nil {
		return 0, err
	}
	next := 0
	err = Read(ctx, from, func(ctx context.Context, r *api.Record) error {
		for next < len(ids) && ids[next] < r.Index {
			next++
		}
		if next == len(ids) || ids[next] != r.Index {
			return nil
		}
		return w.Write(r)
	})
	if err != nil {
		return w.Count(), err
	}
	return w.Count(), w.Flush()
}
