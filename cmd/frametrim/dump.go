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
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/frametrim/core/app"
	"github.com/google/frametrim/core/fault"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/frametrim"
	"github.com/google/frametrim/gltrim/gles"
	"github.com/google/frametrim/gltrim/trace"
)

const errDone = fault.Const("done")

type dumpVerb struct{ DumpFlags }

func init() {
	verb := &dumpVerb{}
	app.AddVerb(&app.Verb{
		Name:       "dump",
		ShortHelp:  "Prints the calls of a trace",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *dumpVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one trace file expected, got %d", flags.NArg())
		return nil
	}
	f, err := os.Open(flags.Arg(0))
	if err != nil {
		return log.Errf(ctx, err, "Opening %s", flags.Arg(0))
	}
	defer f.Close()

	frame := uint64(0)
	err = trace.Read(ctx, f, func(ctx context.Context, r *api.Record) error {
		if verb.Frames.Empty() || verb.Frames.Contains(frame) {
			fmt.Fprintf(app.Stdout, "[%d] %v\n", frame, r)
		}
		if r.Flags().IsEndOfFrame() || gles.EndsFrame(r.Name()) {
			frame++
			if !verb.Frames.Empty() && verb.Frames.Region(frame) == frametrim.After {
				return errDone
			}
		}
		return nil
	})
	if err != nil && !fault.Is(err, errDone) {
		return log.Errf(ctx, err, "Reading %s", flags.Arg(0))
	}
	return nil
}
