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
	"os"
	"path/filepath"
	"strings"

	"github.com/google/frametrim/core/app"
	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/config"
	"github.com/google/frametrim/gltrim/frametrim"
	"github.com/google/frametrim/gltrim/trace"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type trimVerb struct{ TrimFlags }

func init() {
	verb := &trimVerb{}
	app.AddVerb(&app.Verb{
		Name:       "trim",
		ShortHelp:  "Trims a trace to the calls the requested frames depend on",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *trimVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one trace file expected, got %d", flags.NArg())
		return nil
	}
	if verb.Frames.Empty() {
		app.Usage(ctx, "No frames selected, use -frames")
		return nil
	}

	policy, err := config.Load(verb.Config)
	if err != nil {
		return log.Err(ctx, err, "Loading the trimming policy")
	}

	input := flags.Arg(0)
	output := verb.Out
	if output == "" {
		output = defaultOutput(input)
	}
	if filepath.Clean(output) == filepath.Clean(input) {
		return errors.Errorf("output %s would overwrite the trace being trimmed", output)
	}

	reg := prometheus.NewRegistry()
	trimmer := frametrim.New(policy, verb.Frames, reg)
	ids, err := trimFile(ctx, trimmer, input)
	if err != nil {
		return err
	}

	count, err := copyFile(ctx, input, output, ids)
	if err != nil {
		return err
	}
	log.I(ctx, "Wrote %d calls to %s", count, output)

	if verb.Stats {
		return printStats(app.Stdout, reg, trimmer.Unhandled())
	}
	return nil
}

// defaultOutput returns trace.ext as trace.trimmed.ext.
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".trimmed" + ext
}

func trimFile(ctx context.Context, t *frametrim.Trimmer, path string) ([]api.CallID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, log.Errf(ctx, err, "Opening %s", path)
	}
	defer f.Close()
	ids, err := frametrim.Trim(ctx, t, f)
	if err != nil {
		return nil, log.Errf(ctx, err, "Trimming %s", path)
	}
	return ids, nil
}

func copyFile(ctx context.Context, input, output string, ids []api.CallID) (int, error) {
	in, err := os.Open(input)
	if err != nil {
		return 0, log.Errf(ctx, err, "Opening %s", input)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return 0, log.Errf(ctx, err, "Creating %s", output)
	}
	count, err := trace.Copy(ctx, in, out, ids)
	if err != nil {
		out.Close()
		os.Remove(output)
		return 0, log.Errf(ctx, err, "Writing %s", output)
	}
	if err := out.Close(); err != nil {
		return 0, log.Errf(ctx, err, "Closing %s", output)
	}
	return count, nil
}
