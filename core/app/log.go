// Copyright (C) 2017 Google Inc.
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

package app

import (
	"context"

	"github.com/google/frametrim/core/log"
)

// LogFlags controls the logging of the application.
type LogFlags struct {
	Level log.Severity `help:"Set the minimum severity of logged messages"`
	Style log.Style    `help:"Set the style of logged messages (raw, brief, normal or detailed)"`
}

func logDefaults() LogFlags {
	return LogFlags{
		Level: log.Info,
		Style: log.Brief,
	}
}

// wrapHandler returns a handler that forwards to to and exits the application
// once a message asks for the process to stop.
func wrapHandler(to log.Handler) log.Handler {
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}

func prepareContext(ctx context.Context, flags *LogFlags) context.Context {
	ctx = log.PutTag(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Level))
	ctx = log.PutHandler(ctx, wrapHandler(flags.Style.Handler(writer())))
	return ctx
}

func writer() log.Writer {
	out, diag := log.To(Stdout), log.To(Stderr)
	return func(text string, s log.Severity) {
		if s >= log.Error {
			diag(text, s)
		} else {
			out(text, s)
		}
	}
}
