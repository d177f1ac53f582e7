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

// Package app provides the entry point of command line applications built
// from verbs.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/frametrim/core/log"
)

// ExitCode is the type for named return values from the application main entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for succesful exit.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code if something logs at a fatal severity.
	FatalExit
	// UsageExit is the exit code if the usage function was invoked.
	UsageExit
)

// Task is the signature of the main function handed to Run.
type Task func(ctx context.Context) error

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when the
	// application exits. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// UsageFooter is printed at the bottom of the usage text
	UsageFooter = ""
	// Version holds the version specification for the application.
	// If valid a command line option to report it will be added automatically.
	Version = VersionSpec{Major: -1}
	// Stdout and Stderr are where the application writes its normal and its
	// diagnostic output.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// VersionSpec is the structure for the version of an application.
type VersionSpec struct {
	// Major version, the version structure is in valid if <0
	Major int
	// Minor version, not used if <0
	Minor int
	// Point version, not used if <0
	Point int
	// The build identifier, not used if an empty string
	Build string
}

// IsValid reports true if the VersionSpec is valid, ie it has a Major version.
func (v VersionSpec) IsValid() bool {
	return v.Major >= 0
}

// Format implements fmt.Formatter to print the version.
func (v VersionSpec) Format(f fmt.State, c rune) {
	fmt.Fprint(f, v.Major)
	if v.Minor >= 0 {
		fmt.Fprint(f, ".", v.Minor)
	}
	if v.Point >= 0 {
		fmt.Fprint(f, ".", v.Point)
	}
	if v.Build != "" {
		fmt.Fprint(f, ":", v.Build)
	}
}

// AppFlags are the flags every application accepts before its verb.
type AppFlags struct {
	Log     LogFlags
	Version bool
}

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It parses the main command line arguments, builds a primary context that is
// cancelled on interrupt, runs the provided task and exits with the resulting
// ExitCode.
func Run(main Task) {
	ExitFuncForTesting(int(run(main, os.Args[1:])))
}

func run(main Task, args []string) (code ExitCode) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		default:
			panic(cause)
		}
	}()

	flags := &AppFlags{Log: logDefaults()}
	verbMainPrepare(flags)
	ctx := prepareContext(context.Background(), &flags.Log)

	if err := globalVerbs.Flags.Parse(args...); err != nil {
		usageForParse(ctx, err)
	}
	ctx = prepareContext(ctx, &flags.Log)

	if flags.Version {
		fmt.Fprint(Stdout, Name, " version ", Version, "\n")
		return SuccessExit
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := main(ctx); err != nil {
		log.F(ctx, true, "Main failed\nError: %v", err)
	}
	return SuccessExit
}
