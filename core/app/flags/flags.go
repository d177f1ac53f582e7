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

// Package flags binds command line flags to the fields of verb structs.
package flags

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// Set is a set of flags bound to the fields of one or more values.
type Set struct {
	// Raw is the underlying flag set.
	Raw flag.FlagSet
}

// Bind uses reflection to bind flag values to value.
// It recurses into nested structures adding all exported leaf fields. The
// name of a field's flag is its lowercased field name, or the value of its
// name tag, prefixed by name and a dash. The help tag gives the usage text.
func (s *Set) Bind(name string, value interface{}, help string) {
	switch val := value.(type) {
	case flag.Value:
		s.Raw.Var(val, name, help)
		return
	case *bool:
		s.Raw.BoolVar(val, name, *val, help)
		return
	case *int:
		s.Raw.IntVar(val, name, *val, help)
		return
	case *uint64:
		s.Raw.Uint64Var(val, name, *val, help)
		return
	case *string:
		s.Raw.StringVar(val, name, *val, help)
		return
	case *time.Duration:
		s.Raw.DurationVar(val, name, *val, help)
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("Unhandled flag type: %v", rv.Type()))
	}
	e := rv.Elem()
	t := e.Type()
	for i := 0; i < e.NumField(); i++ {
		tf := t.Field(i)
		if tf.PkgPath != "" {
			continue // Unexported.
		}
		fname := strings.ToLower(tf.Name)
		if tf.Anonymous {
			fname = ""
		}
		if partial := tf.Tag.Get("name"); partial != "" {
			fname = partial
		}
		s.Bind(join(name, fname), e.Field(i).Addr().Interface(), tf.Tag.Get("help"))
	}
}

func join(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "-" + name
	}
}

// HasVisibleFlags returns true if the set has any bound flags.
func (s *Set) HasVisibleFlags() bool {
	result := false
	s.Raw.VisitAll(func(*flag.Flag) { result = true })
	return result
}

// Usage returns the usage string for the flags.
func (s *Set) Usage() string {
	result := ""
	s.Raw.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		if result != "" {
			result += "\n"
		}
		result += fmt.Sprintf("  -%s %s\n\t", fl.Name, name)
		result += usage
		result += dumpDefault(fl)
	})
	return result
}

func dumpDefault(fl *flag.Flag) string {
	switch fl.DefValue {
	case "", "false", "0":
		return ""
	}
	if getter, ok := fl.Value.(flag.Getter); ok {
		if _, isString := getter.Get().(string); isString {
			return fmt.Sprintf(" (default %q)", fl.DefValue)
		}
	}
	return fmt.Sprintf(" (default %v)", fl.DefValue)
}

// Parse processes the args to fill in the flags.
// Errors are returned rather than printed, flag.ErrHelp included.
func (s *Set) Parse(args ...string) error {
	s.Raw.Usage = func() {}
	s.Raw.SetOutput(io.Discard)
	return s.Raw.Parse(args)
}

// Args returns the unprocessed part of the command line passed to Parse.
func (s *Set) Args() []string {
	return s.Raw.Args()
}
