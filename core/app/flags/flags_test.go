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

package flags_test

import (
	"flag"
	"testing"
	"time"

	"github.com/google/frametrim/core/app/flags"
	"github.com/google/frametrim/core/assert"
	"github.com/google/frametrim/core/log"
)

type upper string

func (u *upper) String() string { return string(*u) }
func (u *upper) Set(v string) error {
	*u = upper("<" + v + ">")
	return nil
}

type Nested struct {
	Depth int `help:"how deep"`
}

type verbFlags struct {
	Nested
	Name    string        `help:"the name"`
	Verbose bool          `name:"v"`
	Count   uint64
	Wait    time.Duration
	Mine    upper
	Inner   Nested
	hidden  int
}

func TestBind(t *testing.T) {
	ctx := log.Testing(t)
	v := &verbFlags{Name: "default"}
	set := flags.Set{}
	set.Bind("", v, "")

	var names []string
	set.Raw.VisitAll(func(f *flag.Flag) { names = append(names, f.Name) })
	assert.For(ctx, "names").ThatSlice(names).Equals([]string{
		"count", "depth", "inner-depth", "mine", "name", "v", "wait"})

	err := set.Parse("-depth", "2", "-name", "x", "-v", "-count", "7",
		"-wait", "3s", "-mine", "m", "-inner-depth", "4", "rest")
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "depth").ThatInteger(v.Depth).Equals(2)
	assert.For(ctx, "name").ThatString(v.Name).Equals("x")
	assert.For(ctx, "v").ThatBoolean(v.Verbose).IsTrue()
	assert.For(ctx, "count").That(v.Count).Equals(uint64(7))
	assert.For(ctx, "wait").That(v.Wait).Equals(3 * time.Second)
	assert.For(ctx, "mine").ThatString(v.Mine).Equals("<m>")
	assert.For(ctx, "inner").ThatInteger(v.Inner.Depth).Equals(4)
	assert.For(ctx, "args").ThatSlice(set.Args()).Equals([]string{"rest"})
}

func TestParseErrors(t *testing.T) {
	ctx := log.Testing(t)
	set := flags.Set{}
	set.Bind("", &verbFlags{}, "")
	assert.For(ctx, "unknown").ThatError(set.Parse("-nope")).Failed()
	assert.For(ctx, "help").ThatError(set.Parse("-h")).HasCause(flag.ErrHelp)
}

func TestUsage(t *testing.T) {
	ctx := log.Testing(t)
	set := flags.Set{}
	assert.For(ctx, "empty").ThatBoolean(set.HasVisibleFlags()).IsFalse()
	set.Bind("", &verbFlags{Name: "default"}, "")
	assert.For(ctx, "visible").ThatBoolean(set.HasVisibleFlags()).IsTrue()
	usage := set.Usage()
	assert.For(ctx, "help").ThatString(usage).Contains("the name")
	assert.For(ctx, "default").ThatString(usage).Contains(`(default "default")`)
	assert.For(ctx, "depth").ThatString(usage).Contains("how deep")
}

func TestBindPanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bind of a slice did not panic")
		}
	}()
	set := flags.Set{}
	set.Bind("s", &[]string{}, "")
}
