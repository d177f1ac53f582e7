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

package assert

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Assertion is a single assertion under construction. It collects rows that
// describe the values involved, which are only reported if the assertion
// fails.
type Assertion struct {
	title string
	rows  []string
	fatal bool
	to    Output
}

// Fatal makes a failure of the assertion stop the running test.
func (a *Assertion) Fatal() *Assertion {
	a.fatal = true
	return a
}

// pretty formats a value for a row. Strings and errors are quoted so that
// leading and trailing whitespace is visible.
func pretty(value interface{}) string {
	switch value := value.(type) {
	case error:
		return "`" + value.Error() + "`"
	case string:
		return "`" + value + "`"
	default:
		return fmt.Sprint(value)
	}
}

// row adds a row of tab separated cells: the key, the operator and the
// pretty printed values.
func (a *Assertion) row(key, op string, values ...interface{}) *Assertion {
	cells := make([]string, 0, len(values)+2)
	cells = append(cells, key, op)
	for _, v := range values {
		cells = append(cells, pretty(v))
	}
	a.rows = append(a.rows, strings.Join(cells, "\t"))
	return a
}

// Add appends a row holding key and its values.
func (a *Assertion) Add(key string, values ...interface{}) *Assertion {
	return a.row(key, "", values...)
}

// Got adds the standard "Got" row.
func (a *Assertion) Got(values ...interface{}) *Assertion {
	return a.row("Got", "", values...)
}

// Expect adds the standard "Expect" row, with op describing the comparison.
func (a *Assertion) Expect(op string, values ...interface{}) *Assertion {
	return a.row("Expect", op, values...)
}

// Compare adds both the "Got" and the "Expect" rows.
func (a *Assertion) Compare(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).Expect(op, expect...)
}

// Test reports the assertion if condition is false, and returns condition.
func (a *Assertion) Test(condition bool) bool {
	if !condition {
		a.Commit()
	}
	return condition
}

// Commit reports the title and the aligned rows to the output.
func (a *Assertion) Commit() {
	buf := &bytes.Buffer{}
	buf.WriteString(a.title)
	tabs := tabwriter.NewWriter(buf, 1, 4, 1, ' ', 0)
	for _, r := range a.rows {
		fmt.Fprintf(tabs, "\n    %s", r)
	}
	tabs.Flush()
	if a.fatal {
		a.to.Fatal(buf.String())
	} else {
		a.to.Error(buf.String())
	}
}
