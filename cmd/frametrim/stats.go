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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// printStats writes the value of every gathered counter and gauge to w,
// followed by the names of the calls the trimmer did not know.
func printStats(w io.Writer, g prometheus.Gatherer, unhandled []string) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering statistics")
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			fmt.Fprintf(tw, "%s\t%v\n", mf.GetName(), value)
		}
	}
	if len(unhandled) > 0 {
		fmt.Fprintf(tw, "unhandled\t%s\n", strings.Join(unhandled, ", "))
	}
	return tw.Flush()
}
