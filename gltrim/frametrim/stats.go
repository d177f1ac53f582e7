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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "frametrim"

// Stats counts what a trimmer has seen.
type Stats struct {
	Calls     prometheus.Counter
	Unhandled prometheus.Counter
	Frames    prometheus.Counter
	Required  prometheus.Gauge
}

// newStats creates the trimmer metrics on reg. A nil reg leaves them
// unregistered.
func newStats(reg prometheus.Registerer) *Stats {
	f := promauto.With(reg)
	return &Stats{
		Calls: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Number of calls processed",
		}),
		Unhandled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unhandled_calls_total",
			Help:      "Number of calls with no state tracking",
		}),
		Frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Number of frame ends processed",
		}),
		Required: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "required_calls",
			Help:      "Number of calls in the trimmed trace",
		}),
	}
}
