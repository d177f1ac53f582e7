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

// Package frametrim drives a single pass over a call trace and collects the
// calls a selection of frames needs to replay from scratch.
package frametrim

import (
	"context"
	"sort"

	"github.com/google/frametrim/core/log"
	"github.com/google/frametrim/gltrim/api"
	"github.com/google/frametrim/gltrim/config"
	"github.com/google/frametrim/gltrim/gles"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Trimmer processes the calls of one trace in order.
type Trimmer struct {
	policy  config.Policy
	frames  Frames
	tracker *gles.Tracker
	stats   *Stats

	frame     uint64
	calls     uint64
	recorded  bool
	done      bool
	finalized bool
	// pendingSwap is the end of the last retained frame. It is only kept if
	// another frame is retained after it, or by the final swap policy.
	pendingSwap api.Call
	unhandled   map[string]bool
}

// New returns a trimmer that retains frames. Its metrics are registered on
// reg, which may be nil.
func New(policy config.Policy, frames Frames, reg prometheus.Registerer) *Trimmer {
	return &Trimmer{
		policy:    policy,
		frames:    frames,
		tracker:   gles.New(policy),
		stats:     newStats(reg),
		unhandled: map[string]bool{},
	}
}

// Stats returns the metrics of the trimmer.
func (t *Trimmer) Stats() *Stats { return t.stats }

// Frame returns the index of the frame the next call belongs to.
func (t *Trimmer) Frame() uint64 { return t.frame }

// Calls returns the number of calls processed.
func (t *Trimmer) Calls() uint64 { return t.calls }

// Done returns true once the last retained frame has ended. No later call
// can be required.
func (t *Trimmer) Done() bool { return t.done }

// Process updates the state with c, which must follow the previously
// processed call in the trace.
func (t *Trimmer) Process(ctx context.Context, c api.Call) error {
	if t.finalized {
		return errors.Errorf("call %v %s after finalize", c.ID(), c.Name())
	}
	if t.done {
		return nil
	}
	t.calls++
	t.stats.Calls.Inc()

	region := t.frames.Region(t.frame)
	if region == After {
		t.done = true
		return nil
	}
	if region == Inside && !t.tracker.Recording() {
		t.startRecording(ctx)
	}

	endsFrame := c.Flags().IsEndOfFrame() || gles.EndsFrame(c.Name())
	known, err := t.tracker.Handle(ctx, c)
	if err != nil {
		return errors.Wrapf(err, "call %v %s", c.ID(), c.Name())
	}
	if !known && !endsFrame {
		t.stats.Unhandled.Inc()
		if t.policy.WarnUnhandled && !t.unhandled[c.Name()] {
			log.W(log.V{"call": c.ID()}.Bind(ctx), "Unhandled call %s", c.Name())
		}
		t.unhandled[c.Name()] = true
	}
	if endsFrame {
		t.endFrame(ctx, c)
	}
	return nil
}

func (t *Trimmer) startRecording(ctx context.Context) {
	log.D(ctx, "Frame %d: start recording", t.frame)
	t.tracker.StartRecording(ctx)
	if t.pendingSwap != nil {
		t.tracker.Require(t.pendingSwap)
		t.pendingSwap = nil
	}
	t.recorded = true
}

func (t *Trimmer) endFrame(ctx context.Context, c api.Call) {
	t.stats.Frames.Inc()
	t.tracker.EndFrame(ctx)
	if t.tracker.Recording() {
		log.D(ctx, "Frame %d: stop recording", t.frame)
		t.tracker.StopRecording(ctx)
		t.pendingSwap = c
	}
	t.frame++
	if t.frames.Region(t.frame) == After {
		t.done = true
	}
}

// Finalize retains what the state at the end of the last retained frame
// needs. Later calls to Finalize do nothing.
func (t *Trimmer) Finalize(ctx context.Context) {
	if t.finalized {
		return
	}
	t.finalized = true
	if !t.recorded {
		log.W(ctx, "No frame of %v was found in the trace", t.frames)
		return
	}
	t.tracker.Finalize(ctx)
	if t.policy.KeepFinalSwap && t.pendingSwap != nil {
		t.tracker.Require(t.pendingSwap)
	}
}

// SortedCallIDs finalizes the trimmer and returns the ascending indices of
// the required calls.
func (t *Trimmer) SortedCallIDs(ctx context.Context) []api.CallID {
	t.Finalize(ctx)
	ids := t.tracker.Required().SortedIDs()
	t.stats.Required.Set(float64(len(ids)))
	return ids
}

// Unhandled returns the names of the calls that had no state tracking.
func (t *Trimmer) Unhandled() []string {
	out := make([]string, 0, len(t.unhandled))
	for n := range t.unhandled {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
