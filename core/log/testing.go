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

package log

import "context"

// Testing returns a context whose log messages are reported to t. Messages
// of Error severity fail the test and Fatal messages stop it.
func Testing(t delegate) context.Context {
	return SubTest(context.Background(), t)
}

// SubTest returns ctx with its log messages reported to t instead. It is
// intended for sub-tests:
//
//	ctx := log.Testing(t)
//	for _, test := range tests {
//	  t.Run(test.name, func(t *testing.T) {
//	    test.run(log.SubTest(ctx, t))
//	  })
//	}
func SubTest(ctx context.Context, t delegate) context.Context {
	if named, ok := t.(interface{ Name() string }); ok {
		ctx = PutTag(ctx, named.Name())
	}
	return PutHandler(ctx, TestHandler(t, Brief))
}

// TestHandler returns a Handler that prints messages with the style s and
// reports them to t according to their severity.
func TestHandler(t delegate, s Style) Handler {
	if t == nil {
		panic("delegate cannot be nil")
	}
	return NewHandler(func(m *Message) { report(t, m.Severity)(s.Print(m)) }, nil)
}

func report(t delegate, s Severity) func(...interface{}) {
	switch {
	case s >= Fatal:
		return t.Fatal
	case s >= Error:
		return t.Error
	default:
		return t.Log
	}
}

// delegate is the subset of testing.TB used to report messages.
type delegate interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}
