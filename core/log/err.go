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

import (
	"context"
	"fmt"
)

// wrapped is an error that carries the message it was created with and the
// error that caused it.
type wrapped struct {
	msg   *Message
	cause error
}

// Cause returns the wrapped error, so errors.Cause can see through it.
func (e *wrapped) Cause() error { return e.cause }

// Unwrap supports errors.Is and errors.As.
func (e *wrapped) Unwrap() error { return e.cause }

func (e *wrapped) Error() string {
	if e.cause == nil {
		return e.msg.Text
	}
	return fmt.Sprintf("%v\n   Cause: %v", e.msg.Text, e.cause)
}

// Err returns an error holding msg, stamped with the logger's tag, trace and
// values, that wraps cause. The error is not logged.
func (l *Logger) Err(cause error, msg string) error {
	return &wrapped{l.Message(Error, false, msg), cause}
}

// Errf is Err with a printf-style message.
func (l *Logger) Errf(cause error, format string, args ...interface{}) error {
	return l.Err(cause, fmt.Sprintf(format, args...))
}

// Err returns an error holding msg and the logging information of ctx that
// wraps cause.
func Err(ctx context.Context, cause error, msg string) error {
	return From(ctx).Err(cause, msg)
}

// Errf is Err with a printf-style message.
func Errf(ctx context.Context, cause error, format string, args ...interface{}) error {
	return From(ctx).Errf(cause, format, args...)
}
