// Copyright 2015 The LUCI Authors.
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

// Package clock is an interface to the current time, bound to a Context.
//
// The time-sensitive assertions in this module read the time through this
// package, so tests can pin it with the testclock package.
package clock

import (
	"context"
	"time"
)

// Clock returns the current time.
//
// The standard clock is the system clock, which falls through to the system
// time library. testclock.TestClock is available to fix the time in tests.
type Clock interface {
	// Returns the current time (see time.Now).
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// GetSystemClock returns a Clock whose method calls directly use Go's "time"
// library.
func GetSystemClock() Clock {
	return systemClock{}
}

var clockKey = "clock.Clock"

// Set creates a new Context using the supplied Clock.
func Set(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, &clockKey, c)
}

// Get returns the Clock set in the supplied Context, defaulting to the system
// clock if none is set.
func Get(ctx context.Context) Clock {
	if c, ok := ctx.Value(&clockKey).(Clock); ok && c != nil {
		return c
	}
	return GetSystemClock()
}

// Now calls Clock.Now on the Clock instance stored in the supplied Context.
func Now(ctx context.Context) time.Time {
	return Get(ctx).Now()
}

// Since is an equivalent of time.Since.
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}
