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

// Package testclock implements a Clock whose time only moves when told to.
package testclock

import (
	"context"
	"sync"
	"time"

	"go.chromium.org/deepcheck/common/clock"
)

// TestTimeUTC is an arbitrary time point in UTC for testing.
var TestTimeUTC = time.Date(1, time.February, 3, 4, 5, 6, 7, time.UTC)

// TestRecentTimeUTC is like TestTimeUTC, but in the recent past.
var TestRecentTimeUTC = time.Date(2016, time.February, 3, 4, 5, 6, 7000, time.UTC)

// TestRecentTimeLocal is TestRecentTimeUTC in the 'Local' time zone.
var TestRecentTimeLocal = time.Date(2016, time.February, 3, 4, 5, 6, 7000, time.Local)

// TestClock is a Clock interface with additional methods to help instrument it.
type TestClock interface {
	clock.Clock

	// Set sets the test clock's time.
	Set(time.Time)
	// Add advances the test clock's time.
	Add(time.Duration)
}

type testClock struct {
	sync.Mutex
	now time.Time
}

var _ TestClock = (*testClock)(nil)

// New returns a TestClock instance set at the specified time.
func New(now time.Time) TestClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.Lock()
	defer c.Unlock()
	c.now = t
}

func (c *testClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.now = c.now.Add(d)
}

// UseTime instantiates a TestClock and returns a Context that is configured to
// use that clock, as well as the instantiated clock.
func UseTime(ctx context.Context, now time.Time) (context.Context, TestClock) {
	tc := New(now)
	return clock.Set(ctx, tc), tc
}
