// Copyright 2024 The LUCI Authors.
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

package should

import (
	"context"
	"fmt"
	"time"

	"go.chromium.org/deepcheck/common/clock"
	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

func timeSummary(cmpName string, actual, expected time.Time) *comparison.SummaryBuilder {
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).
		Expected(expected).
		AddFindingf("Diff", "actual is %s expected", durationString(actual.Sub(expected)))
}

func durationString(d time.Duration) string {
	if d < 0 {
		return fmt.Sprintf("%s before", -d)
	}
	return fmt.Sprintf("%s after", d)
}

// HappenBefore returns a comparison.Func which checks that an actual time is
// strictly before `target`.
func HappenBefore(target time.Time) comparison.Func[time.Time] {
	const cmpName = "should.HappenBefore"
	return func(actual time.Time) *failure.Summary {
		if actual.Before(target) {
			return nil
		}
		sb := timeSummary(cmpName, actual, target)
		if actual.Equal(target) {
			sb.Because("times are equal")
		}
		return sb.Summary
	}
}

// HappenOnOrBefore returns a comparison.Func which checks that an actual time
// is before or equal to `target`.
func HappenOnOrBefore(target time.Time) comparison.Func[time.Time] {
	const cmpName = "should.HappenOnOrBefore"
	return func(actual time.Time) *failure.Summary {
		if !actual.After(target) {
			return nil
		}
		return timeSummary(cmpName, actual, target).Summary
	}
}

// HappenAfter returns a comparison.Func which checks that an actual time is
// strictly after `target`.
func HappenAfter(target time.Time) comparison.Func[time.Time] {
	const cmpName = "should.HappenAfter"
	return func(actual time.Time) *failure.Summary {
		if actual.After(target) {
			return nil
		}
		sb := timeSummary(cmpName, actual, target)
		if actual.Equal(target) {
			sb.Because("times are equal")
		}
		return sb.Summary
	}
}

// HappenOnOrAfter returns a comparison.Func which checks that an actual time
// is after or equal to `target`.
func HappenOnOrAfter(target time.Time) comparison.Func[time.Time] {
	const cmpName = "should.HappenOnOrAfter"
	return func(actual time.Time) *failure.Summary {
		if !actual.Before(target) {
			return nil
		}
		return timeSummary(cmpName, actual, target).Summary
	}
}

// HappenOnOrBetween returns a comparison.Func which checks that an actual time
// is within the closed range [lower, upper].
//
// Panics if lower is after upper.
func HappenOnOrBetween(lower, upper time.Time) comparison.Func[time.Time] {
	const cmpName = "should.HappenOnOrBetween"
	if lower.After(upper) {
		panic(fmt.Errorf("%s: lower bound %s is after upper bound %s", cmpName, lower, upper))
	}
	return func(actual time.Time) *failure.Summary {
		if !actual.Before(lower) && !actual.After(upper) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).
			AddFindingf("Expected", "[%s, %s]", lower, upper).
			Summary
	}
}

// HappenWithin returns a comparison.Func which checks that an actual time is
// within `delta` of `target`, in either direction.
//
// Panics if delta is negative.
func HappenWithin(target time.Time, delta time.Duration) comparison.Func[time.Time] {
	const cmpName = "should.HappenWithin"
	if delta < 0 {
		panic(fmt.Errorf("%s: negative delta %s", cmpName, delta))
	}
	return func(actual time.Time) *failure.Summary {
		diff := actual.Sub(target)
		if diff >= -delta && diff <= delta {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).
			AddFindingf("Expected", "%s ± %s", target, delta).
			AddFindingf("Diff", "actual is %s expected", durationString(diff)).
			Summary
	}
}

// BeInCurrentYearMonth implements comparison.Func[time.Time] and checks that
// an actual time is in the same year and month as the system clock's current
// time, in the actual time's location.
func BeInCurrentYearMonth(actual time.Time) *failure.Summary {
	return BeInCurrentYearMonthAt(context.Background())(actual)
}

// BeInCurrentYearMonthAt is BeInCurrentYearMonth, with the current time read
// from the clock in `ctx` (see go.chromium.org/deepcheck/common/clock).
func BeInCurrentYearMonthAt(ctx context.Context) comparison.Func[time.Time] {
	const cmpName = "should.BeInCurrentYearMonth"
	return func(actual time.Time) *failure.Summary {
		now := clock.Now(ctx).In(actual.Location())
		if actual.Year() == now.Year() && actual.Month() == now.Month() {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).
			AddFindingf("Expected", "%d-%02d", now.Year(), now.Month()).
			Summary
	}
}
