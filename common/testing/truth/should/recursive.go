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
	"github.com/dustin/go-humanize/english"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/truth/recursive"
)

// compareRecursively runs the comparison, turning configuration errors into a
// failure.
func compareRecursively(sb *comparison.SummaryBuilder, actual, expected any, opts []recursive.Option) (*recursive.Configuration, []recursive.Difference, *failure.Summary) {
	cfg := recursive.NewConfiguration(opts...)
	diffs, err := cfg.Compare(actual, expected)
	if err != nil {
		return nil, nil, sb.
			Because("invalid recursive comparison configuration").
			AddFindingf("Error", "%s", err).
			Summary
	}
	return cfg, diffs, nil
}

func recursivelyEqual(sb *comparison.SummaryBuilder, actual, expected any, opts []recursive.Option) *failure.Summary {
	cfg, diffs, fail := compareRecursively(sb, actual, expected, opts)
	if fail != nil || len(diffs) == 0 {
		return fail
	}
	report := recursive.Report{
		Actual:      actual,
		Expected:    expected,
		Differences: diffs,
		Config:      cfg,
	}
	return sb.
		Because("found %s", english.Plural(len(diffs), "difference", "differences")).
		AddRecursiveDiff(report.Lines()).
		Summary
}

func notRecursivelyEqual(sb *comparison.SummaryBuilder, actual, expected any, opts []recursive.Option) *failure.Summary {
	cfg, diffs, fail := compareRecursively(sb, actual, expected, opts)
	if fail != nil || len(diffs) > 0 {
		return fail
	}
	report := recursive.Report{
		Actual:   actual,
		Expected: expected,
		Config:   cfg,
		Negated:  true,
	}
	return sb.
		Because("actual and expected are recursively equal").
		AddRecursiveDiff(report.Lines()).
		Summary
}

// RecursivelyEqual returns a comparison.Func which compares the actual value
// to `expected` field by field (see package recursive).
//
// Unlike should.Match, the comparison can be tuned with recursive.Options,
// e.g. to ignore some fields or the order of some slices:
//
//	assert.That(t, got, should.RecursivelyEqual(want,
//	  recursive.IgnoringFields("id"),
//	  recursive.IgnoringCollectionOrderInFields("tags")))
func RecursivelyEqual[T any](expected T, opts ...recursive.Option) comparison.Func[T] {
	return func(actual T) *failure.Summary {
		return recursivelyEqual(comparison.NewSummaryBuilder("should.RecursivelyEqual", expected),
			actual, expected, opts)
	}
}

// RecursivelyEqualTo is RecursivelyEqual for values of different types, e.g.
// a domain object and its DTO. Use it with assert.Loosely.
func RecursivelyEqualTo(expected any, opts ...recursive.Option) comparison.Func[any] {
	return func(actual any) *failure.Summary {
		return recursivelyEqual(comparison.NewSummaryBuilder("should.RecursivelyEqualTo"),
			actual, expected, opts)
	}
}

// NotRecursivelyEqual returns a comparison.Func which checks that the actual
// value differs from `expected` when compared field by field.
func NotRecursivelyEqual[T any](expected T, opts ...recursive.Option) comparison.Func[T] {
	return func(actual T) *failure.Summary {
		return notRecursivelyEqual(comparison.NewSummaryBuilder("should.NotRecursivelyEqual", expected),
			actual, expected, opts)
	}
}

// NotRecursivelyEqualTo is NotRecursivelyEqual for values of different types.
func NotRecursivelyEqualTo(expected any, opts ...recursive.Option) comparison.Func[any] {
	return func(actual any) *failure.Summary {
		return notRecursivelyEqual(comparison.NewSummaryBuilder("should.NotRecursivelyEqualTo"),
			actual, expected, opts)
	}
}
