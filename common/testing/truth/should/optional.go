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
	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// BePresent asserts that the optional value `actual` is set (i.e. not nil).
func BePresent[T any](actual *T) *failure.Summary {
	if actual != nil {
		return nil
	}
	var zero T
	return comparison.NewSummaryBuilder("should.BePresent", zero).
		Because("expected a value, but it was absent").
		Summary
}

// BeAbsent asserts that the optional value `actual` is not set (i.e. nil).
func BeAbsent[T any](actual *T) *failure.Summary {
	if actual == nil {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeAbsent", *actual).
		Because("expected no value").
		Actual(*actual).
		Summary
}

// HaveValueSatisfying returns a comparison.Func which checks that an optional
// value is present and that its value satisfies all of `requirements`.
//
// Panics if any requirement is nil.
func HaveValueSatisfying[T any](requirements ...comparison.Func[T]) comparison.Func[*T] {
	const cmpName = "should.HaveValueSatisfying"
	checkRequirements(cmpName, requirements)

	return func(actual *T) *failure.Summary {
		if actual == nil {
			var zero T
			return comparison.NewSummaryBuilder(cmpName, zero).
				Because("expected a value, but it was absent").
				Summary
		}
		return runRequirements(cmpName, *actual, requirements)
	}
}
