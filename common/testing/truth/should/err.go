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
	"fmt"
	"strings"

	"go.chromium.org/deepcheck/common/errors"
	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// ErrLikeString returns a comparison.Func which checks that an error is not
// nil and that its Error() contains `substring`.
func ErrLikeString(substring string) comparison.Func[error] {
	const cmpName = "should.ErrLikeString"

	if substring == "" {
		panic(fmt.Errorf("%s: empty substring matches every error, use should.NotBeNil", cmpName))
	}

	return func(actual error) *failure.Summary {
		if actual == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("error is nil").
				AddFindingf("Substring", "%q", substring).
				Summary
		}
		if strings.Contains(actual.Error(), substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("error text is missing substring").
			Actual(actual).WarnIfLong().
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// ErrLikeError returns a comparison.Func which checks that an error matches
// `target` with errors.Is.
//
// A nil target checks that the error is nil.
func ErrLikeError(target error) comparison.Func[error] {
	const cmpName = "should.ErrLikeError"

	return func(actual error) *failure.Summary {
		if target == nil {
			if actual == nil {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Because("expected no error").
				Actual(actual).WarnIfLong().
				Summary
		}
		if errors.Is(actual, target) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("error does not match target").
			Actual(actual).WarnIfLong().
			Expected(target).WarnIfLong().
			Summary
	}
}

// ErrLike returns a comparison.Func which checks an error against `target`:
//
//   - nil: the error must be nil,
//   - string: see ErrLikeString,
//   - error: see ErrLikeError.
//
// Panics for any other type of target.
func ErrLike(target any) comparison.Func[error] {
	switch x := target.(type) {
	case nil:
		return ErrLikeError(nil)
	case string:
		return ErrLikeString(x)
	case error:
		return ErrLikeError(x)
	}
	panic(fmt.Errorf("should.ErrLike: target must be nil, string or error, got %T", target))
}
