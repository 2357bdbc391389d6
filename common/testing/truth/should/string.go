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
	"regexp"
	"strings"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// stringCheck builds the string comparisons below, which all report the
// actual value plus the operand under `operandName`.
func stringCheck(cmpName, operandName, operand string, pass func(actual string) bool) comparison.Func[string] {
	return func(actual string) *failure.Summary {
		if pass(actual) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			AddFindingf(operandName, "%q", operand).
			Summary
	}
}

// ContainSubstring returns a comparison.Func which checks to see if a string
// contains `substr`.
func ContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.ContainSubstring", "Substring", substr, func(actual string) bool {
		return strings.Contains(actual, substr)
	})
}

// NotContainSubstring returns a comparison.Func which checks to see if a
// string does not contain `substr`.
func NotContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.NotContainSubstring", "Substring", substr, func(actual string) bool {
		return !strings.Contains(actual, substr)
	})
}

// HavePrefix returns a comparison.Func which checks to see if a string starts
// with `prefix`.
func HavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.HavePrefix", "Prefix", prefix, func(actual string) bool {
		return strings.HasPrefix(actual, prefix)
	})
}

// NotHavePrefix returns a comparison.Func which checks to see if a string does
// not start with `prefix`.
func NotHavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.NotHavePrefix", "Prefix", prefix, func(actual string) bool {
		return !strings.HasPrefix(actual, prefix)
	})
}

// HaveSuffix returns a comparison.Func which checks to see if a string ends
// with `suffix`.
func HaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.HaveSuffix", "Suffix", suffix, func(actual string) bool {
		return strings.HasSuffix(actual, suffix)
	})
}

// NotHaveSuffix returns a comparison.Func which checks to see if a string does
// not end with `suffix`.
func NotHaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.NotHaveSuffix", "Suffix", suffix, func(actual string) bool {
		return !strings.HasSuffix(actual, suffix)
	})
}

// MatchRegexp returns a comparison.Func which checks that a string contains a
// match of the regular expression `pattern`.
//
// An invalid pattern makes every comparison fail with the compile error.
func MatchRegexp(pattern string) comparison.Func[string] {
	const cmpName = "should.MatchRegexp"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(string) *failure.Summary {
			return comparison.NewSummaryBuilder(cmpName).
				Because("invalid regexp %q: %s", pattern, err).
				Summary
		}
	}
	return stringCheck(cmpName, "Pattern", pattern, re.MatchString)
}

// EqualText returns a comparison.Func which checks that a string equals
// `expected`, and on failure shows a diff of the two: a unified line diff for
// multi-line text, an inline character diff otherwise.
func EqualText(expected string) comparison.Func[string] {
	const cmpName = "should.EqualText"

	return func(actual string) *failure.Summary {
		if actual == expected {
			return nil
		}
		sb := comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong()
		if strings.Contains(actual, "\n") || strings.Contains(expected, "\n") {
			sb.AddUnifiedDiff(actual, expected)
		} else {
			sb.AddInlineDiff(actual, expected)
		}
		return sb.Summary
	}
}
