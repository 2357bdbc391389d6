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
	"reflect"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

func checkRequirements[T any](cmpName string, requirements []comparison.Func[T]) {
	for i, req := range requirements {
		if req == nil {
			panic(fmt.Errorf("%s: the requirements must not be nil (requirement %d)", cmpName, i))
		}
	}
}

// runRequirements applies every requirement to `value`, merging the failures
// into a single summary named `cmpName`.
func runRequirements[T any](cmpName string, value T, requirements []comparison.Func[T]) *failure.Summary {
	var sb *comparison.SummaryBuilder
	for i, req := range requirements {
		sub := req(value)
		if sub == nil {
			continue
		}
		if sb == nil {
			sb = comparison.NewSummaryBuilder(cmpName, value).
				Because("value does not satisfy the requirements")
		}
		sb.AddFindingf(fmt.Sprintf("Requirement %d", i),
			"%s", comparison.RenderCLI{Verbose: true}.Summary("  ", sub))
	}
	if sb == nil {
		return nil
	}
	return sb.Summary
}

// BeInstanceOf returns a comparison.Func which checks that the dynamic type of
// the actual value is T, or implements T when T is an interface.
func BeInstanceOf[T any]() comparison.Func[any] {
	return MatchType[T]()
}

// MatchType returns a comparison.Func which checks that the actual value is a
// T (see BeInstanceOf), and then that the T satisfies all of `requirements`.
//
// Panics if any requirement is nil.
//
// Example:
//
//	check.That(t, err, should.MatchType[*MyError](func(e *MyError) *failure.Summary {
//	  return should.Equal(404)(e.Code)
//	}))
func MatchType[T any](requirements ...comparison.Func[T]) comparison.Func[any] {
	const cmpName = "should.MatchType"
	checkRequirements(cmpName, requirements)

	expectedType := reflect.TypeFor[T]()
	return func(actual any) *failure.Summary {
		val, ok := actual.(T)
		if !ok {
			sb := comparison.NewSummaryBuilder(cmpName)
			sb.Comparison.TypeArguments = []string{expectedType.String()}
			return sb.
				Because("actual is not an instance of %s", expectedType).
				Actual(actual).
				AddFindingf("Actual type", "%s", typeString(actual)).
				AddFindingf("Expected type", "%s", expectedType).
				Summary
		}
		return runRequirements(cmpName, val, requirements)
	}
}

func typeString(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
