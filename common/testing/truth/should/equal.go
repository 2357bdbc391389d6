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
	"math"
	"reflect"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

func checkIsNaN[T comparable](cmpName string, expected T) comparison.Func[T] {
	val := reflect.ValueOf(expected)
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(val.Float()) {
			return func(T) *failure.Summary {
				return comparison.NewSummaryBuilder(cmpName, expected).
					Because("Cannot compare to float(NaN), use should.BeNaN instead.").
					Summary
			}
		}
	}
	return nil
}

// Equal returns a comparison.Func which checks if the actual value is equal to
// `expected` with `==`.
//
// For pointers this compares addresses; use should.Match or
// should.RecursivelyEqual to compare what they point to.
func Equal[T comparable](expected T) comparison.Func[T] {
	const cmpName = "should.Equal"

	if fn := checkIsNaN(cmpName, expected); fn != nil {
		return fn
	}

	return func(actual T) *failure.Summary {
		if actual == expected {
			return nil
		}

		ret := comparison.NewSummaryBuilder(cmpName, expected).
			SmartCmpDiff(actual, expected)
		if reflect.TypeFor[T]().Kind() == reflect.Pointer {
			ret.AddFindingf("Hint", "pointers are compared by address; did you want should.Match?")
		}
		return ret.Summary
	}
}

// NotEqual returns a comparison.Func which checks if the actual value is not
// equal to `expected` with `!=`.
func NotEqual[T comparable](expected T) comparison.Func[T] {
	const cmpName = "should.NotEqual"

	if fn := checkIsNaN(cmpName, expected); fn != nil {
		return fn
	}

	return func(actual T) *failure.Summary {
		if actual != expected {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).
			Summary
	}
}
