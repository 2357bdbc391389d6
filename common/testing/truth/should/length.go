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

// lengthOf returns the length of `actual`, which must be a string, slice,
// array, map, channel, or a pointer to an array.
func lengthOf(cmpName string, actual any) (int, *failure.Summary) {
	if actual == nil {
		return 0, nil
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	case reflect.Pointer:
		if v.Type().Elem().Kind() == reflect.Array {
			if v.IsNil() {
				return 0, nil
			}
			return v.Len(), nil
		}
	}
	return 0, comparison.NewSummaryBuilder(cmpName).
		Because("`%T` does not have a length", actual).
		Summary
}

// BeEmpty implements comparison.Func[any] and asserts that `actual` has a
// length of 0. Untyped nil, nil slices and nil maps are empty.
func BeEmpty(actual any) *failure.Summary {
	const cmpName = "should.BeEmpty"

	n, ret := lengthOf(cmpName, actual)
	if ret != nil || n == 0 {
		return ret
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).WarnIfLong().
		AddFindingf("Length", "%d", n).
		Summary
}

// NotBeEmpty implements comparison.Func[any] and asserts that `actual` has a
// non-zero length.
func NotBeEmpty(actual any) *failure.Summary {
	const cmpName = "should.NotBeEmpty"

	n, ret := lengthOf(cmpName, actual)
	if ret != nil || n > 0 {
		return ret
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).
		Summary
}

// BeNilOrEmpty implements comparison.Func[any] and asserts that `actual` is
// nil or has a length of 0.
//
// Unlike BeEmpty this also accepts nil pointers, interfaces and funcs.
func BeNilOrEmpty(actual any) *failure.Summary {
	const cmpName = "should.BeNilOrEmpty"

	if actual == nil {
		return nil
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func:
		if v.IsNil() {
			return nil
		}
	}
	n, ret := lengthOf(cmpName, actual)
	if ret != nil || n == 0 {
		return ret
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).WarnIfLong().
		AddFindingf("Length", "%d", n).
		Summary
}

// HaveLength returns a comparison.Func which asserts that `actual` has the
// given length.
//
// Works for strings, slices, arrays, maps and channels. Nested collections
// (e.g. [][]int) are measured on their outer dimension.
func HaveLength(expected int) comparison.Func[any] {
	const cmpName = "should.HaveLength"

	if expected < 0 {
		panic(fmt.Errorf("should.HaveLength: negative length %d", expected))
	}

	return func(actual any) *failure.Summary {
		n, ret := lengthOf(cmpName, actual)
		if ret != nil {
			return ret
		}
		if n == expected {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			AddFindingf("Actual length", "%d", n).
			AddFindingf("Expected length", "%d", expected).
			Summary
	}
}
