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
	"reflect"
	"slices"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/truth/represent"
)

// Contain returns a comparison.Func which checks that a slice contains
// `target`.
func Contain[T comparable](target T) comparison.Func[[]T] {
	const cmpName = "should.Contain"

	return func(actual []T) *failure.Summary {
		if slices.Contains(actual, target) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Actual(actual).WarnIfLong().
			AddFindingf("Missing", "%s", represent.Value(target)).
			Summary
	}
}

// NotContain returns a comparison.Func which checks that a slice contains
// none of `targets`.
//
// On failure, the targets which were found are reported.
func NotContain[T comparable](targets ...T) comparison.Func[[]T] {
	const cmpName = "should.NotContain"

	var zero T
	return func(actual []T) *failure.Summary {
		var found []T
		for _, target := range targets {
			if slices.Contains(actual, target) && !slices.Contains(found, target) {
				found = append(found, target)
			}
		}
		if len(found) == 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, zero).
			Actual(actual).WarnIfLong().
			AddFindingf("Found", "%s", represent.Value(found)).
			Summary
	}
}

// ContainAnyOf returns a comparison.Func which checks that a slice contains
// at least one of `targets`.
func ContainAnyOf[T comparable](targets ...T) comparison.Func[[]T] {
	const cmpName = "should.ContainAnyOf"

	var zero T
	return func(actual []T) *failure.Summary {
		for _, target := range targets {
			if slices.Contains(actual, target) {
				return nil
			}
		}
		return comparison.NewSummaryBuilder(cmpName, zero).
			Actual(actual).WarnIfLong().
			AddFindingf("Expected any of", "%s", represent.Value(targets)).
			Summary
	}
}

// ContainKey returns a comparison.Func which checks that a map has the key
// `key`.
//
// The map type is only known at comparison time, so this is a
// comparison.Func[any]; use it with assert.Loosely or check.Loosely.
func ContainKey[K comparable](key K) comparison.Func[any] {
	const cmpName = "should.ContainKey"

	return func(actual any) *failure.Summary {
		v := reflect.ValueOf(actual)
		if v.Kind() != reflect.Map {
			return comparison.NewSummaryBuilder(cmpName, key).
				Because("`%T` is not a map", actual).
				Summary
		}
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(v.Type().Key()) {
			return comparison.NewSummaryBuilder(cmpName, key).
				Because("key of type `%T` cannot be used with `%T`", key, actual).
				Summary
		}
		if v.MapIndex(kv).IsValid() {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, key).
			Actual(actual).WarnIfLong().
			AddFindingf("Missing key", "%s", represent.Value(key)).
			Summary
	}
}
