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
	"cmp"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/truth/represent"
)

func firstUnsorted[T any](actual []T, compare func(a, b T) int) int {
	for i := 1; i < len(actual); i++ {
		if compare(actual[i-1], actual[i]) > 0 {
			return i
		}
	}
	return -1
}

func unsortedSummary[T any](cmpName string, actual []T, idx int) *failure.Summary {
	var zero T
	return comparison.NewSummaryBuilder(cmpName, zero).
		Actual(actual).WarnIfLong().
		AddFindingf("Out of order",
			"element [%d] %s is after element [%d] %s",
			idx, represent.Value(actual[idx]), idx-1, represent.Value(actual[idx-1])).
		Summary
}

// BeSorted implements comparison.Func[[]T] and asserts that `actual` is in
// ascending order (equal neighbors are allowed).
func BeSorted[T cmp.Ordered](actual []T) *failure.Summary {
	if idx := firstUnsorted(actual, cmp.Compare[T]); idx >= 0 {
		return unsortedSummary("should.BeSorted", actual, idx)
	}
	return nil
}

// BeSortedFunc returns a comparison.Func which asserts that a slice is in
// ascending order according to `compare`, which follows the slices.SortFunc
// convention.
func BeSortedFunc[T any](compare func(a, b T) int) comparison.Func[[]T] {
	return func(actual []T) *failure.Summary {
		if idx := firstUnsorted(actual, compare); idx >= 0 {
			return unsortedSummary("should.BeSortedFunc", actual, idx)
		}
		return nil
	}
}
