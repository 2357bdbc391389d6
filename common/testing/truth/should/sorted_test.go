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
	"strings"
	"testing"
)

func TestBeSorted(t *testing.T) {
	t.Parallel()

	t.Run("empty", shouldPass(BeSorted([]int(nil))))
	t.Run("sorted", shouldPass(BeSorted([]int{1, 2, 2, 5})))
	t.Run("strings", shouldPass(BeSorted([]string{"a", "b"})))
	t.Run("unsorted", shouldFail(BeSorted([]int{1, 3, 2}),
		"should.BeSorted[int]", "element [2] 2 is after element [1] 3"))
}

func TestBeSortedFunc(t *testing.T) {
	t.Parallel()

	byLen := func(a, b string) int { return len(a) - len(b) }
	t.Run("sorted", shouldPass(BeSortedFunc(byLen)([]string{"a", "bb", "ccc"})))
	t.Run("unsorted", shouldFail(BeSortedFunc(byLen)([]string{"aa", "b"}),
		`element [1] "b" is after element [0] "aa"`))
	t.Run("case insensitive", shouldPass(BeSortedFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})([]string{"a", "B", "c"})))
}
