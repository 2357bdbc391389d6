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

package typed

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("equal", func(t *testing.T) {
		if diff := Diff(10, 10); diff != "" {
			t.Errorf("unexpected diff: %s", diff)
		}
	})

	t.Run("unequal", func(t *testing.T) {
		// go-cmp randomizes the whitespace in its output.
		diff := strings.Join(strings.Fields(Diff("a", "b")), "")
		if !strings.Contains(diff, `-"a"`) || !strings.Contains(diff, `+"b"`) {
			t.Errorf("diff is not -want +got: %s", diff)
		}
	})

	t.Run("protos use registry options", func(t *testing.T) {
		a, _ := structpb.NewValue("hello")
		b, _ := structpb.NewValue("hello")
		if diff := Diff(a, b); diff != "" {
			t.Errorf("unexpected diff: %s", diff)
		}
	})

	t.Run("funcs compare by pointer", func(t *testing.T) {
		type withFunc struct{ F func() }
		fn := func() {}
		if diff := Diff(withFunc{fn}, withFunc{fn}); diff != "" {
			t.Errorf("unexpected diff: %s", diff)
		}
	})
}

func TestGot(t *testing.T) {
	t.Parallel()

	got := []int{3, 1, 2}
	if diff := Got(got).Want([]int{1, 2, 3}).Diff(); diff == "" {
		t.Error("expected a diff for different order")
	}
	sorted := cmpopts.SortSlices(func(a, b int) bool { return a < b })
	if diff := Got(got).Options(sorted).Want([]int{1, 2, 3}).Diff(); diff != "" {
		t.Errorf("unexpected diff: %s", diff)
	}
}
