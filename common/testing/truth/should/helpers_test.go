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
	"testing"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

func render(res *failure.Summary) string {
	return comparison.RenderCLI{Verbose: true}.Summary("", res)
}

// shouldPass returns a subtest which fails if `res` is not nil.
func shouldPass(res *failure.Summary) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if res != nil {
			t.Errorf("expected comparison to pass, got:\n%s", render(res))
		}
	}
}

// shouldFail returns a subtest which fails if `res` is nil, or if its
// verbose rendering is missing any of `expectedParts`.
func shouldFail(res *failure.Summary, expectedParts ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if res == nil {
			t.Fatal("expected comparison to fail, but it passed")
		}
		rendered := render(res)
		for _, part := range expectedParts {
			if !strings.Contains(rendered, part) {
				t.Errorf("rendered failure is missing %q:\n%s", part, rendered)
			}
		}
	}
}

func mustPanicLike(t *testing.T, substring string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substring) {
			t.Fatalf("panic %q does not contain %q", msg, substring)
		}
	}()
	fn()
}
