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

package comparison

import (
	"strings"
	"testing"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/typed"
)

func TestSummaryBuilder(t *testing.T) {
	t.Parallel()

	t.Run("type arguments", func(t *testing.T) {
		sum := NewSummaryBuilder("should.Equal", 10, "hi").Summary
		if diff := typed.Diff(sum.Comparison.TypeArguments, []string{"int", "string"}); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("because without args is literal", func(t *testing.T) {
		sum := NewSummaryBuilder("x").Because("100% {}").Summary
		if diff := typed.Diff(sum.Description, "100% {}"); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("because with args", func(t *testing.T) {
		sum := NewSummaryBuilder("x").Because("got %d", 3).Summary
		if diff := typed.Diff(sum.Description, "got 3"); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("actual and expected", func(t *testing.T) {
		sum := NewSummaryBuilder("x").Actual("a").Expected(uint8(3)).Summary
		want := []*failure.Finding{
			{Name: "Actual", Value: []string{`"a"`}},
			{Name: "Expected", Value: []string{"uint8(3)"}},
		}
		if diff := typed.Diff(sum.Findings, want); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("findingf splits lines", func(t *testing.T) {
		sum := NewSummaryBuilder("x").AddFindingf("Lines", "a\nb%s", "c").Summary
		if diff := typed.Diff(sum.Findings[0].Value, []string{"a", "bc"}); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("warn if long", func(t *testing.T) {
		sb := NewSummaryBuilder("x").Actual("short").WarnIfLong()
		if sb.Findings[0].Level != failure.FindingLogLevel_Error {
			t.Error("short value marked long")
		}
		sb.Expected(strings.Repeat("x", 40)).WarnIfLong()
		if sb.Findings[1].Level != failure.FindingLogLevel_Warn {
			t.Error("long value not marked long")
		}
		if !sb.WarnAboutLongOutput {
			t.Error("WarnAboutLongOutput not set")
		}
	})

	t.Run("nil summary is fixed", func(t *testing.T) {
		sb := &SummaryBuilder{}
		sb.Because("ok")
		if sb.Summary == nil || sb.Description != "ok" {
			t.Error("nil summary not fixed")
		}
	})
}

func TestSmartCmpDiff(t *testing.T) {
	t.Parallel()

	t.Run("short values have no diff", func(t *testing.T) {
		sum := NewSummaryBuilder("x").SmartCmpDiff(1, 2).Summary
		if len(sum.Findings) != 2 {
			t.Fatalf("expected 2 findings, got %d", len(sum.Findings))
		}
	})

	t.Run("long values get a diff", func(t *testing.T) {
		a := strings.Repeat("a", 50)
		b := strings.Repeat("a", 49) + "b"
		sum := NewSummaryBuilder("x").SmartCmpDiff(a, b).Summary
		diff := sum.FindingByName("Diff")
		if diff == nil {
			t.Fatal("missing Diff finding")
		}
		if diff.Type != failure.FindingTypeHint_CmpDiff {
			t.Errorf("wrong type hint: %d", diff.Type)
		}
	})

	t.Run("identical renderings without cmp difference", func(t *testing.T) {
		x, y := 1, 1
		sum := NewSummaryBuilder("x").SmartCmpDiff(&x, &y).Summary
		if sum.FindingByName("Diff") != nil {
			t.Fatal("unexpected Diff finding")
		}
	})

	t.Run("unexported fields do not panic", func(t *testing.T) {
		type private struct{ a string }
		sum := NewSummaryBuilder("x").SmartCmpDiff(private{strings.Repeat("a", 40)}, private{"b"}).Summary
		if sum.FindingByName("Diff") != nil {
			t.Fatal("unexpected Diff finding")
		}
	})
}

func TestTextDiffs(t *testing.T) {
	t.Parallel()

	t.Run("unified", func(t *testing.T) {
		sum := NewSummaryBuilder("x").AddUnifiedDiff("a\nb\nc\n", "a\nB\nc\n").Summary
		diff := sum.FindingByName("Diff")
		if diff == nil {
			t.Fatal("missing Diff finding")
		}
		joined := strings.Join(diff.Value, "\n")
		for _, want := range []string{"--- expected", "+++ actual", "-B", "+b"} {
			if !strings.Contains(joined, want) {
				t.Errorf("diff missing %q:\n%s", want, joined)
			}
		}
	})

	t.Run("inline", func(t *testing.T) {
		sum := NewSummaryBuilder("x").AddInlineDiff("hello world", "hello there").Summary
		diff := sum.FindingByName("Diff")
		if diff == nil {
			t.Fatal("missing Diff finding")
		}
		if !strings.Contains(diff.Value[0], "[-") || !strings.Contains(diff.Value[0], "{+") {
			t.Errorf("unexpected inline diff: %q", diff.Value[0])
		}
		if !strings.HasPrefix(diff.Value[0], "hello ") {
			t.Errorf("common prefix lost: %q", diff.Value[0])
		}
	})

	t.Run("equal strings add nothing", func(t *testing.T) {
		sum := NewSummaryBuilder("x").AddInlineDiff("a", "a").AddUnifiedDiff("a", "a").Summary
		if len(sum.Findings) != 0 {
			t.Errorf("unexpected findings: %v", sum.Findings)
		}
	})
}
