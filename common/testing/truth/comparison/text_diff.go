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

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// AddUnifiedDiff adds a "Diff" finding with a unified line diff between the
// expected and actual strings.
//
// Lines removed from `expected` are prefixed with "-", lines added in
// `actual` with "+". This is intended for long multi-line strings. No-op if
// the strings are equal.
func (sb *SummaryBuilder) AddUnifiedDiff(actual, expected string) *SummaryBuilder {
	sb.fixNilSummary()
	if actual == expected {
		return sb
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		// Only possible when writing to the internal buffer fails.
		return sb.AddFindingf("Diff", "<cannot compute diff: %s>", err)
	}
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Diff",
		Value: lines,
		Type:  failure.FindingTypeHint_UnifiedDiff,
	})
	return sb
}

// AddInlineDiff adds a "Diff" finding with a single-line character diff
// between expected and actual.
//
// Deleted runs are rendered as [-text-] and inserted runs as {+text+}. No-op
// if the strings are equal.
func (sb *SummaryBuilder) AddInlineDiff(actual, expected string) *SummaryBuilder {
	sb.fixNilSummary()
	if actual == expected {
		return sb
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-")
			buf.WriteString(d.Text)
			buf.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+")
			buf.WriteString(d.Text)
			buf.WriteString("+}")
		default:
			buf.WriteString(d.Text)
		}
	}
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Diff",
		Value: []string{buf.String()},
		Type:  failure.FindingTypeHint_InlineDiff,
	})
	return sb
}
