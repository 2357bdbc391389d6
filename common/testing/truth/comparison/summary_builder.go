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
	"fmt"
	"strings"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/truth/represent"
)

// longThreshold is the number of characters in a single-line finding value
// above which WarnIfLong considers the value long.
const longThreshold = 30

// SummaryBuilder builds a failure.Summary with a fluent interface.
//
// Example:
//
//	return comparison.NewSummaryBuilder("should.Equal", expected).
//	  Actual(actual).
//	  Expected(expected).
//	  Summary
type SummaryBuilder struct {
	*failure.Summary
}

// NewSummaryBuilder makes a new SummaryBuilder for a comparison named
// `comparisonName`.
//
// typeArgs are rendered with %T and are the type arguments of the generic
// comparison function (if any), e.g. `expected` for `should.Equal[T]`.
func NewSummaryBuilder(comparisonName string, typeArgs ...any) *SummaryBuilder {
	ret := &SummaryBuilder{&failure.Summary{
		Comparison: &failure.Comparison{Name: comparisonName},
	}}
	if len(typeArgs) > 0 {
		ret.Comparison.TypeArguments = make([]string, len(typeArgs))
		for i, typ := range typeArgs {
			ret.Comparison.TypeArguments[i] = fmt.Sprintf("%T", typ)
		}
	}
	return ret
}

func (sb *SummaryBuilder) fixNilSummary() {
	if sb.Summary == nil {
		sb.Summary = &failure.Summary{}
	}
}

// Because sets the description of the failure.
//
// The format is only interpreted when args are given, so literal '%' and
// "{}" sequences survive.
func (sb *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	sb.fixNilSummary()
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	sb.Description = format
	return sb
}

// Actual adds a finding named "Actual" containing `actual`, rendered with
// represent.Value.
func (sb *SummaryBuilder) Actual(actual any) *SummaryBuilder {
	return sb.AddFormattedFinding("Actual", represent.Value(actual))
}

// Expected adds a finding named "Expected" containing `expected`, rendered
// with represent.Value.
func (sb *SummaryBuilder) Expected(expected any) *SummaryBuilder {
	return sb.AddFormattedFinding("Expected", represent.Value(expected))
}

// AddFindingf adds a new finding with the name `name`, whose value is
// fmt.Sprintf(format, args...), split into lines.
func (sb *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return sb.AddFormattedFinding(name, strings.Split(format, "\n")...)
}

// AddFormattedFinding adds a new finding with the name `name` and the given,
// already formatted, lines.
func (sb *SummaryBuilder) AddFormattedFinding(name string, lines ...string) *SummaryBuilder {
	sb.fixNilSummary()
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  name,
		Value: lines,
	})
	return sb
}

// WarnIfLong marks the last finding as FindingLogLevel_Warn if its value is
// long (more than one line, or more than 30 characters).
//
// No-op if there are no findings.
func (sb *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	sb.fixNilSummary()
	if len(sb.Findings) == 0 {
		return sb
	}
	last := sb.Findings[len(sb.Findings)-1]
	if len(last.Value) > 1 || (len(last.Value) == 1 && len(last.Value[0]) > longThreshold) {
		last.Level = failure.FindingLogLevel_Warn
		sb.WarnAboutLongOutput = true
	}
	return sb
}

// AddRecursiveDiff adds a "Differences" finding holding a rendered recursive
// comparison report.
func (sb *SummaryBuilder) AddRecursiveDiff(lines []string) *SummaryBuilder {
	sb.fixNilSummary()
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  "Differences",
		Value: lines,
		Type:  failure.FindingTypeHint_RecursiveDiff,
	})
	return sb
}
