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

// Package failure contains the structured description of a failed
// comparison.
//
// A Summary is produced by a comparison.Func and is rendered for humans by
// comparison.RenderCLI. Nothing in this package formats values; the
// comparison.SummaryBuilder does that.
package failure

// FindingLogLevel controls when a Finding is displayed.
type FindingLogLevel int32

const (
	// FindingLogLevel_Error findings are always displayed.
	FindingLogLevel_Error FindingLogLevel = 0
	// FindingLogLevel_Warn findings are displayed, but hint that the value
	// may be long.
	FindingLogLevel_Warn FindingLogLevel = 1
	// FindingLogLevel_Info findings are only displayed in verbose mode.
	FindingLogLevel_Info FindingLogLevel = 2
)

func (l FindingLogLevel) String() string {
	switch l {
	case FindingLogLevel_Error:
		return "Error"
	case FindingLogLevel_Warn:
		return "Warn"
	case FindingLogLevel_Info:
		return "Info"
	}
	return "Unknown"
}

// FindingTypeHint tells renderers how the lines of a Finding are structured.
type FindingTypeHint int32

const (
	// FindingTypeHint_Text is plain text.
	FindingTypeHint_Text FindingTypeHint = 0
	// FindingTypeHint_CmpDiff is the output of cmp.Diff.
	FindingTypeHint_CmpDiff FindingTypeHint = 1
	// FindingTypeHint_UnifiedDiff is a unified line diff.
	FindingTypeHint_UnifiedDiff FindingTypeHint = 2
	// FindingTypeHint_InlineDiff is a single line with [-removed-]{+added+}
	// markers.
	FindingTypeHint_InlineDiff FindingTypeHint = 3
	// FindingTypeHint_RecursiveDiff is a recursive comparison report.
	FindingTypeHint_RecursiveDiff FindingTypeHint = 4
)

// Comparison identifies the comparison which produced a Summary.
type Comparison struct {
	// Name is the name of the comparison function, e.g. "should.Equal".
	Name string
	// TypeArguments are the rendered type arguments of the comparison, if
	// any, e.g. ["int"].
	TypeArguments []string
}

// GetName returns Name, or "" if c is nil.
func (c *Comparison) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// GetTypeArguments returns TypeArguments, or nil if c is nil.
func (c *Comparison) GetTypeArguments() []string {
	if c == nil {
		return nil
	}
	return c.TypeArguments
}

// Finding is a single named fact about a failure.
type Finding struct {
	Name  string
	Value []string
	Level FindingLogLevel
	Type  FindingTypeHint
}

// Stack_Frame is a single source location.
type Stack_Frame struct {
	Filename string
	Lineno   int64
}

// Stack is a named list of source locations, e.g. "at".
type Stack struct {
	Name   string
	Frames []*Stack_Frame
}

// Summary is the full description of a failed comparison.
type Summary struct {
	Comparison *Comparison

	// Description is an optional caller-provided description of the checked
	// value, rendered as "[Description]".
	Description string

	Findings []*Finding

	SourceContext []*Stack

	// WarnAboutLongOutput is set when one of the findings was determined to be
	// long; renderers may choose to print a hint about -v.
	WarnAboutLongOutput bool
}

// GetComparison returns Comparison, or nil if s is nil.
func (s *Summary) GetComparison() *Comparison {
	if s == nil {
		return nil
	}
	return s.Comparison
}

// GetFindings returns Findings, or nil if s is nil.
func (s *Summary) GetFindings() []*Finding {
	if s == nil {
		return nil
	}
	return s.Findings
}

// FindingByName returns the first Finding with the given name, or nil.
func (s *Summary) FindingByName(name string) *Finding {
	for _, f := range s.GetFindings() {
		if f.Name == name {
			return f
		}
	}
	return nil
}
