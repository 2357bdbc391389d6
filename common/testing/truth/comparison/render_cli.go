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
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// RenderCLI renders failure.Summary objects for display on a terminal.
type RenderCLI struct {
	// If true, will render all Verbose findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to Findings with appropriate types
	// (currently just simple +/- per-line colorization for unified and cmp.Diff
	// Findings, and inline diff markers).
	Colorize bool

	// If true, source context frames are rendered with their full filename
	// rather than just the base name.
	FullFilenames bool
}

func (r RenderCLI) colorizeLines(f *failure.Finding) []string {
	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if !r.Colorize {
		return value
	}
	switch f.Type {
	case failure.FindingTypeHint_CmpDiff, failure.FindingTypeHint_UnifiedDiff:
		for i, line := range value {
			code := ""
			if strings.HasPrefix(line, "-") {
				code = ansi.Green
				if strings.HasPrefix(line, "--- ") {
					code = ansi.LightGreen
				}
			} else if strings.HasPrefix(line, "+") {
				code = ansi.Red
				if strings.HasPrefix(line, "+++ ") {
					code = ansi.LightRed
				}
			} else if strings.HasPrefix(line, "@@ ") {
				code = ansi.Red
			}
			if code != "" {
				value[i] = fmt.Sprintf("%s%s%s", code, line, ansi.Reset)
			}
		}
	case failure.FindingTypeHint_InlineDiff:
		for i, line := range value {
			line = strings.ReplaceAll(line, "[-", ansi.Green+"[-")
			line = strings.ReplaceAll(line, "-]", "-]"+ansi.Reset)
			line = strings.ReplaceAll(line, "{+", ansi.Red+"{+")
			value[i] = strings.ReplaceAll(line, "+}", "+}"+ansi.Reset)
		}
	}
	return value
}

// Finding renders a Finding to a set of output lines which would be
// suitable for display as CLI output (e.g. to be logged with testing.T.Log
// calls).
func (r RenderCLI) Finding(prefix string, f *failure.Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > failure.FindingLogLevel_Error && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%s (pass -v to see)]",
			prefix, f.Name, humanize.Comma(int64(valLen)))
	}

	value := r.colorizeLines(f)
	if len(value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, value[0])
	}

	for i, line := range value {
		value[i] = prefix + "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

// SourceContext renders a single source context stack, e.g.
// "(at file_test.go:10)".
func (r RenderCLI) SourceContext(prefix string, s *failure.Stack) string {
	frames := make([]string, len(s.Frames))
	for i, frame := range s.Frames {
		name := frame.Filename
		if !r.FullFilenames {
			name = filepath.Base(name)
		}
		frames[i] = fmt.Sprintf("%s:%d", name, frame.Lineno)
	}
	if len(frames) == 1 {
		return fmt.Sprintf("%s(%s %s)", prefix, s.Name, frames[0])
	}
	return fmt.Sprintf("%s(%s:\n%s%s)", prefix, s.Name, prefix+"    ",
		strings.Join(frames, "\n"+prefix+"    "))
}

// Summary pretty-prints the failure as a single string for display via the
// `go test` CLI output.
//
// The first line is "<comparison>[<type args>] FAILED", followed by the
// description (if any), the source context (if any) and then one block per
// finding.
func (r RenderCLI) Summary(prefix string, f *failure.Summary) string {
	if f == nil {
		return ""
	}
	testName := f.GetComparison().GetName()
	if testName == "" {
		testName = "UNKNOWN COMPARISON"
	}

	var testTypeArgs string
	if args := f.GetComparison().GetTypeArguments(); len(args) > 0 {
		testTypeArgs = fmt.Sprintf("[%s]", strings.Join(args, ", "))
	}

	lines := []string{fmt.Sprintf("%s%s FAILED", testName, testTypeArgs)}
	if f.Description != "" {
		lines = append(lines, fmt.Sprintf("%s[%s]", prefix, f.Description))
	}
	for _, ctx := range f.SourceContext {
		lines = append(lines, r.SourceContext(prefix, ctx))
	}
	for _, finding := range f.Findings {
		lines = append(lines, r.Finding(prefix, finding))
	}
	return strings.Join(lines, "\n")
}
