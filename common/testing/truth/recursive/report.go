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

package recursive

import (
	"strings"

	"github.com/dustin/go-humanize/english"

	"go.chromium.org/deepcheck/common/testing/truth/represent"
)

// Report renders the outcome of a recursive comparison for humans.
type Report struct {
	Actual      any
	Expected    any
	Differences []Difference

	// Config, if set, is described at the end of the report.
	Config *Configuration

	// Negated reports that actual and expected were unexpectedly equal.
	Negated bool
}

func indentBlock(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// Lines renders the report as lines of text.
func (r Report) Lines() []string {
	return strings.Split(r.String(), "\n")
}

func (r Report) String() string {
	var b strings.Builder
	b.WriteString("Expecting actual:\n")
	b.WriteString(indentBlock(represent.Value(r.Actual)))
	if r.Negated {
		b.WriteString("\nnot to be equal to:\n")
	} else {
		b.WriteString("\nto be equal to:\n")
	}
	b.WriteString(indentBlock(represent.Value(r.Expected)))
	b.WriteString("\nwhen recursively comparing field by field")
	if !r.Negated {
		b.WriteString(", but found the following ")
		b.WriteString(english.Plural(len(r.Differences), "difference", "differences"))
		b.WriteString(":")
		for _, d := range r.Differences {
			b.WriteString("\n\n")
			b.WriteString(d.String())
		}
	}
	if r.Config != nil {
		b.WriteString("\n\nThe recursive comparison was performed with this configuration:\n")
		b.WriteString(r.Config.String())
	}
	return b.String()
}
