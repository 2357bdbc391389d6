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

package truth

import (
	"fmt"
	"runtime"
	"strings"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// Option is an optional modification to the reporting of a comparison.
//
// Options are accepted by assert.That, check.That and friends.
type Option interface {
	truthOption()
}

type summaryModifier func(*failure.Summary)

func (summaryModifier) truthOption() {}

// ApplyAllOptions applies all the Options to `summary`.
//
// A nil summary (a passing comparison) stays nil.
func ApplyAllOptions(summary *failure.Summary, opts []Option) *failure.Summary {
	if summary == nil {
		return nil
	}
	for _, opt := range opts {
		switch x := opt.(type) {
		case summaryModifier:
			x(summary)
		case nil:
		default:
			panic(fmt.Errorf("truth: unknown Option type %T", opt))
		}
	}
	return summary
}

// LineContext returns an Option which adds an "at" source context frame with
// the filename and line number of the caller of LineContext, plus
// skipFrames[0] (if provided).
//
// This is the Option form of comparison.Func.WithLineContext, and is useful
// inside test helpers which call t.Helper().
func LineContext(skipFrames ...int) Option {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf("truth.LineContext: skipFrames has more than one value: %v", skipFrames))
	}
	skip := 1
	if len(skipFrames) > 0 {
		skip += skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	return summaryModifier(func(s *failure.Summary) {
		if !ok {
			return
		}
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.Stack_Frame{{Filename: filename, Lineno: int64(lineno)}},
		})
	})
}

// Describe returns an Option which sets the description of a failure.
//
// The format is only interpreted when args are given, so a literal "{}" or
// "%" in a description without args is preserved. When the comparison already
// had a description, the new one is prepended.
//
// Example:
//
//	assert.That(t, frodo.Age, should.Equal(33), truth.Describe("check %s's age", "Frodo"))
func Describe(format string, args ...any) Option {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return summaryModifier(func(s *failure.Summary) {
		if s.Description == "" {
			s.Description = format
		} else {
			s.Description = strings.Join([]string{format, s.Description}, ": ")
		}
	})
}

// Explain returns an Option which adds a "Because" finding to a failure.
func Explain(format string, args ...any) Option {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return summaryModifier(func(s *failure.Summary) {
		s.Findings = append(s.Findings, &failure.Finding{
			Name:  "Because",
			Value: strings.Split(format, "\n"),
		})
	})
}
