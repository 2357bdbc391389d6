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

// Package truth implements the reporting plumbing shared by the `assert` and
// `check` packages.
//
// Most users want:
//
//	import (
//	  "go.chromium.org/deepcheck/common/testing/truth/assert"
//	  "go.chromium.org/deepcheck/common/testing/truth/check"
//	  "go.chromium.org/deepcheck/common/testing/truth/should"
//	)
//
//	func TestSomething(t *testing.T) {
//	  assert.That(t, compute(), should.Equal(10))
//	  check.That(t, person, should.RecursivelyEqual(expected,
//	    recursive.IgnoringFields("id")))
//	}
//
// A comparison.Func produces a *failure.Summary on failure. Report renders
// it with comparison.RenderCLI according to the package-level settings below.
package truth

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// TestingTB is the subset of testing.TB used to report failures.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

// Verbose indicates that the truth library should render verbose findings.
//
// Defaults to true when the test binary was started with -test.v, or when
// DEEPCHECK_VERBOSE is set to a true value.
var Verbose = defaultVerbose()

// Colorize indicates that the truth library should colorize its output.
//
// Defaults to true when stdout is a terminal and NO_COLOR is unset.
// DEEPCHECK_COLOR overrides the detection.
var Colorize = defaultColorize()

// FullSourceContextFilenames indicates that the truth library should print
// out full filenames for source context frames instead of just the base name.
var FullSourceContextFilenames = false

func envBool(name string) (val, ok bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return val, true
}

func defaultVerbose() bool {
	if val, ok := envBool("DEEPCHECK_VERBOSE"); ok {
		return val
	}
	// testing.Verbose panics before flags are parsed, so look at the raw
	// arguments instead.
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-test.v", arg == "--test.v":
			return true
		case strings.HasPrefix(arg, "-test.v="), strings.HasPrefix(arg, "--test.v="):
			val := arg[strings.IndexByte(arg, '=')+1:]
			if b, err := strconv.ParseBool(val); err == nil {
				return b
			}
			// -test.v=test2json
			return true
		}
	}
	return false
}

func defaultColorize() bool {
	if val, ok := envBool("DEEPCHECK_COLOR"); ok {
		return val
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
