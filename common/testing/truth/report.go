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
	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// Report logs `summary` to `t` as `name`, rendered with comparison.RenderCLI
// using Verbose, Colorize and FullSourceContextFilenames.
//
// Report does not fail the test; that is the job of the caller.
func Report(t TestingTB, name string, summary *failure.Summary) {
	t.Helper()
	t.Log(name + " " + comparison.RenderCLI{
		Verbose:       Verbose,
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}.Summary("", summary))
}
