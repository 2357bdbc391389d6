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

package assertions

import (
	"fmt"
	"reflect"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/truth/recursive"
	"go.chromium.org/deepcheck/common/testing/truth/should"
)

var summaryType = reflect.TypeFor[*failure.Summary]()

func renderSummary(s *failure.Summary) string {
	if s == nil {
		return ""
	}
	return comparison.RenderCLI{Verbose: true}.Summary("", s)
}

// ShouldRecursivelyEqual compares `actual` and `expected[0]` field by field.
//
// The remaining expected values must be recursive.Options:
//
//	So(got, ShouldRecursivelyEqual, want, recursive.IgnoringFields("id"))
func ShouldRecursivelyEqual(actual any, expected ...any) string {
	if len(expected) == 0 {
		return "ShouldRecursivelyEqual requires an expected value"
	}
	opts := make([]recursive.Option, 0, len(expected)-1)
	for i, o := range expected[1:] {
		opt, ok := o.(recursive.Option)
		if !ok {
			return fmt.Sprintf("ShouldRecursivelyEqual: argument %d is %T, expected recursive.Option", i+2, o)
		}
		opts = append(opts, opt)
	}
	return renderSummary(should.RecursivelyEqualTo(expected[0], opts...)(actual))
}

// ShouldResembleTruth runs a comparison.Func from package should:
//
//	So(got, ShouldResembleTruth, should.HaveLength(3))
//
// Any other expected value is compared with should.Resemble.
func ShouldResembleTruth(actual any, expected ...any) string {
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldResembleTruth requires exactly one expected value, got %d", len(expected))
	}

	fn := reflect.ValueOf(expected[0])
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return renderSummary(should.Resemble(expected[0])(actual))
	}
	ft := fn.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.Out(0) != summaryType {
		return fmt.Sprintf("ShouldResembleTruth: %s is not a comparison.Func", ft)
	}

	arg := reflect.Zero(ft.In(0))
	if actual != nil {
		av := reflect.ValueOf(actual)
		if !av.Type().AssignableTo(ft.In(0)) {
			return fmt.Sprintf("ShouldResembleTruth: actual %T cannot be passed to %s", actual, ft)
		}
		arg = av
	}
	return renderSummary(fn.Call([]reflect.Value{arg})[0].Interface().(*failure.Summary))
}
