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

package should

import (
	"fmt"
	"runtime/debug"
	"strings"

	"go.chromium.org/deepcheck/common/errors"
	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

type caughtPanic struct {
	Reason any
	Stack  string
}

// catchPanic calls fn and returns the recovered panic, or nil.
func catchPanic(fn func()) (caught *caughtPanic) {
	defer func() {
		if r := recover(); r != nil {
			caught = &caughtPanic{Reason: r, Stack: string(debug.Stack())}
		}
	}()
	fn()
	return nil
}

// Panic implements comparison.Func[func()] and asserts that `fn` panics.
func Panic(fn func()) *failure.Summary {
	if catchPanic(fn) == nil {
		return comparison.NewSummaryBuilder("should.Panic").
			Because("function did not panic").
			Summary
	}
	return nil
}

// NotPanic implements comparison.Func[func()] and asserts that `fn` does not
// panic.
func NotPanic(fn func()) *failure.Summary {
	if caught := catchPanic(fn); caught != nil {
		return comparison.NewSummaryBuilder("should.NotPanic").
			Because("function panicked").
			AddFindingf("Reason", "%v", caught.Reason).
			AddFindingf("Stack", "%s", caught.Stack).WarnIfLong().
			Summary
	}
	return nil
}

// PanicLikeString returns a comparison.Func which checks that a function
// panics with a string or error containing `substring`.
func PanicLikeString(substring string) comparison.Func[func()] {
	const cmpName = "should.PanicLikeString"
	return func(fn func()) *failure.Summary {
		caught := catchPanic(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}
		var str string
		switch v := caught.Reason.(type) {
		case string:
			str = v
		case error:
			str = v.Error()
		default:
			return comparison.NewSummaryBuilder(cmpName).
				Because("panic reason is neither error nor string").
				Actual(caught.Reason).
				AddFindingf("Substring", "%q", substring).
				Summary
		}
		if strings.Contains(str, substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Actual is missing substring.").
			Actual(str).
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// PanicLikeError returns a comparison.Func which checks that a function
// panics with an error matching `target` with errors.Is.
func PanicLikeError(target error) comparison.Func[func()] {
	const cmpName = "should.PanicLikeError"
	return func(fn func()) *failure.Summary {
		if target == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("nil as expected panic is not allowed; use runtime.PanicNilError instead").
				Summary
		}
		caught := catchPanic(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}
		e, ok := caught.Reason.(error)
		if !ok {
			return comparison.NewSummaryBuilder(cmpName).
				Because("caught panic is not an error").
				Actual(caught.Reason).
				Expected(target).
				AddFindingf("Stack", "%s", caught.Stack).WarnIfLong().
				Summary
		}
		if !errors.Is(e, target) {
			return comparison.NewSummaryBuilder(cmpName).
				Because("error does not match target").
				Actual(e).
				Expected(target).
				Summary
		}
		return nil
	}
}

// PanicLike returns PanicLikeString or PanicLikeError depending on the type of
// `target`. Panics for any other type.
func PanicLike(target any) comparison.Func[func()] {
	switch v := target.(type) {
	case string:
		return PanicLikeString(v)
	case error:
		return PanicLikeError(v)
	default:
		panic(fmt.Errorf("PanicLike expects a string or an error, got %T", target))
	}
}
