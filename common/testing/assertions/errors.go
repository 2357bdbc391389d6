// Copyright 2015 The LUCI Authors.
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

// Package assertions adapts deepcheck's comparisons to goconvey's
// `So(actual, assertion, expected...)` form.
package assertions

import (
	"fmt"

	"github.com/smarty/assertions"

	"go.chromium.org/deepcheck/common/errors"
)

// ShouldContainErr checks if an `errors.MultiError` on the left side contains
// as one of its errors an `error` or `string` on the right side. If nothing is
// provided on the right, checks that the left side contains at least one
// non-nil error. If nil is provided on the right, checks that the left side
// contains at least one nil, even if it contains other errors.
//
// The right side must not be a MultiError.
func ShouldContainErr(actual any, expected ...any) string {
	if len(expected) > 1 {
		return fmt.Sprintf("ShouldContainErr requires 0 or 1 expected value, got %d", len(expected))
	}
	if actual == nil {
		return assertions.ShouldNotBeNil(actual)
	}
	me, ok := actual.(errors.MultiError)
	if !ok {
		return assertions.ShouldHaveSameTypeAs(actual, errors.MultiError{})
	}
	if len(expected) == 0 {
		return assertions.ShouldNotBeNil(me.First())
	}

	switch expected[0].(type) {
	case string, nil:
	case errors.MultiError:
		return "expected value must not be a MultiError"
	case error:
	default:
		return fmt.Sprintf("unexpected argument type %T, expected string or error", expected[0])
	}
	for _, err := range me {
		if ShouldErrLike(err, expected[0]) == "" {
			return ""
		}
	}
	return fmt.Sprintf("expected MultiError to contain %q", expected[0])
}

// ShouldErrLike compares an `error` on the left side to an `error` or
// `string` on the right side.
//
// Strings must be substrings of the error text. Errors match if they are in
// the chain of the actual error, or if their text is a substring of it.
// Without a right side, or with nil, the error must be nil.
//
//	So(err, ShouldErrLike, "custom")
//	So(err, ShouldErrLike, io.EOF)
//	So(err, ShouldErrLike)           // err must be nil
//	So(err, ShouldErrLike, "")       // err must not be nil
func ShouldErrLike(actual any, expected ...any) string {
	if len(expected) > 1 {
		return fmt.Sprintf("ShouldErrLike requires 0 or 1 expected value, got %d", len(expected))
	}
	if len(expected) == 0 || expected[0] == nil {
		return assertions.ShouldBeNil(actual)
	}
	if actual == nil {
		return assertions.ShouldNotBeNil(actual)
	}
	ae, ok := actual.(error)
	if !ok {
		return assertions.ShouldImplement(actual, (*error)(nil))
	}

	switch x := expected[0].(type) {
	case string:
		return assertions.ShouldContainSubstring(ae.Error(), x)
	case error:
		if errors.Contains(ae, x) {
			return ""
		}
		return assertions.ShouldContainSubstring(ae.Error(), x.Error())
	}
	return fmt.Sprintf("unexpected argument type %T, expected string or error", expected[0])
}

// ShouldPanicLike is ShouldErrLike for the value a `func()` panics with.
func ShouldPanicLike(function any, expected ...any) (ret string) {
	f, ok := function.(func())
	if !ok {
		return fmt.Sprintf("unexpected argument type %T, expected `func()`", function)
	}
	defer func() {
		ret = ShouldErrLike(recover(), expected...)
	}()
	f()
	return ShouldErrLike(nil, expected...)
}

// ShouldUnwrapTo asserts that an error, fully unwrapped, equals another
// error.
func ShouldUnwrapTo(actual any, expected ...any) string {
	act, ok := actual.(error)
	if !ok {
		return fmt.Sprintf("ShouldUnwrapTo requires an error actual type, got %T", actual)
	}
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldUnwrapTo requires exactly one expected value, got %d", len(expected))
	}
	exp, ok := expected[0].(error)
	if !ok {
		return fmt.Sprintf("ShouldUnwrapTo requires an error expected type, got %T", expected[0])
	}
	return assertions.ShouldEqual(errors.Unwrap(act), exp)
}
