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

package assertions

import (
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	multierror "go.chromium.org/deepcheck/common/errors"
)

type customError struct{}

func (customError) Error() string { return "customError noob" }

func TestShouldErrLike(t *testing.T) {
	t.Parallel()

	ce := customError{}
	e := errors.New("e is for error")
	f := errors.New("f is not for error")
	me := multierror.MultiError{
		e,
		nil,
		ce,
	}

	Convey("Test ShouldContainErr", t, func() {
		Convey("too many params", func() {
			So(ShouldContainErr(nil, nil, nil), ShouldContainSubstring, "requires 0 or 1")
		})
		Convey("no expectation", func() {
			So(ShouldContainErr(multierror.MultiError(nil)), ShouldContainSubstring, "Expected '<nil>' to NOT be nil")
			So(ShouldContainErr(me), ShouldEqual, "")
		})
		Convey("nil expectation", func() {
			So(ShouldContainErr(multierror.MultiError(nil), nil), ShouldContainSubstring, "expected MultiError to contain")
			So(ShouldContainErr(me, nil), ShouldEqual, "")
		})
		Convey("nil actual", func() {
			So(ShouldContainErr(nil, "wut"), ShouldContainSubstring, "Expected '<nil>' to NOT be nil")
		})
		Convey("string and error", func() {
			So(ShouldContainErr(me, "is for error"), ShouldEqual, "")
			So(ShouldContainErr(me, ce), ShouldEqual, "")
			So(ShouldContainErr(me, f), ShouldContainSubstring, "expected MultiError to contain")
		})
		Convey("bad expected type", func() {
			So(ShouldContainErr(me, 20), ShouldContainSubstring, "unexpected argument type int")
			So(ShouldContainErr(me, me), ShouldEqual, "expected value must not be a MultiError")
		})
	})

	Convey("Test ShouldErrLike", t, func() {
		Convey("too many params", func() {
			So(ShouldErrLike(nil, nil, nil), ShouldContainSubstring, "requires 0 or 1")
		})
		Convey("nil expectation", func() {
			So(ShouldErrLike(nil), ShouldEqual, "")
			So(ShouldErrLike(nil, nil), ShouldEqual, "")
			So(ShouldErrLike(e, nil), ShouldContainSubstring, "Expected: nil")
		})
		Convey("nil actual", func() {
			So(ShouldErrLike(nil, "wut"), ShouldContainSubstring, "Expected '<nil>' to NOT be nil")
		})
		Convey("not an err", func() {
			So(ShouldErrLike(100, "wut"), ShouldContainSubstring, "Expected: 'error interface support'")
		})
		Convey("string", func() {
			So(ShouldErrLike(e, "is for error"), ShouldEqual, "")
			So(ShouldErrLike(ce, "nope"), ShouldContainSubstring, "nope")
		})
		Convey("error in chain", func() {
			wrapped := multierror.Annotate(io.EOF, "reading header").Err()
			So(ShouldErrLike(wrapped, io.EOF), ShouldEqual, "")
			So(ShouldErrLike(wrapped, io.ErrUnexpectedEOF), ShouldNotEqual, "")
		})
		Convey("bad expected type", func() {
			So(ShouldErrLike(e, 20), ShouldContainSubstring, "unexpected argument type int")
		})
	})

	Convey("Test ShouldPanicLike", t, func() {
		So(ShouldPanicLike(func() { panic(e) }, "is for error"), ShouldEqual, "")
		So(ShouldPanicLike(func() {}), ShouldEqual, "")
		So(ShouldPanicLike(func() {}, "boom"), ShouldContainSubstring, "Expected '<nil>' to NOT be nil")
		So(ShouldPanicLike(100), ShouldContainSubstring, "expected `func()`")
	})

	Convey("Test ShouldUnwrapTo", t, func() {
		wrapped := multierror.Annotate(multierror.Annotate(io.EOF, "inner").Err(), "outer").Err()
		So(ShouldUnwrapTo(wrapped, io.EOF), ShouldEqual, "")
		So(ShouldUnwrapTo("nope", io.EOF), ShouldContainSubstring, "requires an error actual type")
		So(ShouldUnwrapTo(wrapped), ShouldContainSubstring, "exactly one expected value")
		So(ShouldUnwrapTo(wrapped, "x"), ShouldContainSubstring, "requires an error expected type")
	})
}
