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
	"reflect"
	"runtime"

	"go.chromium.org/deepcheck/common/testing/truth/failure"
)

// Func takes in a value-to-be-compared and returns a failure.Summary if the value
// does not meet the expectation of this comparison.Func.
//
// Example:
//
//	func BeTrue(value bool) *failure.Summary {
//	  if !value {
//	    return comparison.NewSummaryBuilder("should.BeTrue").Summary
//	  }
//	  return nil
//	}
//
// In this example, BeTrue is a comparison.Func.
type Func[T any] func(T) *failure.Summary

// WithLineContext returns a transformed Func to add an "at" SourceContext with
// one frame containing the filename and line number of the frame calling
// WithLineContext, plus skipFrames[0] (if provided).
//
// Example:
//
//	check.That(t, something, should.Equal(100).WithLineContext())
//
// You usually will not need this, but it's very useful when writing a helper
// function for tests (e.g. using t.Helper()) to let you add the location of the
// specific assert inside of the helper function along side the 'top most' frame
// location, as computed directly by the Go testing library.
//
// Example:
//
//	func TestThing(t *testing.T) {
//	  myHelper := func(actual, expected myType) {
//	    t.Helper()  // makes Go 'testing' package skip this to find original call.
//
//	    // We add WithLineContext to these comparisons so that if they fail, we
//	    // will see the file:line within this helper function.
//	    check.That(t, actual.field1, should.Equal(expected.field1).WithLineContext())
//	    check.That(t, actual.field2, should.Equal(expected.field2).WithLineContext())
//	 }
//	 // ...
//	 myHelper(a, expected)
//	}
//
// In this example, the test will output something like:
//
//	--- FAIL: FakeTestName (0.00s)
//	    example_test.go:XX: Check should.Equal[int] FAILED
//	       (at example_test.go:YY)
//	       Actual: 10
//	       Expected: 20
//
// Where XX is the line of the myHelper call, and YY is the line of the actual
// should.Equal check inside of the helper function.
func (cmp Func[T]) WithLineContext(skipFrames ...int) Func[T] {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"comparison.Func.WithLineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return cmp
	}

	return func(actual T) *failure.Summary {
		ret := cmp(actual)
		if ret != nil {
			ret.SourceContext = append(ret.SourceContext, &failure.Stack{
				Name:   "at",
				Frames: []*failure.Stack_Frame{{Filename: filename, Lineno: int64(lineno)}},
			})
		}
		return ret
	}
}

// CastCompare converts `actual` to T and then runs the comparison on it.
//
// The conversion succeeds when:
//   - `actual` already is a T (or implements T, if T is an interface),
//   - `actual` is an untyped nil and T is a nillable type,
//   - reflect can convert `actual` to T without losing information. For
//     numeric types this means converting the result back yields the original
//     value, so `uint8(100)` converts to `int`, but `10000` does not convert to
//     `uint8`. Integers never convert to strings.
//
// When the conversion fails, this returns a "builtin.LosslessConvertTo"
// failure describing the source and target types.
func (cmp Func[T]) CastCompare(actual any) *failure.Summary {
	converted, ok := losslessConvert[T](actual)
	if !ok {
		targetType := reflect.TypeFor[T]()
		sb := NewSummaryBuilder("builtin.LosslessConvertTo")
		sb.Comparison.TypeArguments = []string{targetType.String()}
		return sb.
			Because("%s cannot be losslessly converted to %s", typeName(actual), targetType).
			Actual(actual).
			Summary
	}
	return cmp(converted)
}

func typeName(v any) string {
	if v == nil {
		return "untyped nil"
	}
	return fmt.Sprintf("%T", v)
}

func losslessConvert[T any](actual any) (ret T, ok bool) {
	if actual == nil {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return ret, true
		}
		return ret, false
	}
	if t, isT := actual.(T); isT {
		return t, true
	}

	targetType := reflect.TypeFor[T]()
	av := reflect.ValueOf(actual)
	if !av.Type().ConvertibleTo(targetType) {
		return ret, false
	}
	if isNumeric(av.Kind()) && targetType.Kind() == reflect.String {
		return ret, false
	}

	// Slice to array conversions panic when the slice is too short.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	cv := av.Convert(targetType)
	if isNumeric(av.Kind()) && isNumeric(targetType.Kind()) {
		back := cv.Convert(av.Type())
		if !back.Equal(av) {
			return ret, false
		}
	}
	return cv.Interface().(T), true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
