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

package errors

import (
	"fmt"
)

// MultiError is a simple `error` implementation which represents multiple
// `error` objects in one.
type MultiError []error

var _ interface {
	error
	Unwrap() []error
} = MultiError(nil)

// MaybeAdd will add `err` to `m` if `err` is not nil.
func (m *MultiError) MaybeAdd(err error) {
	if err == nil {
		return
	}
	*m = append(*m, err)
}

func (m MultiError) Error() string {
	n, e := m.Summary()
	switch n {
	case 0:
		return "(0 errors)"
	case 1:
		return e.Error()
	case 2:
		return e.Error() + " (and 1 other error)"
	}
	return fmt.Sprintf("%s (and %d other errors)", e, n-1)
}

// Unwrap implements the Go 1.20 multi-error unwrapping protocol, which makes
// MultiError compatible with errors.Is and errors.As.
func (m MultiError) Unwrap() []error {
	return m
}

// Summary gets the total count of non-nil errors and returns the first one.
func (m MultiError) Summary() (n int, first error) {
	for _, e := range m {
		if e != nil {
			if n == 0 {
				first = e
			}
			n++
		}
	}
	return
}

// First returns the first non-nil error.
func (m MultiError) First() error {
	for _, e := range m {
		if e != nil {
			return e
		}
	}
	return nil
}

// AsError returns an `error` interface for this MultiError only if it has
// >0 length.
func (m MultiError) AsError() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// SingleError provides a simple way to uwrap a MultiError if you know that it
// could only ever contain one element.
//
// If err is a MultiError, return its first element. Otherwise, return err.
func SingleError(err error) error {
	if me, ok := err.(MultiError); ok {
		if len(me) == 0 {
			return nil
		}
		return me[0]
	}
	return err
}

// Flatten collapses a multi-dimensional MultiError space into a flat
// MultiError, removing "nil" errors.
//
// If err is not an errors.MultiError, will return err directly.
//
// As a special case, if merr contains no non-nil errors, nil will be returned.
func Flatten(err error) error {
	var ret MultiError
	flattenRec(&ret, err)
	if len(ret) == 0 {
		return nil
	}
	return ret
}

func flattenRec(ret *MultiError, err error) {
	switch et := err.(type) {
	case nil:
	case MultiError:
		for _, e := range et {
			flattenRec(ret, e)
		}
	default:
		*ret = append(*ret, et)
	}
}

// Append takes a list of errors, whether they are nil, MultiErrors, or
// regular errors, and combines them into a single error.
//
// The return value is nil if there are no non-nil errors, the original
// error if there is exactly one, and a flattened MultiError otherwise.
func Append(errs ...error) error {
	ret := Flatten(MultiError(errs))
	if me, ok := ret.(MultiError); ok && len(me) == 1 {
		return me[0]
	}
	return ret
}
