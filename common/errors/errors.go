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
	"errors"
)

// Wrapped indicates an error that wraps another error.
type Wrapped interface {
	// InnerError returns the wrapped error.
	InnerError() error
}

// New is a pass-through version of the standard errors.New function.
var New = errors.New

// Is is a pass-through version of the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a pass-through version of the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap unwraps a wrapped error recursively, returning its inner error.
//
// If the supplied error is not nil, Unwrap will never return nil. If a
// wrapped error reports that its InnerError is nil, that error will be
// returned.
func Unwrap(err error) error {
	for {
		var inner error
		switch t := err.(type) {
		case Wrapped:
			inner = t.InnerError()
		case interface{ Unwrap() error }:
			inner = t.Unwrap()
		}
		if inner == nil {
			return err
		}
		err = inner
	}
}
