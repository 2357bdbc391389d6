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
	"path/filepath"
	"runtime"
)

type annotatedError struct {
	inner  error
	reason string

	// file and line of the Annotate/Reason call, used by RenderStack.
	file string
	line int
}

var _ interface {
	error
	Wrapped
} = (*annotatedError)(nil)

func (e *annotatedError) Error() string {
	switch {
	case e.reason == "" && e.inner != nil:
		return e.inner.Error()
	case e.inner == nil:
		return e.reason
	}
	return fmt.Sprintf("%s: %s", e.reason, e.inner)
}

func (e *annotatedError) InnerError() error { return e.inner }
func (e *annotatedError) Unwrap() error     { return e.inner }

// Annotator is a builder for annotating errors. Obtain one by calling Annotate
// on an existing error or using Reason.
type Annotator struct {
	err *annotatedError
}

// Reason replaces the PUBLICLY READABLE reason string (for humans) of this
// error.
//
// The reason is formatted with fmt.Sprintf only if args are given.
func (a *Annotator) Reason(reason string, args ...any) *Annotator {
	if a == nil {
		return a
	}
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	a.err.reason = reason
	return a
}

// Err returns the finalized annotated error.
func (a *Annotator) Err() error {
	if a == nil {
		return nil
	}
	return a.err
}

func newAnnotator(skip int, inner error, reason string, args []any) *Annotator {
	ret := &Annotator{&annotatedError{inner: inner}}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		ret.err.file, ret.err.line = filepath.Base(file), line
	}
	return ret.Reason(reason, args...)
}

// Annotate returns a new annotatable error wrapping err. You can add
// additional metadata to this error with its methods and then get the new
// derived error with the Err() function.
//
// If this is passed nil, it will return a no-op Annotator whose .Err() function
// will also return nil.
//
// Rendering the derived error with Error() will render the reason followed by
// the wrapped error's Error() text, separated by ": ".
func Annotate(err error, reason string, args ...any) *Annotator {
	if err == nil {
		return nil
	}
	return newAnnotator(1, err, reason, args)
}

// Reason builds a new Annotator starting with reason. This allows you to use
// all the formatting directives you would normally use with Annotate, in case
// your originating error needs formatting directives:
//
//	errors.Reason("something bad: %d", value).Err()
//
// Prefer this form to errors.New(fmt.Sprintf("..."))
func Reason(reason string, args ...any) *Annotator {
	return newAnnotator(1, nil, reason, args)
}

// RenderStack renders the chain of annotations on err, outermost first, one
// line per annotation, as "file:line: reason". Errors that are not
// annotations are rendered with their Error() text and end the chain.
func RenderStack(err error) []string {
	var ret []string
	for err != nil {
		switch t := err.(type) {
		case *annotatedError:
			if t.reason != "" {
				ret = append(ret, fmt.Sprintf("%s:%d: %s", t.file, t.line, t.reason))
			}
			err = t.inner
		case MultiError:
			ret = append(ret, fmt.Sprintf("multiple errors (%d)", len(t)))
			err = t.First()
		default:
			ret = append(ret, err.Error())
			err = nil
		}
	}
	return ret
}
