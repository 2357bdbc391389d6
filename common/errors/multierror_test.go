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

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"go.chromium.org/deepcheck/common/errors"
	"go.chromium.org/deepcheck/common/testing/truth/assert"
	"go.chromium.org/deepcheck/common/testing/truth/should"
)

func TestMultiError(t *testing.T) {
	t.Parallel()

	t.Run("works", func(t *testing.T) {
		var me error = errors.MultiError{stderrors.New("hello"), stderrors.New("bob")}
		assert.That(t, me, should.ErrLikeString(`hello (and 1 other error)`))
	})

	t.Run("compatible with errors.Is", func(t *testing.T) {
		inner := stderrors.New("hello")
		annotated := errors.Annotate(inner, "annotated err").Err()
		var me error = errors.MultiError{annotated, fmt.Errorf("bob")}
		assert.That(t, errors.Is(me, inner), should.BeTrue)
		assert.That(t, me, should.ErrLikeString("annotated err: hello"))
	})

	t.Run("counts", func(t *testing.T) {
		assert.That(t, errors.MultiError(nil).Error(), should.Equal("(0 errors)"))
		assert.That(t, errors.MultiError{stderrors.New("sup")}.Error(), should.Equal("sup"))
		assert.That(t, errors.MultiError{
			stderrors.New("sup"), stderrors.New("what"), stderrors.New("nerds"),
		}.Error(), should.Equal("sup (and 2 other errors)"))
	})

	t.Run("MaybeAdd", func(t *testing.T) {
		var me errors.MultiError
		me.MaybeAdd(nil)
		assert.Loosely(t, me, should.HaveLength(0))
		assert.That(t, me.AsError() == nil, should.BeTrue)

		me.MaybeAdd(stderrors.New("sup"))
		assert.Loosely(t, me, should.HaveLength(1))
		assert.That(t, me.AsError(), should.ErrLikeString("sup"))
	})

	t.Run("SingleError", func(t *testing.T) {
		e := stderrors.New("unique")
		assert.That(t, errors.SingleError(e), should.Equal(e))
		assert.That(t, errors.SingleError(errors.MultiError{e, stderrors.New("other")}), should.Equal(e))
		assert.Loosely(t, errors.SingleError(errors.MultiError{}), should.BeNil)
	})
}

func TestFlattenAndAppend(t *testing.T) {
	t.Parallel()

	oneErr := stderrors.New("1")
	twoErr := stderrors.New("2")

	t.Run("Flatten", func(t *testing.T) {
		assert.Loosely(t, errors.Flatten(errors.MultiError{nil, nil, errors.MultiError{nil}}), should.BeNil)
		assert.Loosely(t, errors.Flatten(errors.MultiError{nil, oneErr, errors.MultiError{nil, twoErr}}),
			should.Match([]error{oneErr, twoErr}, cmpopts.EquateErrors()))
	})

	t.Run("Append", func(t *testing.T) {
		assert.Loosely(t, errors.Append(), should.BeNil)
		assert.Loosely(t, errors.Append(nil, errors.Append()), should.BeNil)
		assert.That(t, errors.Append(oneErr), should.Equal(oneErr))
		assert.That(t, errors.Append(nil, oneErr, nil, twoErr).(errors.MultiError)[1], should.Equal(twoErr))
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	aerr := errors.New("test error A")
	berr := errors.New("test error B")

	assert.Loosely(t, errors.Filter(nil, nil), should.BeNil)
	assert.That(t, errors.Filter(aerr, nil), should.Equal(aerr))
	assert.Loosely(t, errors.Filter(aerr, nil, aerr, berr), should.BeNil)
	assert.Loosely(t, errors.Filter(errors.MultiError{aerr, berr}, berr),
		should.Match([]error{aerr, nil}, cmpopts.EquateErrors()))
	assert.Loosely(t, errors.Filter(errors.MultiError{errors.MultiError{aerr, aerr}, aerr}, aerr), should.BeNil)
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	base := stderrors.New("boom")

	t.Run("nil passes through", func(t *testing.T) {
		assert.Loosely(t, errors.Annotate(nil, "ignored").Err(), should.BeNil)
	})

	t.Run("reason and inner", func(t *testing.T) {
		err := errors.Annotate(base, "loading %q", "profile.yaml").Err()
		assert.That(t, err, should.ErrLikeString(`loading "profile.yaml": boom`))
		assert.That(t, errors.Unwrap(err), should.Equal(base))
		assert.That(t, errors.Contains(err, base), should.BeTrue)
	})

	t.Run("reason only", func(t *testing.T) {
		err := errors.Reason("bad regex %d", 3).Err()
		assert.That(t, err.Error(), should.Equal("bad regex 3"))
	})

	t.Run("literal percent without args", func(t *testing.T) {
		err := errors.Reason("100%").Err()
		assert.That(t, err.Error(), should.Equal("100%"))
	})

	t.Run("RenderStack", func(t *testing.T) {
		err := errors.Annotate(errors.Reason("inner").Err(), "outer").Err()
		lines := errors.RenderStack(err)
		assert.Loosely(t, lines, should.HaveLength(2))
		assert.That(t, lines[0], should.HaveSuffix(": outer"))
		assert.That(t, lines[1], should.HavePrefix("multierror_test.go:"))
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	a := stderrors.New("a")
	wrapped := errors.Annotate(errors.MultiError{nil, a}, "wrapped").Err()

	var seen []string
	errors.Walk(wrapped, func(err error) bool {
		seen = append(seen, err.Error())
		return true
	})
	assert.That(t, seen, should.Match([]string{"wrapped: a", "a", "a"}))
	assert.That(t, errors.Any(wrapped, func(err error) bool { return err == a }), should.BeTrue)
	assert.That(t, errors.Any(nil, func(error) bool { return true }), should.BeFalse)
}
