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

package recursive

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"go.chromium.org/deepcheck/common/data/stringset"
	"go.chromium.org/deepcheck/common/errors"
)

// Option configures a recursive comparison.
type Option func(*Configuration)

// valueComparator reports whether two values of a comparator's type are equal.
type valueComparator struct {
	typ reflect.Type
	fn  func(a, b reflect.Value) bool
}

// Configuration is the set of rules for one recursive comparison.
//
// Build it with NewConfiguration; the zero value compares everything with no
// special rules.
type Configuration struct {
	ignoredFields       stringset.Set
	ignoredFieldRegexes []*regexp.Regexp
	ignoredTypes        map[reflect.Type]struct{}
	ignoredTypeOrder    []reflect.Type

	comparedFields stringset.Set

	ignoreActualNilFields   bool
	ignoreExpectedNilFields bool
	ignoreUnexportedFields  bool
	nilAndEmptyAreEqual     bool
	strictTypeChecking      bool
	useOverriddenEquals     bool

	ignoreAllCollectionOrder       bool
	ignoredCollectionOrderFields   stringset.Set
	ignoredCollectionOrderPatterns []*regexp.Regexp

	typeComparators  []valueComparator
	fieldComparators map[string]valueComparator

	trace context.Context

	errs errors.MultiError
}

// NewConfiguration applies `opts` to a new Configuration.
//
// Errors in the options (e.g. invalid regular expressions) are kept and
// returned by Configuration.Err and Configuration.Compare.
func NewConfiguration(opts ...Option) *Configuration {
	cfg := &Configuration{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// Err returns the errors collected while applying the options, if any.
func (c *Configuration) Err() error {
	return c.errs.AsError()
}

func compileFullMatch(kind string, patterns []string, errs *errors.MultiError) []*regexp.Regexp {
	ret := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			errs.MaybeAdd(errors.Annotate(err, "invalid %s regex %q", kind, pattern).Err())
			continue
		}
		ret = append(ret, re)
	}
	return ret
}

func addFields(dst *stringset.Set, fields []string) {
	if *dst == nil {
		*dst = stringset.New(len(fields))
	}
	for _, field := range fields {
		(*dst).Add(strings.TrimSpace(field))
	}
}

// IgnoringFields ignores the given field paths, and everything below them.
//
// Example: IgnoringFields("id", "owner.address") ignores the root's "id" field
// and the "address" field of the root's "owner" field.
func IgnoringFields(fields ...string) Option {
	return func(c *Configuration) {
		addFields(&c.ignoredFields, fields)
	}
}

// IgnoringFieldsMatchingRegexes ignores fields whose full path matches any of
// the regular expressions. The expressions must match the whole path, so
// ".*id" matches "id" and "owner.id" but not "idle.count".
func IgnoringFieldsMatchingRegexes(patterns ...string) Option {
	return func(c *Configuration) {
		c.ignoredFieldRegexes = append(c.ignoredFieldRegexes,
			compileFullMatch("ignored field", patterns, &c.errs)...)
	}
}

// IgnoringFieldsOfTypes ignores fields whose actual or expected value has one
// of the given types.
func IgnoringFieldsOfTypes(types ...reflect.Type) Option {
	return func(c *Configuration) {
		if c.ignoredTypes == nil {
			c.ignoredTypes = map[reflect.Type]struct{}{}
		}
		for _, typ := range types {
			if typ == nil {
				c.errs.MaybeAdd(errors.Reason("ignored field types must not be nil").Err())
				continue
			}
			if _, ok := c.ignoredTypes[typ]; !ok {
				c.ignoredTypes[typ] = struct{}{}
				c.ignoredTypeOrder = append(c.ignoredTypeOrder, typ)
			}
		}
	}
}

// IgnoringFieldsOfType is IgnoringFieldsOfTypes for the single type T.
func IgnoringFieldsOfType[T any]() Option {
	return IgnoringFieldsOfTypes(reflect.TypeFor[T]())
}

// ComparingOnlyFields restricts the comparison to the given field paths.
//
// The parents of the given fields are traversed to reach them, and everything
// below them is compared. Paths which exist in neither actual nor expected
// make Compare fail with a configuration error.
func ComparingOnlyFields(fields ...string) Option {
	return func(c *Configuration) {
		addFields(&c.comparedFields, fields)
	}
}

// IgnoringActualNilFields ignores fields which are nil in actual, so actual
// can be a partially filled "template" of expected.
func IgnoringActualNilFields() Option {
	return func(c *Configuration) { c.ignoreActualNilFields = true }
}

// IgnoringExpectedNilFields ignores fields which are nil in expected.
func IgnoringExpectedNilFields() Option {
	return func(c *Configuration) { c.ignoreExpectedNilFields = true }
}

// IgnoringUnexportedFields skips struct fields which are not exported.
//
// By default unexported fields are compared like exported ones.
func IgnoringUnexportedFields() Option {
	return func(c *Configuration) { c.ignoreUnexportedFields = true }
}

// TreatingNilAndEmptyAsEqual makes nil slices and maps equal to empty ones.
func TreatingNilAndEmptyAsEqual() Option {
	return func(c *Configuration) { c.nilAndEmptyAreEqual = true }
}

// WithStrictTypeChecking requires actual and expected to have the same type
// at every compared node. By default, values of different struct types are
// compared field by field.
func WithStrictTypeChecking() Option {
	return func(c *Configuration) { c.strictTypeChecking = true }
}

// IgnoringCollectionOrder compares every slice and array as a multiset.
func IgnoringCollectionOrder() Option {
	return func(c *Configuration) { c.ignoreAllCollectionOrder = true }
}

// IgnoringCollectionOrderInFields compares the slices and arrays at the given
// field paths as multisets.
func IgnoringCollectionOrderInFields(fields ...string) Option {
	return func(c *Configuration) {
		addFields(&c.ignoredCollectionOrderFields, fields)
	}
}

// IgnoringCollectionOrderInFieldsMatchingRegexes compares the slices and
// arrays whose field path fully matches any of the regexes as multisets.
func IgnoringCollectionOrderInFieldsMatchingRegexes(patterns ...string) Option {
	return func(c *Configuration) {
		c.ignoredCollectionOrderPatterns = append(c.ignoredCollectionOrderPatterns,
			compileFullMatch("collection order", patterns, &c.errs)...)
	}
}

// UsingOverriddenEquals compares values whose type has a method
// `Equal(T) bool` with that method.
//
// time.Time values and proto messages are always compared with their own
// equality, regardless of this option.
func UsingOverriddenEquals() Option {
	return func(c *Configuration) { c.useOverriddenEquals = true }
}

func wrapComparator[T any](fn func(a, b T) bool) valueComparator {
	return valueComparator{
		typ: reflect.TypeFor[T](),
		fn: func(a, b reflect.Value) bool {
			return fn(a.Interface().(T), b.Interface().(T))
		},
	}
}

// WithComparatorForType compares values of type T with `fn` instead of
// recursively. When T is an interface, values whose types implement T are
// compared with `fn`.
//
// When several comparators apply, the last registered one wins.
func WithComparatorForType[T any](fn func(a, b T) bool) Option {
	return func(c *Configuration) {
		if fn == nil {
			c.errs.MaybeAdd(errors.Reason("comparator for %s must not be nil", reflect.TypeFor[T]()).Err())
			return
		}
		c.typeComparators = append(c.typeComparators, wrapComparator(fn))
	}
}

// WithComparatorForFields compares the values at the given field paths with
// `fn` instead of recursively. Field comparators take precedence over type
// comparators.
func WithComparatorForFields[T any](fn func(a, b T) bool, fields ...string) Option {
	return func(c *Configuration) {
		if fn == nil {
			c.errs.MaybeAdd(errors.Reason("comparator for fields %q must not be nil", fields).Err())
			return
		}
		if c.fieldComparators == nil {
			c.fieldComparators = map[string]valueComparator{}
		}
		for _, field := range fields {
			c.fieldComparators[strings.TrimSpace(field)] = wrapComparator(fn)
		}
	}
}

// WithTrace logs every comparison decision at Debug level to the logger in
// `ctx` (see go.chromium.org/deepcheck/common/logging).
func WithTrace(ctx context.Context) Option {
	return func(c *Configuration) { c.trace = ctx }
}

// String describes the configuration, one rule per line.
func (c *Configuration) String() string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, "- "+fmt.Sprintf(format, args...))
	}

	if c.strictTypeChecking {
		add("actual and expected objects and their fields were required to have the same type (strict type checking)")
	} else {
		add("actual and expected objects and their fields were compared field by field recursively even if they were not of the same type, this allows for example to compare a Person to a PersonDTO (use WithStrictTypeChecking to change that behavior)")
	}
	if c.useOverriddenEquals {
		add("Equal methods were used in the comparison")
	} else {
		add("no Equal methods were used in the comparison (except for time.Time and proto messages)")
	}
	if c.ignoredFields.Len() > 0 {
		add("the following fields were ignored in the comparison: %s", strings.Join(c.ignoredFields.ToSortedSlice(), ", "))
	}
	if len(c.ignoredFieldRegexes) > 0 {
		add("the fields matching the following regexes were ignored in the comparison: %s", joinRegexes(c.ignoredFieldRegexes))
	}
	if len(c.ignoredTypeOrder) > 0 {
		names := make([]string, len(c.ignoredTypeOrder))
		for i, typ := range c.ignoredTypeOrder {
			names[i] = typ.String()
		}
		add("the following types were ignored in the comparison: %s", strings.Join(names, ", "))
	}
	if c.comparedFields.Len() > 0 {
		add("the comparison was performed on the following fields: %s", strings.Join(c.comparedFields.ToSortedSlice(), ", "))
	}
	if c.ignoreActualNilFields {
		add("all actual nil fields were ignored in the comparison")
	}
	if c.ignoreExpectedNilFields {
		add("all expected nil fields were ignored in the comparison")
	}
	if c.ignoreUnexportedFields {
		add("unexported fields were ignored in the comparison")
	}
	if c.nilAndEmptyAreEqual {
		add("nil and empty slices and maps were considered equal")
	}
	if c.ignoreAllCollectionOrder {
		add("collection order was ignored in all fields in the comparison")
	}
	if c.ignoredCollectionOrderFields.Len() > 0 {
		add("collection order was ignored in the following fields in the comparison: %s",
			strings.Join(c.ignoredCollectionOrderFields.ToSortedSlice(), ", "))
	}
	if len(c.ignoredCollectionOrderPatterns) > 0 {
		add("collection order was ignored in the fields matching the following regexes in the comparison: %s",
			joinRegexes(c.ignoredCollectionOrderPatterns))
	}
	if len(c.typeComparators) > 0 {
		add("these types were compared with the following comparators:")
		for _, cmp := range c.typeComparators {
			lines = append(lines, fmt.Sprintf("  - %s -> custom comparator", cmp.typ))
		}
	}
	if len(c.fieldComparators) > 0 {
		add("these fields were compared with the following comparators:")
		fields := stringset.New(len(c.fieldComparators))
		for field := range c.fieldComparators {
			fields.Add(field)
		}
		for _, field := range fields.ToSortedSlice() {
			lines = append(lines, fmt.Sprintf("  - %s -> custom comparator", field))
		}
	}
	return strings.Join(lines, "\n")
}

// joinRegexes renders regexes as the user wrote them.
func joinRegexes(res []*regexp.Regexp) string {
	ret := make([]string, len(res))
	for i, re := range res {
		ret[i] = strings.TrimSuffix(strings.TrimPrefix(re.String(), "^(?:"), ")$")
	}
	return strings.Join(ret, ", ")
}
