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

package logging

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ErrorKey is a logging field key to use for errors.
const ErrorKey = "error"

// Fields maps string keys to arbitrary values.
//
// Fields can be added to a Context via SetFields and will be rendered by
// loggers alongside each message.
type Fields map[string]any

// Copy returns a shallow copy of f, merged with the entries in other.
func (f Fields) Copy(other Fields) Fields {
	if len(f) == 0 && len(other) == 0 {
		return nil
	}
	ret := make(Fields, len(f)+len(other))
	for k, v := range f {
		ret[k] = v
	}
	for k, v := range other {
		ret[k] = v
	}
	return ret
}

// SortedEntries returns the keys of f in sorted order.
func (f Fields) SortedEntries() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a string describing the contents of f in a sorted,
// key=value format. The value is printed as JSON-ish: strings and errors are
// quoted.
func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, k := range f.SortedEntries() {
		var val string
		switch v := f[k].(type) {
		case string:
			val = fmt.Sprintf("%q", v)
		case error:
			val = fmt.Sprintf("%q", v.Error())
		default:
			val = fmt.Sprintf("%#v", v)
		}
		parts = append(parts, fmt.Sprintf("%q:%s", k, val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Debugf is a shorthand method to log with these fields at Debug level.
func (f Fields) Debugf(ctx context.Context, fmt string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Debug, 1, fmt, args)
}

// Infof is a shorthand method to log with these fields at Info level.
func (f Fields) Infof(ctx context.Context, fmt string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Info, 1, fmt, args)
}

// Warningf is a shorthand method to log with these fields at Warning level.
func (f Fields) Warningf(ctx context.Context, fmt string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Warning, 1, fmt, args)
}

// Errorf is a shorthand method to log with these fields at Error level.
func (f Fields) Errorf(ctx context.Context, fmt string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Error, 1, fmt, args)
}

// SetFields adds the additional fields as context for the current Logger.
//
// Existing fields with the same keys are overridden.
func SetFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, fieldsKey, GetFields(ctx).Copy(fields))
}

// SetField is a convenience method for SetFields for a single key/value pair.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// SetError returns a context with its error field set.
func SetError(ctx context.Context, err error) context.Context {
	return SetField(ctx, ErrorKey, err)
}

// GetFields returns the current Fields.
//
// The returned map must not be modified.
func GetFields(ctx context.Context) Fields {
	if ret, ok := ctx.Value(fieldsKey).(Fields); ok {
		return ret
	}
	return nil
}
