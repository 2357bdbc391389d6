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
	"reflect"
	"strings"

	"go.chromium.org/deepcheck/common/errors"
)

// checkComparedFields fails if a ComparingOnlyFields path exists in neither
// `actual` nor `expected`.
func (c *Configuration) checkComparedFields(actual, expected any) error {
	var unknown []string
	for _, f := range c.comparedFields.ToSortedSlice() {
		if !valueHasPath(reflect.ValueOf(actual), f) && !valueHasPath(reflect.ValueOf(expected), f) {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return errors.Reason("the following fields don't exist: {%s}", strings.Join(unknown, ", ")).Err()
	}
	return nil
}

// pathVisit is a reference value reached with `rest` still to follow.
type pathVisit struct {
	kind reflect.Kind
	typ  reflect.Type
	ptr  uintptr
	len  int
	rest string
}

// pathFinder follows a dotted field path through a value graph. Map keys may
// contain dots themselves, so they are matched against the whole remaining
// path.
type pathFinder struct {
	seen map[pathVisit]bool
}

func valueHasPath(v reflect.Value, path string) bool {
	return (&pathFinder{seen: map[pathVisit]bool{}}).has(v, path)
}

// staticHasPath falls back to the static type of a value.
func staticHasPath(t reflect.Type, rest string) bool {
	return typeHasPath(t, strings.Split(rest, "."), map[reflect.Type]int{})
}

func (f *pathFinder) has(v reflect.Value, rest string) bool {
	if rest == "" {
		return true
	}
	v = unwrap(v)
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if !v.IsNil() {
			key := pathVisit{kind: v.Kind(), typ: v.Type(), ptr: v.Pointer(), rest: rest}
			if v.Kind() != reflect.Pointer {
				key.len = v.Len()
			}
			if f.seen[key] {
				return false
			}
			f.seen[key] = true
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return staticHasPath(v.Type().Elem(), rest)
		}
		return f.has(v.Elem(), rest)

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if f.has(v.Index(i), rest) {
				return true
			}
		}
		return v.Len() == 0 && staticHasPath(v.Type().Elem(), rest)

	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			k := keySegment(iter.Key())
			if rest == k {
				return true
			}
			if tail, ok := strings.CutPrefix(rest, k+"."); ok && f.has(iter.Value(), tail) {
				return true
			}
		}
		return false

	case reflect.Struct:
		name, tail, _ := strings.Cut(rest, ".")
		sf, ok := declaredField(v.Type(), name)
		if !ok {
			return false
		}
		return f.has(field(addressable(v), sf.Index[0]), tail)
	}
	return false
}

// typeHasPath follows `segs` through the type `t`. Map keys and interface
// values are unknown without a value, so any segment is accepted there. A
// string key may span the rest of the path.
func typeHasPath(t reflect.Type, segs []string, seen map[reflect.Type]int) bool {
	if len(segs) == 0 {
		return true
	}
	if n, ok := seen[t]; ok && n == len(segs) {
		return false
	}
	seen[t] = len(segs)
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return typeHasPath(t.Elem(), segs, seen)
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return true
		}
		return typeHasPath(t.Elem(), segs[1:], seen)
	case reflect.Interface:
		return true
	case reflect.Struct:
		sf, ok := declaredField(t, segs[0])
		return ok && typeHasPath(sf.Type, segs[1:], seen)
	}
	return false
}
