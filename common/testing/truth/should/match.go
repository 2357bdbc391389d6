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

package should

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"

	"go.chromium.org/deepcheck/common/testing/truth/comparison"
	"go.chromium.org/deepcheck/common/testing/truth/failure"
	"go.chromium.org/deepcheck/common/testing/typed"
)

// Match returns a comparison.Func which checks if the actual value matches
// `expected` according to cmp.Diff, with the options from
// go.chromium.org/deepcheck/common/testing/registry plus `opts`.
//
// Protobuf messages are compared with protocmp.Transform().
//
// Like cmp.Diff, this panics if it encounters unexported struct fields which
// no option allows. Use should.Resemble to compare those, or
// should.RecursivelyEqual for a field by field comparison with ignore rules.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.Match"

	return func(actual T) *failure.Summary {
		diff := typed.Diff(expected, actual, opts...)
		if diff == "" {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Summary
	}
}

// Resemble is Match, but also compares unexported struct fields of every
// non-proto struct type reachable from T.
func Resemble[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.Resemble"

	exported := extractAllowUnexportedFrom(reflect.TypeFor[T]())

	return func(actual T) *failure.Summary {
		allOpts := slices.Clone(opts)
		if len(exported) > 0 {
			allOpts = append(allOpts, allowUnexported(exported))
		}
		// T may be an interface, so the dynamic types need a look too.
		if dyn := dynamicStructTypes(actual, expected); len(dyn) > 0 {
			allOpts = append(allOpts, allowUnexported(dyn))
		}

		diff := typed.Diff(expected, actual, allOpts...)
		if diff == "" {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Summary
	}
}

func dynamicStructTypes(values ...any) []reflect.Type {
	var ret []reflect.Type
	for _, v := range values {
		if v == nil {
			continue
		}
		ret = append(ret, extractAllowUnexportedFrom(reflect.TypeOf(v))...)
	}
	return ret
}

func allowUnexported(types []reflect.Type) cmp.Option {
	set := make(map[reflect.Type]bool, len(types))
	for _, typ := range types {
		set[typ] = true
	}
	return cmp.Exporter(func(typ reflect.Type) bool {
		return set[typ]
	})
}

var (
	resembleOptionCacheMu sync.RWMutex
	// resembleOptionCache maps a struct type to all the struct types reachable
	// from it (itself included) which have unexported fields.
	//
	// A nil entry means the struct type was walked and needs nothing.
	resembleOptionCache = map[reflect.Type][]reflect.Type{}
)

func resetOptionCache() {
	resembleOptionCacheMu.Lock()
	defer resembleOptionCacheMu.Unlock()
	resembleOptionCache = map[reflect.Type][]reflect.Type{}
}

var protoMessageType = reflect.TypeFor[proto.Message]()

func isProto(typ reflect.Type) bool {
	return typ.Implements(protoMessageType) || reflect.PointerTo(typ).Implements(protoMessageType)
}

// outerStructs finds the struct types reachable from `typ` without passing
// through another struct type.
func outerStructs(typ reflect.Type, seen map[reflect.Type]bool, ret *[]reflect.Type) {
	if seen[typ] {
		return
	}
	seen[typ] = true

	switch typ.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
		outerStructs(typ.Elem(), seen, ret)
	case reflect.Map:
		outerStructs(typ.Key(), seen, ret)
		outerStructs(typ.Elem(), seen, ret)
	case reflect.Struct:
		if !isProto(typ) {
			*ret = append(*ret, typ)
		}
	}
}

// walkStruct collects all struct types with unexported fields reachable from
// the struct type `typ`.
func walkStruct(typ reflect.Type, seen map[reflect.Type]bool, ret *[]reflect.Type) {
	if seen[typ] {
		return
	}
	seen[typ] = true

	hasUnexported := false
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			hasUnexported = true
		}
		var inner []reflect.Type
		outerStructs(field.Type, map[reflect.Type]bool{}, &inner)
		for _, st := range inner {
			walkStruct(st, seen, ret)
		}
	}
	if hasUnexported {
		*ret = append(*ret, typ)
	}
}

func cachedStruct(typ reflect.Type) []reflect.Type {
	resembleOptionCacheMu.RLock()
	ret, ok := resembleOptionCache[typ]
	resembleOptionCacheMu.RUnlock()
	if ok {
		return ret
	}

	walkStruct(typ, map[reflect.Type]bool{}, &ret)

	resembleOptionCacheMu.Lock()
	defer resembleOptionCacheMu.Unlock()
	resembleOptionCache[typ] = ret
	return ret
}

// extractAllowUnexportedFrom returns every non-proto struct type with
// unexported fields which is reachable from `typ`.
func extractAllowUnexportedFrom(typ reflect.Type) []reflect.Type {
	var outer []reflect.Type
	outerStructs(typ, map[reflect.Type]bool{}, &outer)

	var ret []reflect.Type
	have := map[reflect.Type]bool{}
	for _, st := range outer {
		for _, needed := range cachedStruct(st) {
			if !have[needed] {
				have[needed] = true
				ret = append(ret, needed)
			}
		}
	}
	return ret
}
