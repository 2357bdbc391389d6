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

// Package represent renders arbitrary Go values for failure messages.
//
// The rendering is deterministic: map keys are sorted, pointer addresses are
// never printed and cyclic graphs are cut at the first repetition.
package represent

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// defaultTypes are rendered without a type prefix.
var defaultTypes = map[reflect.Type]bool{
	reflect.TypeFor[int]():     true,
	reflect.TypeFor[float64](): true,
	reflect.TypeFor[bool]():    true,
	reflect.TypeFor[string]():  true,
}

// Value renders v on a single line.
//
//   - nil renders as "nil",
//   - strings are quoted,
//   - numbers of a type other than int or float64 carry their type, e.g.
//     "uint8(3)",
//   - time.Time renders in RFC3339 with nanoseconds,
//   - errors render as error("text"),
//   - proto messages render in compact text format,
//   - composite values render like fmt's "%+v", without pointer addresses.
func Value(v any) (ret string) {
	if v == nil {
		return "nil"
	}
	defer func() {
		// Error() and String() of user types may panic (e.g. on typed nils).
		if r := recover(); r != nil {
			ret = fmt.Sprintf("%s(<panic while rendering: %v>)", Type(v), r)
		}
	}()

	if x, ok := v.(string); ok {
		return strconv.Quote(x)
	}
	if s, ok := special(v); ok {
		return s
	}

	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); {
	case isBasic(k):
		if defaultTypes[rv.Type()] {
			return fmt.Sprintf("%v", v)
		}
		return fmt.Sprintf("%s(%v)", rv.Type(), v)
	case k == reflect.String:
		return fmt.Sprintf("%s(%s)", rv.Type(), strconv.Quote(rv.String()))
	case k == reflect.Func:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type())
		}
		return fmt.Sprintf("(%s)(func)", rv.Type())
	case k == reflect.Chan:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type())
		}
		return fmt.Sprintf("(%s)(len=%d)", rv.Type(), rv.Len())
	}

	return compact(rv)
}

// special renders the types which have a dedicated textual form.
func special(v any) (string, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.RFC3339Nano), true
	case time.Duration:
		return x.String(), true
	case proto.Message:
		if reflect.ValueOf(x).IsNil() {
			return fmt.Sprintf("(%T)(nil)", x), true
		}
		return fmt.Sprintf("%T{%s}", x, strings.TrimSpace(prototext.MarshalOptions{}.Format(x))), true
	case error:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return fmt.Sprintf("(%T)(nil)", x), true
		}
		return fmt.Sprintf("error(%q)", x.Error()), true
	}
	return "", false
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// Multiline renders v over multiple lines, with types, suitable for verbose
// output.
func Multiline(v any) string {
	if v == nil {
		return "nil"
	}
	if m, ok := v.(proto.Message); ok && !reflect.ValueOf(m).IsNil() {
		return fmt.Sprintf("%T{\n%s}", m, prototext.MarshalOptions{Multiline: true, Indent: "  "}.Format(m))
	}
	cfg := spewConfig
	if cyclic(reflect.ValueOf(v)) {
		cfg.MaxDepth = multilineCycleDepth
	}
	return strings.TrimSuffix(cfg.Sdump(v), "\n")
}

// Type renders the dynamic type of v, or "nil" for untyped nil.
func Type(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// ReflectValue renders rv like Value, but also supports values obtained from
// unexported struct fields (which cannot be converted back to `any`).
func ReflectValue(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	if rv.CanInterface() {
		return Value(rv.Interface())
	}
	switch rv.Kind() {
	case reflect.String:
		if rv.Type() == reflect.TypeFor[string]() {
			return strconv.Quote(rv.String())
		}
		return fmt.Sprintf("%s(%s)", rv.Type(), strconv.Quote(rv.String()))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type())
		}
	}
	if !isBasic(rv.Kind()) {
		return compact(rv)
	}
	// fmt knows how to print the value held by a reflect.Value, even when it
	// came from an unexported field.
	if defaultTypes[rv.Type()] {
		return fmt.Sprintf("%v", rv)
	}
	return fmt.Sprintf("%s(%v)", rv.Type(), rv)
}
