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
	"math"
	"reflect"
	"time"
	"unsafe"

	"google.golang.org/protobuf/proto"

	"go.chromium.org/deepcheck/common/testing/truth/represent"
)

var (
	timeType         = reflect.TypeFor[time.Time]()
	protoMessageType = reflect.TypeFor[proto.Message]()
)

// addressable returns `v`, or an addressable copy of it.
//
// Fields of addressable structs can be read even when unexported, the same
// way go-cmp's Exporter does it.
func addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

// field returns the i'th field of the addressable struct `v`, readable even
// if unexported.
func field(v reflect.Value, i int) reflect.Value {
	f := v.Field(i)
	if !f.CanInterface() {
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f
}

// unwrap strips interfaces. A nil interface becomes the invalid Value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = addressable(v.Elem())
	}
	return v
}

func isNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether `v` is invalid or a nil value of a nillable kind.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if !isNillable(v.Kind()) {
		return false
	}
	if v.Kind() == reflect.UnsafePointer {
		return v.Pointer() == 0
	}
	return v.IsNil()
}

// isEmptyCollection reports whether `v` is a non-nil empty slice or map.
func isEmptyCollection(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return !v.IsNil() && v.Len() == 0
	}
	return false
}

// isCollectionOrInvalid reports whether `v` could stand for "no elements".
func isCollectionOrInvalid(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Map
}

func isBasicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// basicKey is a comparable representation of a basic kind value. Values of
// different kinds never have equal keys.
type basicKey struct {
	kind reflect.Kind
	val  any
}

func basicKeyOf(v reflect.Value) basicKey {
	k := v.Kind()
	switch k {
	case reflect.Bool:
		return basicKey{k, v.Bool()}
	case reflect.String:
		return basicKey{k, v.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return basicKey{k, v.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return basicKey{k, v.Uint()}
	case reflect.Float32, reflect.Float64:
		return basicKey{k, v.Float()}
	case reflect.Complex64, reflect.Complex128:
		return basicKey{k, v.Complex()}
	}
	panic("impossible: " + k.String() + " is not a basic kind")
}

// basicEqual compares two values of the same basic kind. NaN is equal to
// NaN.
func basicEqual(a, e reflect.Value) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		af, ef := a.Float(), e.Float()
		return af == ef || (math.IsNaN(af) && math.IsNaN(ef))
	case reflect.Complex64, reflect.Complex128:
		ac, ec := a.Complex(), e.Complex()
		if ac == ec {
			return true
		}
		sameOrNaN := func(x, y float64) bool { return x == y || (math.IsNaN(x) && math.IsNaN(y)) }
		return sameOrNaN(real(ac), real(ec)) && sameOrNaN(imag(ac), imag(ec))
	}
	return basicKeyOf(a) == basicKeyOf(e)
}

// render renders a value for a Difference.
func render(v reflect.Value) string {
	return represent.ReflectValue(v)
}

// typeName renders the type of `v`.
func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

// asProto returns the proto message held by `v`, if it holds a non-nil one.
func asProto(v reflect.Value) (proto.Message, bool) {
	if !v.IsValid() || !v.Type().Implements(protoMessageType) || isNil(v) {
		return nil, false
	}
	return v.Interface().(proto.Message), true
}

// equalMethod returns a bound `Equal(T) bool` method of `a` accepting `e`.
func equalMethod(a, e reflect.Value) (reflect.Value, reflect.Value, bool) {
	candidates := []reflect.Value{a}
	if a.CanAddr() {
		candidates = append(candidates, a.Addr())
	}
	for _, recv := range candidates {
		m := recv.MethodByName("Equal")
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
			continue
		}
		in := mt.In(0)
		switch {
		case e.Type().AssignableTo(in):
			return m, e, true
		case e.CanAddr() && e.Addr().Type().AssignableTo(in):
			return m, e.Addr(), true
		}
	}
	return reflect.Value{}, reflect.Value{}, false
}

// safeInterfaceEqual compares with == and treats panics (non comparable
// dynamic types) as "not equal".
func safeInterfaceEqual(a, e reflect.Value) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a.Interface() == e.Interface()
}
