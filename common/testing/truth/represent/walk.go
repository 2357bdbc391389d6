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

package represent

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// multilineCycleDepth caps Multiline output for graphs which loop through a
// map or a slice. go-spew only detects loops through pointers.
const multilineCycleDepth = 8

// visit identifies a reference value on the rendering stack.
type visit struct {
	kind reflect.Kind
	typ  reflect.Type
	ptr  uintptr
	len  int
}

func visitOf(rv reflect.Value) (visit, bool) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return visit{}, false
		}
		return visit{rv.Kind(), rv.Type(), rv.Pointer(), 0}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return visit{}, false
		}
		return visit{reflect.Slice, rv.Type(), rv.Pointer(), rv.Len()}, true
	}
	return visit{}, false
}

// printer renders composite values on a single line, in the style of
// fmt's "%+v", without pointer addresses.
//
// A reference which is already on the stack renders as "<shown>".
type printer struct {
	b     strings.Builder
	stack map[visit]bool
}

func compact(rv reflect.Value) string {
	p := &printer{stack: map[visit]bool{}}
	p.print(rv)
	return p.b.String()
}

func (p *printer) print(rv reflect.Value) {
	if !rv.IsValid() {
		p.b.WriteString("nil")
		return
	}
	if rv.CanInterface() {
		if s, ok := special(rv.Interface()); ok {
			p.b.WriteString(s)
			return
		}
	}
	if key, ok := visitOf(rv); ok {
		if p.stack[key] {
			p.b.WriteString("<shown>")
			return
		}
		p.stack[key] = true
		defer delete(p.stack, key)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			p.b.WriteString("nil")
			return
		}
		p.b.WriteByte('&')
		p.print(rv.Elem())

	case reflect.Interface:
		if rv.IsNil() {
			p.b.WriteString("nil")
			return
		}
		p.print(rv.Elem())

	case reflect.Struct:
		p.b.WriteByte('{')
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				p.b.WriteByte(' ')
			}
			p.b.WriteString(rv.Type().Field(i).Name)
			p.b.WriteByte(':')
			p.print(rv.Field(i))
		}
		p.b.WriteByte('}')

	case reflect.Slice, reflect.Array:
		p.b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				p.b.WriteByte(' ')
			}
			p.print(rv.Index(i))
		}
		p.b.WriteByte(']')

	case reflect.Map:
		type entry struct {
			key string
			val reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kp := &printer{stack: p.stack}
			kp.print(iter.Key())
			entries = append(entries, entry{kp.b.String(), iter.Value()})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		p.b.WriteString("map[")
		for i, e := range entries {
			if i > 0 {
				p.b.WriteByte(' ')
			}
			p.b.WriteString(e.key)
			p.b.WriteByte(':')
			p.print(e.val)
		}
		p.b.WriteByte(']')

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			fmt.Fprintf(&p.b, "(%s)(nil)", rv.Type())
			return
		}
		fmt.Fprintf(&p.b, "(%s)(%s)", rv.Type(), rv.Kind())

	case reflect.String:
		p.b.WriteString(rv.String())

	default:
		fmt.Fprintf(&p.b, "%v", rv)
	}
}

// cyclic reports whether rv reaches itself.
func cyclic(rv reflect.Value) bool {
	const (
		open = 1
		done = 2
	)
	state := map[visit]int{}
	var walk func(reflect.Value) bool
	walk = func(rv reflect.Value) bool {
		if !rv.IsValid() {
			return false
		}
		if key, ok := visitOf(rv); ok {
			switch state[key] {
			case open:
				return true
			case done:
				return false
			}
			state[key] = open
			defer func() { state[key] = done }()
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			return !rv.IsNil() && walk(rv.Elem())
		case reflect.Struct:
			for i := 0; i < rv.NumField(); i++ {
				if walk(rv.Field(i)) {
					return true
				}
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if walk(rv.Index(i)) {
					return true
				}
			}
		case reflect.Map:
			iter := rv.MapRange()
			for iter.Next() {
				if walk(iter.Key()) || walk(iter.Value()) {
					return true
				}
			}
		}
		return false
	}
	return walk(rv)
}
