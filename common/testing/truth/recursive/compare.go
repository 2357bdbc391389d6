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
	"fmt"
	"reflect"
	"time"

	"google.golang.org/protobuf/proto"

	"go.chromium.org/deepcheck/common/logging"
	"go.chromium.org/deepcheck/common/testing/registry"
)

// dualValue is a pair of values at the same location of the two graphs.
type dualValue struct {
	path     path
	actual   reflect.Value
	expected reflect.Value

	// isField is set for struct fields and map values, which are subject to
	// the nil field ignore rules.
	isField bool
	// root is set for the value a comparison starts from.
	root bool
}

type visitKey struct {
	kind         reflect.Kind
	aType, eType reflect.Type
	aPtr, ePtr   uintptr
	aLen, eLen   int
}

// engine runs one breadth-first comparison.
type engine struct {
	cfg     *Configuration
	visited map[visitKey]struct{}
	diffs   []Difference

	// stopAtFirst is set for nested comparisons which only need a verdict.
	stopAtFirst bool
}

func newEngine(cfg *Configuration) *engine {
	return &engine{cfg: cfg, visited: map[visitKey]struct{}{}}
}

// nested returns an engine for a sub-comparison. It shares nothing with `e`
// except a snapshot of the visited pairs, so cycles through the outer graph
// still terminate.
func (e *engine) nested() *engine {
	n := &engine{cfg: e.cfg, visited: make(map[visitKey]struct{}, len(e.visited)), stopAtFirst: true}
	for k := range e.visited {
		n.visited[k] = struct{}{}
	}
	return n
}

// nestedEqual reports whether `a` and `x` are recursively equal at `p`.
func (e *engine) nestedEqual(p path, a, x reflect.Value) bool {
	n := e.nested()
	n.run(dualValue{path: p, actual: a, expected: x, root: true})
	return len(n.diffs) == 0
}

// Compare compares `actual` and `expected` with the given options.
//
// It returns the differences in breadth-first discovery order, or an error
// if the options are invalid. No differences means the values are
// recursively equal.
func Compare(actual, expected any, opts ...Option) ([]Difference, error) {
	return NewConfiguration(opts...).Compare(actual, expected)
}

// Compare compares `actual` and `expected` with this configuration.
func (c *Configuration) Compare(actual, expected any) ([]Difference, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}
	eng := newEngine(c)
	eng.run(dualValue{
		actual:   addressable(reflect.ValueOf(actual)),
		expected: addressable(reflect.ValueOf(expected)),
		root:     true,
	})
	if err := c.checkComparedFields(actual, expected); err != nil {
		return nil, err
	}
	return eng.diffs, nil
}

func (e *engine) tracef(p path, format string, args ...any) {
	if e.cfg.trace == nil {
		return
	}
	logging.Fields{"path": p.String()}.Debugf(e.cfg.trace, format, args...)
}

func (e *engine) report(d Difference) {
	e.tracef(path{display: d.Path}, "%s difference", d.Kind)
	e.diffs = append(e.diffs, d)
}

func (e *engine) differ(p path, kind DifferenceKind, a, x reflect.Value, detail string) {
	e.report(Difference{
		Path:      p.display,
		FieldPath: p.field,
		Actual:    render(a),
		Expected:  render(x),
		Kind:      kind,
		Detail:    detail,
	})
}

func (e *engine) run(root dualValue) {
	queue := []dualValue{root}
	for len(queue) > 0 {
		if e.stopAtFirst && len(e.diffs) > 0 {
			return
		}
		dv := queue[0]
		queue = queue[1:]
		if !dv.root {
			if reason := e.ignoreReason(dv); reason != "" {
				e.tracef(dv.path, "ignored: %s", reason)
				continue
			}
		}
		queue = append(queue, e.compareValues(dv.path, dv.actual, dv.expected)...)
	}
}

// fieldIgnoreReason explains why the field path itself is excluded from the
// comparison, or returns "".
func (c *Configuration) fieldIgnoreReason(field string) string {
	for ignored := range c.ignoredFields {
		if hasPrefixPath(field, ignored) {
			return fmt.Sprintf("field %q is ignored", ignored)
		}
	}
	for _, re := range c.ignoredFieldRegexes {
		if re.MatchString(field) {
			return fmt.Sprintf("field matches %s", re)
		}
	}
	if len(c.comparedFields) > 0 {
		for compared := range c.comparedFields {
			if hasPrefixPath(field, compared) || hasPrefixPath(compared, field) {
				return ""
			}
		}
		return "field is not compared"
	}
	return ""
}

func (c *Configuration) typeIgnored(v reflect.Value) (reflect.Type, bool) {
	if len(c.ignoredTypes) == 0 || !v.IsValid() {
		return nil, false
	}
	if _, ok := c.ignoredTypes[v.Type()]; ok {
		return v.Type(), true
	}
	if dyn := unwrap(v); dyn.IsValid() && dyn.Type() != v.Type() {
		if _, ok := c.ignoredTypes[dyn.Type()]; ok {
			return dyn.Type(), true
		}
	}
	return nil, false
}

func (e *engine) ignoreReason(dv dualValue) string {
	if reason := e.cfg.fieldIgnoreReason(dv.path.field); reason != "" {
		return reason
	}
	for _, v := range []reflect.Value{dv.actual, dv.expected} {
		if typ, ok := e.cfg.typeIgnored(v); ok {
			return fmt.Sprintf("type %s is ignored", typ)
		}
	}
	if dv.isField {
		if e.cfg.ignoreActualNilFields && isNil(unwrap(dv.actual)) {
			return "actual is nil"
		}
		if e.cfg.ignoreExpectedNilFields && isNil(unwrap(dv.expected)) {
			return "expected is nil"
		}
	}
	return ""
}

// comparatorApplies reports whether a comparator for `typ` can compare `a`
// and `x`.
func comparatorApplies(typ reflect.Type, a, x reflect.Value) bool {
	if typ.Kind() == reflect.Interface {
		return a.Type().Implements(typ) && x.Type().Implements(typ)
	}
	return a.Type() == typ && x.Type() == typ
}

func (e *engine) comparator(p path, a, x reflect.Value) (valueComparator, string, bool) {
	if cmp, ok := e.cfg.fieldComparators[p.field]; ok && p.field != "" && comparatorApplies(cmp.typ, a, x) {
		return cmp, "field " + p.field, true
	}
	for i := len(e.cfg.typeComparators) - 1; i >= 0; i-- {
		if cmp := e.cfg.typeComparators[i]; comparatorApplies(cmp.typ, a, x) {
			return cmp, "type " + cmp.typ.String(), true
		}
	}
	return valueComparator{}, "", false
}

// compareValues compares one pair and returns the pairs below it which still
// need comparing.
func (e *engine) compareValues(p path, a, x reflect.Value) []dualValue {
	// Interfaces like protoreflect.Descriptor are compared by identity.
	if a.IsValid() && x.IsValid() && a.Type() == x.Type() &&
		a.Kind() == reflect.Interface && registry.ComparableInterface(a.Type()) {
		if !safeInterfaceEqual(a, x) {
			e.differ(p, ValueDiffer, a, x, "")
		}
		return nil
	}

	// Comparators on interface types see the dynamic values.
	a, x = unwrap(a), unwrap(x)

	aNil, xNil := isNil(a), isNil(x)
	switch {
	case aNil && xNil:
		if e.cfg.strictTypeChecking && a.IsValid() && x.IsValid() && a.Type() != x.Type() {
			e.differ(p, TypeDiffer, a, x, typeDetail(a, x))
		}
		return nil
	case aNil || xNil:
		if e.cfg.nilAndEmptyAreEqual {
			if (aNil && isCollectionOrInvalid(a) && isEmptyCollection(x)) ||
				(xNil && isCollectionOrInvalid(x) && isEmptyCollection(a)) {
				e.tracef(p, "nil and empty are equal")
				return nil
			}
		}
		e.differ(p, ValueDiffer, a, x, "")
		return nil
	}

	if cmp, name, ok := e.comparator(p, a, x); ok {
		eq := cmp.fn(a, x)
		e.tracef(p, "compared with the comparator for %s: equal=%t", name, eq)
		if !eq {
			e.differ(p, ValueDiffer, a, x, "")
		}
		return nil
	}

	if e.cfg.strictTypeChecking && a.Type() != x.Type() {
		e.differ(p, TypeDiffer, a, x, typeDetail(a, x))
		return nil
	}

	if am, ok := asProto(a); ok {
		if xm, ok := asProto(x); ok {
			if !proto.Equal(am, xm) {
				e.differ(p, ValueDiffer, a, x, "")
			}
			return nil
		}
	}

	if a.Type() == timeType && x.Type() == timeType {
		if !a.Interface().(time.Time).Equal(x.Interface().(time.Time)) {
			e.differ(p, ValueDiffer, a, x, "")
		}
		return nil
	}

	if e.cfg.useOverriddenEquals && a.Kind() != reflect.Pointer {
		if m, arg, ok := equalMethod(a, x); ok {
			eq := m.Call([]reflect.Value{arg})[0].Bool()
			e.tracef(p, "compared with %s.Equal: equal=%t", a.Type(), eq)
			if !eq {
				e.differ(p, ValueDiffer, a, x, "")
			}
			return nil
		}
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if a.Kind() == x.Kind() {
			if a.Pointer() == x.Pointer() && a.Type() == x.Type() && (a.Kind() == reflect.Pointer || a.Len() == x.Len()) {
				e.tracef(p, "identical references")
				return nil
			}
			key := visitKey{kind: a.Kind(), aType: a.Type(), eType: x.Type(), aPtr: a.Pointer(), ePtr: x.Pointer()}
			if a.Kind() != reflect.Pointer {
				key.aLen, key.eLen = a.Len(), x.Len()
			}
			if _, seen := e.visited[key]; seen {
				e.tracef(p, "already visited")
				return nil
			}
			e.visited[key] = struct{}{}
		}
	}

	switch {
	case a.Kind() == reflect.Pointer && x.Kind() == reflect.Pointer:
		return e.compareValues(p, a.Elem(), x.Elem())
	case a.Kind() == reflect.Pointer:
		return e.compareValues(p, a.Elem(), x)
	case x.Kind() == reflect.Pointer:
		return e.compareValues(p, a, x.Elem())
	}

	if a.Kind() != x.Kind() {
		if !(isList(a.Kind()) && isList(x.Kind())) {
			e.differ(p, TypeDiffer, a, x, typeDetail(a, x))
			return nil
		}
	}

	switch a.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if a.Pointer() != x.Pointer() {
			e.differ(p, ValueDiffer, a, x, "")
		}
		return nil
	case reflect.Slice, reflect.Array:
		return e.compareLists(p, a, x)
	case reflect.Map:
		return e.compareMaps(p, a, x)
	case reflect.Struct:
		return e.compareStructs(p, a, x)
	}

	if !basicEqual(a, x) {
		e.differ(p, ValueDiffer, a, x, "")
	}
	return nil
}

func isList(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func typeDetail(a, x reflect.Value) string {
	return fmt.Sprintf("actual type %s differs from expected type %s", typeName(a), typeName(x))
}

func (e *engine) compareStructs(p path, a, x reflect.Value) []dualValue {
	a, x = addressable(a), addressable(x)
	at, xt := a.Type(), x.Type()
	var ret []dualValue
	for i := 0; i < at.NumField(); i++ {
		sf := at.Field(i)
		if e.cfg.ignoreUnexportedFields && !sf.IsExported() {
			continue
		}
		child := p.child(sf.Name)
		xField := reflect.Value{}
		if at == xt {
			xField = field(x, i)
		} else if xsf, ok := declaredField(xt, sf.Name); ok {
			xField = field(x, xsf.Index[0])
		} else {
			if e.cfg.fieldIgnoreReason(child.field) != "" {
				continue
			}
			e.report(Difference{
				Path:      child.display,
				FieldPath: child.field,
				Actual:    render(field(a, i)),
				Expected:  fmt.Sprintf("<%s does not declare %s>", xt, sf.Name),
				Kind:      MissingField,
				Detail:    fmt.Sprintf("expected value does not declare field %q", sf.Name),
			})
			continue
		}
		ret = append(ret, dualValue{path: child, actual: field(a, i), expected: xField, isField: true})
	}
	return ret
}

// declaredField finds a field declared directly by `t`.
func declaredField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if sf := t.Field(i); sf.Name == name {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}
