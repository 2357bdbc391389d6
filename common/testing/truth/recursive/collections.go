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
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

func (c *Configuration) collectionOrderIgnored(field string) bool {
	if c.ignoreAllCollectionOrder || c.ignoredCollectionOrderFields.Has(field) {
		return true
	}
	for _, re := range c.ignoredCollectionOrderPatterns {
		if re.MatchString(field) {
			return true
		}
	}
	return false
}

func sizeDetail(what string, a, x int) string {
	return fmt.Sprintf("actual and expected values are %s of different size, actual size=%s when expected size=%s",
		what, humanize.Comma(int64(a)), humanize.Comma(int64(x)))
}

func renderList(vals []reflect.Value) string {
	rendered := make([]string, len(vals))
	for i, v := range vals {
		rendered[i] = render(v)
	}
	return "[" + strings.Join(rendered, ", ") + "]"
}

// appendMissing adds the "not found" lines to a difference detail.
func appendMissing(detail, what string, missingInActual, missingInExpected []reflect.Value) string {
	lines := []string{detail}
	if len(missingInActual) > 0 {
		lines = append(lines, fmt.Sprintf("the following expected %s were not found in actual: %s", what, renderList(missingInActual)))
	}
	if len(missingInExpected) > 0 {
		lines = append(lines, fmt.Sprintf("the following actual %s were not found in expected: %s", what, renderList(missingInExpected)))
	}
	return strings.Join(lines, "\n")
}

// matchElements pairs up the elements of two lists regardless of order.
//
// It returns the expected elements with no equal actual element, and the
// actual elements with no equal expected element.
func (e *engine) matchElements(p path, a, x reflect.Value) (missingInActual, missingInExpected []reflect.Value) {
	used := make([]bool, a.Len())
	for j := 0; j < x.Len(); j++ {
		found := false
		for i := 0; i < a.Len(); i++ {
			if used[i] {
				continue
			}
			if e.nestedEqual(p.element(i), a.Index(i), x.Index(j)) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			missingInActual = append(missingInActual, x.Index(j))
		}
	}
	for i, u := range used {
		if !u {
			missingInExpected = append(missingInExpected, a.Index(i))
		}
	}
	return
}

func (e *engine) compareLists(p path, a, x reflect.Value) []dualValue {
	a, x = addressable(a), addressable(x)
	if a.Len() != x.Len() {
		missingInActual, missingInExpected := e.matchElements(p, a, x)
		e.differ(p, CollectionSize, a, x,
			appendMissing(sizeDetail("collections", a.Len(), x.Len()), "elements", missingInActual, missingInExpected))
		return nil
	}

	if !e.cfg.collectionOrderIgnored(p.field) {
		ret := make([]dualValue, a.Len())
		for i := range ret {
			ret[i] = dualValue{path: p.element(i), actual: a.Index(i), expected: x.Index(i)}
		}
		return ret
	}

	e.tracef(p, "comparing %d elements ignoring order", a.Len())
	missingInActual, missingInExpected := e.matchElements(p, a, x)
	if len(missingInActual) > 0 || len(missingInExpected) > 0 {
		e.differ(p, UnmatchedElements, a, x,
			appendMissing("actual and expected collections have the same size but different elements (order ignored)",
				"elements", missingInActual, missingInExpected))
	}
	return nil
}

type mapEntry struct {
	key, val reflect.Value
	// segment is the key as it appears in field paths.
	segment  string
	rendered string
}

// keySegment renders a map key as a field path segment.
func keySegment(k reflect.Value) string {
	k = unwrap(k)
	if k.IsValid() && k.Kind() == reflect.String {
		return k.String()
	}
	return render(k)
}

// entries returns the entries of `m` which are not ignored, sorted by
// rendered key.
func (e *engine) entries(p path, m reflect.Value) []mapEntry {
	ret := make([]mapEntry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		seg := keySegment(iter.Key())
		if reason := e.cfg.fieldIgnoreReason(p.child(seg).field); reason != "" {
			e.tracef(p.child(seg), "map entry ignored: %s", reason)
			continue
		}
		ret = append(ret, mapEntry{
			key:      addressable(iter.Key()),
			val:      addressable(iter.Value()),
			segment:  seg,
			rendered: render(iter.Key()),
		})
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].rendered < ret[j].rendered })
	return ret
}

func keysOf(entries []mapEntry, idx []int) []reflect.Value {
	ret := make([]reflect.Value, len(idx))
	for i, j := range idx {
		ret[i] = entries[j].key
	}
	return ret
}

func (e *engine) compareMaps(p path, a, x reflect.Value) []dualValue {
	ae, xe := e.entries(p, a), e.entries(p, x)

	byBasicKey := map[basicKey][]int{}
	for j, ent := range xe {
		if k := unwrap(ent.key); k.IsValid() && isBasicKind(k.Kind()) {
			bk := basicKeyOf(k)
			byBasicKey[bk] = append(byBasicKey[bk], j)
		}
	}

	matched := make([]bool, len(xe))
	type pair struct{ a, x int }
	var pairs []pair
	var unmatchedActual []int
	for i, ent := range ae {
		j := -1
		if k := unwrap(ent.key); k.IsValid() && isBasicKind(k.Kind()) {
			for _, cand := range byBasicKey[basicKeyOf(k)] {
				if !matched[cand] {
					j = cand
					break
				}
			}
		} else {
			for cand := range xe {
				if !matched[cand] && e.nestedEqual(p, ent.key, xe[cand].key) {
					j = cand
					break
				}
			}
		}
		if j < 0 {
			unmatchedActual = append(unmatchedActual, i)
			continue
		}
		matched[j] = true
		pairs = append(pairs, pair{i, j})
	}
	var unmatchedExpected []int
	for j, m := range matched {
		if !m {
			unmatchedExpected = append(unmatchedExpected, j)
		}
	}

	if len(ae) != len(xe) {
		e.differ(p, MapSize, a, x, appendMissing(sizeDetail("maps", len(ae), len(xe)), "keys",
			keysOf(xe, unmatchedExpected), keysOf(ae, unmatchedActual)))
		return nil
	}

	for n := range unmatchedActual {
		e.report(Difference{
			Path:      p.display,
			FieldPath: p.field,
			Actual:    ae[unmatchedActual[n]].rendered,
			Expected:  xe[unmatchedExpected[n]].rendered,
			Kind:      MapKey,
		})
	}

	ret := make([]dualValue, len(pairs))
	for n, pr := range pairs {
		ret[n] = dualValue{
			path:     p.child(ae[pr.a].segment),
			actual:   ae[pr.a].val,
			expected: xe[pr.x].val,
			isField:  true,
		}
	}
	return ret
}
