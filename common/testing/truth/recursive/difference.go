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
	"strings"
)

// DifferenceKind classifies a Difference.
type DifferenceKind int

const (
	// ValueDiffer means the two values are not equal.
	ValueDiffer DifferenceKind = iota
	// TypeDiffer means the two values have different types and could not be
	// compared field by field.
	TypeDiffer
	// MissingField means actual has a field which expected does not declare.
	MissingField
	// CollectionSize means two slices or arrays have different lengths.
	CollectionSize
	// UnmatchedElements means the elements of two slices or arrays compared
	// without order could not be paired up.
	UnmatchedElements
	// MapSize means two maps have a different number of entries.
	MapSize
	// MapKey means a key of the actual map has no equal key in expected.
	MapKey
)

var kindNames = map[DifferenceKind]string{
	ValueDiffer:       "ValueDiffer",
	TypeDiffer:        "TypeDiffer",
	MissingField:      "MissingField",
	CollectionSize:    "CollectionSize",
	UnmatchedElements: "UnmatchedElements",
	MapSize:           "MapSize",
	MapKey:            "MapKey",
}

func (k DifferenceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DifferenceKind(%d)", int(k))
}

// Difference is one mismatch found by Compare.
type Difference struct {
	// Path is where the difference was found, e.g. "friends[1].name". It is
	// empty for the top level objects.
	Path string
	// FieldPath is Path without slice and array indices, e.g. "friends.name".
	FieldPath string

	// Actual and Expected are the rendered values (or keys, for MapKey).
	Actual   string
	Expected string

	Kind DifferenceKind

	// Detail is an extra explanation, e.g. which elements were missing.
	Detail string
}

// String renders the Difference as a block of lines for a Report.
func (d Difference) String() string {
	var b strings.Builder
	switch {
	case d.Kind == MapKey:
		b.WriteString("map key difference:\n")
		fmt.Fprintf(&b, "- actual key  : %s\n", indentTail(d.Actual))
		fmt.Fprintf(&b, "- expected key: %s", indentTail(d.Expected))
	default:
		if d.Path == "" {
			b.WriteString("Top level actual and expected objects differ:\n")
		} else {
			fmt.Fprintf(&b, "field/property '%s' differ:\n", d.Path)
		}
		fmt.Fprintf(&b, "- actual value  : %s\n", indentTail(d.Actual))
		fmt.Fprintf(&b, "- expected value: %s", indentTail(d.Expected))
	}
	if d.Detail != "" {
		b.WriteString("\n")
		b.WriteString(d.Detail)
	}
	return b.String()
}

// indentTail keeps continuation lines of multi-line values aligned.
func indentTail(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
