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

// path locates a node in the compared graph.
//
// `display` includes slice and array indices ("friends[1].name") and is used
// in reports, `field` does not ("friends.name") and is what the Options match
// against.
type path struct {
	display string
	field   string
}

func (p path) isRoot() bool { return p.display == "" }

// child returns the path of a struct field or a map entry.
func (p path) child(name string) path {
	if p.isRoot() {
		return path{display: name, field: name}
	}
	field := name
	if p.field != "" {
		field = p.field + "." + name
	}
	return path{display: p.display + "." + name, field: field}
}

// element returns the path of the i'th element of a slice or array.
func (p path) element(i int) path {
	return path{display: fmt.Sprintf("%s[%d]", p.display, i), field: p.field}
}

// String is used in traces.
func (p path) String() string {
	if p.isRoot() {
		return "<root>"
	}
	return p.display
}

// hasPrefixPath reports whether `field` is `prefix` or lies below it.
func hasPrefixPath(field, prefix string) bool {
	if prefix == "" {
		return true
	}
	return field == prefix || strings.HasPrefix(field, prefix+".")
}
