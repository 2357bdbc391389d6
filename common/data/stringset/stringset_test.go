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

package stringset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewFromSlice("b", "a", "c")
	if !s.Has("a") || s.Has("z") {
		t.Fatalf("unexpected membership: %v", s)
	}
	if s.Add("a") {
		t.Fatal("Add of existing value returned true")
	}
	if !s.Add("z") {
		t.Fatal("Add of new value returned false")
	}
	if !s.Del("z") || s.Del("z") {
		t.Fatal("Del returned unexpected result")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, s.ToSortedSlice()); diff != "" {
		t.Errorf("unexpected diff (-want +got): %s", diff)
	}
	if !s.HasAll("a", "b") || s.HasAll("a", "q") {
		t.Error("HasAll returned unexpected result")
	}
}

func TestSetOperations(t *testing.T) {
	t.Parallel()

	a := NewFromSlice("1", "2", "3")
	b := NewFromSlice("2", "3", "4")

	cases := []struct {
		name string
		got  Set
		want []string
	}{
		{"intersect", a.Intersect(b), []string{"2", "3"}},
		{"difference", a.Difference(b), []string{"1"}},
		{"union", a.Union(b), []string{"1", "2", "3", "4"}},
		{"dup", a.Dup(), []string{"1", "2", "3"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.ToSortedSlice()); diff != "" {
				t.Errorf("unexpected diff (-want +got): %s", diff)
			}
		})
	}
}
