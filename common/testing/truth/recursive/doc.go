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

// Package recursive compares two object graphs field by field.
//
// The comparison walks actual and expected breadth first. Structs are
// compared field by field (by name, so values of different struct types can
// be compared), slices and arrays element by element (or as multisets when
// collection order is ignored), maps entry by entry after aligning their keys,
// and everything else by value. Cycles are detected, so self referencing
// graphs terminate.
//
// What gets compared is controlled by Options:
//
//	diffs, err := recursive.Compare(actual, expected,
//	  recursive.IgnoringFields("id", "owner.createdAt"),
//	  recursive.IgnoringCollectionOrderInFields("tags"),
//	  recursive.WithComparatorForType(func(a, b time.Duration) bool {
//	    return (a - b).Abs() < time.Second
//	  }))
//
// Field paths are the dotted names of struct fields from the root, e.g.
// "owner.address.city". Map keys are path segments ("labels.env") while
// slice and array indices are not: "friends.name" addresses the name of every
// friend.
//
// Most users want should.RecursivelyEqual, which renders the Differences with
// a Report.
package recursive
