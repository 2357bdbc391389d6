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
	"testing"

	"go.chromium.org/deepcheck/common/testing/truth/recursive"
)

type shelf struct {
	Label string
	Books []string
	Owner *shelfOwner
}

type shelfOwner struct {
	Name string
	ID   int
}

type shelfDTO struct {
	Label string
	Books []string
	Owner *shelfOwner
	Extra bool
}

func newShelf() *shelf {
	return &shelf{
		Label: "sci-fi",
		Books: []string{"Dune", "Hyperion"},
		Owner: &shelfOwner{Name: "ann", ID: 1},
	}
}

func TestRecursivelyEqual(t *testing.T) {
	t.Parallel()

	other := newShelf()
	other.Owner.ID = 2
	other.Books = []string{"Hyperion", "Dune"}

	t.Run("pass", shouldPass(RecursivelyEqual(newShelf())(newShelf())))
	t.Run("pass with options", shouldPass(RecursivelyEqual(newShelf(),
		recursive.IgnoringFields("Owner.ID"),
		recursive.IgnoringCollectionOrderInFields("Books"))(other)))
	t.Run("fail", shouldFail(RecursivelyEqual(newShelf())(other),
		"should.RecursivelyEqual[*should.shelf] FAILED",
		"found 3 differences",
		"field/property 'Books[0]' differ:",
		"field/property 'Owner.ID' differ:",
		"- actual value  : 2",
		"- expected value: 1",
		"The recursive comparison was performed with this configuration:"))
	t.Run("bad config", shouldFail(RecursivelyEqual(newShelf(),
		recursive.ComparingOnlyFields("Nope"))(other),
		"invalid recursive comparison configuration",
		"the following fields don't exist: {Nope}"))
}

func TestRecursivelyEqualTo(t *testing.T) {
	t.Parallel()

	dto := shelfDTO{Label: "sci-fi", Books: []string{"Dune", "Hyperion"}, Owner: &shelfOwner{Name: "ann", ID: 1}, Extra: true}
	t.Run("pass", shouldPass(RecursivelyEqualTo(dto)(newShelf())))
	t.Run("strict", shouldFail(RecursivelyEqualTo(dto, recursive.WithStrictTypeChecking())(newShelf()),
		"Top level actual and expected objects differ:",
		"actual type *should.shelf differs from expected type should.shelfDTO"))
}

func TestNotRecursivelyEqual(t *testing.T) {
	t.Parallel()

	other := newShelf()
	other.Label = "fantasy"
	t.Run("pass", shouldPass(NotRecursivelyEqual(newShelf())(other)))
	t.Run("fail", shouldFail(NotRecursivelyEqual(newShelf())(newShelf()),
		"actual and expected are recursively equal",
		"not to be equal to:"))
	t.Run("ignored difference", shouldFail(NotRecursivelyEqual(newShelf(), recursive.IgnoringFields("Label"))(other)))
	t.Run("different types", shouldPass(NotRecursivelyEqualTo(shelfDTO{Label: "x"})(newShelf())))
}
