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

package recursive_test

import (
	"strings"
	"testing"

	"go.chromium.org/deepcheck/common/testing/truth/assert"
	"go.chromium.org/deepcheck/common/testing/truth/recursive"
	"go.chromium.org/deepcheck/common/testing/truth/should"
)

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("differences", func(t *testing.T) {
		t.Parallel()
		actual := map[string]any{"foo": 1, "sub": map[string]string{"a": "x"}}
		expected := map[string]any{"fu": 1, "sub": map[string]string{"a": "y"}}
		diffs := compare(t, actual, expected)

		lines := recursive.Report{Actual: 1, Expected: 2, Differences: diffs}.Lines()
		assert.That(t, lines[:5], should.Match([]string{
			"Expecting actual:",
			"  1",
			"to be equal to:",
			"  2",
			"when recursively comparing field by field, but found the following 2 differences:",
		}))
		assert.That(t, strings.Join(lines[5:], "\n"), should.Equal(strings.Join([]string{
			"",
			"map key difference:",
			`- actual key  : "foo"`,
			`- expected key: "fu"`,
			"",
			"field/property 'sub.a' differ:",
			`- actual value  : "x"`,
			`- expected value: "y"`,
		}, "\n")))
	})

	t.Run("top level", func(t *testing.T) {
		t.Parallel()
		r := recursive.Report{
			Actual:      1,
			Expected:    2,
			Differences: compare(t, 1, 2),
		}
		assert.That(t, r.String(), should.Equal(strings.Join([]string{
			"Expecting actual:",
			"  1",
			"to be equal to:",
			"  2",
			"when recursively comparing field by field, but found the following 1 difference:",
			"",
			"Top level actual and expected objects differ:",
			"- actual value  : 1",
			"- expected value: 2",
		}, "\n")))
	})

	t.Run("negated with config", func(t *testing.T) {
		t.Parallel()
		r := recursive.Report{
			Actual:   "a",
			Expected: "a",
			Config:   recursive.NewConfiguration(recursive.WithStrictTypeChecking(), recursive.UsingOverriddenEquals()),
			Negated:  true,
		}
		assert.That(t, r.String(), should.Equal(strings.Join([]string{
			"Expecting actual:",
			`  "a"`,
			"not to be equal to:",
			`  "a"`,
			"when recursively comparing field by field",
			"",
			"The recursive comparison was performed with this configuration:",
			"- actual and expected objects and their fields were required to have the same type (strict type checking)",
			"- Equal methods were used in the comparison",
		}, "\n")))
	})

	t.Run("detail", func(t *testing.T) {
		t.Parallel()
		r := recursive.Report{Actual: []int{1}, Expected: []int{1, 2}, Differences: compare(t, []int{1}, []int{1, 2})}
		assert.That(t, r.String(), should.ContainSubstring(
			"actual and expected values are collections of different size, actual size=1 when expected size=2"))
	})
}

func TestConfigurationString(t *testing.T) {
	t.Parallel()

	cfg := recursive.NewConfiguration(
		recursive.IgnoringFields("b", "a"),
		recursive.IgnoringFieldsMatchingRegexes(".*id"),
		recursive.IgnoringFieldsOfType[int](),
		recursive.ComparingOnlyFields("c"),
		recursive.IgnoringActualNilFields(),
		recursive.IgnoringExpectedNilFields(),
		recursive.IgnoringUnexportedFields(),
		recursive.TreatingNilAndEmptyAsEqual(),
		recursive.IgnoringCollectionOrder(),
		recursive.IgnoringCollectionOrderInFields("tags"),
		recursive.IgnoringCollectionOrderInFieldsMatchingRegexes("t.*"),
		recursive.WithComparatorForType(strings.EqualFold),
		recursive.WithComparatorForFields(strings.EqualFold, "name"),
	)
	assert.NoErr(t, cfg.Err())
	assert.That(t, strings.Split(cfg.String(), "\n"), should.Match([]string{
		"- actual and expected objects and their fields were compared field by field recursively even if they were not of the same type, this allows for example to compare a Person to a PersonDTO (use WithStrictTypeChecking to change that behavior)",
		"- no Equal methods were used in the comparison (except for time.Time and proto messages)",
		"- the following fields were ignored in the comparison: a, b",
		"- the fields matching the following regexes were ignored in the comparison: .*id",
		"- the following types were ignored in the comparison: int",
		"- the comparison was performed on the following fields: c",
		"- all actual nil fields were ignored in the comparison",
		"- all expected nil fields were ignored in the comparison",
		"- unexported fields were ignored in the comparison",
		"- nil and empty slices and maps were considered equal",
		"- collection order was ignored in all fields in the comparison",
		"- collection order was ignored in the following fields in the comparison: tags",
		"- collection order was ignored in the fields matching the following regexes in the comparison: t.*",
		"- these types were compared with the following comparators:",
		"  - string -> custom comparator",
		"- these fields were compared with the following comparators:",
		"  - name -> custom comparator",
	}))
}

func TestConfigurationErrors(t *testing.T) {
	t.Parallel()

	cfg := recursive.NewConfiguration(
		recursive.IgnoringFieldsMatchingRegexes("["),
		recursive.IgnoringCollectionOrderInFieldsMatchingRegexes("(x"),
		recursive.IgnoringFieldsOfTypes(nil),
	)
	err := cfg.Err()
	assert.That(t, err, should.ErrLike(`invalid ignored field regex "["`))
	assert.That(t, err, should.ErrLike("and 2 other errors"))

	_, err = cfg.Compare(1, 1)
	assert.That(t, err, should.ErrLike(`invalid ignored field regex "["`))
}
