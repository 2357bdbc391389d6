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

func TestProfile(t *testing.T) {
	t.Parallel()

	t.Run("load", func(t *testing.T) {
		t.Parallel()
		opts, err := recursive.LoadProfile(strings.NewReader(strings.Join([]string{
			"ignored_fields: [Age, Home.Street]",
			"ignored_field_regexes: ['.*Name']",
			"ignore_collection_order_in_fields: [Tags]",
			"treat_nil_and_empty_as_equal: true",
		}, "\n")))
		assert.NoErr(t, err)
		assert.Loosely(t, opts, should.HaveLength(4))

		actual := alice()
		actual.Age = 3
		actual.Home.Street = "Elm"
		actual.Friends[0].Name = "robert"
		actual.Tags = []string{"c", "b", "a"}
		actual.Labels = nil
		expected := alice()
		expected.Labels = map[string]string{}
		assert.Loosely(t, compare(t, actual, expected, opts...), should.BeEmpty)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()
		opts, err := recursive.ParseProfile([]byte(strings.Join([]string{
			"compared_fields: [X]",
			"ignore_collection_order: true",
			"ignore_actual_nil_fields: true",
			"ignore_expected_nil_fields: true",
			"ignore_unexported_fields: true",
			"strict_type_checking: true",
			"use_overridden_equals: true",
		}, "\n")))
		assert.NoErr(t, err)

		cfg := recursive.NewConfiguration(opts...)
		for _, line := range []string{
			"strict type checking",
			"Equal methods were used",
			"performed on the following fields: X",
			"collection order was ignored in all fields",
			"all actual nil fields were ignored",
			"all expected nil fields were ignored",
			"unexported fields were ignored",
		} {
			assert.That(t, cfg.String(), should.ContainSubstring(line))
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := recursive.ParseProfile([]byte("ignore_fields: [a]"))
		assert.That(t, err, should.ErrLike("parsing comparison profile"))
	})

	t.Run("bad regex", func(t *testing.T) {
		t.Parallel()
		opts, err := recursive.ParseProfile([]byte("ignored_field_regexes: ['(']"))
		assert.NoErr(t, err)
		_, err = recursive.Compare(1, 1, opts...)
		assert.That(t, err, should.ErrLike("invalid ignored field regex"))
	})
}
