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
	"io"

	"gopkg.in/yaml.v2"

	"go.chromium.org/deepcheck/common/errors"
)

// profile is the YAML form of a reusable set of Options.
type profile struct {
	IgnoredFields       []string `yaml:"ignored_fields"`
	IgnoredFieldRegexes []string `yaml:"ignored_field_regexes"`
	ComparedFields      []string `yaml:"compared_fields"`

	IgnoreCollectionOrder         bool     `yaml:"ignore_collection_order"`
	IgnoreCollectionOrderInFields []string `yaml:"ignore_collection_order_in_fields"`

	IgnoreActualNilFields   bool `yaml:"ignore_actual_nil_fields"`
	IgnoreExpectedNilFields bool `yaml:"ignore_expected_nil_fields"`
	IgnoreUnexportedFields  bool `yaml:"ignore_unexported_fields"`
	StrictTypeChecking      bool `yaml:"strict_type_checking"`
	TreatNilAndEmptyAsEqual bool `yaml:"treat_nil_and_empty_as_equal"`
	UseOverriddenEquals     bool `yaml:"use_overridden_equals"`
}

func (p *profile) options() []Option {
	var opts []Option
	if len(p.IgnoredFields) > 0 {
		opts = append(opts, IgnoringFields(p.IgnoredFields...))
	}
	if len(p.IgnoredFieldRegexes) > 0 {
		opts = append(opts, IgnoringFieldsMatchingRegexes(p.IgnoredFieldRegexes...))
	}
	if len(p.ComparedFields) > 0 {
		opts = append(opts, ComparingOnlyFields(p.ComparedFields...))
	}
	if p.IgnoreCollectionOrder {
		opts = append(opts, IgnoringCollectionOrder())
	}
	if len(p.IgnoreCollectionOrderInFields) > 0 {
		opts = append(opts, IgnoringCollectionOrderInFields(p.IgnoreCollectionOrderInFields...))
	}
	flags := []struct {
		set bool
		opt func() Option
	}{
		{p.IgnoreActualNilFields, IgnoringActualNilFields},
		{p.IgnoreExpectedNilFields, IgnoringExpectedNilFields},
		{p.IgnoreUnexportedFields, IgnoringUnexportedFields},
		{p.StrictTypeChecking, WithStrictTypeChecking},
		{p.TreatNilAndEmptyAsEqual, TreatingNilAndEmptyAsEqual},
		{p.UseOverriddenEquals, UsingOverriddenEquals},
	}
	for _, f := range flags {
		if f.set {
			opts = append(opts, f.opt())
		}
	}
	return opts
}

// ParseProfile parses a YAML comparison profile into Options.
//
// Example:
//
//	ignored_fields: [id, owner.created]
//	ignore_collection_order_in_fields: [tags]
//	treat_nil_and_empty_as_equal: true
//
// Unknown keys are an error. Regexes are validated when the Options are
// applied, so `Compare` reports them.
func ParseProfile(data []byte) ([]Option, error) {
	var p profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, errors.Annotate(err, "parsing comparison profile").Err()
	}
	return p.options(), nil
}

// LoadProfile reads and parses a YAML comparison profile.
func LoadProfile(r io.Reader) ([]Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Annotate(err, "reading comparison profile").Err()
	}
	return ParseProfile(data)
}
