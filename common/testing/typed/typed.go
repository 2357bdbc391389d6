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

// Package typed wraps cmp.Diff with type safety and the options from
// go.chromium.org/deepcheck/common/testing/registry.
package typed

import (
	"github.com/google/go-cmp/cmp"

	"go.chromium.org/deepcheck/common/testing/registry"
)

// Diff is cmp.Diff with both arguments forced to the same type.
//
// The output is "-want +got". The options registered with
// registry.RegisterCmpOption are applied before `opts`.
func Diff[T any](want, got T, opts ...cmp.Option) string {
	return cmp.Diff(want, got, append(registry.GetCmpOptions(), opts...)...)
}

// Checker accumulates a value and options for a later Diff.
type Checker[T any] struct {
	got  T
	opts []cmp.Option
}

// Got starts a diff of `got` against a value given to Want.
//
// Example:
//
//	if diff := typed.Got(result).Options(protocmp.Transform()).Want(expected).Diff(); diff != "" {
//	  t.Error(diff)
//	}
func Got[T any](got T) *Checker[T] {
	return &Checker[T]{got: got}
}

// Options adds cmp options to the Checker.
func (c *Checker[T]) Options(opts ...cmp.Option) *Checker[T] {
	c.opts = append(c.opts, opts...)
	return c
}

// Want completes the Checker with the expected value.
func (c *Checker[T]) Want(want T) *Wanted[T] {
	return &Wanted[T]{checker: c, want: want}
}

// Wanted is a Checker with both sides known.
type Wanted[T any] struct {
	checker *Checker[T]
	want    T
}

// Diff returns the "-want +got" diff, or "" if the values are equal.
func (w *Wanted[T]) Diff() string {
	return Diff(w.want, w.checker.got, w.checker.opts...)
}
