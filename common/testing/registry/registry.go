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

// Package registry holds the go-cmp options which every diff in this module
// starts from.
//
// This is used by:
//
//   - go.chromium.org/deepcheck/common/testing/truth/should.{Resemble,Match}
//   - go.chromium.org/deepcheck/common/testing/truth/comparison.SmartCmpDiff
//   - go.chromium.org/deepcheck/common/testing/typed.{Diff,Got}
//
// The defaults are:
//   - "google.golang.org/protobuf/testing/protocmp".Transform()
//   - A direct comparison of protoreflect.Descriptor types. These are
//     documented as being comparable with `==`, but by default `cmp` will
//     recurse into their guts.
//   - A direct comparison of reflect.Type interfaces.
//   - Functions compare by their function pointer.
package registry

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

var comparableInterfaces = map[reflect.Type]bool{
	reflect.TypeFor[protoreflect.FileDescriptor]():      true,
	reflect.TypeFor[protoreflect.MessageDescriptor]():   true,
	reflect.TypeFor[protoreflect.FieldDescriptor]():     true,
	reflect.TypeFor[protoreflect.OneofDescriptor]():     true,
	reflect.TypeFor[protoreflect.EnumDescriptor]():      true,
	reflect.TypeFor[protoreflect.EnumValueDescriptor](): true,
	reflect.TypeFor[protoreflect.ServiceDescriptor]():   true,
	reflect.TypeFor[protoreflect.MethodDescriptor]():    true,

	reflect.TypeFor[reflect.Type](): true,
}

// ComparableInterface reports whether values of the interface type `typ` are
// compared with `==` rather than recursed into.
//
// The recursive comparison engine honors this too.
func ComparableInterface(typ reflect.Type) bool {
	return comparableInterfaces[typ]
}

func defaultOptions() []cmp.Option {
	return []cmp.Option{
		protocmp.Transform(),
		cmp.FilterPath(func(p cmp.Path) bool {
			return comparableInterfaces[p.Last().Type()]
		}, cmp.Comparer(func(a, b any) bool {
			return a == b
		})),
		cmp.FilterPath(func(p cmp.Path) bool {
			return p.Last().Type().Kind() == reflect.Func
		}, cmp.Transformer("func.pointer", func(f any) uintptr {
			if f == nil {
				return 0
			}
			return reflect.ValueOf(f).Pointer()
		})),
	}
}

// Registry is a list of cmp.Options, safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	opts []cmp.Option
}

// New returns a Registry seeded with the default options.
func New() *Registry {
	return &Registry{opts: defaultOptions()}
}

// Register adds options to the registry.
//
// Register will panic if any option is nil. Duplicates are not detected.
func (r *Registry) Register(opts ...cmp.Option) {
	for _, opt := range opts {
		if opt == nil {
			panic("cannot register nil option")
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts = append(r.opts, opts...)
}

// Options gets a copy of the registry at the time it was called.
func (r *Registry) Options() []cmp.Option {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.opts)
}

// Restore replaces the registry contents with `opts`, typically a previous
// result of Options. Useful to undo registrations in tests.
func (r *Registry) Restore(opts []cmp.Option) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts = slices.Clone(opts)
}

var global = New()

// RegisterCmpOption registers an option to the global registry.
//
// RegisterCmpOption will panic if the option is nil.
func RegisterCmpOption(opt cmp.Option) {
	global.Register(opt)
}

// GetCmpOptions gets a copy of the global registry at the time it was called.
func GetCmpOptions() []cmp.Option {
	return global.Options()
}

// Global returns the process-wide Registry used by GetCmpOptions.
func Global() *Registry {
	return global
}
