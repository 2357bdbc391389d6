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
	"reflect"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("simple", shouldPass(Match(100)(100)))
	t.Run("simple fail", shouldFail(Match(100)(101), "Diff"))

	t.Run("simple proto", shouldPass(
		Match(timestamppb.New(testTime))(timestamppb.New(testTime))))

	props, err := structpb.NewStruct(map[string]any{
		"heyo": 100,
	})
	if err != nil {
		t.Fatal("could not make struct", err)
	}
	t.Run("struct proto fail", shouldFail(
		Match(props)(&structpb.Struct{}), "Diff", "heyo"))

	t.Run("unexported fields", func(t *testing.T) {
		type myStruct struct {
			private string
		}
		mustPanicLike(t, "unexported field", func() {
			Match(myStruct{"hi"})(myStruct{"hi"})
		})
	})
}

func TestResemble(t *testing.T) {
	// Note that Resemble and Match are the same except for unexported fields.

	type myStruct struct {
		private string
	}
	t.Run("unexported fields", shouldPass(Resemble(myStruct{"hi"})(myStruct{"hi"})))
	t.Run("unexported fields differ", shouldFail(Resemble(myStruct{"hi"})(myStruct{"ho"}), "Diff"))
	t.Run("behind an interface", shouldPass(Resemble[any](&myStruct{"hi"})(&myStruct{"hi"})))
}

func TestResembleTypeWalking(t *testing.T) {
	// t.Parallel() - this involves testing the resembleOptionCache, so do not run
	// this test in parallel with anything else.

	// Ensure this test never leaks option cache entries.
	defer resetOptionCache()

	t.Run("simple types leave no entries", func(t *testing.T) {
		resetOptionCache()
		shouldPass(BeNil(extractAllowUnexportedFrom(reflect.TypeOf("hello"))))(t)
		shouldPass(BeEmpty(resembleOptionCache))(t)
	})

	t.Run("struct types with no unexported fields leaves nil entry", func(t *testing.T) {
		resetOptionCache()
		type myStruct struct {
			Field string
		}
		typ := reflect.TypeFor[myStruct]()
		shouldPass(BeNil(extractAllowUnexportedFrom(typ)))(t)
		shouldPass(HaveLength(1)(resembleOptionCache))(t)
		shouldPass(BeNil(resembleOptionCache[typ]))(t)
	})

	t.Run("struct types with no exported fields leaves single entry", func(t *testing.T) {
		resetOptionCache()
		type myStruct struct {
			fieldA string
			fieldB string
		}
		typ := reflect.TypeFor[myStruct]()
		shouldPass(HaveLength(1)(extractAllowUnexportedFrom(typ)))(t)
		shouldPass(HaveLength(1)(resembleOptionCache))(t)
		shouldPass(HaveLength(1)(resembleOptionCache[typ]))(t)

		// cached now
		shouldPass(HaveLength(1)(extractAllowUnexportedFrom(typ)))(t)
	})

	t.Run("recursive pointer types leave single entry", func(t *testing.T) {
		resetOptionCache()
		type myStruct struct {
			fieldA string
			sub    *myStruct
		}
		typ := reflect.TypeFor[*myStruct]()
		shouldPass(HaveLength(1)(extractAllowUnexportedFrom(typ)))(t)
		shouldPass(HaveLength(1)(resembleOptionCache))(t)
		// note that myStruct is in cache, not *myStruct
		shouldPass(HaveLength(1)(resembleOptionCache[typ.Elem()]))(t)
	})

	t.Run("nested structs are collected", func(t *testing.T) {
		resetOptionCache()
		type inner struct {
			x int
		}
		type outer struct {
			In []inner
		}
		got := extractAllowUnexportedFrom(reflect.TypeFor[outer]())
		shouldPass(Match([]reflect.Type{reflect.TypeFor[inner]()})(got))(t)
	})

	t.Run("maps with struct keys work", func(t *testing.T) {
		resetOptionCache()
		type myKey struct {
			field string
		}
		type myValue struct {
			thing int
		}
		shouldPass(HaveLength(2)(extractAllowUnexportedFrom(reflect.TypeFor[map[myKey]*myValue]())))(t)
		shouldPass(HaveLength(2)(resembleOptionCache))(t)
		shouldPass(HaveLength(1)(resembleOptionCache[reflect.TypeFor[myKey]()]))(t)
		shouldPass(HaveLength(1)(resembleOptionCache[reflect.TypeFor[myValue]()]))(t)
	})

	t.Run("proto fields are ignored", func(t *testing.T) {
		resetOptionCache()
		type myStruct struct {
			Struct *structpb.Struct
		}
		shouldPass(BeEmpty(extractAllowUnexportedFrom(reflect.TypeFor[myStruct]())))(t)
		shouldPass(HaveLength(1)(resembleOptionCache))(t)
		shouldPass(BeNil(resembleOptionCache[reflect.TypeFor[myStruct]()]))(t)
	})
}
