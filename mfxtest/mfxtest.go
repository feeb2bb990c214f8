/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mfxtest runs mfx matrices as Go subtests.
//
//	func TestFormat(t *testing.T) {
//		mfxtest.Run(t, samples{}, func(t *testing.T, n int, s string) {
//			...
//		})
//	}
package mfxtest

import (
	"reflect"
	"testing"

	"dirpx.dev/mfx"
	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/builder"
	uref "dirpx.dev/mfx/utils/reflect"
)

// tType is the reflect.Type of *testing.T.
var tType = reflect.TypeOf((*testing.T)(nil))

// Case is one generated test case.
type Case struct {
	// Name is the combination label.
	Name string
	// Args are the positional arguments.
	Args []any
}

// Cases builds the matrix of fn against factory and returns it in order.
// Any build error fails tb immediately.
func Cases(tb testing.TB, factory, fn any, opts ...builder.Option) []Case {
	tb.Helper()

	b, err := mfx.New(factory, opts...)
	if err != nil {
		tb.Fatalf("mfx: new builder: %v", err)
	}
	m, err := b.BuildFunc(fn)
	if err != nil {
		tb.Fatalf("mfx: build: %v", err)
	}
	return toCases(m)
}

// Run calls fn once per argument combination, each in its own subtest named
// after the combination label. fn must take *testing.T first; the remaining
// parameters form the matrix. An empty matrix fails the test.
//
// Parameter indexes given to strategy.WithDefault and strategy.WithParamNames
// count the *testing.T parameter: the first matrix parameter is index 1.
func Run(t *testing.T, factory, fn any, opts ...builder.Option) {
	t.Helper()

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		t.Fatalf("mfx: Run needs a func, got %T", fn)
	}
	ft := rv.Type()
	if ft.NumIn() == 0 || ft.In(0) != tType {
		t.Fatalf("mfx: %s must take *testing.T as first parameter", ft)
	}

	b, err := mfx.New(factory, opts...)
	if err != nil {
		t.Fatalf("mfx: new builder: %v", err)
	}
	c, err := b.Describe(fn)
	if err != nil {
		t.Fatalf("mfx: describe: %v", err)
	}
	if len(c.Params) != ft.NumIn() {
		t.Fatalf("mfx: %s described with %d parameters, want %d", c.Name, len(c.Params), ft.NumIn())
	}
	c.Params = c.Params[1:]

	var cases []Case
	if len(c.Params) == 0 {
		cases = []Case{{Name: c.Name + "()", Args: []any{}}}
	} else {
		m, err := b.Build(c)
		if err != nil {
			t.Fatalf("mfx: build: %v", err)
		}
		cases = toCases(m)
	}
	if len(cases) == 0 {
		t.Fatalf("mfx: %s has no argument combinations", c.Name)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			in := make([]reflect.Value, 0, ft.NumIn())
			in = append(in, reflect.ValueOf(t))
			for i, a := range tc.Args {
				v, err := uref.ArgValue(a, ft.In(i+1))
				if err != nil {
					t.Fatalf("mfx: argument %d (%T): %v", i, a, err)
				}
				in = append(in, v)
			}
			if ft.IsVariadic() {
				rv.CallSlice(in)
				return
			}
			rv.Call(in)
		})
	}
}

func toCases(m *apis.Matrix) []Case {
	out := make([]Case, 0, m.Len())
	m.Each(func(label string, args []any) bool {
		out = append(out, Case{Name: label, Args: args})
		return true
	})
	return out
}
