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

package strategy

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"dirpx.dev/mfx/apis"
	uref "dirpx.dev/mfx/utils/reflect"
)

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ReflectOption customizes the reflect strategy.
type ReflectOption func(*reflectStrategy)

// WithDefault declares a default value for parameter index of the callable
// named name (a factory method name or a function's short name).
func WithDefault(name string, index int, v any) ReflectOption {
	return func(s *reflectStrategy) {
		if s.defaults[name] == nil {
			s.defaults[name] = make(map[int]any)
		}
		s.defaults[name][index] = v
	}
}

// WithParamNames names the parameters of the callable named name.
// Go reflection does not expose parameter names; unnamed ones become argN.
func WithParamNames(name string, names ...string) ReflectOption {
	return func(s *reflectStrategy) {
		s.names[name] = append([]string(nil), names...)
	}
}

// NewReflectStrategy creates an apis.Strategy that describes factories and
// functions via reflection. It handles every non-nil factory and every func
// value, so it belongs at the end of a chain.
func NewReflectStrategy(opts ...ReflectOption) apis.Strategy {
	s := &reflectStrategy{
		defaults: make(map[string]map[int]any),
		names:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// reflectStrategy is the universal fallback. It is immutable after
// construction and safe for concurrent use.
//
// Mapping of Go signatures onto descriptors:
//   - exported methods in the factory's method set, in reflect's
//     lexicographic order, are OwnerFactory callables;
//   - a single result, or (T, error), declares return type T;
//     other shapes and `any` results declare none;
//   - empty-interface parameters have no declared type;
//   - a variadic final parameter defaults to "no variadic arguments".
type reflectStrategy struct {
	defaults map[string]map[int]any
	names    map[string][]string
}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryDescribe enumerates the exported methods of factory.
func (s *reflectStrategy) TryDescribe(factory any, _ apis.Config) (apis.Description, bool, error) {
	if factory == nil {
		return apis.Description{}, false, nil
	}
	t := reflect.TypeOf(factory)
	desc := apis.Description{Type: uref.TypeID(t)}
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		fn := m.Func
		c := s.describe(m.Name, m.Type, 1, apis.OwnerFactory)
		c.Invoke = invoker(m.Name, fn, m.Type, true)
		desc.Callables = append(desc.Callables, c)
	}
	return desc, true, nil
}

// TryDescribeFunc describes a func value as a free callable.
func (s *reflectStrategy) TryDescribeFunc(fn any, _ apis.Config) (apis.Callable, bool, error) {
	if fn == nil {
		return apis.Callable{}, false, nil
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return apis.Callable{}, false, nil
	}
	if rv.IsNil() {
		return apis.Callable{}, false, fmt.Errorf("mfx(strategy): nil func %s", rv.Type())
	}
	name := FuncName(fn)
	c := s.describe(name, rv.Type(), 0, apis.OwnerNone)
	c.Invoke = invoker(name, rv, rv.Type(), false)
	return c, true, nil
}

// describe builds the descriptor of a function type, skipping the first
// skip inputs (the receiver of method expressions).
func (s *reflectStrategy) describe(name string, ft reflect.Type, skip int, owner apis.OwnerKind) apis.Callable {
	c := apis.Callable{Name: name, Owner: owner}

	names := s.names[name]
	defaults := s.defaults[name]
	for j := skip; j < ft.NumIn(); j++ {
		idx := j - skip
		p := apis.Param{Name: "arg" + strconv.Itoa(idx), Type: uref.TypeID(ft.In(j))}
		if idx < len(names) && names[idx] != "" {
			p.Name = names[idx]
		}
		if ft.IsVariadic() && j == ft.NumIn()-1 {
			p.HasDefault = true
		}
		if v, ok := defaults[idx]; ok {
			p.HasDefault = true
			p.Default = v
		}
		c.Params = append(c.Params, p)
	}

	switch {
	case ft.NumOut() == 1:
		c.ReturnType = uref.TypeID(ft.Out(0))
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
		c.ReturnType = uref.TypeID(ft.Out(0))
	}
	return c
}

// invoker adapts a reflect func into an apis.InvokeFunc. When bound is set
// the owner is passed as the first input.
func invoker(name string, fn reflect.Value, ft reflect.Type, bound bool) apis.InvokeFunc {
	skip := 0
	if bound {
		skip = 1
	}
	return func(owner any, args []any) (any, error) {
		if want := ft.NumIn() - skip; len(args) != want {
			return nil, fmt.Errorf("mfx(strategy): %s takes %d arguments, got %d", name, want, len(args))
		}
		in := make([]reflect.Value, 0, ft.NumIn())
		if bound {
			recv, err := uref.ArgValue(owner, ft.In(0))
			if err != nil {
				return nil, fmt.Errorf("mfx(strategy): %s receiver: %w", name, err)
			}
			in = append(in, recv)
		}
		for i, a := range args {
			v, err := uref.ArgValue(a, ft.In(i+skip))
			if err != nil {
				return nil, fmt.Errorf("mfx(strategy): %s argument %d (%T): %w", name, i, a, err)
			}
			in = append(in, v)
		}

		var out []reflect.Value
		if ft.IsVariadic() {
			out = fn.CallSlice(in)
		} else {
			out = fn.Call(in)
		}

		switch {
		case len(out) == 0:
			return nil, nil
		case len(out) == 2 && ft.Out(1) == errorType:
			if err, _ := uref.ResultValue(out[1]).(error); err != nil {
				return nil, err
			}
		}
		return uref.ResultValue(out[0]), nil
	}
}

// FuncName returns the short name of a func value: "pkg.(*T).Get-fm" -> "Get",
// "pkg.TestX.func1" -> "func1".
func FuncName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
