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

package builder_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/builder"
)

// fixture is a self-describing object factory that counts invocations.
type fixture struct {
	typ   string
	cs    []apis.Callable
	calls map[string]int
}

func newFixture(typ string) *fixture {
	return &fixture{typ: typ, calls: make(map[string]int)}
}

func (f *fixture) MatrixType() string               { return f.typ }
func (f *fixture) MatrixCallables() []apis.Callable { return f.cs }

// add registers a factory callable computing its result from args.
func (f *fixture) add(name, ret string, fn func(args []any) (any, error), params ...apis.Param) apis.Callable {
	c := apis.Callable{
		Name:       name,
		Owner:      apis.OwnerFactory,
		ReturnType: ret,
		Params:     params,
		Invoke: func(owner any, args []any) (any, error) {
			if owner != f {
				return nil, fmt.Errorf("unexpected owner %T", owner)
			}
			f.calls[name]++
			return fn(args)
		},
	}
	f.cs = append(f.cs, c)
	return c
}

// value registers a parameterless producer returning v.
func (f *fixture) value(name, ret string, v any) apis.Callable {
	return f.add(name, ret, func([]any) (any, error) { return v, nil })
}

// itoa registers name(int) string.
func (f *fixture) itoa(name, ret, param string) apis.Callable {
	return f.add(name, ret, func(args []any) (any, error) {
		return strconv.Itoa(args[0].(int)), nil
	}, typed("a", param))
}

// target is a build target that is never invoked.
func target(name string, params ...apis.Param) apis.Callable {
	return apis.Callable{
		Name:   name,
		Owner:  apis.OwnerFactory,
		Params: params,
	}
}

func typed(name, typ string) apis.Param { return apis.Param{Name: name, Type: typ} }

func withDefault(p apis.Param, v any) apis.Param {
	p.HasDefault = true
	p.Default = v
	return p
}

func newBuilder(t *testing.T, factory any, opts ...builder.Option) *builder.Builder {
	t.Helper()
	b, err := builder.New(factory, opts...)
	require.NoError(t, err)
	return b
}
