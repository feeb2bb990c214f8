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

package introspect

import (
	"errors"
	"fmt"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/strategy"
)

var (
	// ErrNotDescribable is returned when no strategy handles a factory or function.
	ErrNotDescribable = errors.New("mfx(introspect): no strategy could describe value")
)

// New constructs an apis.Introspector that tries the given strategies in order.
// Nil strategies are ignored. The returned introspector is safe for concurrent
// use provided the strategies themselves are.
func New(strategies ...apis.Strategy) apis.Introspector {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// Default returns the standard chain: Describer, then Reflect.
func Default(opts ...strategy.ReflectOption) apis.Introspector {
	return New(
		strategy.NewDescriberStrategy(),
		strategy.NewReflectStrategy(opts...),
	)
}

// chain is an immutable, order-preserving introspector over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Describe runs strategies in order until one handles the factory.
// A strategy error stops the chain.
func (c chain) Describe(factory any, cfg apis.Config) (apis.Description, error) {
	for _, s := range c.strats {
		desc, ok, err := s.TryDescribe(factory, cfg)
		if err != nil {
			return apis.Description{}, err
		}
		if ok {
			return desc, nil
		}
	}
	return apis.Description{}, fmt.Errorf("%w: factory %T", ErrNotDescribable, factory)
}

// DescribeFunc runs strategies in order until one handles fn.
func (c chain) DescribeFunc(fn any, cfg apis.Config) (apis.Callable, error) {
	for _, s := range c.strats {
		callable, ok, err := s.TryDescribeFunc(fn, cfg)
		if err != nil {
			return apis.Callable{}, err
		}
		if ok {
			return callable, nil
		}
	}
	return apis.Callable{}, fmt.Errorf("%w: function %T", ErrNotDescribable, fn)
}
