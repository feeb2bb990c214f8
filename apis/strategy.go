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

package apis

// Description is what a Strategy reports about an object factory.
type Description struct {
	// Type is the factory's own type identifier.
	Type string
	// Callables are the factory's public callables in a stable order.
	Callables []Callable
}

// Strategy is a pluggable introspection step. An Introspector chains
// multiple strategies in order (e.g., Describer -> Reflect).
type Strategy interface {
	// TryDescribe attempts to describe factory according to cfg.
	// It returns handled=false to fall through to the next strategy.
	TryDescribe(factory any, cfg Config) (desc Description, handled bool, err error)

	// TryDescribeFunc attempts to describe a free function value.
	TryDescribeFunc(fn any, cfg Config) (c Callable, handled bool, err error)
}

// Describer is implemented by factories that describe their own producers
// without reflection. It is the fast path of the introspection chain.
type Describer interface {
	// MatrixType returns the factory's own type identifier.
	MatrixType() string
	// MatrixCallables returns the factory's producers and build targets.
	MatrixCallables() []Callable
}
