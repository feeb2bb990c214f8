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

// Builder computes combination matrices for callables.
// Implementations hold mutable resolution state and are not safe for
// concurrent use.
type Builder interface {
	Resolver
	FactoryAccessor

	// Build returns every argument combination of method. A method without
	// parameters is invoked once and its result becomes the single argument.
	Build(method Callable) (*Matrix, error)
	// BuildFunc describes fn through the introspection chain and builds it.
	BuildFunc(fn any) (*Matrix, error)
	// BuildMethod builds the factory method called name.
	BuildMethod(name string) (*Matrix, error)
}
