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

// Catalog indexes the producers available to a builder by return type.
// Implementations are immutable after construction and safe for concurrent reads.
type Catalog interface {
	// Factory returns the object factory the catalog was built from.
	Factory() any
	// FactoryType returns the type identifier of the factory.
	FactoryType() string
	// Producers returns the producers registered for typeID, in registration
	// order. The nullable marker is stripped from typeID before lookup.
	Producers(typeID string) []Callable
	// Method returns a described factory callable by name, producer or not.
	Method(name string) (Callable, bool)
	// Types returns the indexed type identifiers in first-registration order.
	Types() []string
	// Count returns the number of producers across all types.
	Count() int
}
