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

// Introspector turns factories and functions into Callable descriptors.
// Typical chain: DescriberStrategy -> ReflectStrategy.
type Introspector interface {
	// Describe returns the description of factory.
	Describe(factory any, cfg Config) (Description, error)
	// DescribeFunc returns the descriptor of a free function value.
	DescribeFunc(fn any, cfg Config) (Callable, error)
}
