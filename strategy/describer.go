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
	"dirpx.dev/mfx/apis"
)

// NewDescriberStrategy creates an apis.Strategy that uses apis.Describer.
func NewDescriberStrategy() apis.Strategy {
	return &describerStrategy{}
}

// describerStrategy is a reflection-free fast path: if the factory implements
// apis.Describer, its own descriptors are used and the chain stops.
type describerStrategy struct{}

// Ensure describerStrategy implements apis.Strategy.
var _ apis.Strategy = (*describerStrategy)(nil)

// TryDescribe checks if factory implements apis.Describer.
func (*describerStrategy) TryDescribe(factory any, _ apis.Config) (apis.Description, bool, error) {
	if factory == nil {
		return apis.Description{}, false, nil
	}
	d, ok := factory.(apis.Describer)
	if !ok {
		return apis.Description{}, false, nil
	}
	src := d.MatrixCallables()
	out := make([]apis.Callable, len(src))
	copy(out, src)
	return apis.Description{Type: d.MatrixType(), Callables: out}, true, nil
}

// TryDescribeFunc accepts ready-made descriptors, passed by value or pointer.
func (*describerStrategy) TryDescribeFunc(fn any, _ apis.Config) (apis.Callable, bool, error) {
	switch c := fn.(type) {
	case apis.Callable:
		return c, true, nil
	case *apis.Callable:
		if c == nil {
			return apis.Callable{}, false, nil
		}
		return *c, true, nil
	default:
		return apis.Callable{}, false, nil
	}
}
