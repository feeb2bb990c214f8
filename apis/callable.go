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

import "fmt"

// OwnerKind tells the engine which receiver a Callable must be invoked with.
// It is fixed when the descriptor is built and never re-derived per call.
type OwnerKind int

const (
	// OwnerFactory callables are invoked with the object factory as owner.
	OwnerFactory OwnerKind = iota
	// OwnerEngine callables are invoked with the builder itself as owner.
	// The synthetic factory accessor is the only engine-owned producer.
	OwnerEngine
	// OwnerNone callables are free functions or already-bound method values.
	OwnerNone
)

// String returns a stable token for k.
func (k OwnerKind) String() string {
	switch k {
	case OwnerFactory:
		return "factory"
	case OwnerEngine:
		return "engine"
	case OwnerNone:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// InvokeFunc calls the underlying function. owner is nil for OwnerNone.
// A returned error is propagated to the caller of Build unchanged.
type InvokeFunc func(owner any, args []any) (any, error)

// Param describes one positional parameter of a Callable.
type Param struct {
	// Name is used in diagnostics only.
	Name string
	// Type is the declared type identifier, possibly carrying a nullable marker.
	// An empty Type means the parameter has no declared type.
	Type string
	// HasDefault reports whether Default is meaningful.
	HasDefault bool
	// Default is the value used for the "(default)" variation.
	Default any
}

// Callable is the descriptor of anything the engine can build or invoke:
// a factory method, the engine accessor or a free function.
// Descriptors are plain data once constructed by a Strategy.
type Callable struct {
	// Name is the producer name used in combination labels.
	Name string
	// Owner selects the receiver passed to Invoke.
	Owner OwnerKind
	// ReturnType is the declared return type identifier, "" if none.
	// Callables without a return type are never used as producers.
	ReturnType string
	// Params lists the parameters in declaration order.
	Params []Param
	// Invoke performs the call.
	Invoke InvokeFunc
}

// IsProducer reports whether c can supply values for a type.
func (c Callable) IsProducer() bool {
	return c.ReturnType != "" && c.Invoke != nil
}

// FactoryAccessor is implemented by engines exposing the object factory they
// were built for. The synthetic catalog entry for the factory type calls it.
type FactoryAccessor interface {
	ObjectFactory() any
}
