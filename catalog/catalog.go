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

package catalog

import (
	"errors"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/config"
	uref "dirpx.dev/mfx/utils/reflect"
)

var (
	// ErrNilFactory is returned when a nil object factory is provided.
	ErrNilFactory = errors.New("mfx(catalog): nil object factory provided")
	// ErrEmptyFactoryType is returned when the description carries no factory type.
	ErrEmptyFactoryType = errors.New("mfx(catalog): empty factory type")
)

// New indexes the producers of desc by return type. Extra callables (free
// producers) are indexed after the factory's own. A synthetic engine-owned
// accessor returning the factory is always registered first under the
// factory's own type. Nothing is invoked during construction.
//
// Producer names must be unique per type: labels are built from them, so a
// second producer with the same name fails with *apis.DuplicateProducerError.
func New(factory any, desc apis.Description, cfg apis.Config, extra ...apis.Callable) (apis.Catalog, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if desc.Type == "" {
		return nil, ErrEmptyFactoryType
	}
	if cfg.SelfAccessor == "" {
		cfg.SelfAccessor = config.DefaultSelfAccessor
	}

	c := &catalog{
		factory: factory,
		ftype:   uref.StripNullable(desc.Type, cfg.NullableMarker),
		marker:  cfg.NullableMarker,
		byType:  make(map[string][]apis.Callable),
		byName:  make(map[string]apis.Callable),
	}

	if err := c.add(selfAccessor(cfg.SelfAccessor, c.ftype)); err != nil {
		return nil, err
	}
	for _, m := range desc.Callables {
		if _, dup := c.byName[m.Name]; !dup {
			c.byName[m.Name] = m
		}
		if err := c.add(m); err != nil {
			return nil, err
		}
	}
	for _, m := range extra {
		if err := c.add(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// selfAccessor is the synthetic producer exposing the factory under its own type.
func selfAccessor(name, ftype string) apis.Callable {
	return apis.Callable{
		Name:       name,
		Owner:      apis.OwnerEngine,
		ReturnType: ftype,
		Invoke: func(owner any, _ []any) (any, error) {
			acc, ok := owner.(apis.FactoryAccessor)
			if !ok {
				return nil, nil
			}
			return acc.ObjectFactory(), nil
		},
	}
}

// catalog is an immutable apis.Catalog backed by plain maps.
type catalog struct {
	// factory is the borrowed object factory.
	factory any
	// ftype is the stripped factory type identifier.
	ftype string
	// marker is the nullable marker stripped from identifiers.
	marker string
	// byType maps stripped return types to producers.
	byType map[string][]apis.Callable
	// byName maps factory callable names to descriptors.
	byName map[string]apis.Callable
	// order keeps type identifiers in first-registration order.
	order []string
	// count tracks the number of producers.
	count int
}

// add registers m as a producer if it declares a return type.
func (c *catalog) add(m apis.Callable) error {
	if !m.IsProducer() {
		return nil
	}
	t := uref.StripNullable(m.ReturnType, c.marker)
	ps, ok := c.byType[t]
	if !ok {
		c.order = append(c.order, t)
	}
	for _, p := range ps {
		if p.Name == m.Name {
			return &apis.DuplicateProducerError{Type: t, Name: m.Name}
		}
	}
	c.byType[t] = append(ps, m)
	c.count++
	return nil
}

// Factory returns the object factory.
func (c *catalog) Factory() any { return c.factory }

// FactoryType returns the factory's type identifier.
func (c *catalog) FactoryType() string { return c.ftype }

// Producers returns the producers of typeID.
func (c *catalog) Producers(typeID string) []apis.Callable {
	ps := c.byType[uref.StripNullable(typeID, c.marker)]
	out := make([]apis.Callable, len(ps))
	copy(out, ps)
	return out
}

// Method returns a factory callable by name.
func (c *catalog) Method(name string) (apis.Callable, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Types returns the indexed type identifiers.
func (c *catalog) Types() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Count returns the number of producers.
func (c *catalog) Count() int { return c.count }
