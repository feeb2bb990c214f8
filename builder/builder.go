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

package builder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/catalog"
	"dirpx.dev/mfx/config"
	"dirpx.dev/mfx/introspect"
)

// ErrNotInvocable is returned when a callable without an Invoke func must be called.
var ErrNotInvocable = errors.New("mfx(builder): callable is not invocable")

// Option configures a Builder.
type Option func(*options)

type options struct {
	cfg       apis.Config
	log       *zap.Logger
	intro     apis.Introspector
	producers []any
}

// WithConfig sets the configuration. Defaults to config.DefaultConfig().
// Build cfg with config.NewConfig: New rejects configs failing
// config.Validate, and an empty NullableMarker disables stripping.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithIntrospector sets the introspection chain. Defaults to introspect.Default().
func WithIntrospector(i apis.Introspector) Option {
	return func(o *options) {
		if i != nil {
			o.intro = i
		}
	}
}

// WithProducers registers free functions (or apis.Callable values) as
// producers beside the factory's own methods.
func WithProducers(fns ...any) Option {
	return func(o *options) { o.producers = append(o.producers, fns...) }
}

// Builder resolves sample values and computes combination matrices for a
// single object factory. It owns its resolution cache for its whole
// lifetime and must be confined to one goroutine.
type Builder struct {
	cfg     apis.Config
	log     *zap.Logger
	intro   apis.Introspector
	catalog apis.Catalog
	factory any

	// resolved memoizes variations by verbatim type string.
	resolved map[string]*apis.Variations
	// resolving marks stripped type identifiers currently being resolved.
	resolving map[string]struct{}
	// stack is the current resolution path, for cycle reports.
	stack []string
}

// Ensure Builder implements apis.Builder.
var _ apis.Builder = (*Builder)(nil)

// New describes factory through the introspection chain and indexes its
// producers. The factory is borrowed and must outlive the Builder.
func New(factory any, opts ...Option) (*Builder, error) {
	o := options{
		cfg:   config.DefaultConfig(),
		log:   zap.NewNop(),
		intro: introspect.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if factory == nil {
		return nil, catalog.ErrNilFactory
	}
	if err := config.Validate(o.cfg); err != nil {
		return nil, err
	}

	desc, err := o.intro.Describe(factory, o.cfg)
	if err != nil {
		return nil, err
	}
	extra := make([]apis.Callable, 0, len(o.producers))
	for _, fn := range o.producers {
		c, err := o.intro.DescribeFunc(fn, o.cfg)
		if err != nil {
			return nil, err
		}
		extra = append(extra, c)
	}
	cat, err := catalog.New(factory, desc, o.cfg, extra...)
	if err != nil {
		return nil, err
	}

	o.log.Debug("catalog built",
		zap.String("factory", cat.FactoryType()),
		zap.Int("types", len(cat.Types())),
		zap.Int("producers", cat.Count()))

	return &Builder{
		cfg:       o.cfg,
		log:       o.log,
		intro:     o.intro,
		catalog:   cat,
		factory:   factory,
		resolved:  make(map[string]*apis.Variations),
		resolving: make(map[string]struct{}),
	}, nil
}

// ObjectFactory returns the factory the builder was created for.
func (b *Builder) ObjectFactory() any { return b.factory }

// Catalog returns the producer index.
func (b *Builder) Catalog() apis.Catalog { return b.catalog }

// Config returns the configuration in use.
func (b *Builder) Config() apis.Config { return b.cfg }

// Build returns every argument combination of method.
//
// A method without parameters is invoked once: a nil result yields an empty
// matrix, anything else a single "name()" entry holding the result.
// Otherwise each parameter's variations are resolved and combined; see
// Resolve. Build is all-or-nothing: on error no matrix is returned.
func (b *Builder) Build(method apis.Callable) (*apis.Matrix, error) {
	if len(method.Params) == 0 {
		v, err := b.invoke(method, nil)
		if err != nil {
			return nil, err
		}
		m := apis.NewMatrix()
		if isNil(v) {
			b.log.Debug("method returned nil", zap.String("method", method.Name))
			return m, nil
		}
		m.Set(label(method.Name, nil), []any{v})
		return m, nil
	}

	m, err := b.combinations(method)
	if err != nil {
		return nil, err
	}
	b.log.Debug("matrix built", zap.String("method", method.Name), zap.Int("cases", m.Len()))
	return m, nil
}

// Describe returns the descriptor of fn as seen by the builder's
// introspection chain.
func (b *Builder) Describe(fn any) (apis.Callable, error) {
	return b.intro.DescribeFunc(fn, b.cfg)
}

// BuildFunc describes fn and builds it.
func (b *Builder) BuildFunc(fn any) (*apis.Matrix, error) {
	c, err := b.Describe(fn)
	if err != nil {
		return nil, err
	}
	return b.Build(c)
}

// BuildMethod builds the factory method called name.
func (b *Builder) BuildMethod(name string) (*apis.Matrix, error) {
	c, ok := b.catalog.Method(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", apis.ErrUnknownMethod, name, b.catalog.FactoryType())
	}
	return b.Build(c)
}

// owner picks the receiver for a callable.
func (b *Builder) owner(k apis.OwnerKind) any {
	switch k {
	case apis.OwnerFactory:
		return b.factory
	case apis.OwnerEngine:
		return b
	default:
		return nil
	}
}

// invoke calls c with the resolved owner. Errors and panics raised by the
// callable propagate unchanged.
func (b *Builder) invoke(c apis.Callable, args []any) (any, error) {
	if c.Invoke == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotInvocable, c.Name)
	}
	return c.Invoke(b.owner(c.Owner), args)
}
