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

package config

import (
	"dirpx.dev/mfx/apis"
)

const (
	// DefaultNullableMarker is the prefix marking a nullable type identifier.
	DefaultNullableMarker = "?"
	// DefaultDefaultLabel labels the variation contributed by a parameter default.
	DefaultDefaultLabel = "(default)"
	// DefaultSelfAccessor names the synthetic producer returning the factory.
	DefaultSelfAccessor = "ObjectFactory"
	// DefaultOnCycle fails fast on cyclic type dependencies.
	DefaultOnCycle = apis.CycleFail
	// DefaultMaxCombinations leaves matrices unbounded.
	DefaultMaxCombinations = 0
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure required labels stay usable.
	if cfg.DefaultLabel == "" {
		cfg.DefaultLabel = DefaultDefaultLabel
	}
	if cfg.SelfAccessor == "" {
		cfg.SelfAccessor = DefaultSelfAccessor
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		NullableMarker:  DefaultNullableMarker,
		DefaultLabel:    DefaultDefaultLabel,
		SelfAccessor:    DefaultSelfAccessor,
		OnCycle:         DefaultOnCycle,
		MaxCombinations: DefaultMaxCombinations,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithNullableMarker sets the NullableMarker option. Empty disables stripping.
func WithNullableMarker(marker string) Option {
	return func(c *apis.Config) {
		c.NullableMarker = marker
	}
}

// WithDefaultLabel sets the DefaultLabel option.
func WithDefaultLabel(label string) Option {
	return func(c *apis.Config) {
		c.DefaultLabel = label
	}
}

// WithSelfAccessor sets the SelfAccessor option.
func WithSelfAccessor(name string) Option {
	return func(c *apis.Config) {
		c.SelfAccessor = name
	}
}

// WithOnCycle sets the OnCycle option.
func WithOnCycle(p apis.CyclePolicy) Option {
	return func(c *apis.Config) {
		c.OnCycle = p
	}
}

// WithMaxCombinations sets the MaxCombinations option.
// A negative value resets to the default.
func WithMaxCombinations(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxCombinations = DefaultMaxCombinations
			return
		}
		c.MaxCombinations = max
	}
}

// WithLog sets the Log option.
func WithLog(l apis.LogConfig) Option {
	return func(c *apis.Config) {
		c.Log = l
	}
}
