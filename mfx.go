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

package mfx

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/builder"
	"dirpx.dev/mfx/config"
	"dirpx.dev/mfx/introspect"
	"dirpx.dev/mfx/logging"
)

// init initializes the global defaults.
func init() {
	st.Store(&state{
		cfg:   config.DefaultConfig(),
		intro: introspect.Default(),
		log:   zap.NewNop(),
	})
}

// ErrNilTarget is returned when Build is called without a target.
var ErrNilTarget = errors.New("mfx: nil build target")

// New creates a Builder for factory using the published defaults.
// Options are applied after the defaults and win over them.
// Each call returns a fresh builder with an empty resolution cache.
func New(factory any, opts ...builder.Option) (*builder.Builder, error) {
	s := st.Load()
	base := []builder.Option{
		builder.WithConfig(s.cfg),
		builder.WithIntrospector(s.intro),
		builder.WithLogger(s.log),
	}
	return builder.New(factory, append(base, opts...)...)
}

// Build creates a fresh Builder for factory and builds target with it.
// target is a func value, an apis.Callable, or the name of a factory method.
func Build(factory any, target any, opts ...builder.Option) (*apis.Matrix, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	b, err := New(factory, opts...)
	if err != nil {
		return nil, err
	}
	if name, ok := target.(string); ok {
		return b.BuildMethod(name)
	}
	return b.BuildFunc(target)
}

// Configure loads a YAML configuration file, builds its logger and
// publishes both as the global defaults.
func Configure(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	SetAll(&cfg, nil, log)
	return nil
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration. It is validated by the next
// New or Build call, which fails with config.ErrInvalidConfig.
func SetConfig(cfg apis.Config) {
	SetAll(&cfg, nil, nil)
}

// Introspector returns the global introspection chain.
func Introspector() apis.Introspector {
	return st.Load().intro
}

// SetIntrospector sets the global introspection chain. Nil is ignored.
func SetIntrospector(i apis.Introspector) {
	if i == nil {
		return
	}
	SetAll(nil, i, nil)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return st.Load().log
}

// SetLogger sets the global logger. Nil is ignored.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	SetAll(nil, nil, l)
}

// SetAll replaces the global defaults in one shot.
// Nil arguments leave the corresponding component unchanged.
func SetAll(cfg *apis.Config, intro apis.Introspector, log *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	next := &state{cfg: old.cfg, intro: old.intro, log: old.log}
	if cfg != nil {
		next.cfg = *cfg
	}
	if intro != nil {
		next.intro = intro
	}
	if log != nil {
		next.log = log
	}

	// Store the new state atomically.
	st.Store(next)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global defaults snapshot.
var st atomic.Pointer[state]

// state holds the defaults used by New and Build.
// Immutable once published; writers create a new state and swap it.
// It never holds resolution results.
type state struct {
	cfg   apis.Config
	intro apis.Introspector
	log   *zap.Logger
}
