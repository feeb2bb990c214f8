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
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/builder"
	"dirpx.dev/mfx/config"
	"dirpx.dev/mfx/introspect"
	"dirpx.dev/mfx/strategy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type samples struct{}

func (samples) One() int              { return 1 }
func (samples) Two() int              { return 2 }
func (samples) Itoa(n int) string     { return strconv.Itoa(n) }
func (samples) Check(n int, s string) {}

// resetDefaults restores the package defaults after a test.
func resetDefaults(tb testing.TB) {
	tb.Helper()
	tb.Cleanup(func() {
		cfg := config.DefaultConfig()
		SetAll(&cfg, introspect.Default(), zap.NewNop())
	})
}

func TestBuild_Func(t *testing.T) {
	m, err := Build(samples{}, func(n int, s string) {})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"func1(One(), Itoa(One()))",
		"func1(One(), Itoa(Two()))",
		"func1(Two(), Itoa(One()))",
		"func1(Two(), Itoa(Two()))",
	}, m.Labels())
}

func TestBuild_MethodName(t *testing.T) {
	m, err := Build(samples{}, "Check")
	require.NoError(t, err)
	assert.Equal(t, 4, m.Len())

	_, err = Build(samples{}, "Nope")
	assert.ErrorIs(t, err, apis.ErrUnknownMethod)
}

func TestBuild_NilTarget(t *testing.T) {
	_, err := Build(samples{}, nil)
	assert.ErrorIs(t, err, ErrNilTarget)
}

// TestNew_FreshCache verifies every builder starts with its own cache.
func TestNew_FreshCache(t *testing.T) {
	b1, err := New(samples{})
	require.NoError(t, err)
	b2, err := New(samples{})
	require.NoError(t, err)

	v1, err := b1.Resolve("int")
	require.NoError(t, err)
	v2, err := b2.Resolve("int")
	require.NoError(t, err)
	assert.NotSame(t, v1, v2)
	assert.Equal(t, v1.Labels(), v2.Labels())
}

func TestSetConfig_AppliesToNewBuilders(t *testing.T) {
	resetDefaults(t)

	SetConfig(config.NewConfig(config.WithMaxCombinations(3)))
	assert.Equal(t, 3, Config().MaxCombinations)

	_, err := Build(samples{}, "Check")
	assert.ErrorIs(t, err, apis.ErrTooManyCombinations)

	// Caller options win over the defaults.
	m, err := Build(samples{}, "Check", builder.WithConfig(config.DefaultConfig()))
	require.NoError(t, err)
	assert.Equal(t, 4, m.Len())
}

func TestSetConfig_Invalid(t *testing.T) {
	resetDefaults(t)

	SetConfig(apis.Config{})
	_, err := Build(samples{}, "Check")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSetIntrospector(t *testing.T) {
	resetDefaults(t)

	before := Introspector()
	SetIntrospector(nil)
	assert.Equal(t, before, Introspector())

	in := introspect.Default(strategy.WithDefault("Check", 0, 7))
	SetIntrospector(in)
	assert.Equal(t, in, Introspector())

	m, err := Build(samples{}, "Check")
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())
	args, ok := m.Get("Check((default), Itoa(Two()))")
	require.True(t, ok)
	assert.Equal(t, []any{7, "2"}, args)
}

func TestSetLogger(t *testing.T) {
	resetDefaults(t)

	before := Logger()
	SetLogger(nil)
	assert.Same(t, before, Logger())

	l := zap.NewExample()
	SetLogger(l)
	assert.Same(t, l, Logger())
}

// TestSetAll_NilKeeps verifies nil components leave the snapshot untouched.
func TestSetAll_NilKeeps(t *testing.T) {
	resetDefaults(t)

	cfg := config.NewConfig(config.WithDefaultLabel("dflt"))
	SetAll(&cfg, nil, nil)
	intro, log := Introspector(), Logger()

	SetAll(nil, nil, nil)
	assert.Equal(t, "dflt", Config().DefaultLabel)
	assert.Equal(t, intro, Introspector())
	assert.Same(t, log, Logger())
}

func TestConfigure(t *testing.T) {
	resetDefaults(t)

	path := filepath.Join(t.TempDir(), "mfx.yaml")
	data := []byte("default_label: \"<default>\"\non_cycle: empty\nlog:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	before := Logger()
	require.NoError(t, Configure(path))

	cfg := Config()
	assert.Equal(t, "<default>", cfg.DefaultLabel)
	assert.Equal(t, apis.CycleEmpty, cfg.OnCycle)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NotSame(t, before, Logger())
}

func TestConfigure_Invalid(t *testing.T) {
	resetDefaults(t)

	path := filepath.Join(t.TempDir(), "mfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))

	assert.ErrorIs(t, Configure(path), config.ErrInvalidConfig)
	assert.Equal(t, config.DefaultDefaultLabel, Config().DefaultLabel)

	assert.Error(t, Configure(filepath.Join(t.TempDir(), "missing.yaml")))
}

// TestConcurrentDefaults verifies that readers never observe a partially
// published snapshot while writers swap defaults.
func TestConcurrentDefaults(t *testing.T) {
	resetDefaults(t)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				cfg := config.NewConfig(config.WithMaxCombinations(100 + w))
				SetConfig(cfg)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				m, err := Build(samples{}, "Check")
				if err != nil {
					t.Errorf("build: %v", err)
					return
				}
				if m.Len() != 4 {
					t.Errorf("cases: got %d, want 4", m.Len())
					return
				}
			}
		}()
	}
	wg.Wait()
}
