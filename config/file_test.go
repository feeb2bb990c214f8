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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/config"
)

func TestParse_Full(t *testing.T) {
	data := []byte(`
nullable_marker: "~"
default_label: "<default>"
self_accessor: Factory
on_cycle: empty
max_combinations: 500
log:
  level: debug
  development: true
  file: /tmp/mfx.log
  max_size_mb: 1
`)
	cfg, err := config.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "~", cfg.NullableMarker)
	assert.Equal(t, "<default>", cfg.DefaultLabel)
	assert.Equal(t, "Factory", cfg.SelfAccessor)
	assert.Equal(t, apis.CycleEmpty, cfg.OnCycle)
	assert.Equal(t, 500, cfg.MaxCombinations)
	assert.Equal(t, apis.LogConfig{
		Level:       "debug",
		Development: true,
		File:        "/tmp/mfx.log",
		MaxSizeMB:   1,
	}, cfg.Log)
}

// TestParse_AbsentKeysKeepDefaults verifies partial files only override what
// they mention, including an explicitly empty nullable marker.
func TestParse_AbsentKeysKeepDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("max_combinations: 3\n"))
	require.NoError(t, err)

	want := config.DefaultConfig()
	want.MaxCombinations = 3
	assert.Equal(t, want, cfg)

	cfg, err = config.Parse([]byte("nullable_marker: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.NullableMarker)

	cfg, err = config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":          "on_cycle: [",
		"unknown policy":    "on_cycle: retry\n",
		"negative max":      "max_combinations: -1\n",
		"empty label":       "default_label: \"\"\n",
		"bad log level":     "log:\n  level: loud\n",
		"negative rotation": "log:\n  max_backups: -2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestParse_ValidationErrorsWrapSentinel(t *testing.T) {
	_, err := config.Parse([]byte("self_accessor: \"\"\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("on_cycle: empty\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, apis.CycleEmpty, cfg.OnCycle)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, config.Validate(config.DefaultConfig()))

	bad := config.DefaultConfig()
	bad.OnCycle = apis.CyclePolicy(5)
	require.ErrorIs(t, config.Validate(bad), config.ErrInvalidConfig)
}
