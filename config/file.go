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
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"dirpx.dev/mfx/apis"
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("mfx(config): invalid configuration")

// file is the on-disk YAML shape. Pointers distinguish "absent" from zero so
// absent keys keep their defaults.
type file struct {
	NullableMarker  *string `yaml:"nullable_marker"`
	DefaultLabel    *string `yaml:"default_label"`
	SelfAccessor    *string `yaml:"self_accessor"`
	OnCycle         *string `yaml:"on_cycle"`
	MaxCombinations *int    `yaml:"max_combinations"`
	Log             *struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
		File        string `yaml:"file"`
		MaxSizeMB   int    `yaml:"max_size_mb"`
		MaxBackups  int    `yaml:"max_backups"`
		MaxAgeDays  int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// Load reads a YAML configuration file. See Parse.
func Load(path string) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("mfx(config): read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
//
//	nullable_marker: "?"
//	default_label: "(default)"
//	self_accessor: ObjectFactory
//	on_cycle: fail
//	max_combinations: 10000
//	log:
//	  level: debug
//	  development: true
func Parse(data []byte) (apis.Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return apis.Config{}, fmt.Errorf("mfx(config): decode: %w", err)
	}

	cfg := DefaultConfig()
	if f.NullableMarker != nil {
		cfg.NullableMarker = *f.NullableMarker
	}
	if f.DefaultLabel != nil {
		cfg.DefaultLabel = *f.DefaultLabel
	}
	if f.SelfAccessor != nil {
		cfg.SelfAccessor = *f.SelfAccessor
	}
	if f.OnCycle != nil {
		p, err := apis.ParseCyclePolicy(*f.OnCycle)
		if err != nil {
			return apis.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.OnCycle = p
	}
	if f.MaxCombinations != nil {
		cfg.MaxCombinations = *f.MaxCombinations
	}
	if f.Log != nil {
		cfg.Log = apis.LogConfig{
			Level:       f.Log.Level,
			Development: f.Log.Development,
			File:        f.Log.File,
			MaxSizeMB:   f.Log.MaxSizeMB,
			MaxBackups:  f.Log.MaxBackups,
			MaxAgeDays:  f.Log.MaxAgeDays,
		}
	}

	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct constraints.
func Validate(cfg apis.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
