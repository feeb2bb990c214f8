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

// Config carries read-only knobs for catalog construction and matrix building.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// NullableMarker is stripped from the front of type identifiers before
	// catalog lookup, so "?Foo" and "Foo" share producers. Empty disables stripping.
	NullableMarker string `validate:"omitempty,max=4"`

	// DefaultLabel labels the extra variation contributed by a parameter default.
	DefaultLabel string `validate:"required"`

	// SelfAccessor names the synthetic producer returning the object factory.
	SelfAccessor string `validate:"required"`

	// OnCycle decides what happens when a type is re-entered while resolving.
	OnCycle CyclePolicy `validate:"gte=0,lte=1"`

	// MaxCombinations bounds the size of a single matrix. Zero means unbounded.
	MaxCombinations int `validate:"gte=0"`

	// Log configures loggers built through the logging package.
	Log LogConfig
}

// LogConfig describes a zap logger. The zero value is a production logger
// writing JSON to stderr at info level.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `validate:"omitempty,oneof=debug info warn error"`
	// Development switches to the human-readable console encoder.
	Development bool
	// File, when set, adds a rotated JSON file sink.
	File string
	// MaxSizeMB is the rotation threshold of File.
	MaxSizeMB int `validate:"gte=0"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `validate:"gte=0"`
	// MaxAgeDays is the retention of rotated files.
	MaxAgeDays int `validate:"gte=0"`
}
