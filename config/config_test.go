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
	"testing"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.NullableMarker != config.DefaultNullableMarker {
		t.Fatalf("NullableMarker = %q, want %q", got.NullableMarker, config.DefaultNullableMarker)
	}
	if got.DefaultLabel != config.DefaultDefaultLabel {
		t.Fatalf("DefaultLabel = %q, want %q", got.DefaultLabel, config.DefaultDefaultLabel)
	}
	if got.SelfAccessor != config.DefaultSelfAccessor {
		t.Fatalf("SelfAccessor = %q, want %q", got.SelfAccessor, config.DefaultSelfAccessor)
	}
	if got.OnCycle != apis.CycleFail {
		t.Fatalf("OnCycle = %v, want %v", got.OnCycle, apis.CycleFail)
	}
	if got.MaxCombinations != 0 {
		t.Fatalf("MaxCombinations = %d, want 0", got.MaxCombinations)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithNullableMarker(t *testing.T) {
	c := config.NewConfig(config.WithNullableMarker("~"))
	if c.NullableMarker != "~" {
		t.Fatalf("NullableMarker = %q, want ~", c.NullableMarker)
	}

	c2 := config.NewConfig(config.WithNullableMarker(""))
	if c2.NullableMarker != "" {
		t.Fatalf("NullableMarker = %q, want empty", c2.NullableMarker)
	}
}

func TestWithLabels(t *testing.T) {
	c := config.NewConfig(
		config.WithDefaultLabel("<default>"),
		config.WithSelfAccessor("Factory"),
	)
	if c.DefaultLabel != "<default>" {
		t.Fatalf("DefaultLabel = %q, want <default>", c.DefaultLabel)
	}
	if c.SelfAccessor != "Factory" {
		t.Fatalf("SelfAccessor = %q, want Factory", c.SelfAccessor)
	}
}

func TestEmptyLabels_ResetToDefault(t *testing.T) {
	c := config.NewConfig(config.WithDefaultLabel(""), config.WithSelfAccessor(""))
	if c.DefaultLabel != config.DefaultDefaultLabel {
		t.Fatalf("DefaultLabel = %q, want default", c.DefaultLabel)
	}
	if c.SelfAccessor != config.DefaultSelfAccessor {
		t.Fatalf("SelfAccessor = %q, want default", c.SelfAccessor)
	}
}

func TestWithOnCycle(t *testing.T) {
	c := config.NewConfig(config.WithOnCycle(apis.CycleEmpty))
	if c.OnCycle != apis.CycleEmpty {
		t.Fatalf("OnCycle = %v, want empty", c.OnCycle)
	}
}

func TestWithMaxCombinations(t *testing.T) {
	c := config.NewConfig(config.WithMaxCombinations(100))
	if c.MaxCombinations != 100 {
		t.Fatalf("MaxCombinations = %d, want 100", c.MaxCombinations)
	}

	c2 := config.NewConfig(config.WithMaxCombinations(-1))
	if c2.MaxCombinations != config.DefaultMaxCombinations {
		t.Fatalf("MaxCombinations = %d, want default %d", c2.MaxCombinations, config.DefaultMaxCombinations)
	}
}

func TestWithLog(t *testing.T) {
	c := config.NewConfig(config.WithLog(apis.LogConfig{Level: "debug", Development: true}))
	if c.Log.Level != "debug" || !c.Log.Development {
		t.Fatalf("Log = %+v, want debug/development", c.Log)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithOnCycle(apis.CycleEmpty),
		config.WithOnCycle(apis.CycleFail),
		config.WithMaxCombinations(2),
		config.WithMaxCombinations(5),
	)
	if c.OnCycle != apis.CycleFail {
		t.Fatalf("OnCycle = %v, want fail (last wins)", c.OnCycle)
	}
	if c.MaxCombinations != 5 {
		t.Fatalf("MaxCombinations = %d, want 5 (last wins)", c.MaxCombinations)
	}
}
