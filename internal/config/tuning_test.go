package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	tuning := DefaultTuning()
	if err := tuning.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if tuning.MaxHP != 100 || tuning.DamageRate != 2 || tuning.NozzleRadius != 30 {
		t.Errorf("unexpected interaction defaults: %+v", tuning)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	tuning, err := Parse([]byte(`
[interaction]
max_hp = 60
damage_rate = 3

[debris]
count = 12

[audio]
master_volume = 0.25
synthesize = false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tuning.MaxHP != 60 || tuning.DamageRate != 3 {
		t.Errorf("interaction not applied: %v %v", tuning.MaxHP, tuning.DamageRate)
	}
	if tuning.ExplosionCount != 12 || tuning.MasterVolume != 0.25 || tuning.Synthesize {
		t.Errorf("overrides not applied: %+v", tuning)
	}
	def := DefaultTuning()
	if tuning.NozzleRadius != def.NozzleRadius || tuning.SprayMax != def.SprayMax || tuning.FadeOut != def.FadeOut {
		t.Error("absent keys must keep their defaults")
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", `[interaction`, "parse"},
		{"wrong type", "[interaction]\nmax_hp = \"lots\"", "expected a number"},
		{"float count", "[debris]\ncount = 1.5", "expected an integer"},
		{"zero hp", "[interaction]\nmax_hp = 0", "max_hp"},
		{"spray range", "[nozzle]\nspray_per_tick_min = 9", "spray_per_tick_min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tuning, err := Load("")
	if err != nil || tuning != DefaultTuning() {
		t.Errorf("empty path: %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}

	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[interaction]\nwash_speed = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tuning, err = Load(path)
	if err != nil || tuning.WashSpeed != 8 {
		t.Errorf("Load: %v, wash_speed=%v", err, tuning.WashSpeed)
	}
}

func TestShippedTuningFileMatchesDefaults(t *testing.T) {
	tuning, err := Load(filepath.Join("..", "..", "configs", "tuning.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tuning != DefaultTuning() {
		t.Errorf("configs/tuning.toml drifted from DefaultTuning:\n%+v\n%+v", tuning, DefaultTuning())
	}
}
