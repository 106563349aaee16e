package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml"
)

// Tuning holds every gameplay constant that can be overridden from a TOML file.
type Tuning struct {
	// Interaction
	MaxHP        float64
	DamageRate   float64 // per hitting tick
	NozzleRadius float64
	MinAlpha     float64
	WashSpeed    float64 // px per tick while washing away
	WashFadeStep float64
	WashShrink   float64

	// Debris
	ExplosionCount    int
	ExplosionSize     float64
	ExplosionSpeedMin float64
	ExplosionSpeedMax float64
	DebrisGravity     float64
	DebrisLifeStep    float64

	// Nozzle
	LerpFactor      float64
	SprayMax        int
	SprayPerTickMin int
	SprayPerTickMax int
	SprayCone       float64 // radians, full width
	SpraySpeedMin   float64 // px per second
	SpraySpeedMax   float64
	SpraySizeMin    float64
	SpraySizeMax    float64
	SprayLife       float64 // seconds
	SprayGravity    float64 // px per second squared

	// Audio
	MasterVolume  float64
	CleanVolume   float64
	DestroyVolume float64
	ClearVolume   float64
	FadeIn        float64 // seconds
	FadeOut       float64
	Synthesize    bool
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		MaxHP:        100,
		DamageRate:   2,
		NozzleRadius: 30,
		MinAlpha:     0.2,
		WashSpeed:    5,
		WashFadeStep: 0.05,
		WashShrink:   0.98,

		ExplosionCount:    20,
		ExplosionSize:     8,
		ExplosionSpeedMin: 2,
		ExplosionSpeedMax: 12,
		DebrisGravity:     0.5,
		DebrisLifeStep:    0.05,

		LerpFactor:      0.15,
		SprayMax:        80,
		SprayPerTickMin: 5,
		SprayPerTickMax: 7,
		SprayCone:       math.Pi * 0.4,
		SpraySpeedMin:   180,
		SpraySpeedMax:   360,
		SpraySizeMin:    2,
		SpraySizeMax:    6,
		SprayLife:       0.8,
		SprayGravity:    600,

		MasterVolume:  0.5,
		CleanVolume:   1.0,
		DestroyVolume: 0.8,
		ClearVolume:   1.0,
		FadeIn:        0.1,
		FadeOut:       0.2,
		Synthesize:    true,
	}
}

// Validate rejects values that would break the simulation invariants.
func (t Tuning) Validate() error {
	switch {
	case t.MaxHP <= 0:
		return fmt.Errorf("interaction.max_hp must be positive, got %v", t.MaxHP)
	case t.DamageRate <= 0:
		return fmt.Errorf("interaction.damage_rate must be positive, got %v", t.DamageRate)
	case t.NozzleRadius < 0:
		return fmt.Errorf("interaction.nozzle_radius must not be negative, got %v", t.NozzleRadius)
	case t.MinAlpha < 0 || t.MinAlpha > 1:
		return fmt.Errorf("interaction.min_alpha must be in [0, 1], got %v", t.MinAlpha)
	case t.WashFadeStep <= 0:
		return fmt.Errorf("interaction.wash_fade_step must be positive, got %v", t.WashFadeStep)
	case t.DebrisLifeStep <= 0:
		return fmt.Errorf("debris.life_step must be positive, got %v", t.DebrisLifeStep)
	case t.LerpFactor <= 0 || t.LerpFactor > 1:
		return fmt.Errorf("nozzle.lerp_factor must be in (0, 1], got %v", t.LerpFactor)
	case t.SprayPerTickMin > t.SprayPerTickMax:
		return fmt.Errorf("nozzle.spray_per_tick_min %d exceeds max %d", t.SprayPerTickMin, t.SprayPerTickMax)
	case t.SprayLife <= 0:
		return fmt.Errorf("nozzle.spray_life must be positive, got %v", t.SprayLife)
	case t.MasterVolume < 0:
		return fmt.Errorf("audio.master_volume must not be negative, got %v", t.MasterVolume)
	}
	return nil
}

// Load reads a TOML tuning file on top of DefaultTuning. Keys that are absent
// keep their default value. An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return Parse(data)
}

// Parse applies a TOML document on top of DefaultTuning.
func Parse(data []byte) (Tuning, error) {
	t := DefaultTuning()
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return t, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	floats := map[string]*float64{
		"interaction.max_hp":         &t.MaxHP,
		"interaction.damage_rate":    &t.DamageRate,
		"interaction.nozzle_radius":  &t.NozzleRadius,
		"interaction.min_alpha":      &t.MinAlpha,
		"interaction.wash_speed":     &t.WashSpeed,
		"interaction.wash_fade_step": &t.WashFadeStep,
		"interaction.wash_shrink":    &t.WashShrink,
		"debris.size":                &t.ExplosionSize,
		"debris.speed_min":           &t.ExplosionSpeedMin,
		"debris.speed_max":           &t.ExplosionSpeedMax,
		"debris.gravity":             &t.DebrisGravity,
		"debris.life_step":           &t.DebrisLifeStep,
		"nozzle.lerp_factor":         &t.LerpFactor,
		"nozzle.spray_cone":          &t.SprayCone,
		"nozzle.spray_speed_min":     &t.SpraySpeedMin,
		"nozzle.spray_speed_max":     &t.SpraySpeedMax,
		"nozzle.spray_size_min":      &t.SpraySizeMin,
		"nozzle.spray_size_max":      &t.SpraySizeMax,
		"nozzle.spray_life":          &t.SprayLife,
		"nozzle.spray_gravity":       &t.SprayGravity,
		"audio.master_volume":        &t.MasterVolume,
		"audio.clean_volume":         &t.CleanVolume,
		"audio.destroy_volume":       &t.DestroyVolume,
		"audio.clear_volume":         &t.ClearVolume,
		"audio.fade_in":              &t.FadeIn,
		"audio.fade_out":             &t.FadeOut,
	}
	for key, dst := range floats {
		if !tree.Has(key) {
			continue
		}
		v, ok := toFloat(tree.Get(key))
		if !ok {
			return t, fmt.Errorf("tuning key %s: expected a number, got %T", key, tree.Get(key))
		}
		*dst = v
	}

	ints := map[string]*int{
		"debris.count":              &t.ExplosionCount,
		"nozzle.spray_max":          &t.SprayMax,
		"nozzle.spray_per_tick_min": &t.SprayPerTickMin,
		"nozzle.spray_per_tick_max": &t.SprayPerTickMax,
	}
	for key, dst := range ints {
		if !tree.Has(key) {
			continue
		}
		v, ok := tree.Get(key).(int64)
		if !ok {
			return t, fmt.Errorf("tuning key %s: expected an integer, got %T", key, tree.Get(key))
		}
		*dst = int(v)
	}

	if tree.Has("audio.synthesize") {
		v, ok := tree.Get("audio.synthesize").(bool)
		if !ok {
			return t, fmt.Errorf("tuning key audio.synthesize: expected a boolean, got %T", tree.Get("audio.synthesize"))
		}
		t.Synthesize = v
	}

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
