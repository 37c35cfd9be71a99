// Package config provides YAML-based configuration for the game:
// playfield geometry, scoring rules, the item spawn table, and
// difficulty presets.
package config

import "fmt"

// Config is the complete game configuration.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Rules     RulesConfig     `yaml:"rules"`
	Spawn     []SpawnEntry    `yaml:"spawn"`
}

// PlayfieldConfig describes the vertical geometry of the play area, in
// playfield pixels. Items spawn at SpawnY (just above the visible area)
// and fall toward MissY; the platform maps pixels to terminal cells at
// render time, so the simulation never depends on the screen size.
type PlayfieldConfig struct {
	Height          float64 `yaml:"height"`
	SpawnY          float64 `yaml:"spawn_y"`
	CatchZoneTop    float64 `yaml:"catch_zone_top"`
	CatchZoneBottom float64 `yaml:"catch_zone_bottom"`
	MissY           float64 `yaml:"miss_y"`
}

// RulesConfig defines scoring, lives, timing and the difficulty curves.
type RulesConfig struct {
	StartingLives     int     `yaml:"starting_lives"`
	TimeLimit         float64 `yaml:"time_limit"` // Seconds
	BaseSpawnInterval float64 `yaml:"base_spawn_interval"`
	SpawnIntervalStep float64 `yaml:"spawn_interval_step"`
	MinSpawnInterval  float64 `yaml:"min_spawn_interval"`
	BaseFallSpeed     float64 `yaml:"base_fall_speed"` // Pixels per second
	FallSpeedStep     float64 `yaml:"fall_speed_step"`
	LevelScoreStep    int     `yaml:"level_score_step"` // Score per level-up
}

// SpawnEntry is one row of the ordered weight table used to draw item
// kinds. Order matters: a single uniform roll walks the cumulative
// weights in declaration order.
type SpawnEntry struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
	Value  int     `yaml:"value"`
}

// Validate checks the configuration for values the simulation cannot
// work with.
func (c Config) Validate() error {
	if c.Playfield.CatchZoneTop >= c.Playfield.CatchZoneBottom {
		return fmt.Errorf("config: catch_zone_top (%v) must be below catch_zone_bottom (%v)",
			c.Playfield.CatchZoneTop, c.Playfield.CatchZoneBottom)
	}
	if c.Playfield.MissY < c.Playfield.CatchZoneBottom {
		return fmt.Errorf("config: miss_y (%v) must not be above catch_zone_bottom (%v)",
			c.Playfield.MissY, c.Playfield.CatchZoneBottom)
	}
	if c.Rules.StartingLives <= 0 {
		return fmt.Errorf("config: starting_lives must be positive, got %d", c.Rules.StartingLives)
	}
	if c.Rules.TimeLimit <= 0 {
		return fmt.Errorf("config: time_limit must be positive, got %v", c.Rules.TimeLimit)
	}
	if c.Rules.MinSpawnInterval <= 0 {
		return fmt.Errorf("config: min_spawn_interval must be positive, got %v", c.Rules.MinSpawnInterval)
	}
	if c.Rules.LevelScoreStep <= 0 {
		return fmt.Errorf("config: level_score_step must be positive, got %d", c.Rules.LevelScoreStep)
	}
	if len(c.Spawn) == 0 {
		return fmt.Errorf("config: spawn table must not be empty")
	}
	for _, e := range c.Spawn {
		if e.Weight <= 0 {
			return fmt.Errorf("config: spawn weight for %q must be positive, got %v", e.Kind, e.Weight)
		}
	}
	return nil
}

// DifficultyPreset is a named set of rule adjustments.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts lives and time limit for the chosen preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.StartingLives = 7
		cfg.Rules.TimeLimit = 90
	case DifficultyHard:
		cfg.Rules.StartingLives = 3
		cfg.Rules.TimeLimit = 45
	}
}
