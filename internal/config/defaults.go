package config

import (
	_ "embed"
)

//go:embed defaults/fruitcatch.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback if the embedded YAML ever fails to parse.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Height:          450,
			SpawnY:          -40,
			CatchZoneTop:    350,
			CatchZoneBottom: 390,
			MissY:           410,
		},
		Rules: RulesConfig{
			StartingLives:     5,
			TimeLimit:         60,
			BaseSpawnInterval: 1.2,
			SpawnIntervalStep: 0.1,
			MinSpawnInterval:  0.4,
			BaseFallSpeed:     100,
			FallSpeedStep:     20,
			LevelScoreStep:    100,
		},
		Spawn: []SpawnEntry{
			{Kind: "heart", Weight: 0.05, Value: 0},
			{Kind: "bomb", Weight: 0.20, Value: -50},
			{Kind: "orange", Weight: 0.25, Value: 30},
			{Kind: "grape", Weight: 0.20, Value: 20},
			{Kind: "apple", Weight: 0.30, Value: 10},
		},
	}
}
