package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rockdodge.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/rockdodge.yaml and is used when the embed cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			MaxHealth: 150,
			ScoreUnit: time.Second,
		},
		Ship: ShipConfig{
			Width:         20,
			Height:        20,
			Speed:         2,
			SpawnX:        10,
			SpawnYDivisor: 3,
		},
		Obstacles: ObstacleConfig{
			MinSize:        10,
			MaxSize:        40,
			SizeGrowth:     5,
			MinSpeed:       1,
			MaxSpeed:       4,
			SpeedGrowth:    1,
			MaxSpeedGrowth: 1.5,
		},
		Timing: TimingConfig{
			FastHz:        60,
			SpawnInterval: 250 * time.Millisecond,
		},
		Progression: ProgressionConfig{
			LevelBase:   3,
			LevelOffset: 2,
			LevelUp:     LevelUpExact,
		},
		Input: InputConfig{
			Hold: 150 * time.Millisecond,
			Bindings: map[string][]string{
				"up":    {"up", "w", "8"},
				"down":  {"down", "s", "2"},
				"left":  {"left", "a", "4"},
				"right": {"right", "d", "6"},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
