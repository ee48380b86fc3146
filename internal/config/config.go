// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for rockdodge.
package config

import "time"

// GameConfig contains all tunables for a session.
type GameConfig struct {
	Session     SessionConfig     `yaml:"session"`
	Ship        ShipConfig        `yaml:"ship"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
	Input       InputConfig       `yaml:"input"`
}

// SessionConfig defines health and scoring.
type SessionConfig struct {
	MaxHealth int           `yaml:"max_health"`
	ScoreUnit time.Duration `yaml:"score_unit"` // Elapsed time worth one point
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`           // Units per fast tick
	SpawnX        int `yaml:"spawn_x"`         // Fixed spawn x
	SpawnYDivisor int `yaml:"spawn_y_divisor"` // Spawn y = play height / divisor
}

// ObstacleConfig defines the randomized rock ranges.
// For level L with b = L-1, sizes are drawn from
// [MinSize+SizeGrowth*b, MaxSize+SizeGrowth*b) and speeds from
// [MinSpeed+SpeedGrowth*b, MaxSpeed+round(MaxSpeedGrowth*b)).
type ObstacleConfig struct {
	MinSize        int     `yaml:"min_size"`
	MaxSize        int     `yaml:"max_size"`
	SizeGrowth     int     `yaml:"size_growth"`
	MinSpeed       int     `yaml:"min_speed"`
	MaxSpeed       int     `yaml:"max_speed"`
	SpeedGrowth    int     `yaml:"speed_growth"`
	MaxSpeedGrowth float64 `yaml:"max_speed_growth"`
}

// TimingConfig defines the two trigger cadences.
type TimingConfig struct {
	FastHz        int           `yaml:"fast_hz"`        // Movement/collision ticks per second
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between spawns
}

// FastPeriod returns the duration of one fast tick.
func (t TimingConfig) FastPeriod() time.Duration {
	if t.FastHz <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.FastHz)
}

// LevelUpRule selects how the level threshold is compared with the score.
type LevelUpRule string

const (
	// LevelUpExact advances when score equals the threshold exactly.
	LevelUpExact LevelUpRule = "exact"
	// LevelUpReached advances when score is at or above the threshold.
	LevelUpReached LevelUpRule = "reached"
)

// ProgressionConfig defines the level thresholds: base^(level+offset).
type ProgressionConfig struct {
	LevelBase   int         `yaml:"level_base"`
	LevelOffset int         `yaml:"level_offset"`
	LevelUp     LevelUpRule `yaml:"level_up"`
}

// InputConfig defines the key-to-direction table used by the input layer.
type InputConfig struct {
	// Hold is how long a key press keeps its direction active without a
	// repeat. Terminals do not report key releases.
	Hold     time.Duration       `yaml:"hold"`
	Bindings map[string][]string `yaml:"bindings"` // direction name -> key names
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
