package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search path.
const FileName = "rockdodge.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.rockdodge/configs/rockdodge.yaml ->
// ./configs/rockdodge.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are allowed.
func Load(customPath string) (GameConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults. It does not validate.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockdodge", "configs", filename)
}

// Validate rejects configurations that would produce undefined geometry or
// empty random ranges at any level.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Session.MaxHealth > 0, "session.max_health must be positive, got %d", c.Session.MaxHealth)
	check(c.Session.ScoreUnit > 0, "session.score_unit must be positive, got %s", c.Session.ScoreUnit)

	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height)
	check(c.Ship.Speed > 0, "ship.speed must be positive, got %d", c.Ship.Speed)
	check(c.Ship.SpawnYDivisor > 0, "ship.spawn_y_divisor must be positive, got %d", c.Ship.SpawnYDivisor)

	o := c.Obstacles
	check(o.MinSize >= 1, "obstacles.min_size must be at least 1, got %d", o.MinSize)
	check(o.MaxSize > o.MinSize, "obstacles size range [%d, %d) is empty", o.MinSize, o.MaxSize)
	check(o.SizeGrowth >= 0, "obstacles.size_growth must not be negative, got %d", o.SizeGrowth)
	check(o.MinSpeed >= 1, "obstacles.min_speed must be at least 1, got %d", o.MinSpeed)
	check(o.MaxSpeed > o.MinSpeed, "obstacles speed range [%d, %d) is empty", o.MinSpeed, o.MaxSpeed)
	check(o.SpeedGrowth >= 0, "obstacles.speed_growth must not be negative, got %d", o.SpeedGrowth)
	check(!math.IsNaN(o.MaxSpeedGrowth) && o.MaxSpeedGrowth >= float64(o.SpeedGrowth),
		"obstacles.max_speed_growth (%g) must be at least speed_growth (%d) so the range never empties",
		o.MaxSpeedGrowth, o.SpeedGrowth)

	check(c.Timing.FastHz > 0, "timing.fast_hz must be positive, got %d", c.Timing.FastHz)
	check(c.Timing.SpawnInterval > 0, "timing.spawn_interval must be positive, got %s", c.Timing.SpawnInterval)

	check(c.Progression.LevelBase >= 2, "progression.level_base must be at least 2, got %d", c.Progression.LevelBase)
	check(c.Progression.LevelOffset >= 0, "progression.level_offset must not be negative, got %d", c.Progression.LevelOffset)
	check(c.Progression.LevelUp == LevelUpExact || c.Progression.LevelUp == LevelUpReached,
		"progression.level_up must be %q or %q, got %q", LevelUpExact, LevelUpReached, c.Progression.LevelUp)

	check(c.Input.Hold >= 0, "input.hold must not be negative, got %s", c.Input.Hold)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
