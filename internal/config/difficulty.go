package config

import "fmt"

// MaxHealthForPreset returns the starting health for a difficulty preset.
func MaxHealthForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 250, nil
	case DifficultyNormal:
		return 150, nil
	case DifficultyHard:
		return 75, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	health, err := MaxHealthForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Session.MaxHealth = health

	// Hard sessions also spawn a little faster.
	if preset == DifficultyHard && cfg.Timing.SpawnInterval > 0 {
		cfg.Timing.SpawnInterval = cfg.Timing.SpawnInterval * 4 / 5
	}
	return nil
}
