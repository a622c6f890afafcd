package config

import "fmt"

// DifficultyPreset names a bundle of level scaling settings.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyHard    DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyClassic, DifficultyEasy, DifficultyHard}

// ParseDifficulty converts a flag value to a preset. Empty means classic.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyClassic, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want classic, easy or hard)", s)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// Classic leaves the loaded values untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Levels.WallsPerLevel = 1
		cfg.Levels.MaxTraps = 5
		cfg.Levels.MaxMonsters = 2
		cfg.Rules.MonsterCatchesPlayer = false
	case DifficultyHard:
		cfg.Levels.WallsPerLevel = 3
		cfg.Levels.MaxMonsters = 5
		cfg.Rules.MonsterCatchesPlayer = true
	}
}
