package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
// It mirrors defaults/maze.yaml and is used when the embedded file cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{
			Rows: 12,
			Cols: 22,
		},
		Levels: LevelsConfig{
			Count:         10,
			WallsPerLevel: 2,
			MaxTraps:      15,
			MaxMonsters:   3,
		},
		Generation: GenerationConfig{
			MaxDrawsPerItem: 1000,
			RequirePath:     true,
			MaxLayouts:      100,
		},
		Rules: RulesConfig{
			MonsterCatchesPlayer: false,
		},
	}
}
