// Package config provides YAML-based configuration loading and difficulty
// presets for the maze game.
package config

// MazeConfig contains all tunable settings of the maze game.
type MazeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Levels     LevelsConfig     `yaml:"levels"`
	Generation GenerationConfig `yaml:"generation"`
	Rules      RulesConfig      `yaml:"rules"`
}

// BoardConfig defines the board dimensions, border included.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LevelsConfig defines how many levels exist and how they scale.
type LevelsConfig struct {
	Count         int `yaml:"count"`
	WallsPerLevel int `yaml:"walls_per_level"` // interior walls = walls_per_level * level
	MaxTraps      int `yaml:"max_traps"`       // traps = min(level, max_traps)
	MaxMonsters   int `yaml:"max_monsters"`    // monsters = min(level, max_monsters)
}

// GenerationConfig bounds the random layout search.
type GenerationConfig struct {
	MaxDrawsPerItem int  `yaml:"max_draws_per_item"`
	RequirePath     bool `yaml:"require_path"`
	MaxLayouts      int  `yaml:"max_layouts"`
}

// RulesConfig holds optional rule variations.
type RulesConfig struct {
	MonsterCatchesPlayer bool `yaml:"monster_catches_player"`
}
