package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	// Files only need to set the keys they change.
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "maze.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (MazeConfig, bool) {
	cfg := DefaultMazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// Validate rejects configurations that cannot produce a playable board.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 3 || c.Board.Cols < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Rows, c.Board.Cols))
	} else if c.Board.Rows == 3 && c.Board.Cols == 3 {
		errs = append(errs, errors.New("board 3x3 has no room for both start and goal"))
	}
	if c.Levels.Count < 1 {
		errs = append(errs, fmt.Errorf("levels.count must be positive, got %d", c.Levels.Count))
	}
	if c.Levels.WallsPerLevel < 0 || c.Levels.MaxTraps < 0 || c.Levels.MaxMonsters < 0 {
		errs = append(errs, errors.New("level quotas must not be negative"))
	}
	if c.Generation.MaxDrawsPerItem < 1 {
		errs = append(errs, fmt.Errorf("generation.max_draws_per_item must be positive, got %d", c.Generation.MaxDrawsPerItem))
	}
	if c.Generation.RequirePath && c.Generation.MaxLayouts < 1 {
		errs = append(errs, fmt.Errorf("generation.max_layouts must be positive, got %d", c.Generation.MaxLayouts))
	}
	return errors.Join(errs...)
}
