// maze is a turn-based maze game for the terminal.
//
// Usage:
//
//	maze play [level]        - Play in the full-screen UI (--plain for the line console)
//	maze levels              - List the levels and their hazards
//	maze progress            - Show saved progress (--reset to clear it)
//	maze serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--save-progress       - Load and save progress across runs
//	--db <path>           - Set database path (default: ~/.maze/maze.db)
//	--config <path>       - Load a custom maze YAML
//	--difficulty <name>   - Apply a preset: classic, easy, hard
//	--profile <name>      - Name to save progress under
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/session"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagSave       bool
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - Reach the goal, dodge traps and monsters",
	Long: `Maze is a turn-based game played in your terminal. Each turn you take
one step; then every monster takes one random step. Walk onto a trap or
into a monster and the attempt is lost. Reach the goal to complete the level
and unlock the levels above it. Progress lasts for the run unless
--save-progress keeps it in the database.

Available commands:
  play      - Play (full-screen UI or --plain console)
  levels    - Show all levels and their hazards
  progress  - Show or reset saved progress
  serve     - Start SSH server for remote play

Examples:
  maze play
  maze play 3 --seed 42
  maze play --save-progress
  maze play --plain
  maze --difficulty hard play
  maze serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to progress database")
	rootCmd.PersistentFlags().BoolVar(&flagSave, "save-progress", false, "Load and save progress in the database across runs")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, hard")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", session.DefaultProfile, "Profile name progress is saved under")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadMazeConfig loads the maze config and applies the difficulty preset.
func loadMazeConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyMazePreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or a silent one.
// The full-screen UI owns the terminal, so nothing is logged to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// openStore opens the progress database when --save-progress is set.
// A nil store means progress lives in memory only and starts at 0.
func openStore() *storage.Store {
	if !flagSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}
