package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/session"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long: `Shows every level with its wall, trap and monster counts for the
active config and difficulty preset.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	mazeCfg, err := loadMazeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	params, rules := session.ParamsFromConfig(mazeCfg)

	fmt.Printf("Board: %dx%d\n", params.Rows, params.Cols)
	if rules.MonsterCatchesPlayer {
		fmt.Println("Monsters catch the player on their move.")
	}
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-6s  %-5s  %s\n", "Level", "Walls", "Traps", "Monsters")
	fmt.Printf("  %-5s  %-6s  %-5s  %s\n", "-----", "-----", "-----", "--------")

	for i := 1; i <= params.NumLevels; i++ {
		lvl, err := params.Level(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-5d  %-6d  %-5d  %d\n", lvl.Index, lvl.Walls, lvl.Traps, lvl.Monsters)
	}

	fmt.Println()
	fmt.Println("Run 'maze play <level>' to play a level.")
}
