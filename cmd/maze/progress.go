package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagReset bool
	flagAll   bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Long: `Display the highest completed level of the profile, as saved by
runs started with --save-progress.

Examples:
  maze progress
  maze progress --profile alice
  maze progress --all
  maze progress --reset`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the profile's progress")
	progressCmd.Flags().BoolVar(&flagAll, "all", false, "List every profile")
}

func runProgress(_ *cobra.Command, _ []string) {
	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagReset:
		err = resetProgress(store)
	case flagAll:
		err = printAllProgress(store)
	default:
		err = printProgress(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func resetProgress(store *storage.Store) error {
	if err := store.ResetProgress(flagProfile); err != nil {
		return err
	}
	fmt.Printf("Progress of %q cleared.\n", flagProfile)
	return nil
}

func printAllProgress(store *storage.Store) error {
	entries, err := store.AllProgress()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No progress recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %s\n", "Profile", "Highest", "Updated")
	fmt.Printf("  %-16s  %-7s  %s\n", "-------", "-------", "-------")
	for _, p := range entries {
		fmt.Printf("  %-16s  %-7d  %s\n", p.Profile, p.Highest, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printProgress(store *storage.Store) error {
	highest, err := store.HighestCompleted(flagProfile)
	if err != nil {
		return err
	}

	fmt.Printf("Progress - %s\n", flagProfile)
	fmt.Println()

	if highest == 0 {
		fmt.Println("No level completed yet.")
		fmt.Println()
		fmt.Println("Play 'maze play 1' to start!")
		return nil
	}
	fmt.Printf("Highest completed level: %d\n", highest)
	return nil
}
