package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/platform/console"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/session"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the maze",
	Long: `Start a session. Without a level you are asked to pick one.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  A/Left     - Move left
  D/Right    - Move right
  Enter      - Continue after a level ends
  R          - Retry after a loss
  Esc        - Back to level selection
  Q/Ctrl+C   - Quit

A level can be played once it is above the highest completed level.

Examples:
  maze play
  maze play 4
  maze play --plain
  maze play --seed 7
  maze play --save-progress --profile alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line console instead of the full-screen UI")
}

func runPlay(_ *cobra.Command, args []string) {
	startLevel := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		startLevel = n
	}

	mazeCfg, err := loadMazeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Open progress storage
	store := openStore()

	// Get terminal size
	width, height := console.TerminalSize(os.Stdout)

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	params, rules := session.ParamsFromConfig(mazeCfg)
	opts := session.Options{
		Params:  params,
		Rules:   rules,
		Seed:    cfg.ResolveSeed(),
		Profile: flagProfile,
		Logger:  logger,
	}
	if store != nil {
		opts.Store = store
	}
	sess := session.New(opts)
	cfg.Seed = sess.Seed()
	logger.Info("session started", "profile", sess.Profile(), "seed", sess.Seed(), "highest", sess.HighestCompleted())

	var runErr error
	if flagPlain {
		runErr = runConsole(sess, startLevel)
	} else {
		runErr = tui.Run(sess, cfg, startLevel)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runConsole plays in the line console.
func runConsole(sess *session.Session, startLevel int) error {
	fmt.Println(session.MsgControls)
	fmt.Printf("Seed: %d\n\n", sess.Seed())

	game := console.NewGame(sess, console.Options{
		In:         os.Stdin,
		Out:        os.Stdout,
		TTY:        os.Stdin,
		Clear:      true,
		StartLevel: startLevel,
	})
	return game.Run()
}
