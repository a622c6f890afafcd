package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// Options configures a console Game.
type Options struct {
	In    io.Reader
	Out   io.Writer
	TTY   *os.File // switched to raw mode during play when it is a terminal
	Clear bool     // clear the screen before every frame

	// StartLevel is played first instead of prompting, when the gate allows it.
	StartLevel int
}

// Game drives a session from a plain terminal: prompt for a level, play it
// one key per turn, wait for Enter, repeat.
type Game struct {
	sess  *session.Session
	in    *bufio.Reader
	out   io.Writer
	tty   *os.File
	keys  *KeyReader
	frame *Renderer
	start int
}

// NewGame creates a console game for sess.
func NewGame(sess *session.Session, opts Options) *Game {
	in := bufio.NewReader(opts.In)
	return &Game{
		sess:  sess,
		in:    in,
		out:   opts.Out,
		tty:   opts.TTY,
		keys:  NewKeyReader(in),
		frame: NewRenderer(opts.Out, opts.Clear, false),
		start: opts.StartLevel,
	}
}

// Run plays levels until every level is completed or the input ends.
// End of input and Ctrl+C end the game without an error.
func (g *Game) Run() error {
	err := g.loop()
	if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
		return nil
	}
	return err
}

func (g *Game) loop() error {
	for {
		if g.sess.AllCompleted() {
			fmt.Fprintln(g.out, session.MsgAllCompleted)
			return nil
		}

		level, err := g.nextLevel()
		if err != nil {
			return err
		}

		raw, err := g.play(level)
		if errors.Is(err, maze.ErrGenerationExhausted) {
			fmt.Fprintln(g.out, session.MsgGenerationError)
			continue
		}
		if err != nil {
			return err
		}

		if err := g.waitEnter(raw); err != nil {
			return err
		}
	}
}

// nextLevel returns the start level once, then prompts.
func (g *Game) nextLevel() (int, error) {
	if start := g.start; start > 0 {
		g.start = 0
		level, err := g.sess.SelectLevel(start)
		if err == nil {
			return level, nil
		}
		fmt.Fprintln(g.out, session.SelectionMessage(err, g.sess.NumLevels()))
	}
	return PromptLevel(g.in, g.out, g.sess)
}

// play runs one attempt, in raw mode when the terminal allows it.
func (g *Game) play(level int) (raw bool, err error) {
	restore := func() {}
	if g.tty != nil {
		restore, raw, err = MakeRaw(g.tty)
		if err != nil {
			return false, fmt.Errorf("console: raw mode: %w", err)
		}
	}
	defer restore()

	g.frame.SetRaw(raw)
	defer g.frame.SetRaw(false)

	_, err = g.sess.PlayLevel(level, g.keys, g.frame)
	return raw, err
}

// waitEnter blocks until the player presses Enter. In cooked mode the line
// that carried the final move is discarded first.
func (g *Game) waitEnter(raw bool) error {
	if !raw {
		if _, err := ReadLine(g.in); err != nil {
			return err
		}
	}
	_, err := ReadLine(g.in)
	return err
}

// PromptLevel asks for a level until the player enters one the session
// accepts. Non-numeric and out-of-range input re-prompts indefinitely.
func PromptLevel(in *bufio.Reader, out io.Writer, sess *session.Session) (int, error) {
	numLevels := sess.NumLevels()
	prompt := session.SelectPrompt(numLevels)

	for {
		fmt.Fprint(out, prompt)
		line, err := ReadLine(in)
		if err != nil {
			return 0, err
		}

		requested, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			prompt = session.MsgNotNumeric
			continue
		}

		level, err := sess.SelectLevel(requested)
		if err == nil {
			return level, nil
		}

		msg := session.SelectionMessage(err, numLevels)
		if errors.Is(err, maze.ErrInvalidLevel) {
			prompt = msg
			continue
		}
		fmt.Fprintln(out, msg)
		prompt = session.SelectPrompt(numLevels)
	}
}
