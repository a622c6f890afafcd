package console

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// corridorSession has a 1x2 interior where 'd' always wins.
func corridorSession(levels int) *session.Session {
	return session.New(session.Options{
		Params: maze.Params{
			Rows:            3,
			Cols:            4,
			NumLevels:       levels,
			MaxDrawsPerItem: 100,
			RequirePath:     true,
			MaxLayouts:      1,
		},
		Seed: 1,
	})
}

// trapSession has a 1x3 interior whose middle cell is a trap.
func trapSession() *session.Session {
	return session.New(session.Options{
		Params: maze.Params{
			Rows:            3,
			Cols:            5,
			NumLevels:       1,
			MaxTraps:        1,
			MaxDrawsPerItem: 100,
		},
		Seed: 1,
	})
}

func TestKeyReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"letters", "wasd", []rune{'w', 'a', 's', 'd'}},
		{"skips line breaks", "w\nd\r\n", []rune{'w', 'd'}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []rune{'w', 's', 'd', 'a'}},
		{"lone escape", "\x1bx", []rune{keyEsc, 'x'}},
		{"unknown keys pass through", "q ", []rune{'q', ' '}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := NewKeyReader(bufio.NewReader(strings.NewReader(tc.input)))
			for i, want := range tc.want {
				got, err := k.Next()
				if err != nil {
					t.Fatalf("Next() #%d error: %v", i, err)
				}
				if got != want {
					t.Errorf("Next() #%d = %q, expected %q", i, got, want)
				}
			}
			if _, err := k.Next(); !errors.Is(err, io.EOF) {
				t.Errorf("expected io.EOF after input, got %v", err)
			}
		})
	}
}

func TestKeyReaderControlKeys(t *testing.T) {
	k := NewKeyReader(bufio.NewReader(strings.NewReader("\x03")))
	if _, err := k.Next(); !errors.Is(err, ErrInterrupted) {
		t.Errorf("Ctrl+C: expected ErrInterrupted, got %v", err)
	}

	k = NewKeyReader(bufio.NewReader(strings.NewReader("\x04")))
	if _, err := k.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Ctrl+D: expected io.EOF, got %v", err)
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("one\r\ntwo\nthree"))
	for _, want := range []string{"one", "two", "three"} {
		got, err := ReadLine(r)
		if err != nil {
			t.Fatalf("ReadLine error: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine = %q, expected %q", got, want)
		}
	}
	if _, err := ReadLine(r); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestPromptLevel(t *testing.T) {
	sess := corridorSession(3)
	in := bufio.NewReader(strings.NewReader("abc\n7\n\n2\n"))
	var out bytes.Buffer

	level, err := PromptLevel(in, &out, sess)
	if err != nil {
		t.Fatalf("PromptLevel error: %v", err)
	}
	if level != 2 {
		t.Errorf("level = %d, expected 2", level)
	}

	text := out.String()
	for _, want := range []string{
		session.SelectPrompt(3),
		session.MsgNotNumeric,
		session.InvalidLevelPrompt(3),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if n := strings.Count(text, session.MsgNotNumeric); n != 2 {
		t.Errorf("expected two non-numeric prompts (abc and empty line), got %d", n)
	}
}

func TestPromptLevelEOF(t *testing.T) {
	sess := corridorSession(3)
	in := bufio.NewReader(strings.NewReader("abc\n"))

	if _, err := PromptLevel(in, io.Discard, sess); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestGameRunCompletesAllLevels(t *testing.T) {
	sess := corridorSession(2)
	script := "x\n5\n1\nd\n\n1\n2\nd\n\n"
	var out bytes.Buffer

	g := NewGame(sess, Options{In: strings.NewReader(script), Out: &out})
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !sess.AllCompleted() {
		t.Errorf("expected every level completed, highest = %d", sess.HighestCompleted())
	}

	text := out.String()
	for _, want := range []string{
		session.MsgNotNumeric,
		session.InvalidLevelPrompt(2),
		session.MsgAlreadyDone,
		session.MsgWon,
		session.MsgContinue,
		session.MsgAllCompleted,
		"Level 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(text, session.MsgWon); n != 2 {
		t.Errorf("expected two wins, got %d", n)
	}
}

func TestGameRunLossThenEOF(t *testing.T) {
	sess := trapSession()
	var out bytes.Buffer

	g := NewGame(sess, Options{In: strings.NewReader("1\nd\n\n"), Out: &out})
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if sess.HighestCompleted() != 0 {
		t.Errorf("a loss must not raise progress, highest = %d", sess.HighestCompleted())
	}
	if !strings.Contains(out.String(), session.MsgLost) {
		t.Errorf("output missing loss message:\n%s", out.String())
	}
	if strings.Contains(out.String(), clearScreen) {
		t.Error("clear sequence written although Clear is off")
	}
}

func TestRendererRawLineEndings(t *testing.T) {
	sess := corridorSession(1)
	a, err := sess.Begin(1)
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}

	var out bytes.Buffer
	r := NewRenderer(&out, true, true)
	if err := r.Render(a.Frame()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	text := out.String()
	if !strings.HasPrefix(text, clearScreen) {
		t.Error("expected frame to start with the clear sequence")
	}
	if strings.Count(text, "\n") != strings.Count(text, "\r\n") {
		t.Error("raw renderer wrote a bare line feed")
	}
	if !strings.Contains(text, "Level 1") {
		t.Errorf("frame missing header:\n%s", text)
	}
}

func TestGameStartLevel(t *testing.T) {
	sess := corridorSession(3)
	var out bytes.Buffer

	g := NewGame(sess, Options{In: strings.NewReader("d\n\n"), Out: &out, StartLevel: 2})
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if sess.HighestCompleted() != 2 {
		t.Errorf("highest = %d, expected 2", sess.HighestCompleted())
	}
	if !strings.Contains(out.String(), "Level 2") {
		t.Errorf("start level was not played:\n%s", out.String())
	}
}

func TestGameRejectedStartLevelPrompts(t *testing.T) {
	sess := corridorSession(3)
	var out bytes.Buffer

	g := NewGame(sess, Options{In: strings.NewReader("1\nd\n\n"), Out: &out, StartLevel: 9})
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, session.InvalidLevelPrompt(3)) {
		t.Errorf("expected invalid level message:\n%s", text)
	}
	if sess.HighestCompleted() != 1 {
		t.Errorf("highest = %d, expected 1", sess.HighestCompleted())
	}
}
