// Package console is the plain terminal front end: one key per turn and a
// full redraw after every turn, without the Bubble Tea screens.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("console: interrupted")

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b
)

// arrowCommands maps the final byte of an arrow key escape sequence.
var arrowCommands = map[rune]rune{
	'A': 'w',
	'B': 's',
	'C': 'd',
	'D': 'a',
}

// KeyReader turns terminal bytes into movement commands.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader reads commands from r.
func NewKeyReader(r *bufio.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// Next blocks until a command key arrives. Line breaks are skipped so the
// same reader works in cooked mode, where every key is followed by Enter.
func (k *KeyReader) Next() (rune, error) {
	for {
		r, _, err := k.r.ReadRune()
		if err != nil {
			return 0, err
		}
		switch r {
		case '\r', '\n':
			continue
		case keyCtrlC:
			return 0, ErrInterrupted
		case keyCtrlD:
			return 0, io.EOF
		case keyEsc:
			if cmd, ok := k.readArrow(); ok {
				return cmd, nil
			}
		}
		return r, nil
	}
}

// readArrow consumes an already buffered "[X" arrow suffix.
func (k *KeyReader) readArrow() (rune, bool) {
	if k.r.Buffered() < 2 {
		return 0, false
	}
	next, err := k.r.Peek(2)
	if err != nil || next[0] != '[' {
		return 0, false
	}
	cmd, ok := arrowCommands[rune(next[1])]
	if !ok {
		return 0, false
	}
	_, _ = k.r.Discard(2)
	return cmd, true
}

// ReadLine reads one line of cooked input without its line ending.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// MakeRaw switches f into raw mode when it is a terminal. The returned
// function restores the previous mode; raw reports whether a switch happened.
func MakeRaw(f *os.File) (restore func(), raw bool, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, err
	}
	return func() { _ = term.Restore(fd, old) }, true, nil
}

// TerminalSize returns the size of f, or 80x24 when it is not a terminal.
func TerminalSize(f *os.File) (w, h int) {
	if w, h, err := term.GetSize(int(f.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
