package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

type Terminal struct {
	file      *os.File
	prevState *terminal.State
	term      *terminal.Terminal
}

// NewTerminal puts the terminal attached to standard input into raw mode.
// Call Restore to return it to its previous state.
func NewTerminal() (*Terminal, error) {
	f, err := findTerminal()
	if err != nil {
		return nil, err
	}
	prevState, err := terminal.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &Terminal{
		file:      f,
		prevState: prevState,
		term:      terminal.NewTerminal(f, ""),
	}, nil
}

func (t *Terminal) Restore() error {
	t.term = nil
	return terminal.Restore(int(t.file.Fd()), t.prevState)
}

// ReadSecret reads one line without echoing it.
func (t *Terminal) ReadSecret(prompt string) (string, error) {
	if t.term == nil {
		return "", errors.New("terminal not initialised")
	}

	line, err := t.term.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptSecret asks for a secret value.  With a terminal on standard input
// the value is read without echo.  Otherwise the prompt is written to out and
// a single line is read from in, so keys may be piped in.
func PromptSecret(prompt string, in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		t, err := NewTerminal()
		if err != nil {
			return "", err
		}
		defer t.Restore() // nolint: errcheck

		return t.ReadSecret(prompt)
	}

	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", err
	}
	return ReadLine(in)
}

// ReadLine returns the first line of r with surrounding whitespace removed.
// A final line without a trailing newline is accepted.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(line), nil
}

func findTerminal() (*os.File, error) {
	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, nil
	}
	return nil, errors.New("no terminal attached to standard input")
}
