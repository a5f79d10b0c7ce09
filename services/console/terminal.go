package consolesvc

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/scoretable/core/input"
)

var (
	// mockable
	isTerminalFunc = term.IsTerminal
	makeRawFunc    = term.MakeRaw
	restoreFunc    = term.Restore
)

// TerminalReader reads lines from an interactive terminal in raw mode, with line editing and history.
// Close must be called to restore the terminal.
type TerminalReader struct {
	fd    int
	state *term.State
	term  *term.Terminal
}

var _ input.LineReader = (*TerminalReader)(nil)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isTerminalFunc(int(f.Fd()))
}

// NewTerminalReader puts in into raw mode and reads lines from it, echoing to out.
func NewTerminalReader(in *os.File, out io.Writer) (*TerminalReader, error) {
	fd := int(in.Fd())
	state, err := makeRawFunc(fd)
	if err != nil {
		return nil, errors.Wrap(err, "consolesvc.NewTerminalReader")
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &TerminalReader{fd: fd, state: state, term: term.NewTerminal(rw, "")}, nil
}

// ReadLine returns io.EOF on Ctrl-D.
func (rdr *TerminalReader) ReadLine(prompt string) (string, error) {
	rdr.term.SetPrompt(prompt)
	line, err := rdr.term.ReadLine()
	if err != nil {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "reading terminal")
	}
	return line, nil
}

// Write writes to the terminal, translating "\n" to "\r\n" while in raw mode.
// Diagnostics must go through it rather than straight to stdout.
func (rdr *TerminalReader) Write(p []byte) (int, error) {
	return rdr.term.Write(p)
}

// Close restores the terminal state.
func (rdr *TerminalReader) Close() error {
	if rdr.state == nil {
		return nil
	}
	err := restoreFunc(rdr.fd, rdr.state)
	rdr.state = nil
	return err
}
