// Package termio supplies the CLI's raw-mode single-character reader for
// the `,` command, per spec.md §6: "reads exactly one Unicode scalar value
// from stdin without requiring a newline; if stdin is not a terminal,
// reads one character from the stream." It is deliberately outside
// internal/vm: the interpreter core only depends on the
// ioadapter.RawByteReader interface, never on a terminal library directly,
// matching spec.md §1's external-collaborator boundary.
package termio

import (
	"bufio"
	"os"

	"golang.org/x/term"
)

// RawReader implements ioadapter.RawByteReader over a terminal file
// descriptor, putting it in raw mode for the duration of each read and
// restoring it immediately after -- mirroring how acetolang's getch()
// leaves the tty in its original state between reads.
type RawReader struct {
	f  *os.File
	br *bufio.Reader
}

// New returns a RawReader over f if f is a terminal, else nil -- callers
// should fall back to their buffered line reader when this is nil, exactly
// the fallback spec.md §6 describes.
func New(f *os.File) *RawReader {
	if !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &RawReader{f: f, br: bufio.NewReader(f)}
}

// ReadRawRune puts the terminal in raw mode, reads one Unicode scalar
// value, then restores the prior terminal state.
func (r *RawReader) ReadRawRune() (rune, error) {
	state, err := term.MakeRaw(int(r.f.Fd()))
	if err != nil {
		return 0, err
	}
	defer term.Restore(int(r.f.Fd()), state)

	ru, _, err := r.br.ReadRune()
	return ru, err
}
