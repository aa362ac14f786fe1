// Package ioadapter adapts the teacher repo's rune-oriented I/O
// infrastructure (internal/fileinput, internal/flushio, internal/runeio) to
// Aceto's needs: buffered line/rune reads for `r`, flush-on-read-and-halt
// writes for `p`/`n`/`B`, and a pluggable single-character raw-mode read for
// `,` that keeps the interpreter core free of any terminal dependency, per
// spec.md §1's "external collaborator" boundary.
package ioadapter

import (
	"io"

	"github.com/aceto-run/aceto/internal/fileinput"
	"github.com/aceto-run/aceto/internal/flushio"
	"github.com/aceto-run/aceto/internal/runeio"
)

// RawByteReader reads exactly one Unicode scalar value without requiring a
// newline, per spec.md §6's description of the `,` command. The CLI layer
// supplies a terminal-backed implementation (internal/termio); Core falls
// back to its buffered line reader when none is set, matching acetolang's
// behavior when stdin is not a tty.
type RawByteReader interface {
	ReadRawRune() (rune, error)
}

// Core bundles an Aceto VM's stdin/stdout handling. It owns no terminal
// knowledge itself: Raw is optional and supplied by the caller.
type Core struct {
	fileinput.Input
	out flushio.WriteFlusher
	Raw RawByteReader

	// FlushAlways flushes the output stream after every write, so output
	// appears as it is written rather than only when the buffer fills, a
	// read starts, or the program halts.
	FlushAlways bool

	closers []io.Closer
}

// SetInput points the Core at r as its sole input stream.
func (c *Core) SetInput(r io.Reader) {
	c.Input = fileinput.Input{Queue: []io.Reader{r}}
}

// SetOutput points the Core at w, flushing any prior output first.
func (c *Core) SetOutput(w io.Writer) {
	if c.out != nil {
		c.out.Flush()
	}
	c.out = flushio.NewWriteFlusher(w)
}

// Tee additionally mirrors output to w (for example, to capture a copy of
// stdout alongside the program's own stream).
func (c *Core) Tee(w io.Writer) {
	c.out = flushio.WriteFlushers(c.out, flushio.NewWriteFlusher(w))
}

// Close releases any registered closers in reverse registration order.
func (c *Core) Close() (err error) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// AddCloser registers cl to be closed by Close.
func (c *Core) AddCloser(cl io.Closer) { c.closers = append(c.closers, cl) }

// WriteRune writes r to the output stream using ANSI-safe control-character
// handling (runeio.WriteANSIRune), so printing a raw control rune doesn't
// corrupt the terminal.
func (c *Core) WriteRune(r rune) error {
	if _, err := runeio.WriteANSIRune(c.out, r); err != nil {
		return err
	}
	if c.FlushAlways {
		return c.Flush()
	}
	return nil
}

// WriteString writes s rune by rune via WriteRune.
func (c *Core) WriteString(s string) error {
	for _, r := range s {
		if err := c.WriteRune(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the output stream.
func (c *Core) Flush() error {
	if c.out == nil {
		return nil
	}
	return c.out.Flush()
}

// ReadLine implements `r`: reads up to and including a newline, returning
// the line without its trailing newline.
func (c *Core) ReadLine() (string, error) {
	if err := c.Flush(); err != nil {
		return "", err
	}
	var sb []rune
	for {
		r, _, err := c.Input.ReadRune()
		if r == '\n' {
			return string(sb), nil
		}
		if err != nil {
			if err == io.EOF && len(sb) > 0 {
				return string(sb), nil
			}
			return string(sb), err
		}
		sb = append(sb, r)
	}
}

// ReadChar implements `,`: one Unicode scalar value without requiring a
// newline, via Raw if set, else falling back to the buffered reader --
// mirroring acetolang's getch()/os.isatty fallback.
func (c *Core) ReadChar() (rune, error) {
	if err := c.Flush(); err != nil {
		return 0, err
	}
	if c.Raw != nil {
		return c.Raw.ReadRawRune()
	}
	r, _, err := c.Input.ReadRune()
	return r, err
}
