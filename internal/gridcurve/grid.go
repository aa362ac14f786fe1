// Package gridcurve implements Aceto's source grid and the Hilbert-curve
// bijection the interpreter walks it with (spec.md §4.1).
package gridcurve

import "strings"

// Grid is a square, power-of-two-sided array of runes, stored flat for O(1)
// cell access, the way the reference pads a ragged list of source lines into
// a fixed square before constructing its hilbert_curve walker.
type Grid struct {
	N     int
	cells []rune
}

// nextPow2 returns the smallest power of two >= n, with a floor of 1 (N>=1
// covers the degenerate single-cell program).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Load builds a Grid from row-major source text: split on LF, pad every
// line to the grid width with spaces, pad missing rows with blank lines.
// Per spec.md §3, origin (0,0) is the bottom-left cell, y growing upward —
// the opposite of the source text's natural top-down line order, so row i
// (0-based, from the top of the text) lands at grid row N-1-i.
func Load(src string) *Grid {
	src = strings.TrimRight(src, "\n")
	var lines []string
	if src != "" {
		lines = strings.Split(src, "\n")
	}
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	n := nextPow2(width)
	if h := nextPow2(len(lines)); h > n {
		n = h
	}
	if n < 1 {
		n = 1
	}

	g := &Grid{N: n, cells: make([]rune, n*n)}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	for row, line := range lines {
		y := n - 1 - row
		if y < 0 {
			break
		}
		x := 0
		for _, r := range line {
			if x >= n {
				break
			}
			g.Set(x, y, r)
			x++
		}
	}
	return g
}

// LoadLinear implements acetolang's alternate `--linear` loader: the source
// is flattened into one character stream (newlines stripped) and laid down
// along Hilbert traversal order rather than grid rows, so program text reads
// as a single line that snakes along the curve.
func LoadLinear(src string) *Grid {
	flat := make([]rune, 0, len(src))
	for _, r := range src {
		if r != '\n' && r != '\r' {
			flat = append(flat, r)
		}
	}
	n := nextPow2(isqrtCeil(len(flat)))
	if n < 1 {
		n = 1
	}
	g := &Grid{N: n, cells: make([]rune, n*n)}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	for d, r := range flat {
		if d >= n*n {
			break
		}
		x, y := D2XY(n, d)
		g.Set(x, y, r)
	}
	return g
}

func isqrtCeil(n int) int {
	r := 1
	for r*r < n {
		r++
	}
	return r
}

// InBounds reports whether (x,y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.N && y >= 0 && y < g.N
}

// At returns the rune at (x,y); out-of-bounds reads return a space, the
// value every padded cell already carries.
func (g *Grid) At(x, y int) rune {
	if !g.InBounds(x, y) {
		return ' '
	}
	return g.cells[y*g.N+x]
}

// Set writes the rune at (x,y). Used only by the loaders: the grid is
// immutable for the remainder of execution per spec.md §3's invariant.
func (g *Grid) Set(x, y int, r rune) {
	if g.InBounds(x, y) {
		g.cells[y*g.N+x] = r
	}
}

// Wrap reduces (x,y) modulo the grid's side, implementing the toroidal wrap
// spec.md §4.4 requires for directional overrides.
func (g *Grid) Wrap(x, y int) (int, int) {
	return wrapMod(x, g.N), wrapMod(y, g.N)
}

func wrapMod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
