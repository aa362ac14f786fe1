package vm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/aceto-run/aceto/internal/value"
)

// dumper renders a VM's grid and stack store for the `aceto dump`
// subcommand, the Aceto counterpart of the teacher's vmDumper: same
// address-width-padded, section-by-section layout (see dumper.go's
// original dumpMem), generalized from a linear memory dump to a 2D grid
// plus an indexed stack family, and using go-runewidth so cells holding a
// double-width rune still line up in a monospace terminal.
type Dumper struct {
	VM  *VM
	Out io.Writer
}

func (d Dumper) Dump() {
	fmt.Fprintf(d.Out, "# Aceto VM Dump\n")
	d.dumpGrid()
	d.dumpState()
	d.dumpStacks()
}

func (d Dumper) dumpGrid() {
	g := d.VM.grid
	fmt.Fprintf(d.Out, "  grid: %dx%d\n", g.N, g.N)
	px, py := d.VM.Position()
	for row := 0; row < g.N; row++ {
		y := g.N - 1 - row
		fmt.Fprintf(d.Out, "  %*d ", len(strconv.Itoa(g.N)), y)
		for x := 0; x < g.N; x++ {
			c := g.At(x, y)
			cell := string(c)
			if x == px && y == py {
				cell = "[" + cell + "]"
			}
			pad := 3 - runewidth.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			d.Out.Write([]byte(cell))
			for i := 0; i < pad; i++ {
				d.Out.Write([]byte{' '})
			}
		}
		fmt.Fprintln(d.Out)
	}
}

func (d Dumper) dumpState() {
	px, py := d.VM.Position()
	dir := "forward"
	if !d.VM.Forward() {
		dir = "reversed"
	}
	fmt.Fprintf(d.Out, "  position: (%d,%d) direction: %s\n", px, py, dir)
	if cx, cy, ok := d.VM.CatchCell(); ok {
		fmt.Fprintf(d.Out, "  catch_cell: (%d,%d)\n", cx, cy)
	} else {
		fmt.Fprintf(d.Out, "  catch_cell: none\n")
	}
	fmt.Fprintf(d.Out, "  quick: %v\n", d.VM.Quick().ToStringValue().Str())
}

func (d Dumper) dumpStacks() {
	store := d.VM.Store()
	fmt.Fprintf(d.Out, "  active stack: %d\n", store.Active)
	for _, idx := range store.Indices() {
		s := store.At(idx)
		fmt.Fprintf(d.Out, "  stack[%d]%s: %v\n", idx, stickyMark(s.Sticky), stringifyAll(s.All()))
	}
}

func stickyMark(sticky bool) string {
	if sticky {
		return "*"
	}
	return ""
}

func stringifyAll(vs []value.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ToStringValue().Str()
	}
	return out
}
