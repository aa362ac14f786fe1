package vm

import (
	"context"

	"github.com/aceto-run/aceto/internal/gridcurve"
)

// handler executes one command character's effect. Handlers may set
// vm.overrideDir (via vm.setOverride) for a one-shot movement deviation.
type handler func(vm *VM)

// commandTable maps ASCII command characters to handlers; commands outside
// ASCII (ø § « » £ € ∑ × ± τ) live in extraTable. This mirrors the teacher's
// dense vmCodeTable, generalized from a fixed small opcode range to a
// rune-keyed table since Aceto's command set isn't a contiguous integer
// range the way FIRST's bytecode is (spec.md §9's dispatch design note).
var commandTable [128]handler
var extraTable = map[rune]handler{}
var commandNames [128]string
var extraNames = map[rune]string{}

func register(c rune, name string, h handler) {
	if c < 128 {
		commandTable[c] = h
		commandNames[c] = name
	} else {
		extraTable[c] = h
		extraNames[c] = name
	}
}

// Commands returns every registered command character paired with its
// handler name, ASCII first in table order then the non-ASCII extras, for
// the CLI's `commands` subcommand.
func Commands() []CommandInfo {
	var out []CommandInfo
	for c, h := range commandTable {
		if h != nil {
			out = append(out, CommandInfo{Char: rune(c), Name: commandNames[c]})
		}
	}
	for c, h := range extraTable {
		if h != nil {
			out = append(out, CommandInfo{Char: c, Name: extraNames[c]})
		}
	}
	return out
}

// CommandInfo names one registered command character.
type CommandInfo struct {
	Char rune
	Name string
}

func lookup(c rune) (handler, string) {
	if c >= 0 && c < 128 {
		return commandTable[c], commandNames[c]
	}
	h, ok := extraTable[c]
	if !ok {
		return nil, ""
	}
	return h, extraNames[c]
}

// setOverride records a one-shot movement deviation for the current
// command, per spec.md §4.4: the next position is computed from this
// vector (toroidally wrapped) instead of the Hilbert curve advance.
func (vm *VM) setOverride(dx, dy int) {
	vm.overrideDir = &point{dx, dy}
	vm.haveOverride = true
}

// run executes the loaded program to termination or error, flushing any
// buffered output on the way out.
func (vm *VM) run(ctx context.Context) error {
	defer vm.io.Flush()
	for !vm.halted {
		if err := ctx.Err(); err != nil {
			return err
		}
		vm.step()
	}
	return vm.exitErr
}

// step implements spec.md §4.4's dispatch loop body exactly once.
func (vm *VM) step() {
	c := vm.grid.At(vm.pos.X, vm.pos.Y)

	switch {
	case vm.inStringLit:
		vm.stepStringLiteral(c)
		vm.advanceOrParseFail()
		return
	case vm.inCharLit != 0:
		vm.stepCharLiteral(c)
		vm.advanceOrParseFail()
		return
	}

	switch c {
	case '"':
		vm.inStringLit = true
		vm.stringEscapeSet = false
		vm.stringBuf = vm.stringBuf[:0]
	case '\'':
		vm.inCharLit = 1
	case '\\':
		vm.skipNext = true
	default:
		vm.exec(c)
	}

	// A caught error already teleported position to catch_cell: resume
	// execution there on the next step rather than advancing past it.
	if vm.caught {
		vm.caught = false
		return
	}

	vm.advanceStep()
}

// exec dispatches a single command character, recovering any RuntimeError
// raised by its handler into the catch mechanism.
func (vm *VM) exec(c rune) {
	h, name := lookup(c)
	if h == nil {
		return // any character not listed as a command is a no-op
	}
	if vm.trace {
		vm.logf("exec @(%d,%d) %q %s", vm.pos.X, vm.pos.Y, c, name)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				rerr, ok := r.(*RuntimeError)
				if !ok {
					panic(r) // not ours: propagate to Run's panicerr.Recover
				}
				rerr.Command = c
				rerr.X, rerr.Y = vm.pos.X, vm.pos.Y
				vm.onError(rerr)
			}
		}()
		h(vm)
		if vm.memLimit > 0 && vm.store.Total() > vm.memLimit {
			panic(newErr(ResourceLimit, "stack store exceeded memory limit of %d values", vm.memLimit))
		}
	}()

	// `.` repeats the previous command without becoming the new previous
	// command itself (spec.md §4.3: "`.` itself is not stored as previous").
	if c != '.' {
		vm.prevCmd = c
		vm.havePrev = true
	}
}

// onError implements spec.md §4.4/§7's catch mechanism: teleport to
// catch_cell and resume if set, else halt with a diagnostic and exit 1.
func (vm *VM) onError(err *RuntimeError) {
	if vm.haveCatch {
		if vm.trace {
			vm.logCaught("caught %v, resuming at (%d,%d)", err, vm.catchCell.X, vm.catchCell.Y)
		}
		vm.pos = vm.catchCell
		vm.haveOverride = false
		vm.caught = true
		return
	}
	vm.logf("ERROR %v", err)
	vm.halted = true
	vm.exitErr = err
}

// advanceStep implements spec.md §4.4 steps 4-5: compute the next position,
// then if skipNext was set, advance once more without dispatching.
func (vm *VM) advanceStep() {
	if !vm.stepOnce() {
		vm.halted = true
		return
	}
	if vm.skipNext {
		vm.skipNext = false
		if !vm.stepOnce() {
			vm.halted = true
		}
	}
}

// stepOnce performs one positional advance: an override if one is pending,
// else a Hilbert-curve advance. Returns false if the Hilbert curve ran off
// either end (normal program termination).
func (vm *VM) stepOnce() bool {
	if vm.haveOverride {
		dx, dy := vm.overrideDir.X, vm.overrideDir.Y
		vm.haveOverride = false
		x, y := vm.grid.Wrap(vm.pos.X+dx, vm.pos.Y+dy)
		vm.pos = point{x, y}
		return true
	}
	return vm.advanceHilbert()
}

// advanceHilbert moves one step along the Hilbert curve in the current
// persistent direction. It never wraps: running off either end signals
// normal termination.
func (vm *VM) advanceHilbert() bool {
	n := vm.grid.N
	d := gridcurve.XY2D(n, vm.pos.X, vm.pos.Y)
	d += vm.dir.sign()
	if d < 0 || d >= n*n {
		return false
	}
	x, y := gridcurve.D2XY(n, d)
	vm.pos = point{x, y}
	return true
}

// advanceOrParseFail is used while collecting string/char literals: running
// off the curve there means the literal was never closed, which spec.md §7
// reports as a parse-time error (exit code 2) rather than normal
// termination.
func (vm *VM) advanceOrParseFail() {
	if vm.haveOverride {
		vm.haveOverride = false // literal collection ignores movement overrides
	}
	if !vm.advanceHilbert() {
		panic(&ParseError{Message: "unterminated string or character literal: Hilbert walk exited the grid"})
	}
}

// curveIndex returns the current position's linear Hilbert index.
func (vm *VM) curveIndex() int {
	return gridcurve.XY2D(vm.grid.N, vm.pos.X, vm.pos.Y)
}

// jumpToIndex implements the non-local jump commands `j`/`§`: it sets
// position directly (wrapping the index modulo N²) rather than going
// through setOverride, since a jump target can be arbitrarily far from the
// current cell rather than one Hilbert step away.
func (vm *VM) jumpToIndex(d int) {
	n := vm.grid.N
	d %= n * n
	if d < 0 {
		d += n * n
	}
	x, y := gridcurve.D2XY(n, d)
	vm.pos = point{x, y}
	vm.haveOverride = false
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

// logCaught reports a catch-and-resume trace line through catchLogfn when
// the caller set one (the CLI wires a yellow-colorized variant via
// WithCatchLogf), falling back to the plain trace logger otherwise.
func (vm *VM) logCaught(mess string, args ...interface{}) {
	if vm.catchLogfn != nil {
		vm.catchLogfn(mess, args...)
		return
	}
	vm.logf(mess, args...)
}
