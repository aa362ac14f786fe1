package vm

import (
	"math/rand"
	"time"

	"github.com/aceto-run/aceto/internal/gridcurve"
	"github.com/aceto-run/aceto/internal/ioadapter"
	"github.com/aceto-run/aceto/internal/stackstore"
	"github.com/aceto-run/aceto/internal/value"
)

// direction is the persistent two-state curve-traversal direction toggled
// by `u`. DESIGN.md pins this as two-state (not a four-state cardinal) per
// acetolang's self.dir, which only ever holds +1/-1.
type direction int

const (
	forward direction = iota
	reversed
)

func (d direction) sign() int {
	if d == reversed {
		return -1
	}
	return 1
}

func (d direction) flip() direction {
	if d == forward {
		return reversed
	}
	return forward
}

type point struct{ X, Y int }

// VM is a single Aceto interpreter instance. Clock baseline, PRNG and catch
// cell all live here rather than in process-wide globals, per spec.md §9's
// "global state" design note, so a process can run more than one VM and so
// tests can run in parallel.
type VM struct {
	grid *gridcurve.Grid

	pos          point
	dir          direction
	overrideDir  *point // one-shot relative (dx,dy) step for the next move
	haveOverride bool

	catchCell  point
	haveCatch  bool
	caught     bool
	quick      value.Value
	prevCmd    rune
	havePrev   bool
	clockBase  time.Time

	skipNext bool

	inStringLit     bool
	stringBuf       []rune
	stringEscapeSet bool
	inCharLit       int // 0=not in char literal, 1=awaiting char, 2=awaiting escape char

	store     *stackstore.Store
	memLimit  int // 0 = unlimited; checked once per dispatched command

	rng *rand.Rand

	io ioadapter.Core

	logfn      func(mess string, args ...interface{})
	catchLogfn func(mess string, args ...interface{})
	trace      bool
	halted     bool
	exitErr    error
}

// New constructs a VM ready to Load a program into, applying opts over the
// teacher-style functional-option defaults (see options.go).
func New(opts ...Option) *VM {
	vm := &VM{
		quick:     value.Str(""), // DESIGN.md: quick's initial value is empty String
		prevCmd:   ' ',
		clockBase: time.Now(),
		store:     stackstore.NewStore(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range defaultOptions {
		opt.apply(vm)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
	return vm
}

// Position reports the instruction pointer, for tests and `dump`.
func (vm *VM) Position() (int, int) { return vm.pos.X, vm.pos.Y }

// Grid exposes the loaded grid, for `dump`.
func (vm *VM) Grid() *gridcurve.Grid { return vm.grid }

// Store exposes the stack store, for tests and `dump`.
func (vm *VM) Store() *stackstore.Store { return vm.store }

// Quick exposes the quick-memory slot, for `dump`.
func (vm *VM) Quick() value.Value { return vm.quick }

// CatchCell reports the catch cell and whether one is set, for `dump`.
func (vm *VM) CatchCell() (int, int, bool) { return vm.catchCell.X, vm.catchCell.Y, vm.haveCatch }

// Forward reports whether the persistent direction is forward.
func (vm *VM) Forward() bool { return vm.dir == forward }
