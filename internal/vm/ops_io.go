package vm

import (
	"math"
	"time"

	"github.com/aceto-run/aceto/internal/value"
)

// ops_io.go implements spec.md §4.3's I/O, clock and quick-memory
// commands. All output goes through vm.io (internal/ioadapter.Core), which
// keeps any terminal-raw-mode dependency out of this package per spec.md
// §1's external-collaborator boundary.

func init() {
	register('P', "pi", opPi)
	register('e', "euler", opEuler)
	register('R', "random", opRandom)
	register('T', "clock-reset", opClockReset)
	register('t', "clock-elapsed", opClockElapsed)
	register('τ', "clock-fields", opClockFields)
	register('L', "quick-load", opQuickLoad)
	register('M', "quick-store", opQuickStore)
	register('B', "quick-print", opQuickPrint)
	register('p', "print", opPrint)
	register('n', "newline", opNewline)
	register('r', "read-line", opReadLine)
	register(',', "read-char", opReadChar)
}

func opPi(vm *VM)    { vm.push(value.FloatVal(math.Pi)) }
func opEuler(vm *VM) { vm.push(value.FloatVal(math.E)) }
func opRandom(vm *VM) { vm.push(value.FloatVal(vm.randFloat())) }

func opClockReset(vm *VM) { vm.clockBase = time.Now() }

func opClockElapsed(vm *VM) {
	vm.push(value.FloatVal(time.Since(vm.clockBase).Seconds()))
}

// opClockFields implements `τ`: push second..year so that year ends on top.
func opClockFields(vm *VM) {
	now := time.Now()
	vm.pushInt(int64(now.Second()))
	vm.pushInt(int64(now.Minute()))
	vm.pushInt(int64(now.Hour()))
	vm.pushInt(int64(now.Day()))
	vm.pushInt(int64(now.Month()))
	vm.pushInt(int64(now.Year()))
}

func opQuickLoad(vm *VM)  { vm.push(vm.quick) }
func opQuickStore(vm *VM) { vm.quick = vm.pop() }

func opQuickPrint(vm *VM) { vm.writeValue(vm.quick) }

func opPrint(vm *VM) { vm.writeValue(vm.pop()) }

func opNewline(vm *VM) {
	if err := vm.io.WriteRune('\n'); err != nil {
		vm.raise(IOError, "write newline: %v", err)
	}
}

func opReadLine(vm *VM) {
	line, err := vm.io.ReadLine()
	if err != nil && line == "" {
		vm.raise(IOError, "read line: %v", err)
	}
	vm.push(value.Str(line))
}

func opReadChar(vm *VM) {
	r, err := vm.io.ReadChar()
	if err != nil {
		vm.raise(IOError, "read char: %v", err)
	}
	vm.push(value.Str(string(r)))
}

// writeValue prints v's canonical textual form, matching the `∑` cast's
// textual conventions.
func (vm *VM) writeValue(v value.Value) {
	if err := vm.io.WriteString(v.ToStringValue().Str()); err != nil {
		vm.raise(IOError, "write: %v", err)
	}
}
