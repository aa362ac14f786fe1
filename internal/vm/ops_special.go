package vm

import "github.com/aceto-run/aceto/internal/value"

// ops_special.go implements the digit literals and the `.` repeat-previous
// command from spec.md §4.3.

func init() {
	for d := rune('0'); d <= '9'; d++ {
		n := int64(d - '0')
		register(d, "digit", func(vm *VM) { vm.push(value.IntFromInt64(n)) })
	}
	register('.', "repeat-previous", opRepeatPrevious)
}

// opRepeatPrevious implements `.`: re-dispatch the last command whose
// effect concluded. A bare "." with no prior command is a no-op, matching
// the initial previous_cmd of space (spec.md §3 — space is never a
// registered command).
func opRepeatPrevious(vm *VM) {
	if !vm.havePrev {
		return
	}
	vm.exec(vm.prevCmd)
}
