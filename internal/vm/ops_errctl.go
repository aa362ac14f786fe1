package vm

// ops_errctl.go implements spec.md §4.4's error-recovery triplet: `@` sets
// the catch cell, `&` raises unconditionally, `$` raises conditionally.

func init() {
	register('@', "set-catch", opSetCatch)
	register('&', "raise", opRaise)
	register('$', "raise-if-falsy", opRaiseIfFalsy)
}

func opSetCatch(vm *VM) {
	vm.catchCell = vm.pos
	vm.haveCatch = true
}

func opRaise(vm *VM) {
	vm.raise(UserRaised, "user raised error")
}

func opRaiseIfFalsy(vm *VM) {
	if !vm.pop().Truthy() {
		vm.raise(UserRaised, "condition was falsy")
	}
}
