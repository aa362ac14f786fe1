package vm

// ops_move.go implements spec.md §4.4's movement commands: the four
// cardinal overrides, their WESN aliases, direction
// toggle, random cardinal, the three mirror commands, the two jump
// commands, restart/finalize, skip-next-or-space, and exit.
//
// DESIGN.md pins WESN as behaviorally identical to <>v^: the grid stays
// immutable (spec.md §3's invariant) and persistent direction is two-state,
// matching acetolang's self.dir holding only +1/-1, so there is no
// four-state cardinal to rotate into.

func init() {
	register('<', "move-left", opMoveLeft)
	register('>', "move-right", opMoveRight)
	register('v', "move-down", opMoveDown)
	register('^', "move-up", opMoveUp)

	register('W', "move-left-w", opMoveLeft)
	register('E', "move-right-w", opMoveRight)
	register('S', "move-down-w", opMoveDown)
	register('N', "move-up-w", opMoveUp)

	register('u', "toggle-direction", opToggleDirection)
	register('?', "random-cardinal", opRandomCardinal)

	register('|', "mirror-h", opMirrorH)
	register('_', "mirror-v", opMirrorV)
	register('#', "mirror-hv", opMirrorHV)

	register('O', "restart", opRestart)
	register(';', "finalize", opFinalize)

	register('j', "jump-relative", opJumpRelative)
	register('§', "jump-absolute", opJumpAbsolute)

	register('`', "space-or-skip", opBacktick)
	register('X', "exit", opExit)
}

func opMoveLeft(vm *VM)  { vm.setOverride(-1, 0) }
func opMoveRight(vm *VM) { vm.setOverride(1, 0) }
func opMoveDown(vm *VM)  { vm.setOverride(0, -1) }
func opMoveUp(vm *VM)    { vm.setOverride(0, 1) }

func opToggleDirection(vm *VM) { vm.dir = vm.dir.flip() }

func opRandomCardinal(vm *VM) {
	switch vm.randIntn(4) {
	case 0:
		vm.setOverride(-1, 0)
	case 1:
		vm.setOverride(1, 0)
	case 2:
		vm.setOverride(0, -1)
	default:
		vm.setOverride(0, 1)
	}
}

func opMirrorH(vm *VM) {
	if vm.pop().Truthy() {
		vm.setOverride(vm.grid.N-1-2*vm.pos.X, 0)
	}
}

func opMirrorV(vm *VM) {
	if vm.pop().Truthy() {
		vm.setOverride(0, vm.grid.N-1-2*vm.pos.Y)
	}
}

func opMirrorHV(vm *VM) {
	if vm.pop().Truthy() {
		vm.setOverride(vm.grid.N-1-2*vm.pos.X, vm.grid.N-1-2*vm.pos.Y)
	}
}

// opRestart implements `O`: jump to (0,0) if forward, else (N-1,0). This is
// an absolute position set, not a relative override, so it bypasses
// setOverride and writes vm.pos directly; the dispatcher's next advance
// still proceeds normally from the new position.
func opRestart(vm *VM) {
	n := vm.grid.N
	if vm.dir == forward {
		vm.pos = point{0, 0}
	} else {
		vm.pos = point{n - 1, 0}
	}
	vm.haveOverride = false
}

func opFinalize(vm *VM) {
	n := vm.grid.N
	if vm.dir == forward {
		vm.pos = point{n - 1, 0}
	} else {
		vm.pos = point{0, 0}
	}
	vm.haveOverride = false
}

// opJumpRelative implements `j`: pop k, set position to d2xy((d+k) mod N²),
// per spec.md's literal formula (no direction multiplier, unlike the
// reference's self.dir-scaled offset).
func opJumpRelative(vm *VM) {
	k := vm.intArg(vm.pop())
	vm.jumpToIndex(vm.curveIndex() + k)
}

// opJumpAbsolute implements `§`: pop k, set position to d2xy(k mod N²).
func opJumpAbsolute(vm *VM) {
	k := vm.intArg(vm.pop())
	vm.jumpToIndex(k)
}

// opBacktick implements `` ` ``: pop v; truthy acts as a no-op space,
// falsy acts as `\` (skip the next Hilbert-adjacent cell).
func opBacktick(vm *VM) {
	if !vm.pop().Truthy() {
		vm.skipNext = true
	}
}

func opExit(vm *VM) {
	vm.halted = true
	vm.exitErr = nil
}
