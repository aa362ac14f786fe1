package vm

import (
	"github.com/aceto-run/aceto/internal/value"
)

// ops_stack.go implements spec.md §4.2's stack-store operations: the
// single-stack manipulators, the indexed-store navigation commands, and
// the two range-literal generators from §4.3.

func init() {
	register('s', "swap", opSwap)
	register('d', "dup", opDup)
	register('h', "head", opHead)
	register('U', "reverse", opReverse)
	register('x', "drop", opDrop)
	register('C', "contains", opContains)

	register('Q', "rot-bottom-top", opRotBottomTop)
	register('q', "rot-top-bottom", opRotTopBottom)
	register('Y', "shuffle", opShuffle)
	register('g', "sort-asc", opSortAsc)
	register('G', "sort-desc", opSortDesc)
	register('l', "length", opLength)
	register('×', "multiply-by-top", opMultiplyByTop)

	register('(', "active-dec", opActiveDec)
	register(')', "active-inc", opActiveInc)
	register('{', "pass-left", opPassLeft)
	register('}', "pass-right", opPassRight)
	register('[', "shift-left", opShiftLeft)
	register(']', "shift-right", opShiftRight)
	register('k', "sticky-set", opStickySet)
	register('K', "sticky-clear", opStickyClear)
	register('ø', "clear", opClear)

	register('z', "range-down", opRangeDown)
	register('Z', "range-up", opRangeUp)
}

func opSwap(vm *VM)    { vm.store.Current().Swap() }
func opDup(vm *VM)     { vm.store.Current().Dup() }
func opHead(vm *VM)    { vm.store.Current().Head() }
func opReverse(vm *VM) { vm.store.Current().Reverse() }
func opDrop(vm *VM)    { vm.store.Current().Drop() }

func opContains(vm *VM) {
	v := vm.pop()
	vm.pushBool(vm.store.Current().Contains(v))
}

func opRotBottomTop(vm *VM) { vm.store.Current().RotateBottomToTop() }
func opRotTopBottom(vm *VM) { vm.store.Current().RotateTopToBottom() }

func opShuffle(vm *VM) {
	vm.store.Current().Shuffle(vm.randIntn)
}

func opSortAsc(vm *VM)  { vm.store.Current().SortAsc() }
func opSortDesc(vm *VM) { vm.store.Current().SortDesc() }

func opLength(vm *VM) { vm.pushInt(int64(vm.store.Current().Len())) }

// opMultiplyByTop implements `×`: pop k, replace the stack with itself
// repeated k times bottom-to-top (k<0 behaves like k==0).
func opMultiplyByTop(vm *VM) {
	k := vm.intArg(vm.pop())
	vm.store.Current().MultiplyByTop(k)
}

func opActiveDec(vm *VM) { vm.store.Active-- }
func opActiveInc(vm *VM) { vm.store.Active++ }

// opPassLeft implements `{`: pop from active, push to the neighbour at
// active-1, without changing which stack is active.
func opPassLeft(vm *VM) {
	v := vm.store.Current().Pop()
	vm.store.At(vm.store.Active - 1).Push(v)
}

func opPassRight(vm *VM) {
	v := vm.store.Current().Pop()
	vm.store.At(vm.store.Active + 1).Push(v)
}

// opShiftLeft implements `[`: pop from active, move active to active-1,
// push the popped value onto the now-active stack.
func opShiftLeft(vm *VM) {
	v := vm.store.Current().Pop()
	vm.store.Active--
	vm.store.Current().Push(v)
}

func opShiftRight(vm *VM) {
	v := vm.store.Current().Pop()
	vm.store.Active++
	vm.store.Current().Push(v)
}

func opStickySet(vm *VM)   { vm.store.Current().Sticky = true }
func opStickyClear(vm *VM) { vm.store.Current().Sticky = false }
func opClear(vm *VM)       { vm.store.Clear() }

// opRangeDown implements `z`: pop n, push n, n-1, ..., 1 (1 on top); for
// n<0 push n, n+1, ..., -1 (-1 on top).
func opRangeDown(vm *VM) {
	n := vm.intArg(vm.pop())
	s := vm.store.Current()
	if n >= 0 {
		for i := n; i >= 1; i-- {
			s.Push(value.IntFromInt64(int64(i)))
		}
		return
	}
	for i := n; i <= -1; i++ {
		s.Push(value.IntFromInt64(int64(i)))
	}
}

// opRangeUp implements `Z`: pop n, push 1,...,n (n on top) or -1,...,n
// counting down to n (n on top) when n<0.
func opRangeUp(vm *VM) {
	n := vm.intArg(vm.pop())
	s := vm.store.Current()
	if n >= 0 {
		for i := 1; i <= n; i++ {
			s.Push(value.IntFromInt64(int64(i)))
		}
		return
	}
	for i := -1; i >= n; i-- {
		s.Push(value.IntFromInt64(int64(i)))
	}
}
