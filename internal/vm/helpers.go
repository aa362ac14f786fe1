package vm

import (
	"math/big"

	"fortio.org/safecast"

	"github.com/aceto-run/aceto/internal/value"
)

func (vm *VM) pop() value.Value        { return vm.store.Current().Pop() }
func (vm *VM) push(v value.Value)      { vm.store.Current().Push(v) }
func (vm *VM) pushInt(n int64)         { vm.push(value.IntFromInt64(n)) }
func (vm *VM) pushBool(b bool)         { vm.push(value.BoolVal(b)) }

// raise panics with a *RuntimeError of the given kind; exec's recover turns
// it into the catch-cell mechanism or a fatal diagnostic per spec.md §7.
func (vm *VM) raise(kind Kind, format string, args ...interface{}) {
	panic(newErr(kind, format, args...))
}

// intArg coerces v to a machine int for indices, shift amounts, and repeat
// counts, routing the narrowing conversion through fortio.org/safecast so
// an out-of-range big.Int becomes a typed TypeMismatch instead of silently
// wrapping, per spec.md §9's "closed sum type with explicit coercion
// rules."
func (vm *VM) intArg(v value.Value) int {
	bi := v.ToInteger().Int()
	if !bi.IsInt64() {
		vm.raise(TypeMismatch, "integer argument out of machine range: %v", bi)
	}
	n, err := safecast.Convert[int](bi.Int64())
	if err != nil {
		vm.raise(TypeMismatch, "integer argument out of range: %v", err)
	}
	return n
}

// bigArg coerces v to *big.Int without a machine-width narrowing, for
// arithmetic that must stay arbitrary precision.
func (vm *VM) bigArg(v value.Value) *big.Int {
	return v.ToInteger().Int()
}
