package vm

import "math/rand"

// newSeededRand backs `R`, `?` and `Y`'s shuffle with a per-instance PRNG,
// per spec.md §9's "global state" note: the generator lives on the VM, not
// behind a package-level rand.Seed call, so two VMs (or two test cases) with
// different seeds never interfere with each other.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randFloat implements `R`: a uniform Float in [0,1).
func (vm *VM) randFloat() float64 { return vm.rng.Float64() }

// randIntn returns a uniform int in [0,n).
func (vm *VM) randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return vm.rng.Intn(n)
}
