package vm

import "github.com/aceto-run/aceto/internal/gridcurve"

// Load parses src into a runnable program and returns a VM option that
// installs the resulting grid, mirroring the teacher's two-phase
// New(opts...)+Load(src) split between construction and program load.
func Load(src string, linear bool) Option {
	return loadOption{src: src, linear: linear}
}

type loadOption struct {
	src    string
	linear bool
}

func (o loadOption) apply(vm *VM) {
	if o.linear {
		vm.grid = gridcurve.LoadLinear(o.src)
	} else {
		vm.grid = gridcurve.Load(o.src)
	}
	vm.pos = point{0, 0}
	vm.dir = forward
}
