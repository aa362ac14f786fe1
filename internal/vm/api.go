package vm

import (
	"context"
	"errors"
	"io"

	"github.com/aceto-run/aceto/internal/panicerr"
)

// Run executes the VM's loaded program to termination, isolating any
// handler panic or runtime.Goexit into a plain error return via
// internal/panicerr -- the same goroutine-isolation idiom as the teacher's
// api.go Run, which supersedes the teacher's bespoke isolate.go (see
// DESIGN.md). Unlike the teacher's FIRST/THIRD dispatcher, command handlers
// here never recurse through user-defined words, so there is no deep call
// stack to unwind: a normal halt is a plain error return from vm.run, not a
// panic. RuntimeErrors are recovered by the dispatcher itself; the only
// panics that reach panicerr.Recover's recover point are the *ParseError of
// an unterminated literal, which Run unwraps and returns, and genuine
// programmer bugs.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("aceto-vm", func() error {
		return vm.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return err
}

// ExitCode maps a Run error to spec.md §7's exit-code convention: 0 normal,
// 1 unhandled runtime error, 2 parse-time error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return 2
	}
	return 1
}
