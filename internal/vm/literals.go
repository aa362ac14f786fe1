package vm

import (
	"github.com/aceto-run/aceto/internal/value"
)

// stepStringLiteral consumes one grid cell while collecting a `"`-delimited
// string literal, per spec.md §4.3: backslash escapes \" \\ \n \t, and the
// collected String is pushed when the closing quote is consumed.
func (vm *VM) stepStringLiteral(c rune) {
	if vm.stringEscapePending() {
		vm.stringBuf = append(vm.stringBuf, unescape(c))
		vm.clearStringEscape()
		return
	}
	switch c {
	case '\\':
		vm.setStringEscape()
	case '"':
		vm.inStringLit = false
		vm.store.Current().Push(value.Str(string(vm.stringBuf)))
	default:
		vm.stringBuf = append(vm.stringBuf, c)
	}
}

// stepCharLiteral consumes one or two grid cells for a `'` literal: a plain
// cell pushes a one-rune String directly; a backslash cell starts the same
// \n \t \\ escapes as string literals (but not \', per spec.md §4.3 — use
// '' for a literal quote).
func (vm *VM) stepCharLiteral(c rune) {
	switch vm.inCharLit {
	case 1:
		if c == '\\' {
			vm.inCharLit = 2
			return
		}
		vm.inCharLit = 0
		vm.store.Current().Push(value.Str(string(c)))
	case 2:
		vm.inCharLit = 0
		vm.store.Current().Push(value.Str(string(unescape(c))))
	}
}

func (vm *VM) stringEscapePending() bool { return vm.stringEscapeSet }
func (vm *VM) setStringEscape()          { vm.stringEscapeSet = true }
func (vm *VM) clearStringEscape()        { vm.stringEscapeSet = false }

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '"':
		return '"'
	default:
		return c
	}
}
