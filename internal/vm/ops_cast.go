package vm

import (
	"unicode/utf8"

	"github.com/aceto-run/aceto/internal/value"
)

// ops_cast.go implements spec.md §4.3's cast commands.

func init() {
	register('i', "to-int", opToInt)
	register('f', "to-float", opToFloat)
	register('b', "to-bool", opToBool)
	register('∑', "to-string", opToString)
	register('c', "code-to-char", opCodeToChar)
	register('o', "char-to-code", opCharToCode)
}

func opToInt(vm *VM)    { vm.push(vm.pop().ToInteger()) }
func opToFloat(vm *VM)  { vm.push(vm.pop().ToFloatValue()) }
func opToBool(vm *VM)   { vm.push(vm.pop().ToBoolValue()) }
func opToString(vm *VM) { vm.push(vm.pop().ToStringValue()) }

// opCodeToChar implements `c`: Integer code point -> single-character
// String, falling back to U+FFFD for an invalid scalar value.
func opCodeToChar(vm *VM) {
	n := vm.intArg(vm.pop())
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		vm.push(value.Str(string(utf8.RuneError)))
		return
	}
	vm.push(value.Str(string(rune(n))))
}

// opCharToCode implements `o`: String's first code point as Integer, 0 if
// empty or invalid.
func opCharToCode(vm *VM) {
	s := vm.pop().Str()
	if s == "" {
		vm.pushInt(0)
		return
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		vm.pushInt(0)
		return
	}
	vm.pushInt(int64(r))
}
