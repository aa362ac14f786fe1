package vm

import (
	"regexp"
	"strings"

	"github.com/aceto-run/aceto/internal/value"
)

// ops_string.go implements spec.md §4.3's string-only operators (`J £ €`)
// plus the string-side helpers the overloaded arithmetic/string commands
// in ops_arith.go dispatch into.

func init() {
	register('J', "join", opJoin)
	register('£', "implode", opImplode)
	register('€', "explode", opExplode)
}

// opJoin implements `J`: pop b, pop a, push a||b, following spec.md's
// explicit push formula literally rather than the reference's pop-order
// quirk.
func opJoin(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	vm.push(value.Str(a.ToStringValue().Str() + b.ToStringValue().Str()))
}

// opImplode implements `£`: concatenate every stack element, top-to-bottom,
// separated by single spaces -- spec.md's explicit text wins over the
// reference's no-separator join -- replacing the stack with that one String.
func opImplode(vm *VM) {
	s := vm.store.Current()
	elems := s.All()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[len(elems)-1-i] = e.ToStringValue().Str()
	}
	s.SetAll(nil)
	s.Push(value.Str(strings.Join(parts, " ")))
}

// opExplode implements `€`: pop a String, push its runes so the first
// character ends up on top — push from the end backward.
func opExplode(vm *VM) {
	s := vm.pop().ToStringValue().Str()
	r := []rune(s)
	for i := len(r) - 1; i >= 0; i-- {
		vm.push(value.Str(string(r[i])))
	}
}

// pushSplitFields backs the string side of `-`: split on whitespace,
// pushing tokens so the first token ends on top.
func (vm *VM) pushSplitFields(s string) {
	fields := strings.Fields(s)
	for i := len(fields) - 1; i >= 0; i-- {
		vm.push(value.Str(fields[i]))
	}
}

// doStringSplitSep backs the string side of `:`: target split on sep,
// pushing parts so the first token ends on top.
func (vm *VM) doStringSplitSep(target, sep value.Value) {
	parts := strings.Split(target.Str(), sep.ToStringValue().Str())
	for i := len(parts) - 1; i >= 0; i-- {
		vm.push(value.Str(parts[i]))
	}
}

// compileRegex wraps regexp.Compile, raising RegexSyntax on failure -- the
// stdlib is used here because no third-party regex engine is wired anywhere
// in the corpus (DESIGN.md's stdlib justification).
func (vm *VM) compileRegex(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		vm.raise(RegexSyntax, "invalid pattern %q: %v", pattern, err)
	}
	return re
}

// doRegexCount backs the string side of `/`: pops the pattern, counts
// matches against the already-popped target.
func (vm *VM) doRegexCount(target value.Value) {
	pattern := vm.pop().ToStringValue().Str()
	re := vm.compileRegex(pattern)
	vm.pushInt(int64(len(re.FindAllString(target.Str(), -1))))
}

// doRegexReplace backs the string side of `%`: target already popped; pops
// pattern then replacement, per DESIGN.md's original-source pop order.
func (vm *VM) doRegexReplace(target value.Value) {
	pattern := vm.pop().ToStringValue().Str()
	replacement := vm.pop().ToStringValue().Str()
	re := vm.compileRegex(pattern)
	vm.push(value.Str(re.ReplaceAllString(target.Str(), replacement)))
}

// doRegexMatchAll backs the string side of `a`: target already popped; pops
// the pattern, pushes every match so the first match ends on top.
func (vm *VM) doRegexMatchAll(target value.Value) {
	pattern := vm.pop().ToStringValue().Str()
	re := vm.compileRegex(pattern)
	matches := re.FindAllString(target.Str(), -1)
	for i := len(matches) - 1; i >= 0; i-- {
		vm.push(value.Str(matches[i]))
	}
}
