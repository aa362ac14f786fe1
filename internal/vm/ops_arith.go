package vm

import (
	"math"
	"math/big"

	"github.com/aceto-run/aceto/internal/value"
)

// ops_arith.go implements spec.md §4.3's arithmetic, bitwise and comparison
// commands. Several characters are overloaded between an arithmetic and a
// string operation (`- : % / a F`); each such handler inspects the type of
// its first-popped operand(s) and dispatches into the string variants
// implemented in ops_string.go, per DESIGN.md's per-command pop-order
// decisions.

func init() {
	register('+', "add", opAdd)
	register('-', "sub-or-split", opSubOrSplit)
	register('*', "mul", opMul)
	register('%', "mod-or-replace", opModOrReplace)
	register('/', "div-or-count", opDivOrCount)
	register(':', "fdiv-or-split", opFDivOrSplit)
	register('F', "pow-or-index", opPowOrIndex)
	register('«', "shl", opShl)
	register('»', "shr", opShr)
	register('A', "bitand", opBitAnd)
	register('V', "bitor", opBitOr)
	register('H', "bitxor", opBitXor)
	register('a', "bitnot-or-matchall", opBitNotOrMatchAll)
	register('!', "not", opNot)
	register('~', "invert", opInvert)
	register('y', "sign", opSign)
	register('±', "abs", opAbs)
	register('I', "incr", opIncr)
	register('D', "decr", opDecr)

	register('=', "eq", opEq)
	register('m', "gt", opGt)
	register('w', "le", opLe)
}

// numBinOp computes a op b for two numeric Values, promoting to Float if
// either operand is Float, per spec.md §4.3.
func numBinOp(a, b value.Value, intOp func(x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) value.Value {
	if a.Kind() == value.Float || b.Kind() == value.Float {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		return value.FloatVal(floatOp(af, bf))
	}
	return value.Integer(intOp(a.Int(), b.Int()))
}

func opAdd(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.push(numBinOp(a, b,
		func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) },
		func(x, y float64) float64 { return x + y }))
}

func opMul(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.push(numBinOp(a, b,
		func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) },
		func(x, y float64) float64 { return x * y }))
}

// opSubOrSplit implements `-`: a single String on top splits on whitespace;
// otherwise it's arithmetic subtraction (pop b then a, push a-b).
func opSubOrSplit(vm *VM) {
	top := vm.pop()
	if top.Kind() == value.String {
		vm.pushSplitFields(top.Str())
		return
	}
	a := vm.pop()
	vm.push(numBinOp(a, top,
		func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) },
		func(x, y float64) float64 { return x - y }))
}

// floorDivBig implements floor division toward negative infinity, per
// spec.md §4.3's explicit requirement (Go's native big.Int.Div/Mod use
// Euclidean division, which differs from floor division when the divisor
// is negative).
func floorDivBig(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

// floorModBig returns a mod b with the sign of the divisor, matching
// Python's `%` (DESIGN.md's open-question resolution for Integer %).
func floorModBig(a, b *big.Int) *big.Int {
	r := new(big.Int).Rem(a, b)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		r.Add(r, b)
	}
	return r
}

// opDivOrCount implements `/`: String target popped first means a regex
// match count; otherwise integer floor / float true division.
func opDivOrCount(vm *VM) {
	first := vm.pop()
	if first.Kind() == value.String {
		vm.doRegexCount(first)
		return
	}
	a := vm.pop()
	b := first
	if a.Kind() == value.Float || b.Kind() == value.Float {
		bf, _ := b.AsFloat()
		if bf == 0 {
			vm.raise(DivideByZero, "float division by zero")
		}
		af, _ := a.AsFloat()
		vm.push(value.FloatVal(af / bf))
		return
	}
	if b.Int().Sign() == 0 {
		vm.raise(DivideByZero, "integer division by zero")
	}
	vm.push(value.Integer(floorDivBig(a.Int(), b.Int())))
}

// opFDivOrSplit implements `:`: String target (second popped) means split
// on the separator (first popped); otherwise float division.
func opFDivOrSplit(vm *VM) {
	first := vm.pop()
	second := vm.pop()
	if second.Kind() == value.String {
		vm.doStringSplitSep(second, first)
		return
	}
	af, _ := second.AsFloat()
	bf, _ := first.AsFloat()
	if bf == 0 {
		vm.raise(DivideByZero, "float division by zero")
	}
	vm.push(value.FloatVal(af / bf))
}

// opModOrReplace implements `%`: a String first-popped is the regex-replace
// target (DESIGN.md's original-source pop order: target, pattern,
// replacement); otherwise arithmetic remainder.
func opModOrReplace(vm *VM) {
	first := vm.pop()
	if first.Kind() == value.String {
		vm.doRegexReplace(first)
		return
	}
	a := vm.pop()
	b := first
	if a.Kind() == value.Float || b.Kind() == value.Float {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		if bf == 0 {
			vm.raise(DivideByZero, "float modulo by zero")
		}
		vm.push(value.FloatVal(math.Mod(af, bf)))
		return
	}
	if b.Int().Sign() == 0 {
		vm.raise(DivideByZero, "integer modulo by zero")
	}
	vm.push(value.Integer(floorModBig(a.Int(), b.Int())))
}

// opPowOrIndex implements `F`: pop b (exponent/index) then a (base/string);
// a String a indexes, otherwise a**b.
func opPowOrIndex(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	if a.Kind() == value.String {
		runes := []rune(a.Str())
		i := vm.intArg(b)
		if i < 0 || i >= len(runes) {
			vm.raise(IndexOutOfRange, "string index %d out of range [0,%d)", i, len(runes))
		}
		vm.push(value.Str(string(runes[i])))
		return
	}
	if a.Kind() == value.Float || b.Kind() == value.Float {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		vm.push(value.FloatVal(math.Pow(af, bf)))
		return
	}
	exp := b.Int()
	if exp.Sign() < 0 {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		vm.push(value.FloatVal(math.Pow(af, bf)))
		return
	}
	vm.push(value.Integer(new(big.Int).Exp(a.Int(), exp, nil)))
}

func opBitNotOrMatchAll(vm *VM) {
	first := vm.pop()
	if first.Kind() == value.String {
		vm.doRegexMatchAll(first)
		return
	}
	vm.push(value.Integer(new(big.Int).Not(first.Int())))
}

func opShl(vm *VM) {
	b, a := vm.pop(), vm.pop()
	n := vm.intArg(b)
	vm.push(value.Integer(new(big.Int).Lsh(a.Int(), uint(n))))
}

func opShr(vm *VM) {
	b, a := vm.pop(), vm.pop()
	n := vm.intArg(b)
	vm.push(value.Integer(new(big.Int).Rsh(a.Int(), uint(n))))
}

func opBitAnd(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.push(value.Integer(new(big.Int).And(a.Int(), b.Int())))
}

func opBitOr(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.push(value.Integer(new(big.Int).Or(a.Int(), b.Int())))
}

func opBitXor(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.push(value.Integer(new(big.Int).Xor(a.Int(), b.Int())))
}

func opNot(vm *VM) { vm.pushBool(!vm.pop().Truthy()) }

// opInvert implements `~`: String reverses, Boolean negates, Integer
// arithmetically negates, matching the reference's actual `_invert` rather
// than spec prose's literal "bitwise-inverts".
func opInvert(vm *VM) {
	v := vm.pop()
	switch v.Kind() {
	case value.String:
		r := []rune(v.Str())
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		vm.push(value.Str(string(r)))
	case value.Bool:
		vm.push(value.BoolVal(!v.Bool()))
	case value.Float:
		vm.push(value.FloatVal(-v.Float()))
	default:
		vm.push(value.Integer(new(big.Int).Neg(v.Int())))
	}
}

func opSign(vm *VM) { vm.pushInt(int64(vm.pop().Sign())) }

func opAbs(vm *VM) {
	v := vm.pop()
	if v.Kind() == value.Float {
		vm.push(value.FloatVal(math.Abs(v.Float())))
		return
	}
	vm.push(value.Integer(new(big.Int).Abs(v.Int())))
}

func opIncr(vm *VM) {
	v := vm.pop()
	if v.Kind() == value.Float {
		vm.push(value.FloatVal(v.Float() + 1))
		return
	}
	vm.push(value.Integer(new(big.Int).Add(v.Int(), big.NewInt(1))))
}

func opDecr(vm *VM) {
	v := vm.pop()
	if v.Kind() == value.Float {
		vm.push(value.FloatVal(v.Float() - 1))
		return
	}
	vm.push(value.Integer(new(big.Int).Sub(v.Int(), big.NewInt(1))))
}

func opEq(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.pushBool(a.Equal(b))
}

func opGt(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.pushBool(compareNumericOrString(a, b) > 0)
}

func opLe(vm *VM) {
	b, a := vm.pop(), vm.pop()
	vm.pushBool(compareNumericOrString(a, b) <= 0)
}

// compareNumericOrString orders two Values: numerically if both are
// numeric, lexically if both are String, else by their float coercion.
func compareNumericOrString(a, b value.Value) int {
	if a.Kind() == value.String && b.Kind() == value.String {
		switch {
		case a.Str() < b.Str():
			return -1
		case a.Str() > b.Str():
			return 1
		default:
			return 0
		}
	}
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}
