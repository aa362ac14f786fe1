// Package stackstore implements Aceto's indexed family of stacks (spec.md
// §3/§4.2): an infinite, lazily-materializing map from signed integer index
// to Stack, one of which is active at any time.
package stackstore

import (
	"sort"

	"github.com/aceto-run/aceto/internal/value"
)

// Stack is an ordered sequence of Values with a top end and a sticky flag.
type Stack struct {
	vals   []value.Value
	Sticky bool
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v value.Value) { s.vals = append(s.vals, v) }

// Pop removes (unless sticky) and returns the top Value. An empty stack
// yields Integer 0 and is left empty, the universal underflow default from
// spec.md §3.
func (s *Stack) Pop() value.Value {
	if len(s.vals) == 0 {
		return value.Zero()
	}
	top := s.vals[len(s.vals)-1]
	if !s.Sticky {
		s.vals = s.vals[:len(s.vals)-1]
	}
	return top
}

// Len reports the number of elements currently on the stack.
func (s *Stack) Len() int { return len(s.vals) }

// PushAll appends vs in order, so the last element of vs ends on top.
func (s *Stack) PushAll(vs []value.Value) { s.vals = append(s.vals, vs...) }

// All returns the stack contents bottom-to-top. Callers must not mutate the
// returned slice.
func (s *Stack) All() []value.Value { return s.vals }

// SetAll replaces the stack contents wholesale, bottom-to-top.
func (s *Stack) SetAll(vs []value.Value) { s.vals = vs }

// Swap exchanges the top two elements.
func (s *Stack) Swap() {
	if n := len(s.vals); n >= 2 {
		s.vals[n-1], s.vals[n-2] = s.vals[n-2], s.vals[n-1]
	}
}

// Dup duplicates the top element.
func (s *Stack) Dup() {
	if n := len(s.vals); n > 0 {
		s.vals = append(s.vals, s.vals[n-1])
	} else {
		s.vals = append(s.vals, value.Zero())
	}
}

// Head drops every element but the top.
func (s *Stack) Head() {
	if n := len(s.vals); n > 0 {
		s.vals = []value.Value{s.vals[n-1]}
	}
}

// Drop removes the top element without returning it.
func (s *Stack) Drop() {
	if n := len(s.vals); n > 0 {
		s.vals = s.vals[:n-1]
	}
}

// Reverse reverses the stack in place, bottom-to-top.
func (s *Stack) Reverse() {
	for i, j := 0, len(s.vals)-1; i < j; i, j = i+1, j-1 {
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	}
}

// Contains reports whether v equals any element, Python `in`-style.
func (s *Stack) Contains(v value.Value) bool {
	for _, e := range s.vals {
		if e.Equal(v) {
			return true
		}
	}
	return false
}

// RotateBottomToTop moves the bottom element to the top (`Q`).
func (s *Stack) RotateBottomToTop() {
	if len(s.vals) == 0 {
		return
	}
	bottom := s.vals[0]
	s.vals = append(s.vals[1:], bottom)
}

// RotateTopToBottom moves the top element to the bottom (`q`).
func (s *Stack) RotateTopToBottom() {
	if len(s.vals) == 0 {
		return
	}
	n := len(s.vals)
	top := s.vals[n-1]
	s.vals = append([]value.Value{top}, s.vals[:n-1]...)
}

// MultiplyByTop implements `×`: repeat the stack contents k times,
// bottom-to-top; k<0 behaves like k==0 (empties the stack), mirroring
// Python's `list * negative == []`.
func (s *Stack) MultiplyByTop(k int) {
	if k <= 0 {
		s.vals = nil
		return
	}
	orig := append([]value.Value(nil), s.vals...)
	out := make([]value.Value, 0, len(orig)*k)
	for i := 0; i < k; i++ {
		out = append(out, orig...)
	}
	s.vals = out
}

// Shuffle randomly permutes the stack in place using next for randomness.
func (s *Stack) Shuffle(next func(n int) int) {
	for i := len(s.vals) - 1; i > 0; i-- {
		j := next(i + 1)
		s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	}
}

// sortPair implements the reference's `_order_up`/`_order_down`: pop the
// top two elements, sort them, and push them back in last-popped-first
// order so that the net top-of-stack result matches acetolang's literal
// list.sort()+list.pop() sequence exactly.
func sortPair(a, b value.Value, desc bool) (first, second value.Value) {
	pair := []value.Value{a, b}
	sort.SliceStable(pair, func(i, j int) bool {
		less := numericLess(pair[i], pair[j])
		if desc {
			return !less
		}
		return less
	})
	// list.pop() takes from the end twice: first pop returns pair[1],
	// second pop returns pair[0].
	return pair[1], pair[0]
}

func numericLess(a, b value.Value) bool {
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	return af < bf
}

// SortDesc implements `G` (order_up in the reference): pop two, push back
// max then min.
func (s *Stack) SortDesc() {
	x := s.Pop()
	y := s.Pop()
	first, second := sortPair(x, y, false)
	s.Push(first)
	s.Push(second)
}

// SortAsc implements `g` (order_down in the reference): pop two, push back
// min then max.
func (s *Stack) SortAsc() {
	x := s.Pop()
	y := s.Pop()
	first, second := sortPair(x, y, true)
	s.Push(first)
	s.Push(second)
}

// Store is the indexed family of stacks, one of which is Active.
type Store struct {
	stacks map[int]*Stack
	Active int
}

// NewStore returns a Store with stack 0 active, per spec.md §3.
func NewStore() *Store {
	return &Store{stacks: make(map[int]*Stack)}
}

// At returns the stack at index i, materializing an empty non-sticky one if
// it has not been touched yet.
func (st *Store) At(i int) *Stack {
	s, ok := st.stacks[i]
	if !ok {
		s = &Stack{}
		st.stacks[i] = s
	}
	return s
}

// Current returns the active stack.
func (st *Store) Current() *Stack { return st.At(st.Active) }

// Clear empties the active stack in place (`ø`).
func (st *Store) Clear() { st.Current().vals = nil }

// Total sums the lengths of every stack touched so far, for the CLI's
// optional memory-limit enforcement.
func (st *Store) Total() int {
	n := 0
	for _, s := range st.stacks {
		n += s.Len()
	}
	return n
}

// Indices returns every stack index touched so far, sorted ascending --
// used by the `dump` CLI command to list non-trivial stacks without
// materializing the whole signed-integer domain.
func (st *Store) Indices() []int {
	idxs := make([]int, 0, len(st.stacks))
	for i := range st.stacks {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}
