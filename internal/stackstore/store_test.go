package stackstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aceto-run/aceto/internal/stackstore"
	"github.com/aceto-run/aceto/internal/value"
)

func TestPopEmptyYieldsZero(t *testing.T) {
	var s stackstore.Stack
	v := s.Pop()
	require.Equal(t, value.Int, v.Kind())
	assert.Equal(t, 0, v.Int().Sign())
	assert.Equal(t, 0, s.Len())
}

func TestStickyPopIsIdempotent(t *testing.T) {
	var s stackstore.Stack
	s.Sticky = true
	s.Push(value.IntFromInt64(7))
	for i := 0; i < 3; i++ {
		v := s.Pop()
		assert.Equal(t, int64(7), v.Int().Int64())
	}
	assert.Equal(t, 1, s.Len())
}

func TestMultiplyByTop(t *testing.T) {
	var s stackstore.Stack
	s.PushAll([]value.Value{value.IntFromInt64(1), value.IntFromInt64(2)})
	s.MultiplyByTop(3)
	assert.Equal(t, 6, s.Len())

	s.MultiplyByTop(-1)
	assert.Equal(t, 0, s.Len())
}

func TestStoreTouchedIndicesStartEmpty(t *testing.T) {
	st := stackstore.NewStore()
	assert.Equal(t, 0, st.Active)
	assert.Empty(t, st.Indices())
	st.At(3).Push(value.IntFromInt64(1))
	assert.Equal(t, []int{3}, st.Indices())
}

func TestSortDescLeavesMinOnTop(t *testing.T) {
	var s stackstore.Stack
	s.PushAll([]value.Value{value.IntFromInt64(5), value.IntFromInt64(1)})
	s.SortDesc()
	top := s.Pop()
	bottom := s.Pop()
	assert.Equal(t, int64(1), top.Int().Int64())
	assert.Equal(t, int64(5), bottom.Int().Int64())
}
