package iarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPersistence(t *testing.T) {
	n := 2000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	a := FromSlice(xs)

	b, err := a.Set(700, -1)
	require.NoError(t, err)

	// the original is never observably altered
	got, err := a.Get(700)
	require.NoError(t, err)
	assert.Equal(t, 700, got)

	got, err = b.Get(700)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	// shared neighbours are visible through both handles
	for _, i := range []int{0, 699, 701, n - 1} {
		ga, _ := a.Get(i)
		gb, _ := b.Get(i)
		assert.Equal(t, ga, gb, "index %d", i)
	}
}

func TestSetAcrossRegions(t *testing.T) {
	a := Empty[int]()
	for i := 49; i >= 0; i-- {
		a = a.Cons(i)
	}
	for i := 50; i < 100; i++ {
		a = a.Snoc(i)
	}
	for _, i := range []int{0, 5, 49, 50, 60, 99} {
		b, err := a.Set(i, 1000+i)
		require.NoError(t, err)
		got, err := b.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 1000+i, got)
		// the other 99 elements are unchanged
		for j := 0; j < 100; j++ {
			if j == i {
				continue
			}
			got, err = b.Get(j)
			require.NoError(t, err)
			assert.Equal(t, j, got)
		}
	}
}

func TestSetOutOfRange(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	_, err := a.Set(-1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.Set(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Empty[int]().Set(0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdate(t *testing.T) {
	a := FromSlice([]int{10, 20, 30})
	b, err := a.Update(1, func(x int) (int, error) { return x + 1, nil })
	require.NoError(t, err)
	got, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
	got, err = a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestUpdateErrorPassThrough(t *testing.T) {
	errBoom := errors.New("boom")
	a := FromSlice([]int{10, 20, 30})
	_, err := a.Update(1, func(int) (int, error) { return 0, errBoom })
	// transparent pass-through, no wrapping
	assert.Equal(t, errBoom, err)

	_, err = a.Update(9, func(x int) (int, error) { return x, nil })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

// A single set must touch a number of nodes proportional to the tree
// height, not to the element count.
func TestSetSharingBound(t *testing.T) {
	n := 100000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	a := FromSlice(xs)
	b, err := a.Set(n/2, -1)
	require.NoError(t, err)

	before := map[*node[int]]struct{}{}
	collectNodes(a.root, before)
	after := map[*node[int]]struct{}{}
	collectNodes(b.root, after)

	fresh := 0
	for nd := range after {
		if _, ok := before[nd]; !ok {
			fresh++
		}
	}
	// one node per level on the edited path and nothing else
	height := int(a.shift/BranchBits) + 1
	assert.LessOrEqual(t, fresh, height)
	assert.Greater(t, fresh, 0)

	// and the allocation count for a point edit is equally bounded
	allocs := testing.AllocsPerRun(10, func() {
		_, _ = a.Set(n/3, 9)
	})
	assert.Less(t, allocs, 32.0)
}

func collectNodes[T any](n *node[T], seen map[*node[T]]struct{}) {
	if n == nil {
		return
	}
	if _, ok := seen[n]; ok {
		return
	}
	seen[n] = struct{}{}
	for _, ch := range n.children {
		collectNodes(ch, seen)
	}
}
