package iarray

// Uncons splits a into its first element and the array of the remainder, or
// returns ErrEmpty when a has no elements. The shrink is restricted to the
// boundary: when the head block is empty the first resident leaf is drawn
// out of the trie to refill it, and nothing right of that leaf moves.
func (a Array[T]) Uncons() (T, Array[T], error) {
	var zero T
	if a.size == 0 {
		return zero, Array[T]{}, ErrEmpty
	}
	b := a
	if len(b.head) == 0 {
		b.pullHead()
	}
	x := b.head[0]
	b.head = b.head[1:]
	b.size--
	if b.size == 0 {
		return x, Array[T]{}, nil
	}
	return x, b, nil
}

// pullHead refills the empty head block from the front of the trie,
// vacating the drawn slots and collapsing the root if a level has emptied.
// When the trie itself is empty the remaining elements are in the tail
// block, which simply changes role.
func (b *Array[T]) pullHead() {
	m := uint64(b.trieLen())
	if m == 0 {
		b.head, b.tail = b.tail, nil
		return
	}
	n := uint64(BranchFactor) - b.off%BranchFactor
	if n > m {
		n = m
	}
	b.head = b.readRange(b.off, b.off+n)
	b.root = clearRange(b.root, b.shift, 0, b.off, b.off+n)
	b.off += n
	if b.root == nil {
		b.shift, b.off = 0, 0
	} else {
		b.collapseRoot()
	}
}
