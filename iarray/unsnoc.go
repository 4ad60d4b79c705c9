package iarray

// Unsnoc splits a into the array of all but the last element and the last
// element itself, or returns ErrEmpty when a has no elements. Mirror image
// of Uncons: an empty tail block is refilled from the last resident leaf.
func (a Array[T]) Unsnoc() (Array[T], T, error) {
	var zero T
	if a.size == 0 {
		return Array[T]{}, zero, ErrEmpty
	}
	b := a
	if len(b.tail) == 0 {
		b.pullTail()
	}
	x := b.tail[len(b.tail)-1]
	b.tail = b.tail[:len(b.tail)-1]
	b.size--
	if b.size == 0 {
		return Array[T]{}, x, nil
	}
	return b, x, nil
}

// pullTail refills the empty tail block from the back of the trie. The last
// leaf may be partial after interior deletions, so the drawn run is however
// much of it is live.
func (b *Array[T]) pullTail() {
	m := uint64(b.trieLen())
	if m == 0 {
		b.tail, b.head = b.head, nil
		return
	}
	end := b.off + m
	n := end % BranchFactor
	if n == 0 {
		n = BranchFactor
	}
	if n > m {
		n = m
	}
	b.tail = b.readRange(end-n, end)
	b.root = clearRange(b.root, b.shift, 0, end-n, end)
	if b.root == nil {
		b.shift, b.off = 0, 0
	} else {
		b.collapseRoot()
	}
}
