package iarray

// Snoc returns a new array with x appended. Mirror image of Cons: the
// element lands in the tail block, and a full tail block is pushed into the
// trie at the right-hand boundary, adding a root level only when the
// rightmost path is saturated.
func (a Array[T]) Snoc(x T) Array[T] {
	b := a
	if len(b.tail) == BranchFactor {
		b.pushTail()
	}
	t := make([]T, len(b.tail)+1)
	copy(t, b.tail)
	t[len(t)-1] = x
	b.tail = t
	b.size++
	return b
}

// pushTail moves the full tail block into the trie at the run of slots
// starting at the current right-hand boundary. The boundary need not be
// leaf aligned; after interior deletions the block may straddle two leaves.
func (b *Array[T]) pushTail() {
	if b.root == nil {
		b.shift, b.off = 0, 0
		b.root = writeRange[T](nil, 0, 0, b.tail)
		b.tail = nil
		return
	}
	end := b.off + uint64(b.trieLen())
	for end+BranchFactor > capacity(b.shift) {
		b.growRight()
	}
	b.root = writeRange(b.root, b.shift, end, b.tail)
	b.tail = nil
}
