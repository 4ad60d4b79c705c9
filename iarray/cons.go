package iarray

// Cons returns a new array with x prepended. The element lands in the head
// block, which the handle owns directly, so the usual cost is one small
// block copy and no tree edits. Only when the block is already full is it
// pushed into the trie as a whole leaf, adding a root level if the tree has
// no spare capacity on the left. Across N consecutive calls the total cost
// is O(N).
func (a Array[T]) Cons(x T) Array[T] {
	b := a
	if len(b.head) == BranchFactor {
		b.pushHead()
	}
	h := make([]T, 1, len(b.head)+1)
	h[0] = x
	b.head = append(h, b.head...)
	b.size++
	return b
}

// pushHead moves the full head block into the trie as the run of slots
// immediately left of off.
func (b *Array[T]) pushHead() {
	if b.root == nil {
		b.shift, b.off = 0, 0
		b.root = writeRange[T](nil, 0, 0, b.head)
		b.head = nil
		return
	}
	for b.off < BranchFactor {
		b.growLeft()
	}
	b.off -= BranchFactor
	b.root = writeRange(b.root, b.shift, b.off, b.head)
	b.head = nil
}
