package iarray

// leafFor returns the leaf holding physical position p. The caller
// guarantees p is resident; the descent never allocates.
func (a Array[T]) leafFor(p uint64) *node[T] {
	n := a.root
	for s := a.shift; s > 0; s -= BranchBits {
		n = n.children[digit(p, s)]
	}
	return n
}

// Get returns the element at logical index i, or ErrIndexOutOfRange when i
// is negative or beyond the last element. Get is a pure read over shared
// structure: it allocates nothing and is safe to run concurrently with any
// number of readers and with the derivation of new handles.
func (a Array[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, ErrIndexOutOfRange
	}
	if i < len(a.head) {
		return a.head[i], nil
	}
	if j := i - len(a.head); j < a.trieLen() {
		p := a.off + uint64(j)
		return a.leafFor(p).elems[digit(p, 0)], nil
	}
	return a.tail[i-len(a.head)-a.trieLen()], nil
}
