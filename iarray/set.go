package iarray

// Set returns a new array with element i replaced by x; a itself is
// unchanged. The copy rebuilds only the chain of nodes from the root to the
// affected leaf, or one end block when i falls inside one, so the cost is
// O(shift) nodes regardless of size.
func (a Array[T]) Set(i int, x T) (Array[T], error) {
	if i < 0 || i >= a.size {
		return Array[T]{}, ErrIndexOutOfRange
	}
	b := a
	if i < len(a.head) {
		b.head = cloneBlock(a.head)
		b.head[i] = x
		return b, nil
	}
	if j := i - len(a.head); j < a.trieLen() {
		path := a.pathTo(a.off + uint64(j))
		tip := path[len(path)-1]
		leaf := tip.n.clone()
		leaf.elems[tip.idx] = x
		b.root = rebuild(path, leaf)
		return b, nil
	}
	b.tail = cloneBlock(a.tail)
	b.tail[i-len(a.head)-a.trieLen()] = x
	return b, nil
}

// Update applies fn to element i and returns a new array holding the
// result, behaving as Set. A failure from fn is returned to the caller
// unwrapped; no new array is produced and a is untouched.
func (a Array[T]) Update(i int, fn func(T) (T, error)) (Array[T], error) {
	cur, err := a.Get(i)
	if err != nil {
		return Array[T]{}, err
	}
	x, err := fn(cur)
	if err != nil {
		return Array[T]{}, err
	}
	return a.Set(i, x)
}
