package iarray

// Del returns a new array with element i excised and every subsequent
// element shifted down one place. Inside the trie this is the borrow
// cascade: each leaf from the target rightwards takes its successor's first
// slot, the vacated final slot is cleared, and subtrees that become dead on
// the right are dropped whole. All structure left of the target is shared
// with a. Deleting the last remaining element yields the canonical empty
// array.
func (a Array[T]) Del(i int) (Array[T], error) {
	if i < 0 || i >= a.size {
		return Array[T]{}, ErrIndexOutOfRange
	}
	if a.size == 1 {
		return Array[T]{}, nil
	}
	b := a
	b.size--
	if i < len(a.head) {
		b.head = excise(a.head, i)
		return b, nil
	}
	m := a.trieLen()
	if j := i - len(a.head); j < m {
		p := a.off + uint64(j)
		end := a.off + uint64(m)
		suffix := a.readRange(p+1, end)
		b.root = writeRange(a.root, a.shift, p, suffix)
		b.root = clearRange(b.root, b.shift, 0, end-1, end)
		if b.root == nil {
			b.shift, b.off = 0, 0
		} else {
			b.collapseRoot()
		}
		return b, nil
	}
	b.tail = excise(a.tail, i-len(a.head)-m)
	return b, nil
}

// excise copies block b without slot i.
func excise[T any](b []T, i int) []T {
	m := make([]T, 0, len(b)-1)
	m = append(m, b[:i]...)
	return append(m, b[i+1:]...)
}
