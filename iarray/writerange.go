package iarray

// Range editors. These serve the bulk movements: pushing a full end block
// into the trie, the delete cascade, and drawing a boundary leaf back out.
// Recursion depth is bounded by shift/BranchBits.

// writeRange returns a subtree equal to n with physical positions
// [from, from+len(xs)) replaced by xs. n is rooted at shift s and may be
// nil, in which case the needed spine is created. Subtrees outside the
// written range are shared with n. The caller guarantees the range lies
// within the subtree's span; at s == 0 that means within one leaf.
func writeRange[T any](n *node[T], s uint, from uint64, xs []T) *node[T] {
	if len(xs) == 0 {
		return n
	}
	if s == 0 {
		var m *node[T]
		if n == nil {
			m = newLeaf[T]()
		} else {
			m = n.clone()
		}
		copy(m.elems[digit(from, 0):], xs)
		return m
	}
	var m *node[T]
	if n == nil {
		m = newBranch[T]()
	} else {
		m = n.clone()
	}
	// child spans are 1<<s positions wide and aligned to that width
	span := uint64(1) << s
	for len(xs) > 0 {
		c := digit(from, s)
		take := span - from%span
		if uint64(len(xs)) < take {
			take = uint64(len(xs))
		}
		m.children[c] = writeRange(m.children[c], s-BranchBits, from, xs[:take])
		from += take
		xs = xs[take:]
	}
	return m
}

// clearRange returns a subtree equal to n with positions [from, to)
// vacated. base is the absolute position of the subtree's first slot.
// Cleared element slots revert to the zero value so they pin nothing for
// the collector; a child whose whole span is inside the range is dropped
// outright. Returns nil when no child survives.
func clearRange[T any](n *node[T], s uint, base, from, to uint64) *node[T] {
	if n == nil || from >= to {
		return n
	}
	if from <= base && to >= base+capacity(s) {
		return nil
	}
	m := n.clone()
	if s == 0 {
		lo, hi := from, to
		if lo < base {
			lo = base
		}
		if hi > base+BranchFactor {
			hi = base + BranchFactor
		}
		var zero T
		for p := lo; p < hi; p++ {
			m.elems[digit(p, 0)] = zero
		}
		return m
	}
	span := uint64(1) << s
	live := false
	for c := range m.children {
		cbase := base + uint64(c)*span
		if cbase+span > from && cbase < to {
			m.children[c] = clearRange(m.children[c], s-BranchBits, cbase, from, to)
		}
		live = live || m.children[c] != nil
	}
	if !live {
		return nil
	}
	return m
}

// readRange copies the elements at physical positions [from, to) out of the
// trie in order, one leaf at a time.
func (a Array[T]) readRange(from, to uint64) []T {
	out := make([]T, 0, to-from)
	for p := from; p < to; {
		leaf := a.leafFor(p)
		i := digit(p, 0)
		take := uint64(BranchFactor - i)
		if take > to-p {
			take = to - p
		}
		out = append(out, leaf.elems[uint64(i):uint64(i)+take]...)
		p += take
	}
	return out
}
