package iarray

// FromSlice bulk-builds an array from elems: leaves are filled in input
// order, then grouped BranchFactor at a time into parents, level by level,
// until a single root remains. One linear pass with no per-element path
// copying, so it is strictly cheaper than the equivalent run of Snoc calls.
// An empty or nil input yields the canonical empty array. elems is read,
// never retained.
func FromSlice[T any](elems []T) Array[T] {
	if len(elems) == 0 {
		return Array[T]{}
	}
	nodes := make([]*node[T], 0, (len(elems)+IndexMask)/BranchFactor)
	for i := 0; i < len(elems); i += BranchFactor {
		leaf := newLeaf[T]()
		copy(leaf.elems, elems[i:])
		nodes = append(nodes, leaf)
	}
	var shift uint
	for len(nodes) > 1 {
		parents := make([]*node[T], 0, (len(nodes)+IndexMask)/BranchFactor)
		for i := 0; i < len(nodes); i += BranchFactor {
			br := newBranch[T]()
			copy(br.children, nodes[i:])
			parents = append(parents, br)
		}
		nodes = parents
		shift += BranchBits
	}
	return Array[T]{size: len(elems), shift: shift, root: nodes[0]}
}

// Slice materializes the logical contents of a as a fresh slice, in order.
func (a Array[T]) Slice() []T {
	out := make([]T, 0, a.size)
	out = append(out, a.head...)
	if m := a.trieLen(); m > 0 {
		out = append(out, a.readRange(a.off, a.off+uint64(m))...)
	}
	return append(out, a.tail...)
}
