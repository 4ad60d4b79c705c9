package iarray

// node is the trie building block, a tagged union of two shapes: a leaf
// holds element slots, a branch holds child references. Exactly one of the
// two slices is non-nil and it always has BranchFactor entries. A node is
// never written after it becomes reachable from a published Array; all
// editing goes through clone.
type node[T any] struct {
	children []*node[T]
	elems    []T
}

func newLeaf[T any]() *node[T] {
	return &node[T]{elems: make([]T, BranchFactor)}
}

func newBranch[T any]() *node[T] {
	return &node[T]{children: make([]*node[T], BranchFactor)}
}

// clone returns a same-shape copy of n whose slots may be freely written
// until the copy is published.
func (n *node[T]) clone() *node[T] {
	m := &node[T]{}
	if n.elems != nil {
		m.elems = make([]T, BranchFactor)
		copy(m.elems, n.elems)
	}
	if n.children != nil {
		m.children = make([]*node[T], BranchFactor)
		copy(m.children, n.children)
	}
	return m
}

// onlyChild reports whether n is a branch with exactly one live child, and
// which slot it occupies. Root collapse is the sole caller.
func (n *node[T]) onlyChild() (uint, bool) {
	var idx uint
	count := 0
	for c, ch := range n.children {
		if ch == nil {
			continue
		}
		if count++; count > 1 {
			return 0, false
		}
		idx = uint(c)
	}
	return idx, count == 1
}

// cloneBlock copies an end block. Blocks, like nodes, are never written in
// place once a handle holding them has been returned.
func cloneBlock[T any](b []T) []T {
	m := make([]T, len(b))
	copy(m, b)
	return m
}
