package iarray

// The point editor. Descent is recorded on an explicit frame stack rather
// than the call stack; depth is bounded by shift/BranchBits + 1, which for
// the 32-way trie never exceeds 13 on 64 bit positions.

// frame records one step of a descent: the node visited and the slot the
// descent took out of it.
type frame[T any] struct {
	n   *node[T]
	idx uint
}

// pathTo descends from the root to the leaf holding physical position p,
// recording the branch taken at every level. The final frame holds the leaf
// and the element slot index. The caller owns the rebuild.
func (a Array[T]) pathTo(p uint64) []frame[T] {
	path := make([]frame[T], 0, a.shift/BranchBits+1)
	n := a.root
	for s := a.shift; s > 0; s -= BranchBits {
		idx := digit(p, s)
		path = append(path, frame[T]{n, idx})
		n = n.children[idx]
	}
	return append(path, frame[T]{n, digit(p, 0)})
}

// rebuild ascends the path bottom-up, cloning each branch with exactly one
// child slot re-pointed at the freshly built subtree below it. Every other
// slot keeps its reference to the original, unmodified subtree. Returns the
// new root.
func rebuild[T any](path []frame[T], leaf *node[T]) *node[T] {
	n := leaf
	for d := len(path) - 2; d >= 0; d-- {
		parent := path[d].n.clone()
		parent.children[path[d].idx] = n
		n = parent
	}
	return n
}

// growLeft adds a level above the root, hanging the existing tree from the
// rightmost child slot so that all spare capacity opens on the left. Every
// resident position p becomes p + 31<<shift' under the new root; off is
// moved to match and no node below the new root changes.
func (a *Array[T]) growLeft() {
	r := newBranch[T]()
	r.children[BranchFactor-1] = a.root
	a.shift += BranchBits
	a.root = r
	a.off += uint64(BranchFactor-1) << a.shift
}

// growRight adds a level above the root, hanging the existing tree from
// child slot 0. Resident positions keep their meaning and capacity opens on
// the right.
func (a *Array[T]) growRight() {
	r := newBranch[T]()
	r.children[0] = a.root
	a.shift += BranchBits
	a.root = r
}

// collapseRoot discards root levels with a single live child. Dropping the
// level subtracts the child's base from every resident position, so off is
// adjusted by the same amount; digits below the discarded level are
// untouched and the child subtree is adopted as-is.
func (a *Array[T]) collapseRoot() {
	for a.shift > 0 {
		c, ok := a.root.onlyChild()
		if !ok {
			return
		}
		a.off -= uint64(c) << a.shift
		a.root = a.root.children[c]
		a.shift -= BranchBits
	}
}
