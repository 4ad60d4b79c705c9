package iarray

/*

# Persistent indexed arrays over a bit-partitioned trie

This package provides an immutable, persistent, integer-indexed collection.
Every operation that would mutate an ordinary slice instead returns a new
Array value, and the new value shares all unaffected structure with its
predecessor. The handle you started with remains fully valid and unchanged
for as long as you keep it.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable functions
- index/position arithmetic where possible, structure only where forced
- a narrow public surface with explicit error returns

## Shape

Elements live in the slots of a 32-way trie. A physical position is split
into 5-bit digits, most significant first, and each digit selects a child on
the way down from the root to a leaf:

	          root (shift 10)
	         /      |       \
	       br       br       br        branch, one 5 bit digit each
	      /  \     /  \     /  \
	    leaf leaf leaf leaf leaf ...   32 element slots each

`shift` is the bit offset of the digit consumed at the root, so a root at
shift 0 is a single leaf and the addressable span is 1<<(shift+5) positions.

## Structural sharing

Nodes are never written after they become reachable from a published Array.
A point edit clones only the chain of nodes from the root to the affected
leaf and re-points one child slot per level; every sibling subtree is shared
with the original:

	        root ─── root'
	       /    \   /    \
	      A      B●        B'       set() inside B: A is shared, the
	     ... ┌──────┐...            spine down to the edited leaf is
	         shared                 copied, nothing else is touched

So a set on an array of n elements allocates O(log32 n) nodes, and readers
of the old version race with nothing: there is no mutation anywhere to race
with. Release of unreachable subtrees is ordinary garbage collection.

## Head offset and the end blocks

Appending with path copies alone would cost a spine per element. Instead the
handle owns two small blocks of reserved slots, one at each logical end, and
an offset `off` recording where logical position zero of the trie-resident
run sits in physical coordinates:

	  head block        trie  [off, off+m)        tail block
	 ┌──────────┐   ┌──────────────────────────┐  ┌─────────┐
	 │ x x x    │ + │ leaf leaf leaf leaf leaf │ +│ y y     │
	 └──────────┘   └──────────────────────────┘  └─────────┘

Cons copies the head block (at most 32 elements) and touches no tree node.
Only when the block is full is it pushed into the trie as one whole leaf, at
physical [off-32, off). If there is no spare capacity on the left, a new
root level is added with the old tree hung from child slot 31, which opens
31 subtrees worth of room below and to the left. Snoc is the mirror image,
growing on the right from child slot 0. Across N consecutive cons or snoc
calls the total allocation is O(N), not O(N log N).

When shrinking, a root whose single live child holds everything is
discarded and `off` is adjusted so that every remaining position keeps its
meaning; only the digit consumed at the discarded level changes, so no node
below it needs rewriting. This is the root collapse.

## Deletion

Removing an interior element must shift every later element down one place.
The implementation rewrites only from the target leaf rightwards: each
affected leaf borrows its successor's first slot, the vacated final slot is
cleared, and dead subtrees on the right are dropped whole. Everything left
of the target is shared with the input version.

## Sources

The trie layout follows Bagwell's array mapped tries and the persistent
vector lineage they produced:

* Phil Bagwell, "Ideal Hash Trees" (2001)
* the Clojure PersistentVector, and the exposition at
  https://hypirion.com/musings/understanding-persistent-vector-pt-1
* RRB trees, for the relaxed-width ideas behind partial edge leaves:
  Bagwell & Rompf, "RRB-Trees: Efficient Immutable Vectors" (2011)

*/
