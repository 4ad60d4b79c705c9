package iarray

import "errors"

// BranchBits is the number of physical position bits consumed per trie
// level. The branching factor is 1<<BranchBits. 5 is the conventional
// choice: a million elements need only four levels, and copying a single
// node on the edit path stays cheap. It affects constants only, never
// correctness.
const BranchBits = 5

// BranchFactor is the number of child slots in a branch node and element
// slots in a leaf.
const BranchFactor = 1 << BranchBits

// IndexMask masks one digit's worth of a physical position.
const IndexMask = BranchFactor - 1

var (
	ErrIndexOutOfRange = errors.New("iarray: index out of range")
	ErrEmpty           = errors.New("iarray: empty array")
)

// Array is a persistent, immutable, indexed collection of T. The zero value
// is the canonical empty array. Array is a value type: handles copy freely,
// and any number of goroutines may read any number of handles, including
// while new handles are being derived from them, without synchronization.
//
// size counts logical elements. The trie-resident run occupies physical
// positions [off, off+m) where m = size - len(head) - len(tail); head and
// tail are the reserved end blocks described in the package documentation.
// shift is the bit offset of the digit consumed at the root, zero when the
// root is a single leaf.
type Array[T any] struct {
	size  int
	shift uint
	off   uint64
	root  *node[T]
	head  []T
	tail  []T
}

// Empty returns the canonical empty array.
func Empty[T any]() Array[T] { return Array[T]{} }

// Size returns the number of elements in a.
func (a Array[T]) Size() int { return a.size }

// trieLen returns the count of elements resident in the trie, as opposed to
// the head and tail blocks.
func (a Array[T]) trieLen() int { return a.size - len(a.head) - len(a.tail) }
