package iarray

import (
	"fmt"
	"strings"
)

// debug utilities

func (a Array[T]) String() string {
	return fmt.Sprintf("Iarray{size: %d, shift: %d, off: %d, head: %d, tail: %d}",
		a.size, a.shift, a.off, len(a.head), len(a.tail))
}

// LongString renders the handle and its tree, one node per line. Only good
// for debug output; there is no parser for it.
func (a Array[T]) LongString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", a.String())
	if a.root != nil {
		longString(&sb, a.root, a.shift, "  ")
	}
	return sb.String()
}

func longString[T any](sb *strings.Builder, n *node[T], s uint, indent string) {
	if n.elems != nil {
		fmt.Fprintf(sb, "%sleaf %v\n", indent, n.elems)
		return
	}
	for c, ch := range n.children {
		if ch == nil {
			continue
		}
		fmt.Fprintf(sb, "%sbranch[%d] shift=%d\n", indent, c, s)
		longString(sb, ch, s-BranchBits, indent+"  ")
	}
}
