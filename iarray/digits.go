package iarray

// Position digit codec. A physical position is an ordered sequence of 5 bit
// digits, most significant first; each digit selects one child slot on the
// descent from root to leaf. The codec is total for every position in
// [0, capacity(shift)).

// digit returns the path segment of p consumed at the level whose bit
// offset is s. The final, least significant, digit is digit(p, 0) and
// indexes the element slot within a leaf.
func digit(p uint64, s uint) uint {
	return uint(p>>s) & IndexMask
}

// digits encodes p into its full digit path for a tree rooted at shift s,
// most significant first. The result always has s/BranchBits + 1 entries.
func digits(p uint64, s uint) []uint {
	ds := make([]uint, 0, s/BranchBits+1)
	for {
		ds = append(ds, digit(p, s))
		if s == 0 {
			return ds
		}
		s -= BranchBits
	}
}

// undigits is the inverse of digits.
func undigits(ds []uint) uint64 {
	var p uint64
	for _, d := range ds {
		p = p<<BranchBits | uint64(d)
	}
	return p
}

// capacity returns the number of physical positions addressable by a tree
// whose root is at shift s.
func capacity(s uint) uint64 {
	return uint64(BranchFactor) << s
}
