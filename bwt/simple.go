package bwt

import (
	"strings"

	"golang.org/x/exp/slices"
)

// simpleSuffixArray sorts all n suffixes of ref directly by ordinary
// string comparison. O(n^2 log n); kept as a ground-truth implementation
// for cross-checking DC3 and Manber-Myers on small inputs. The sentinel
// '$' has the lowest byte value in the alphabet, so byte-wise comparison
// already sorts it first with no special-casing.
func simpleSuffixArray(ref string) []int32 {
	n := len(ref)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	slices.SortFunc(sa, func(a, b int32) int {
		return strings.Compare(ref[a:], ref[b:])
	})
	return sa
}
