package bwt

// computeBWT derives the Burrows-Wheeler transform of ref from its suffix
// array: BWT[i] = ref[SA[i]-1], with position 0 (whose predecessor wraps
// around) mapping to ref[n-1], the sentinel itself.
func computeBWT(ref string, sa []int32) []byte {
	n := len(ref)
	out := make([]byte, n)
	for i, j := range sa {
		if j == 0 {
			out[i] = ref[n-1]
		} else {
			out[i] = ref[j-1]
		}
	}
	return out
}

// cTable holds, for each symbol in the alphabet, the number of BWT
// characters strictly smaller than it, plus a trailing "one past the
// last symbol" entry equal to n. cumSum[codeOf(a)] is C(a); cumSum[i+1]
// is always a valid upper bound for the row-interval of symbol i.
type cTable struct {
	cumSum [alphabetSize + 1]int
}

// rank returns C(a): how many BWT characters sort strictly before a.
func (c *cTable) rank(a byte) int {
	return c.cumSum[codeOf(a)]
}

func buildCTable(bwt []byte) *cTable {
	var counts [alphabetSize]int
	for _, b := range bwt {
		counts[codeOf(b)]++
	}
	var c cTable
	n := 0
	for i, count := range counts {
		c.cumSum[i] = n
		n += count
	}
	c.cumSum[alphabetSize] = n
	return &c
}
