package bwt

// dc3Code maps the DNA alphabet to the integer encoding the skew
// algorithm below operates on. The sentinel must sort smaller than every
// real symbol, so it gets the lowest non-zero code; 0 itself is reserved
// internally for the implicit padding past the end of the string.
func dc3Code(b byte) int32 {
	switch b {
	case '$':
		return 1
	case 'A':
		return 2
	case 'C':
		return 3
	case 'G':
		return 4
	case 'N':
		return 5
	case 'T':
		return 6
	default:
		return 0
	}
}

// dc3SuffixArray builds the suffix array of ref using the
// Kärkkäinen-Sanders skew algorithm (DC3): recursively sort the suffixes
// starting at positions not divisible by 3, then merge in the remaining
// (divisible-by-3) suffixes in linear time. O(n).
func dc3SuffixArray(ref string) []int32 {
	n := len(ref)
	s := make([]int32, n+3)
	for i := 0; i < n; i++ {
		s[i] = dc3Code(ref[i])
	}
	return dc3(s, n, 6)
}

func leq2(a1, a2, b1, b2 int32) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

func leq3(a1, a2, a3, b1, b2, b3 int32) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}

// radixPass stably sorts the index array a by s[a[i]+offset], which must
// range over [0, k].
func radixPass(a []int32, s []int32, offset int, k int) []int32 {
	count := make([]int32, k+1)
	for _, v := range a {
		count[s[int(v)+offset]]++
	}
	sum := int32(0)
	for i := range count {
		count[i], sum = sum, sum+count[i]
	}
	b := make([]int32, len(a))
	for _, v := range a {
		c := s[int(v)+offset]
		b[count[c]] = v
		count[c]++
	}
	return b
}

// dc3 returns the suffix array of s[0:n]; s must have at least 3 trailing
// zero-valued sentinel slots past n, and every value in s[0:n] must be in
// [1, k].
func dc3(s []int32, n int, k int) []int32 {
	if n <= 1 {
		// n0-n1 can reach n02 exactly when n == 1 (n0=1, n1=0, n02=1),
		// which would index sa12 out of bounds at the top of the merge
		// loop below; short-circuit the only sizes where that happens.
		sa := make([]int32, n)
		if n == 1 {
			sa[0] = 0
		}
		return sa
	}

	n0 := (n + 2) / 3
	n1 := (n + 1) / 3
	n2 := n / 3
	n02 := n0 + n2

	// Positions 1..n (mod 3 != 0), the "12" subsequence.
	s12 := make([]int32, n02+3)
	j := 0
	for i := 0; i < n+n0-n1; i++ {
		if i%3 != 0 {
			s12[j] = int32(i)
			j++
		}
	}

	// Radix-sort the "12" positions by their leading triplet, least
	// significant character first.
	sa12 := radixPass(s12[:n02], s, 2, k)
	sorted1 := radixPass(sa12, s, 1, k)
	sa12 = radixPass(sorted1, s, 0, k)

	// Name each sorted triplet; equal triplets get equal names.
	ranks12 := make([]int32, n02+3)
	name := int32(0)
	c0, c1, c2 := int32(-1), int32(-1), int32(-1)
	for i := 0; i < n02; i++ {
		p := int(sa12[i])
		if s[p] != c0 || s[p+1] != c1 || s[p+2] != c2 {
			name++
			c0, c1, c2 = s[p], s[p+1], s[p+2]
		}
		if sa12[i]%3 == 1 {
			ranks12[sa12[i]/3] = name
		} else {
			ranks12[sa12[i]/3+int32(n0)] = name
		}
	}

	if int(name) < n02 {
		// Names aren't yet unique: recurse on the renamed sequence, then
		// translate the recursive suffix array back into ranks.
		rec := dc3(ranks12, n02, int(name))
		sa12 = rec
		for i := 0; i < n02; i++ {
			ranks12[rec[i]] = int32(i + 1)
		}
	} else {
		// Names are already a permutation of [1, n02]; invert directly.
		sa12 = make([]int32, n02)
		for i := 0; i < n02; i++ {
			sa12[ranks12[i]-1] = int32(i)
		}
	}

	// Sort the "0" (divisible-by-3) positions using the now-fully-ordered
	// "12" positions as the secondary key.
	s0 := make([]int32, n0)
	j = 0
	for i := 0; i < n02; i++ {
		if sa12[i] < int32(n0) {
			s0[j] = 3 * sa12[i]
			j++
		}
	}
	sa0 := radixPass(s0, s, 0, k)

	// Merge the "0" and "12" suffix arrays by direct comparison.
	sa := make([]int32, n)
	p, t, kk := 0, n0-n1, 0
	for kk < n {
		var i int32
		if sa12[t] < int32(n0) {
			i = sa12[t]*3 + 1
		} else {
			i = (sa12[t]-int32(n0))*3 + 2
		}
		jPos := sa0[p]

		var takeI bool
		if sa12[t] < int32(n0) {
			takeI = leq2(s[i], ranks12[sa12[t]+int32(n0)], s[jPos], ranks12[jPos/3])
		} else {
			takeI = leq3(s[i], s[i+1], ranks12[sa12[t]-int32(n0)+1], s[jPos], s[jPos+1], ranks12[jPos/3+int32(n0)])
		}

		if takeI {
			sa[kk] = i
			t++
			if t == n02 {
				kk++
				for p < n0 {
					sa[kk] = sa0[p]
					p++
					kk++
				}
			}
		} else {
			sa[kk] = jPos
			p++
			if p == n0 {
				kk++
				for t < n02 {
					if sa12[t] < int32(n0) {
						sa[kk] = sa12[t]*3 + 1
					} else {
						sa[kk] = (sa12[t]-int32(n0))*3 + 2
					}
					kk++
					t++
				}
			}
		}
		kk++
	}
	return sa
}
