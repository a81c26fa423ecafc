package bwt

// manberMyersSuffixArray builds the suffix array of ref by doubling: sort
// suffixes by their first character, then by their first two characters,
// then four, and so on, until every suffix has a unique rank. Each
// doubling step needs only a radix sort on the newly-added half of the
// key, since the array is already ordered by the half it had last round.
// O(n log n).
func manberMyersSuffixArray(ref string) []int32 {
	x := []byte(ref)
	sa := mmInitialOrder(len(x))
	buf := make([]int32, len(sa))
	rank, sigma := mmInitialRank(x)
	mmRadixSortBuckets(rank, sa, buf, 0)

	bufP, rankP := &buf, &rank
	for step := int32(1); int(sigma) < len(rank); step *= 2 {
		mmRadixSortAll(*rankP, sa, *bufP, step)
		sigma = mmUpdateRank(sa, *rankP, *bufP, step)
		bufP, rankP = rankP, bufP
	}
	return sa
}

// mmInitialRank assigns each byte of x its position in the fixed DNA
// alphabet order (codeOf), shifted up by one since 0 is reserved by
// mmRank for reads past the end of the string. sigma counts only the
// symbols that actually occur in x, so the doubling loop below can stop
// as soon as every suffix has a unique rank.
func mmInitialRank(x []byte) (rank []int32, sigma int32) {
	var seen [alphabetSize]bool
	for _, b := range x {
		seen[codeOf(b)] = true
	}
	for _, present := range seen {
		if present {
			sigma++
		}
	}

	rank = make([]int32, len(x))
	for i, b := range x {
		rank[i] = int32(codeOf(b) + 1)
	}
	return rank, sigma
}

func mmInitialOrder(n int) []int32 {
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	return sa
}

// mmRank reads rank[i] with implicit zero padding past the end of rank,
// so suffixes that run off the end of the string compare as smaller.
func mmRank(rank []int32, i int32) int32 {
	if int(i) < len(rank) {
		return rank[i]
	}
	return 0
}

// mmRadixSortBuckets stably sorts all of sa by mmRank(sa[i]+offset) using
// an LSD radix sort over 8-bit digits of the (32-bit) rank.
func mmRadixSortBuckets(rank, sa, buf []int32, offset int32) {
	saP, bufP := &sa, &buf
	for shift := uint(0); shift < 32; shift += 8 {
		var buckets [256]int32
		for _, v := range *saP {
			buckets[byte(mmRank(rank, v+offset)>>shift)]++
		}
		acc := int32(0)
		for i := range buckets {
			buckets[i], acc = acc, acc+buckets[i]
		}
		for _, v := range *saP {
			b := byte(mmRank(rank, v+offset) >> shift)
			(*bufP)[buckets[b]] = v
			buckets[b]++
		}
		saP, bufP = bufP, saP
	}
	// Four (even) passes leave the result back in sa.
}

// mmRadixSortAll re-sorts each existing same-rank bucket of sa by
// mmRank(sa[i]+offset); sa is already ordered by rank[sa[i]], so only
// same-rank runs need a further pass.
func mmRadixSortAll(rank, sa, buf []int32, offset int32) {
	start := 0
	for start < len(sa) {
		end := start
		for end < len(sa) && rank[sa[start]] == rank[sa[end]] {
			end++
		}
		if end-start > 1 {
			mmRadixSortBuckets(rank, sa[start:end], buf[start:end], offset)
		}
		start = end
	}
}

// mmUpdateRank computes, for each suffix in sa (assumed sorted by the pair
// (rank[sa[i]], rank[sa[i]+step])), its new combined rank, written to out,
// and returns the number of distinct ranks (the new alphabet size).
func mmUpdateRank(sa, rank, out []int32, step int32) (sigma int32) {
	pairKey := func(i int32) int64 {
		return int64(rank[sa[i]])<<32 | int64(mmRank(rank, sa[i]+step))
	}

	out[sa[0]] = 0
	name := int32(0)
	prev := pairKey(0)
	for i := 1; i < len(sa); i++ {
		cur := pairKey(int32(i))
		if cur != prev {
			name++
		}
		prev = cur
		out[sa[i]] = name
	}
	return name + 1
}
