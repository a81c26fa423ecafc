package bwt

// buildSampledSA keeps only the SA entries whose value is a multiple of
// rate, in row order, plus a bitmap recording which rows survived and a
// rank dictionary over that bitmap so a retained SA value can be found
// by row index in O(1) amortized time.
func buildSampledSA(sa []int32, rate int) (sampled []int32, bitmap *bitVector, rank *rankDict) {
	bitsIn := make([]bool, len(sa))
	for i, v := range sa {
		if int(v)%rate == 0 {
			bitsIn[i] = true
			sampled = append(sampled, v)
		}
	}
	bitmap = newBitVector(bitsIn)
	rank = newRankDict(bitmap)
	return sampled, bitmap, rank
}
