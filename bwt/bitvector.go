package bwt

import "math/bits"

// bitVector is a dense, packed bit array used both for the SA sampling
// bitmap and for each wavelet-tree node's bit vector. Rank queries over it
// use hardware popcount (math/bits.OnesCount64) rather than a per-bit scan.
type bitVector struct {
	words  []uint64
	length int
}

func newBitVector(bitsIn []bool) *bitVector {
	bv := &bitVector{
		length: len(bitsIn),
		words:  make([]uint64, (len(bitsIn)+63)/64),
	}
	for i, b := range bitsIn {
		if b {
			bv.words[i/64] |= 1 << uint(i%64)
		}
	}
	return bv
}

func (bv *bitVector) len() int { return bv.length }

func (bv *bitVector) get(i int) bool {
	return bv.words[i/64]&(1<<uint(i%64)) != 0
}

// countOnes returns the number of set bits in [lo, hi] inclusive. An empty
// range (lo > hi) counts as zero, matching the rank-at-index(-1)=0 and
// empty-bit-vector edge cases.
func (bv *bitVector) countOnes(lo, hi int) int {
	if lo > hi || hi < 0 || bv.length == 0 {
		return 0
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= bv.length {
		hi = bv.length - 1
	}

	wLo, wHi := lo/64, hi/64
	if wLo == wHi {
		return bits.OnesCount64(bv.words[wLo] & wordMask(lo%64, hi%64))
	}

	count := bits.OnesCount64(bv.words[wLo] & wordMask(lo%64, 63))
	for w := wLo + 1; w < wHi; w++ {
		count += bits.OnesCount64(bv.words[w])
	}
	count += bits.OnesCount64(bv.words[wHi] & wordMask(0, hi%64))
	return count
}

// wordMask returns a uint64 with bits [loBit, hiBit] (inclusive, 0-63) set.
func wordMask(loBit, hiBit int) uint64 {
	mask := ^uint64(0) >> uint(63-hiBit)
	mask &^= (uint64(1) << uint(loBit)) - 1
	return mask
}

// rankDict is a bucketed rank dictionary over a bitVector: a bucket array
// of precomputed popcounts at stride max(floor(log2(m)), 1). Bucket 0
// naturally holds popcount(B[0:1]) since the same accumulation loop below
// handles bucket 0 and every later bucket uniformly.
type rankDict struct {
	bv     *bitVector
	bucket []int
	stride int
}

func bucketStride(m int) int {
	if m <= 1 {
		return 1
	}
	return bits.Len(uint(m)) - 1 // floor(log2(m))
}

func newRankDict(bv *bitVector) *rankDict {
	m := bv.len()
	rd := &rankDict{bv: bv, stride: bucketStride(m)}
	if m == 0 {
		return rd
	}
	numBuckets := (m-1)/rd.stride + 1
	rd.bucket = make([]int, numBuckets)
	rank := 0
	for i := 0; i < m; i++ {
		if bv.get(i) {
			rank++
		}
		if i%rd.stride == 0 {
			rd.bucket[i/rd.stride] = rank
		}
	}
	return rd
}

// Rank1 returns the number of 1-bits in B[0..i], inclusive. Rank1(-1) is 0.
func (r *rankDict) Rank1(i int) int {
	if i < 0 {
		return 0
	}
	bIdx := i / r.stride
	base := r.bucket[bIdx]
	return base + r.bv.countOnes(bIdx*r.stride+1, i)
}

// Rank0 returns the number of 0-bits in B[0..i], inclusive. Rank0(-1) is 0.
func (r *rankDict) Rank0(i int) int {
	if i < 0 {
		return 0
	}
	return (i + 1) - r.Rank1(i)
}

// RankBit returns Rank1(i) if bit is true, else Rank0(i).
func (r *rankDict) RankBit(bit bool, i int) int {
	if bit {
		return r.Rank1(i)
	}
	return r.Rank0(i)
}
