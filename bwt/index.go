package bwt

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Index is a succinct FM-index over a DNA reference: a (possibly
// sampled) suffix array, the reference's Burrows-Wheeler transform, a
// C-table, and a wavelet tree over the BWT. It is immutable once built;
// every query method is a pure function of the index and may be called
// from any number of goroutines concurrently without synchronization.
type Index struct {
	n    int // length of the reference, including the sentinel
	rate int

	sa       []int32 // full SA if rate==1, else only the sampled entries, in row order
	saBitmap *bitVector
	saRank   *rankDict

	bwt  []byte
	cTab *cTable
	wt   *waveletTree
}

// IndexStats reports the size of an index's constituent structures, for
// diagnostics and capacity planning.
type IndexStats struct {
	ReferenceLen     int
	SampledSAEntries int
	SampleRate       int
	BWTBytes         int
	WaveletNodeBits  [5]int
}

// Build constructs an Index over ref, a byte string over {A, C, G, N, T}
// optionally terminated by '$'. opts.Strategy selects which suffix-array
// algorithm runs; all three produce the same SA. opts.SASampleRate
// controls the space/time tradeoff of get_sa/locate.
func Build(ref string, opts Options) (idx *Index, err error) {
	defer indexRecovery("Build", &err)

	if err := opts.validate(); err != nil {
		return nil, err
	}
	normalized, err := normalizeReference(ref)
	if err != nil {
		return nil, err
	}

	var sa []int32
	switch opts.Strategy {
	case Simple:
		sa = simpleSuffixArray(normalized)
	case MM:
		sa = manberMyersSuffixArray(normalized)
	case DC3:
		sa = dc3SuffixArray(normalized)
	default:
		return nil, ErrInvalidStrategy
	}

	bwtBytes := computeBWT(normalized, sa)
	wt := buildWaveletTree(bwtBytes)
	ct := buildCTable(bwtBytes)

	idx = &Index{
		n:    len(normalized),
		rate: opts.SASampleRate,
		bwt:  bwtBytes,
		cTab: ct,
		wt:   wt,
	}
	if opts.SASampleRate == 1 {
		idx.sa = sa
	} else {
		idx.sa, idx.saBitmap, idx.saRank = buildSampledSA(sa, opts.SASampleRate)
	}
	return idx, nil
}

func indexRecovery(operation string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("bwt: %s: %v", operation, r)
	}
}

// Len returns the length of the original reference, excluding the
// sentinel.
func (idx *Index) Len() int { return idx.n - 1 }

func (idx *Index) checkRange(i int) error {
	if i < 0 || i >= idx.n {
		return ErrQueryOutOfRange
	}
	return nil
}

// Access returns BWT[i].
func (idx *Index) Access(i int) (byte, error) {
	if err := idx.checkRange(i); err != nil {
		return 0, err
	}
	return idx.wt.access(i), nil
}

// Rank returns the number of occurrences of c in BWT[0..i], inclusive.
func (idx *Index) Rank(c byte, i int) (int, error) {
	if err := idx.checkRange(i); err != nil {
		return 0, err
	}
	return idx.wt.rank(c, i), nil
}

// GetSA returns SA[i], recovering it via an LF-walk to the nearest
// sampled row when the index was built with sa_sample_rate > 1.
func (idx *Index) GetSA(i int) (int, error) {
	if err := idx.checkRange(i); err != nil {
		return 0, err
	}
	if idx.rate == 1 {
		return int(idx.sa[i]), nil
	}

	steps := 0
	j := i
	for !idx.saBitmap.get(j) {
		c := idx.wt.access(j)
		j = idx.lfStep(c, j)
		steps++
	}
	pos := idx.saRank.Rank1(j) - 1
	return int(idx.sa[pos]) + steps, nil
}

// lfStep computes the LF-mapping of row i, given that BWT[i] == c.
func (idx *Index) lfStep(c byte, i int) int {
	return idx.cTab.rank(c) + idx.wt.rank(c, i) - 1
}

// Reconstruct returns the original reference, excluding the sentinel, by
// walking the LF-mapping backwards from row 0.
func (idx *Index) Reconstruct() string {
	buf := make([]byte, idx.n-1)
	row := 0
	for k := idx.n - 2; k >= 0; k-- {
		c := idx.wt.access(row)
		buf[k] = c
		row = idx.lfStep(c, row)
	}
	return string(buf)
}

// Extract returns reference[start:end] (end exclusive) without fully
// reconstructing the reference: it locates the row whose suffix starts
// at end, then LF-walks backwards exactly end-start times, the same way
// Reconstruct walks from row 0.
func (idx *Index) Extract(start, end int) (extracted string, err error) {
	defer indexRecovery("Extract", &err)

	if start < 0 || end > idx.n-1 || start > end {
		return "", ErrQueryOutOfRange
	}
	if start == end {
		return "", nil
	}

	row, err := idx.rowOfPosition(end)
	if err != nil {
		return "", err
	}
	buf := make([]byte, end-start)
	for k := end - 1; k >= start; k-- {
		c := idx.wt.access(row)
		buf[k-start] = c
		row = idx.lfStep(c, row)
	}
	return string(buf), nil
}

// rowOfPosition returns the row i such that SA[i] == pos, i.e. the row
// whose suffix begins exactly at reference position pos.
func (idx *Index) rowOfPosition(pos int) (int, error) {
	for row := 0; row < idx.n; row++ {
		v, err := idx.GetSA(row)
		if err != nil {
			return 0, err
		}
		if v == pos {
			return row, nil
		}
	}
	return 0, ErrQueryOutOfRange
}

// Count returns the number of times pattern occurs in the reference.
func (idx *Index) Count(pattern string) (count int, err error) {
	defer indexRecovery("Count", &err)

	lo, hi := idx.backwardSearch(pattern)
	if hi <= lo {
		return 0, nil
	}
	return hi - lo, nil
}

// Locate returns every reference offset at which pattern occurs.
func (idx *Index) Locate(pattern string) (offsets []int, err error) {
	defer indexRecovery("Locate", &err)

	lo, hi := idx.backwardSearch(pattern)
	if hi <= lo {
		return nil, nil
	}
	offsets = make([]int, 0, hi-lo)
	for row := lo; row < hi; row++ {
		pos, err := idx.GetSA(row)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, pos)
	}
	slices.Sort(offsets)
	return offsets, nil
}

// backwardSearch narrows the row interval [lo, hi) to the rows whose
// suffix is prefixed by pattern, scanning pattern right-to-left. A
// pattern containing a symbol outside the alphabet yields an empty
// (lo == hi) interval rather than an error.
func (idx *Index) backwardSearch(pattern string) (lo, hi int) {
	lo, hi = 0, idx.n
	for i := len(pattern) - 1; i >= 0; i-- {
		if hi <= lo {
			return lo, hi
		}
		c := pattern[i]
		if codeOf(c) < 0 {
			return 0, 0
		}
		lo = idx.cTab.rank(c) + idx.rankBefore(c, lo)
		hi = idx.cTab.rank(c) + idx.rankBefore(c, hi)
	}
	return lo, hi
}

// rankBefore returns rank(c, i-1), i.e. occurrences of c strictly before
// row i, defined as 0 for i <= 0.
func (idx *Index) rankBefore(c byte, i int) int {
	if i <= 0 {
		return 0
	}
	return idx.wt.rank(c, i-1)
}

// Stats reports the size of the index's constituent structures.
func (idx *Index) Stats() IndexStats {
	st := IndexStats{
		ReferenceLen:     idx.n,
		SampleRate:       idx.rate,
		BWTBytes:         len(idx.bwt),
		SampledSAEntries: len(idx.sa),
	}
	for i, rd := range idx.wt.bits {
		st.WaveletNodeBits[i] = rd.bv.len()
	}
	return st
}
