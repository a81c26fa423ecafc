package bwt

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, ref string, opts Options) *Index {
	t.Helper()
	idx, err := Build(ref, opts)
	require.NoError(t, err)
	return idx
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	tests := map[string]struct {
		ref     string
		opts    Options
		wantErr error
	}{
		"empty reference":    {ref: "", opts: DefaultOptions(), wantErr: ErrEmptyReference},
		"bad symbol":         {ref: "ACXT", opts: DefaultOptions(), wantErr: ErrInvalidAlphabet},
		"sample rate zero":   {ref: "ACGT", opts: Options{Strategy: DC3, SASampleRate: 0}, wantErr: ErrInvalidSampleRate},
		"unknown strategy":   {ref: "ACGT", opts: Options{Strategy: Strategy(99), SASampleRate: 1}, wantErr: ErrInvalidStrategy},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Build(tc.ref, tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEndToEndLiteralScenarios(t *testing.T) {
	tests := map[string]struct {
		ref           string
		wantLen       int
		countQueries  map[string]int
		locateQueries map[string][]int
	}{
		"A": {
			ref:          "A",
			wantLen:      1,
			countQueries: map[string]int{"A": 1},
			locateQueries: map[string][]int{
				"A": {0},
			},
		},
		"AAAA": {
			ref:          "AAAA",
			wantLen:      4,
			countQueries: map[string]int{"AA": 3},
			locateQueries: map[string][]int{
				"AA": {0, 1, 2},
			},
		},
		"ACGT": {
			ref:          "ACGT",
			wantLen:      4,
			countQueries: map[string]int{"CG": 1},
			locateQueries: map[string][]int{
				"CG": {1},
			},
		},
		"GATTACA": {
			ref:     "GATTACA",
			wantLen: 7,
			locateQueries: map[string][]int{
				"A":       {1, 4, 6},
				"TA":      {3},
				"GATTACA": {0},
			},
		},
		"NANANA": {
			ref:     "NANANA",
			wantLen: 6,
			locateQueries: map[string][]int{
				"NA": {0, 2, 4},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			idx := buildIndex(t, tc.ref, DefaultOptions())
			assert.Equal(t, tc.wantLen, idx.Len())
			assert.Equal(t, tc.ref, idx.Reconstruct())

			for pattern, want := range tc.countQueries {
				got, err := idx.Count(pattern)
				require.NoError(t, err)
				assert.Equal(t, want, got, "count(%q)", pattern)
			}
			for pattern, want := range tc.locateQueries {
				got, err := idx.Locate(pattern)
				require.NoError(t, err)
				sort.Ints(got)
				assert.Equal(t, want, got, "locate(%q)", pattern)
			}
		})
	}
}

func TestLocateUnknownSymbolReturnsEmpty(t *testing.T) {
	idx := buildIndex(t, "GATTACA", DefaultOptions())
	got, err := idx.Locate("X")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankAtLastRowMatchesSymbolCount(t *testing.T) {
	idx := buildIndex(t, "ACGTACGT", DefaultOptions())
	got, err := idx.Rank('A', idx.Len())
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestSampledSAAgreesWithFullSA(t *testing.T) {
	ref := "ACGTACGT"
	full := buildIndex(t, ref, DefaultOptions())

	for _, rate := range []int{1, 2, 4} {
		sampled := buildIndex(t, ref, Options{Strategy: DC3, SASampleRate: rate})
		for i := 0; i < full.n; i++ {
			want, err := full.GetSA(i)
			require.NoError(t, err)
			got, err := sampled.GetSA(i)
			require.NoError(t, err)
			assert.Equal(t, want, got, "rate=%d i=%d", rate, i)
		}
	}
}

func TestExtractMatchesReconstructSubstring(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		ref := randomReferenceSeq(rng, 1+rng.Intn(60))
		ref = ref[:len(ref)-1] // strip the sentinel normalizeReference adds back
		idx := buildIndex(t, ref, DefaultOptions())
		full := idx.Reconstruct()
		require.Equal(t, ref, full)

		start := rng.Intn(len(full))
		end := start + rng.Intn(len(full)-start+1)
		got, err := idx.Extract(start, end)
		require.NoError(t, err)
		assert.Equal(t, full[start:end], got, "ref=%q start=%d end=%d", ref, start, end)
	}
}

func TestQueryOutOfRange(t *testing.T) {
	idx := buildIndex(t, "ACGT", DefaultOptions())
	_, err := idx.Access(-1)
	require.ErrorIs(t, err, ErrQueryOutOfRange)
	_, err = idx.Access(idx.n)
	require.ErrorIs(t, err, ErrQueryOutOfRange)
	_, err = idx.GetSA(idx.n)
	require.ErrorIs(t, err, ErrQueryOutOfRange)
}

// TestConcurrentQueries exercises Access, Rank, GetSA, Count and Locate
// from many goroutines against one shared Index, to be run with -race.
func TestConcurrentQueries(t *testing.T) {
	idx := buildIndex(t, "GATTACAGATTACAGATTACA", Options{Strategy: DC3, SASampleRate: 4})

	var wg sync.WaitGroup
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				row := rng.Intn(idx.n)
				if _, err := idx.Access(row); err != nil {
					t.Error(err)
				}
				if _, err := idx.Rank(dnaAlphabet[rng.Intn(len(dnaAlphabet))], row); err != nil {
					t.Error(err)
				}
				if _, err := idx.GetSA(row); err != nil {
					t.Error(err)
				}
				if _, err := idx.Count("ATTACA"); err != nil {
					t.Error(err)
				}
				if _, err := idx.Locate("GATTACA"); err != nil {
					t.Error(err)
				}
			}
		}(int64(g))
	}
	wg.Wait()
}

func TestStatsReportsConsistentSizes(t *testing.T) {
	idx := buildIndex(t, "GATTACAGATTACA", Options{Strategy: DC3, SASampleRate: 2})
	st := idx.Stats()
	assert.Equal(t, idx.n, st.ReferenceLen)
	assert.Equal(t, 2, st.SampleRate)
	assert.Equal(t, idx.n, st.BWTBytes)
	assert.Equal(t, idx.n, st.WaveletNodeBits[0])
}

func FuzzReconstructIsInverseOfBuild(f *testing.F) {
	f.Add("ACGT")
	f.Add("GATTACA")
	f.Add("NANANA")
	f.Fuzz(func(t *testing.T, ref string) {
		clean := make([]byte, 0, len(ref))
		for i := 0; i < len(ref); i++ {
			if codeOf(ref[i]) >= 0 && ref[i] != '$' {
				clean = append(clean, ref[i])
			}
		}
		if len(clean) == 0 {
			t.Skip()
		}
		idx, err := Build(string(clean), DefaultOptions())
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if got := idx.Reconstruct(); got != string(clean) {
			t.Fatalf("Reconstruct() = %q, want %q", got, clean)
		}
	})
}
