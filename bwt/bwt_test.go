package bwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBWTLiteralScenarios(t *testing.T) {
	tests := map[string]struct {
		ref  string
		want string
	}{
		"A":    {ref: "A$", want: "A$"},
		"AAAA": {ref: "AAAA$", want: "AAAA$"},
		// SA("ACGT$") = [4,0,1,2,3], so row 1 (SA=0) wraps to ref[n-1]='$'
		// and the sentinel lands mid-string rather than at the end.
		"ACGT": {ref: "ACGT$", want: "T$ACG"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := dc3SuffixArray(tc.ref)
			got := computeBWT(tc.ref, sa)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestCTableConsistentWithBWTCounts(t *testing.T) {
	ref := "GATTACA$"
	sa := dc3SuffixArray(ref)
	bwt := computeBWT(ref, sa)
	ct := buildCTable(bwt)

	var counts [alphabetSize]int
	for _, b := range bwt {
		counts[codeOf(b)]++
	}
	sum := 0
	for i := 0; i < alphabetSize; i++ {
		assert.Equal(t, sum, ct.cumSum[i], "symbol index %d", i)
		sum += counts[i]
	}
	assert.Equal(t, len(bwt), ct.cumSum[alphabetSize])
	assert.Equal(t, len(bwt), sum)
}
