package bwt

import "fmt"

// The index is fixed to the 6-symbol DNA alphabet { $, A, C, G, N, T },
// in that lexicographic order ($ sorts first). codeOf maps a byte to its
// position in that order, or -1 if the byte isn't in the alphabet.
const alphabetSize = 6

func codeOf(b byte) int {
	switch b {
	case '$':
		return 0
	case 'A':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	case 'N':
		return 4
	case 'T':
		return 5
	default:
		return -1
	}
}

// normalizeReference validates that s is over the DNA alphabet, that any
// '$' in s only occurs as the final byte, and appends a sentinel if one
// isn't already present.
func normalizeReference(s string) (string, error) {
	if len(s) == 0 {
		return "", ErrEmptyReference
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '$' && i != len(s)-1 {
			return "", fmt.Errorf("%w: '$' at position %d, only the final byte may be a sentinel", ErrInvalidAlphabet, i)
		}
		if codeOf(b) < 0 {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrInvalidAlphabet, b, i)
		}
	}
	if s[len(s)-1] != '$' {
		s += "$"
	}
	return s, nil
}
