package bwt

import "errors"

// Sentinel errors returned by Build and by the query surface. Callers
// should compare with errors.Is rather than on the formatted message.
var (
	// ErrEmptyReference is returned when Build is called with a
	// zero-length reference, before the sentinel is appended.
	ErrEmptyReference = errors.New("fmindex: reference is empty")

	// ErrInvalidAlphabet is returned by Build when the reference contains
	// a byte outside {A, C, G, N, T, $}, or a '$' anywhere but the final
	// position. Count and Locate do not return it: a pattern with such a
	// byte yields an empty result.
	ErrInvalidAlphabet = errors.New("fmindex: symbol outside the {$,A,C,G,N,T} alphabet")

	// ErrInvalidStrategy is returned for an Options.Strategy value that
	// isn't one of DC3, MM, or Simple.
	ErrInvalidStrategy = errors.New("fmindex: unknown suffix array strategy")

	// ErrInvalidSampleRate is returned when Options.SASampleRate < 1.
	ErrInvalidSampleRate = errors.New("fmindex: sa sample rate must be >= 1")

	// ErrQueryOutOfRange is returned by Access, Rank, GetSA, and Extract
	// when an index argument falls outside the valid row/position range.
	ErrQueryOutOfRange = errors.New("fmindex: query index out of range")
)
