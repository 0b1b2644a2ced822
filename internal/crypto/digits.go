// Package crypto implements the 6-digit substitution scheme used by NumCrypt.
//
// The scheme is built from two sub-steps:
//   - a per-digit additive shift modulo 10 (+7 when encrypting)
//   - a fixed positional swap exchanging positions (0,2), (1,3), (4,5)
//
// Encryption applies the shift and then the swap; decryption applies the swap
// and then the inverse shift. The swap is an involution, so applying it once
// during decryption undoes the swap applied during encryption.
//
// This is a reversible substitution, not a cryptographic cipher: there is no
// key and no security property beyond obscuring the number at a glance.
package crypto

import (
	"fmt"

	errs "NumCrypt/internal/errors"
)

const (
	// Length is the number of digits in every sequence.
	Length = 6

	// ShiftKey is the additive constant applied to each digit when encrypting.
	ShiftKey = 7
)

// Sequence is an ordered sequence of exactly six digits, each in [0,9],
// representing a 6-digit number by position. The zero value is "000000".
//
// Sequence is a value type: transforms return a new Sequence and never modify
// the receiver, so callers can hold onto intermediate results safely.
type Sequence [Length]byte

// ParseSequence parses a candidate string into a Sequence.
//
// The input must be exactly six ASCII decimal digit characters. Anything else
// (wrong length, signs, whitespace, non-digit characters) fails with an error
// matching errs.ErrInvalidInput. Leading zeros are significant and preserved.
func ParseSequence(s string) (Sequence, error) {
	var seq Sequence
	if len(s) != Length {
		return seq, errs.NewValidationError("number",
			fmt.Sprintf("must be exactly %d characters, got %d", Length, len(s)))
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return seq, errs.NewValidationError("number",
				fmt.Sprintf("character %q at position %d is not a digit", c, i))
		}
		seq[i] = c - '0'
	}
	return seq, nil
}

// String renders the sequence back to a 6-character string, position 0..5,
// with no separators and no leading-zero suppression.
func (s Sequence) String() string {
	var out [Length]byte
	for i, d := range s {
		out[i] = d + '0'
	}
	return string(out[:])
}

// Swap exchanges positions (0,2), (1,3), and (4,5) and returns the result.
//
// The permutation is an involution: s.Swap().Swap() == s for every sequence.
func (s Sequence) Swap() Sequence {
	s[0], s[2] = s[2], s[0]
	s[1], s[3] = s[3], s[1]
	s[4], s[5] = s[5], s[4]
	return s
}

// Shift adds k to every digit modulo 10 and returns the result.
// Negative k is normalized, so Shift(-7) equals Shift(3).
func (s Sequence) Shift(k int) Sequence {
	k = ((k % 10) + 10) % 10
	for i := range s {
		s[i] = byte((int(s[i]) + k) % 10)
	}
	return s
}
