// Package alphabet defines the canonical 26-letter alphabet shared by all
// machine components.
//
// Letters exist only at the boundary; internally every component works on
// canonical indices in [0, 26). Lowercase input is normalized to uppercase
// on the way in. Any other rune is outside the machine's alphabet and is
// rejected with ErrInvalidCharacter.
package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of letters in the machine alphabet.
const Size = 26

// ErrInvalidCharacter is returned when a rune falls outside A-Z after case
// normalization.
var ErrInvalidCharacter = errors.New("character outside alphabet")

// Index converts a letter to its canonical index (A=0 .. Z=25).
// Lowercase letters are accepted and normalized.
func Index(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
	}
}

// Letter converts a canonical index back to its uppercase letter.
// Indices are produced internally, never by callers, so an out-of-range
// value means a broken permutation rather than bad input.
func Letter(i int) rune {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("alphabet: index %d out of range", i))
	}
	return rune('A' + i)
}
