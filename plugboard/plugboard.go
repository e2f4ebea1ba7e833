// Package plugboard implements the Steckerbrett: a fixed stage that swaps
// configured letter pairs before and after the rotor stack.
//
// Pairs are symmetric and disjoint by construction, which makes the swap
// its own inverse: Swap(Swap(x)) == x for every x. Letters not wired into
// a pair pass through unchanged, and an empty board is the identity.
//
// Boards are written in the conventional pair notation, space-separated
// two-letter groups: "AG BK CM". A Board is immutable once built and safe
// for unsynchronized concurrent reads.
package plugboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smnsjas/go-enigma/alphabet"
)

// ErrInvalidPairs is returned when a pair specification is malformed, wires
// a letter to itself, or wires one letter into two pairs.
var ErrInvalidPairs = errors.New("invalid plugboard pairs")

// HistoricPairs is the pair set the original machine shipped hardwired.
// Offered as a preset; boards default to identity.
const HistoricPairs = "AG BK CM DZ EL FT HV IP JX NQ"

// Board is an involutive letter-pair substitution.
type Board struct {
	swap [alphabet.Size]int
}

// Identity returns a board with no pairs wired.
func Identity() *Board {
	b := &Board{}
	for i := range b.swap {
		b.swap[i] = i
	}
	return b
}

// New builds a board from pair notation ("AG BK CM"). An empty string
// yields the identity board. Fails with ErrInvalidPairs on malformed
// groups, self-pairs, or a letter used twice.
func New(pairs string) (*Board, error) {
	b := Identity()

	for _, group := range strings.Fields(pairs) {
		runes := []rune(group)
		if len(runes) != 2 {
			return nil, fmt.Errorf("%w: group %q is not two letters",
				ErrInvalidPairs, group)
		}

		a, err := alphabet.Index(runes[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPairs, err)
		}
		z, err := alphabet.Index(runes[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPairs, err)
		}

		if a == z {
			return nil, fmt.Errorf("%w: %c wired to itself",
				ErrInvalidPairs, alphabet.Letter(a))
		}
		if b.swap[a] != a || b.swap[z] != z {
			return nil, fmt.Errorf("%w: %q reuses a wired letter",
				ErrInvalidPairs, group)
		}

		b.swap[a] = z
		b.swap[z] = a
	}
	return b, nil
}

// Swap returns the paired index, or the index itself when unwired.
func (b *Board) Swap(i int) int {
	return b.swap[i]
}

// Pairs returns the board's wiring in canonical pair notation, sorted by
// the first letter of each pair. The identity board returns "".
func (b *Board) Pairs() string {
	var groups []string
	for i, j := range b.swap {
		if j > i {
			groups = append(groups, string([]rune{alphabet.Letter(i), alphabet.Letter(j)}))
		}
	}
	return strings.Join(groups, " ")
}
