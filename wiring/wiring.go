// Package wiring defines the immutable permutation tables at the heart of
// the machine: one Table per rotor type plus the Reflector.
//
// # Table Structure
//
// A wiring table is a bijection over the 26 contact indices. It is stored
// twice, forward and inverse, so that current can be traced through a rotor
// in both directions without a search:
//
//	┌────────────────────────────────────────────────────────┐
//	│  forward[i]  - entry contact i → exit contact          │
//	├────────────────────────────────────────────────────────┤
//	│  backward[j] - exit contact j → entry contact          │
//	└────────────────────────────────────────────────────────┘
//
// The invariant Backward(Forward(i)) == i holds for every i and is enforced
// by construction: NewTable derives backward from forward and rejects any
// table that is not a bijection.
//
// The Reflector is one additional table that must be an involution with no
// fixed point: Map(Map(i)) == i and Map(i) != i for all i. Both properties
// are validated at construction. The no-fixed-point property is what makes
// the whole machine reciprocal — and, famously, what prevents any letter
// from ever enciphering to itself.
//
// Tables are written in the conventional notation: a 26-letter string whose
// k-th letter is the image of the k-th alphabet letter ("EKMF..." means
// A→E, B→K, C→M, D→F, ...).
package wiring

import (
	"errors"
	"fmt"

	"github.com/smnsjas/go-enigma/alphabet"
)

// ErrInvalidWiring is returned when a wiring specification is not a valid
// permutation, or when a reflector is not a fixed-point-free involution.
var ErrInvalidWiring = errors.New("invalid wiring")

// Table is an immutable rotor wiring: a permutation of the contact indices
// and its inverse. Safe for unsynchronized concurrent reads; a single Table
// is shared by every rotor of its type.
type Table struct {
	forward  [alphabet.Size]int
	backward [alphabet.Size]int
}

// NewTable builds a wiring table from its conventional 26-letter notation.
// It fails with ErrInvalidWiring unless the letters form a bijection over
// the alphabet.
func NewTable(letters string) (*Table, error) {
	fwd, err := parsePermutation(letters)
	if err != nil {
		return nil, err
	}

	t := &Table{forward: fwd}
	for i, j := range fwd {
		t.backward[j] = i
	}
	return t, nil
}

// Forward maps an entry contact to its exit contact.
func (t *Table) Forward(i int) int {
	return t.forward[i]
}

// Backward maps an exit contact back to its entry contact.
// Backward(Forward(i)) == i for all i.
func (t *Table) Backward(j int) int {
	return t.backward[j]
}

// Reflector is an immutable fixed-point-free involution. Safe for
// unsynchronized concurrent reads and for sharing across machines.
type Reflector struct {
	table [alphabet.Size]int
}

// NewReflector builds a reflector from its conventional 26-letter notation.
// It fails with ErrInvalidWiring unless the letters form a bijection that
// is self-inverse and maps no contact to itself.
func NewReflector(letters string) (*Reflector, error) {
	table, err := parsePermutation(letters)
	if err != nil {
		return nil, err
	}

	for i, j := range table {
		if j == i {
			return nil, fmt.Errorf("%w: reflector maps %c to itself",
				ErrInvalidWiring, alphabet.Letter(i))
		}
		if table[j] != i {
			return nil, fmt.Errorf("%w: reflector is not self-inverse at %c",
				ErrInvalidWiring, alphabet.Letter(i))
		}
	}
	return &Reflector{table: table}, nil
}

// Map reflects a contact to its wired partner.
func (r *Reflector) Map(i int) int {
	return r.table[i]
}

// parsePermutation converts 26-letter notation to index form, verifying
// that every alphabet letter appears exactly once.
func parsePermutation(letters string) ([alphabet.Size]int, error) {
	var table [alphabet.Size]int

	runes := []rune(letters)
	if len(runes) != alphabet.Size {
		return table, fmt.Errorf("%w: expected %d letters, got %d",
			ErrInvalidWiring, alphabet.Size, len(runes))
	}

	var seen [alphabet.Size]bool
	for i, r := range runes {
		j, err := alphabet.Index(r)
		if err != nil {
			return table, fmt.Errorf("%w: %v", ErrInvalidWiring, err)
		}
		if seen[j] {
			return table, fmt.Errorf("%w: %c appears more than once",
				ErrInvalidWiring, alphabet.Letter(j))
		}
		seen[j] = true
		table[i] = j
	}
	return table, nil
}
