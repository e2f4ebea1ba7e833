// Package rotor implements a single substitution wheel: an immutable wiring
// table combined with the per-instance state that makes the machine
// polyalphabetic.
//
// A rotor carries three settings:
//
//   - position: where the wheel currently sits, advanced one step per
//     keystroke by the stepping mechanism. This is the only mutable field.
//   - ring: the fixed offset between the internal wiring and the external
//     position indicator (the Ringstellung).
//   - notch: the position which, when occupied as a keystroke begins,
//     causes the neighboring wheel to advance.
//
// Current entering contact i while the rotor sits at position p with ring
// setting r actually meets the wiring at contact (i + p - r) mod 26, and
// the wired output is shifted back by the same amount on the way out. The
// identical shift is applied for both directions, so Backward inverts
// Forward at every (position, ring) combination.
//
// A Rotor is owned by exactly one machine and is not safe for concurrent
// use; the shared wiring table it references is read-only and is.
package rotor

import (
	"errors"
	"fmt"

	"github.com/smnsjas/go-enigma/alphabet"
	"github.com/smnsjas/go-enigma/wiring"
)

// ErrOutOfRange is returned when a position, ring or notch setting falls
// outside the alphabet.
var ErrOutOfRange = errors.New("rotor setting out of range")

// Rotor is one substitution wheel. Position advances; wiring, ring and
// notch are fixed at construction.
type Rotor struct {
	table    *wiring.Table
	position int
	ring     int
	notch    int
}

// New creates a rotor on the given wiring with its initial position, ring
// setting and notch, each a canonical index in [0, 26).
func New(table *wiring.Table, position, ring, notch int) (*Rotor, error) {
	for _, s := range []struct {
		name  string
		value int
	}{
		{"position", position},
		{"ring", ring},
		{"notch", notch},
	} {
		if s.value < 0 || s.value >= alphabet.Size {
			return nil, fmt.Errorf("%w: %s %d", ErrOutOfRange, s.name, s.value)
		}
	}
	return &Rotor{table: table, position: position, ring: ring, notch: notch}, nil
}

// Advance rotates the wheel one step. This is the rotor's only mutator
// during normal operation; it is driven solely by the stepping mechanism.
func (r *Rotor) Advance() {
	r.position = (r.position + 1) % alphabet.Size
}

// AtNotch reports whether the wheel currently sits on its notch. The
// stepping mechanism reads this before any wheel has moved this keystroke.
func (r *Rotor) AtNotch() bool {
	return r.position == r.notch
}

// Position returns the wheel's current position.
func (r *Rotor) Position() int {
	return r.position
}

// Seek moves the wheel directly to a position, re-keying the machine
// without reconstructing it. Ring and notch are unaffected.
func (r *Rotor) Seek(position int) error {
	if position < 0 || position >= alphabet.Size {
		return fmt.Errorf("%w: position %d", ErrOutOfRange, position)
	}
	r.position = position
	return nil
}

// Forward passes current through the wheel from the entry side.
func (r *Rotor) Forward(i int) int {
	shifted := mod26(i + r.position - r.ring)
	return mod26(r.table.Forward(shifted) - r.position + r.ring)
}

// Backward passes current through the wheel from the reflector side,
// inverting Forward for the same position and ring.
func (r *Rotor) Backward(i int) int {
	shifted := mod26(i + r.position - r.ring)
	return mod26(r.table.Backward(shifted) - r.position + r.ring)
}

// mod26 reduces into [0, 26) even when the argument is negative.
func mod26(n int) int {
	return ((n % alphabet.Size) + alphabet.Size) % alphabet.Size
}
