// Package enigma provides a pure Go implementation of the classic
// three-rotor electromechanical cipher machine.
//
// This library implements the transformation engine only - it handles the
// substitution and stepping logic, with no argument parsing or I/O code.
// Consumers feed it letter strings and display the result themselves.
//
// # Architecture
//
// The library is organized into layers, leaves first:
//
//   - alphabet: canonical letter ↔ index codec shared by every layer
//   - wiring: immutable permutation tables (rotor wirings, reflector)
//   - rotor: one wheel = shared wiring + mutable position, ring, notch
//   - stepping: the per-keystroke transition, including the double-step
//   - plugboard: involutive letter-pair swap stage
//   - enigma (this package): the Machine facade composing the above
//   - stream: io.Reader/io.Writer adapters over a Machine
//   - settings: YAML key sheets for constructing configured machines
//
// # Basic Usage
//
//	// Rotor start positions, ring settings and notches, each one letter
//	// per wheel: index 0 is the right (fast) wheel, 1 the middle,
//	// 2 the left (slow) wheel.
//	m, err := enigma.New("ABC", "WHZ", "QFR")
//	if err != nil {
//	    return err
//	}
//
//	ciphertext, err := m.Encode("ATTACKATDAWN")
//
// The transform is reciprocal: a second machine built from the same
// settings decodes the ciphertext back to the plaintext. There is no
// separate decode operation.
//
//	m2, _ := enigma.New("ABC", "WHZ", "QFR")
//	plaintext, _ := m2.Encode(ciphertext) // "ATTACKATDAWN"
//
// # Input Policy
//
// Exactly one boundary policy applies, uniformly: lowercase letters are
// normalized to uppercase and accepted; any other character fails the
// whole Encode call with an error naming the first offending position.
// Validation happens before any wheel moves, so a failed call leaves the
// machine state unchanged. Whitespace handling belongs to the caller (the
// cmd/enigma CLI strips it, as the original machine operators did).
//
// # Concurrency
//
// A Machine owns its rotor state exclusively and is not safe for
// concurrent use. Wiring tables, reflectors and plugboards are immutable
// after construction and may be shared freely across machines and
// goroutines.
package enigma

// Version is the library version.
const Version = "0.1.0-dev"
