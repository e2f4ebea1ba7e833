package enigma

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smnsjas/go-enigma/alphabet"
	"github.com/smnsjas/go-enigma/plugboard"
	"github.com/smnsjas/go-enigma/rotor"
	"github.com/smnsjas/go-enigma/stepping"
	"github.com/smnsjas/go-enigma/wiring"
)

// ErrInvalidConfiguration is returned when an offset, ring or notch string
// is not exactly three letters A-Z.
var ErrInvalidConfiguration = errors.New("invalid machine configuration")

// Machine is one configured cipher machine: three rotors, a reflector and
// a plugboard. Rotor positions mutate with every keystroke, so Encode is
// deliberately NOT idempotent - two calls on one machine continue the same
// key stream, they do not repeat it.
//
// Construct machines with New; the zero Machine is not usable.
type Machine struct {
	id uuid.UUID

	right  *rotor.Rotor
	middle *rotor.Rotor
	left   *rotor.Rotor

	board     *plugboard.Board
	reflector *wiring.Reflector

	logger *slog.Logger
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithPlugboard wires a plugboard into the machine. The default is the
// identity board.
func WithPlugboard(b *plugboard.Board) Option {
	return func(m *Machine) { m.board = b }
}

// WithReflector substitutes the reflector. The default is wiring.ReflectorA.
func WithReflector(r *wiring.Reflector) Option {
	return func(m *Machine) { m.reflector = r }
}

// WithLogger enables structured debug logging of stepping and encode
// activity. Machines are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

// New creates a machine from three setting strings, each exactly three
// letters: rotor start positions (offset), ring settings and notch
// positions. Letter 0 configures the right (fast) wheel, letter 1 the
// middle, letter 2 the left (slow) wheel. The wheels carry the fixed
// historical wirings: RotorI right, RotorII middle, RotorIII left.
//
// Violating the three-letters-A-to-Z constraint fails with
// ErrInvalidConfiguration; nothing is recovered internally.
func New(offset, ring, notch string, opts ...Option) (*Machine, error) {
	offsets, err := parseTriple("offset", offset)
	if err != nil {
		return nil, err
	}
	rings, err := parseTriple("ring setting", ring)
	if err != nil {
		return nil, err
	}
	notches, err := parseTriple("notch", notch)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		id:        uuid.New(),
		board:     plugboard.Identity(),
		reflector: wiring.ReflectorA,
	}

	tables := [3]*wiring.Table{wiring.RotorI, wiring.RotorII, wiring.RotorIII}
	wheels := [3]**rotor.Rotor{&m.right, &m.middle, &m.left}
	for i, wheel := range wheels {
		r, err := rotor.New(tables[i], offsets[i], rings[i], notches[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		*wheel = r
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger != nil {
		m.logger.Debug("machine configured",
			"machine", m.id,
			"offset", offset,
			"ring", ring,
			"notch", notch,
			"plugboard", m.board.Pairs())
	}
	return m, nil
}

// Encode transforms a message through the machine, one keystroke per
// letter. Each keystroke first runs the stepping transition, then traces
// the current through
//
//	plugboard → right → middle → left → reflector → left → middle → right → plugboard
//
// using the already-stepped positions. Output has the same length as the
// input.
//
// The whole message is validated before the first wheel moves: a character
// outside A-Z (after case normalization) fails the call with the offending
// position and leaves the machine state untouched.
func (m *Machine) Encode(message string) (string, error) {
	indices := make([]int, 0, len(message))
	pos := 0
	for _, r := range message {
		i, err := alphabet.Index(r)
		if err != nil {
			return "", fmt.Errorf("encode: position %d: %w", pos, err)
		}
		indices = append(indices, i)
		pos++
	}

	out := make([]rune, len(indices))
	for k, i := range indices {
		adv := stepping.Apply(m.right, m.middle, m.left)
		if adv.Left && m.logger != nil {
			m.logger.Debug("double-step", "machine", m.id, "keystroke", k+1)
		}
		out[k] = alphabet.Letter(m.substitute(i))
	}

	if m.logger != nil {
		m.logger.Debug("encoded message",
			"machine", m.id,
			"length", len(indices),
			"windows", m.Windows())
	}
	return string(out), nil
}

// substitute traces one letter through the full substitution path at the
// current rotor positions. Pure with respect to machine state; for fixed
// positions, substitute(substitute(x)) == x.
func (m *Machine) substitute(i int) int {
	i = m.board.Swap(i)
	i = m.right.Forward(i)
	i = m.middle.Forward(i)
	i = m.left.Forward(i)
	i = m.reflector.Map(i)
	i = m.left.Backward(i)
	i = m.middle.Backward(i)
	i = m.right.Backward(i)
	return m.board.Swap(i)
}

// Reset re-keys the machine to new rotor start positions without
// reconstructing it. Rings, notches, plugboard and reflector keep their
// configured values.
func (m *Machine) Reset(offset string) error {
	offsets, err := parseTriple("offset", offset)
	if err != nil {
		return err
	}
	for i, wheel := range [3]*rotor.Rotor{m.right, m.middle, m.left} {
		if err := wheel.Seek(offsets[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}
	return nil
}

// ID returns the machine's instance identifier, used to correlate log
// events when several machines share a logger.
func (m *Machine) ID() uuid.UUID {
	return m.id
}

// Positions returns the current rotor positions in construction order:
// right, middle, left.
func (m *Machine) Positions() [3]int {
	return [3]int{m.right.Position(), m.middle.Position(), m.left.Position()}
}

// Windows returns the current rotor positions as letters in construction
// order (right, middle, left) - what an operator would read off the
// machine's windows.
func (m *Machine) Windows() string {
	p := m.Positions()
	return string([]rune{
		alphabet.Letter(p[0]),
		alphabet.Letter(p[1]),
		alphabet.Letter(p[2]),
	})
}

// parseTriple converts a three-letter setting string to canonical indices.
func parseTriple(name, s string) ([3]int, error) {
	var out [3]int

	runes := []rune(s)
	if len(runes) != 3 {
		return out, fmt.Errorf("%w: %s must be exactly 3 letters, got %q",
			ErrInvalidConfiguration, name, s)
	}
	for k, r := range runes {
		i, err := alphabet.Index(r)
		if err != nil {
			return out, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, name, err)
		}
		out[k] = i
	}
	return out, nil
}
