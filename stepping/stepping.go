package stepping

import "github.com/smnsjas/go-enigma/rotor"

// Advance is the set of wheels moving in one keystroke.
type Advance struct {
	Right  bool
	Middle bool
	Left   bool
}

// Plan decides which wheels advance this keystroke from the pre-step notch
// flags. Pure function; see the package documentation for the full table.
// A middle wheel on its own notch drives itself and the left wheel
// (double-step) independently of the right wheel's notch state.
func Plan(rightAtNotch, middleAtNotch bool) Advance {
	return Advance{
		Right:  true,
		Middle: rightAtNotch || middleAtNotch,
		Left:   middleAtNotch,
	}
}

// Apply executes one keystroke transition on the three wheels. Both notch
// flags are read before any wheel moves. Returns the plan that was applied.
func Apply(right, middle, left *rotor.Rotor) Advance {
	adv := Plan(right.AtNotch(), middle.AtNotch())

	if adv.Middle {
		middle.Advance()
	}
	if adv.Left {
		left.Advance()
	}
	right.Advance()

	return adv
}
