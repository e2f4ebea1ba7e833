// Package stepping implements the rotor stepping mechanism, including the
// double-step anomaly.
//
// # State Machine
//
// The machine's stepping state is three independent counters, one per
// wheel, each wrapping modulo 26 forever. Exactly one transition runs per
// keystroke, BEFORE substitution, and it is driven entirely by the two
// notch flags read from the PRE-step positions:
//
//	rightAtNotch middleAtNotch │ advances
//	─────────────────────────────────────────────
//	    false        false     │ right
//	    true         false     │ right, middle
//	    false        true      │ right, middle, left   (double-step)
//	    true         true      │ right, middle, left
//
// The double-step rows are the historical anomaly: a middle wheel sitting
// on its own notch drives both itself and its left neighbor in the same
// keystroke, whether or not the right wheel happens to sit on its notch
// too. The right wheel always advances.
//
// # Ordering
//
// Both notch flags must be captured before ANY wheel moves. Advancing the
// right wheel first and then testing its notch yields an off-by-one
// stepping error that corrupts every subsequent character; Apply therefore
// reads both flags up front and only then moves wheels. Plan exists
// separately so the transition table above can be tested with no rotors at
// all.
package stepping
