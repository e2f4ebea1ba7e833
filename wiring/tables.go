package wiring

// Historical wiring tables. The three rotors and the reflector are the
// fixed complement this machine ships with; rotor order in the machine is
// RotorI rightmost, RotorII middle, RotorIII leftmost.
var (
	// RotorI is the rightmost (fast) rotor wiring.
	RotorI = mustTable("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	// RotorII is the middle rotor wiring.
	RotorII = mustTable("KTSBPOGULRHEFMDWVANQIXJYCZ")
	// RotorIII is the leftmost (slow) rotor wiring.
	RotorIII = mustTable("SBWPUDHTGFCNEYAROILXKJZMQV")
	// ReflectorA is the fixed reflector wiring.
	ReflectorA = mustReflector("RQPONMLKJIHGFEDCBAZYXWVUTS")
)

// mustTable validates a built-in table at package init. The built-ins are
// constants, but they still go through the same checks as user wiring.
func mustTable(letters string) *Table {
	t, err := NewTable(letters)
	if err != nil {
		panic(err)
	}
	return t
}

func mustReflector(letters string) *Reflector {
	r, err := NewReflector(letters)
	if err != nil {
		panic(err)
	}
	return r
}
