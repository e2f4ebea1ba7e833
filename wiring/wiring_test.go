package wiring

import (
	"errors"
	"testing"

	"github.com/smnsjas/go-enigma/alphabet"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		wantErr bool
	}{
		{"identity", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", false},
		{"rotor I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", false},
		{"lowercase accepted", "ekmflgdqvzntowyhxuspaibrcj", false},
		{"too short", "ABC", true},
		{"too long", "ABCDEFGHIJKLMNOPQRSTUVWXYZA", true},
		{"duplicate letter", "AACDEFGHIJKLMNOPQRSTUVWXYZ", true},
		{"non-letter", "1BCDEFGHIJKLMNOPQRSTUVWXYZ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.letters)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWiring) {
					t.Fatalf("expected ErrInvalidWiring, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTable failed: %v", err)
			}
		})
	}
}

func TestTableInverse(t *testing.T) {
	for _, table := range []*Table{RotorI, RotorII, RotorIII} {
		for i := 0; i < alphabet.Size; i++ {
			if got := table.Backward(table.Forward(i)); got != i {
				t.Errorf("Backward(Forward(%d)) = %d", i, got)
			}
			if got := table.Forward(table.Backward(i)); got != i {
				t.Errorf("Forward(Backward(%d)) = %d", i, got)
			}
		}
	}
}

func TestNewReflector(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		wantErr bool
	}{
		{"reflector A", "RQPONMLKJIHGFEDCBAZYXWVUTS", false},
		{"pairwise swap", "BADCFEHGJILKNMPORQTSVUXWZY", false},
		{"identity has fixed points", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", true},
		{"tampered tail breaks involution", "RQPONMLKJIHGFEDCBAZYXWVUST", true},
		{"valid rotor but not involution", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", true},
		{"not a permutation", "RRPONMLKJIHGFEDCBAZYXWVUTS", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReflector(tt.letters)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWiring) {
					t.Fatalf("expected ErrInvalidWiring, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewReflector failed: %v", err)
			}
		})
	}
}

func TestReflectorProperties(t *testing.T) {
	for i := 0; i < alphabet.Size; i++ {
		if ReflectorA.Map(i) == i {
			t.Errorf("reflector has fixed point at %c", alphabet.Letter(i))
		}
		if got := ReflectorA.Map(ReflectorA.Map(i)); got != i {
			t.Errorf("Map(Map(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestBuiltinTablesKnownValues(t *testing.T) {
	// Spot checks against the published tables.
	if got := RotorI.Forward(0); got != 4 { // A → E
		t.Errorf("RotorI.Forward(A) = %c, want E", alphabet.Letter(got))
	}
	if got := RotorI.Backward(4); got != 0 { // E → A
		t.Errorf("RotorI.Backward(E) = %c, want A", alphabet.Letter(got))
	}
	if got := RotorII.Forward(25); got != 25 { // Z → Z (rotors may self-map)
		t.Errorf("RotorII.Forward(Z) = %c, want Z", alphabet.Letter(got))
	}
	if got := ReflectorA.Map(0); got != 17 { // A ↔ R
		t.Errorf("ReflectorA.Map(A) = %c, want R", alphabet.Letter(got))
	}
}
