// Package settings loads machine configurations from YAML key sheets.
//
// A key sheet carries the daily settings an operator would look up before
// keying the machine:
//
//	offset: NFC
//	ring: GYZ
//	notch: DFR
//	plugboard: AG BK CM DZ EL FT HV IP JX NQ
//
// The plugboard line is optional; omitting it leaves the board at identity.
// Validation is delegated to the components themselves, so a bad sheet
// fails with the same errors a bad direct construction would.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	enigma "github.com/smnsjas/go-enigma"
	"github.com/smnsjas/go-enigma/plugboard"
)

// Settings is one machine key sheet.
type Settings struct {
	Offset    string `yaml:"offset"`
	Ring      string `yaml:"ring"`
	Notch     string `yaml:"notch"`
	Plugboard string `yaml:"plugboard,omitempty"`
}

// Parse decodes a YAML key sheet.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// Load reads and decodes a key sheet file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return Parse(data)
}

// Machine constructs a machine keyed to these settings. Invalid settings
// surface as enigma.ErrInvalidConfiguration or plugboard.ErrInvalidPairs.
func (s *Settings) Machine(opts ...enigma.Option) (*enigma.Machine, error) {
	if s.Plugboard != "" {
		board, err := plugboard.New(s.Plugboard)
		if err != nil {
			return nil, err
		}
		opts = append([]enigma.Option{enigma.WithPlugboard(board)}, opts...)
	}
	return enigma.New(s.Offset, s.Ring, s.Notch, opts...)
}

// Marshal renders the settings back to YAML, for writing key sheets.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}
