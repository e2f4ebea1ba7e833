package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enigma "github.com/smnsjas/go-enigma"
	"github.com/smnsjas/go-enigma/plugboard"
)

const sheet = `offset: NFC
ring: GYZ
notch: DFR
plugboard: AG BK CM DZ EL FT HV IP JX NQ
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sheet))
	require.NoError(t, err)

	assert.Equal(t, "NFC", s.Offset)
	assert.Equal(t, "GYZ", s.Ring)
	assert.Equal(t, "DFR", s.Notch)
	assert.Equal(t, plugboard.HistoricPairs, s.Plugboard)
}

func TestParseWithoutPlugboard(t *testing.T) {
	s, err := Parse([]byte("offset: ABC\nring: WHZ\nnotch: QFR\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Plugboard)

	m, err := s.Machine()
	require.NoError(t, err)

	out, err := m.Encode("ATTACKATDAWN")
	require.NoError(t, err)
	assert.Equal(t, "OOGNSWHHZFRU", out)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("offset: [unclosed"))
	assert.Error(t, err)
}

func TestMachineFromSheet(t *testing.T) {
	s, err := Parse([]byte(sheet))
	require.NoError(t, err)

	m, err := s.Machine()
	require.NoError(t, err)

	out, err := m.Encode("TESTMESSAGE")
	require.NoError(t, err)
	assert.Equal(t, "JGDJKAFWJPK", out)
}

func TestMachineInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr error
	}{
		{"bad offset", Settings{Offset: "TOOLONG", Ring: "AAA", Notch: "AAA"}, enigma.ErrInvalidConfiguration},
		{"bad ring", Settings{Offset: "AAA", Ring: "A2A", Notch: "AAA"}, enigma.ErrInvalidConfiguration},
		{"bad plugboard", Settings{Offset: "AAA", Ring: "AAA", Notch: "AAA", Plugboard: "AA"}, plugboard.ErrInvalidPairs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.s.Machine()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	s := &Settings{Offset: "QEV", Ring: "AAA", Notch: "QEV", Plugboard: "AG NQ"}

	data, err := s.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "day-key.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
