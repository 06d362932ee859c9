package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("Brânză;Čokolada")))
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte{0xEF, 0xBB, 0xBF, 'a'}))
	assert.Equal(t, EncodingWindows1250, DetectEncoding([]byte{'s', 0x9A, 'a'}))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		enc      Encoding
		expected string
	}{
		{"utf8 passthrough", []byte("Čokolada"), EncodingWindows1250, "Čokolada"},
		{"bom stripped", append([]byte{0xEF, 0xBB, 0xBF}, []byte("id;name")...), EncodingUTF8, "id;name"},
		{"windows-1250", []byte{0x8A, 'u', 0xE8, 'a', 'n', 0xEC}, EncodingWindows1250, "Šučaně"},
		{"iso-8859-2", []byte{0xA9, 'o', 'k'}, EncodingISO88592, "Šok"},
		{"iso-8859-16", []byte{'p', 0xE2, 'i', 'n', 'e'}, EncodingISO885916, "pâine"},
		{"unlabelled falls back to windows-1250", []byte{0x9E, 'a', 'b', 'a'}, "", "žaba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Decode([]byte{0xFF}, Encoding("ebcdic"))
	assert.Error(t, err)
}
