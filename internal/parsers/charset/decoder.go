package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding represents a text encoding
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1250 Encoding = "windows-1250"
	EncodingISO88592    Encoding = "iso-8859-2"
	EncodingISO885916   Encoding = "iso-8859-16"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding detects the encoding of a byte buffer.
// Anything that is valid UTF-8 is treated as UTF-8; Central European exports
// that are not fall back to Windows-1250.
func DetectEncoding(data []byte) Encoding {
	if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
		return EncodingUTF8
	}
	return EncodingWindows1250
}

// Decode converts a byte buffer from the specified encoding to a UTF-8 string.
// Valid UTF-8 input is returned as is regardless of the requested encoding,
// so a mislabelled file is never decoded twice.
func Decode(data []byte, enc Encoding) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	var decoder *encoding.Decoder
	switch enc {
	case EncodingISO88592:
		decoder = charmap.ISO8859_2.NewDecoder()
	case EncodingISO885916:
		decoder = charmap.ISO8859_16.NewDecoder()
	case EncodingWindows1250, EncodingUTF8, "":
		decoder = charmap.Windows1250.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding %q", enc)
	}

	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return string(out), nil
}
