// This file contains the text decoding shared by the byte and bit level
// string readers. Replay strings are either Windows-1252 or UTF-16LE.

package repparser

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoders carry state, so each decode gets a fresh one; the parser must
// stay safe for concurrent use.

func windows1252Decoder() *encoding.Decoder {
	return charmap.Windows1252.NewDecoder()
}

func utf16Decoder() *encoding.Decoder {
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
}

// decodeText decodes raw string bytes and drops the trailing NUL
// (one byte for Windows-1252, two for UTF-16).
func decodeText(raw []byte, utf16 bool) (string, error) {
	if utf16 {
		if len(raw) >= 2 {
			raw = raw[:len(raw)-2]
		}
		s, err := utf16Decoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(s), nil
	}
	if len(raw) >= 1 {
		raw = raw[:len(raw)-1]
	}
	s, err := windows1252Decoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// trimNuls decodes a fixed-width Windows-1252 field padded with NULs,
// as used by PlayStation name blocks.
func trimNuls(raw []byte) (string, error) {
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	s, err := windows1252Decoder().Bytes(raw[:end])
	if err != nil {
		return "", err
	}
	return string(s), nil
}
