package textenc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Supported encoding names. These match how vitest reports are written in
// practice: plain UTF-8, UTF-8 with a byte-order mark (PowerShell
// redirection), and UTF-16 little-endian (cmd.exe redirection).
const (
	UTF8    = "utf-8"
	UTF8SIG = "utf-8-sig"
	UTF16LE = "utf-16le"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Names returns the supported encoding names.
func Names() []string {
	return []string{UTF8, UTF8SIG, UTF16LE}
}

// Decode converts raw file bytes in the named encoding to a UTF-8 string.
// Decoding is strict: bytes that do not match the claimed encoding are an
// error, never silently replaced. The x/text decoders substitute U+FFFD for
// invalid code units instead of failing, so any substitution in the output
// is treated as an encoding mismatch.
func Decode(name string, data []byte) (string, error) {
	switch name {
	case UTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("input is not valid UTF-8")
		}
		return string(data), nil

	case UTF8SIG:
		trimmed := bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(trimmed) {
			return "", fmt.Errorf("input is not valid UTF-8 after BOM")
		}
		return string(trimmed), nil

	case UTF16LE:
		if len(data)%2 != 0 {
			return "", fmt.Errorf("input length %d is not a whole number of UTF-16 code units", len(data))
		}
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			return "", fmt.Errorf("input contains invalid UTF-16 code units")
		}
		return string(decoded), nil

	default:
		return "", fmt.Errorf("unknown encoding %q (supported: %v)", name, Names())
	}
}
