package scanner

import (
	"fmt"
	"strings"
)

// Error is a positioned scan or parse failure. Pos is a rune offset into
// the scanned source.
type Error struct {
	Message string
	Pos     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Message, e.Pos)
}

// Pointer renders the source with a caret under the offending position,
// suitable for CLI display:
//
//	div>span[
//	         ^
func (e *Error) Pointer(source string) string {
	var sb strings.Builder
	sb.WriteString(source)
	sb.WriteByte('\n')
	col := e.Pos
	if col > len([]rune(source)) {
		col = len([]rune(source))
	}
	sb.WriteString(strings.Repeat("-", col))
	sb.WriteByte('^')
	return sb.String()
}

// IsSpace reports whether the code is an ASCII whitespace character.
func IsSpace(code rune) bool {
	return code == ' ' || code == '\t' || code == '\n' || code == '\r' || code == '\f' || code == '\v'
}

// IsNumber reports whether the code is an ASCII digit.
func IsNumber(code rune) bool {
	return code >= '0' && code <= '9'
}

// IsAlpha reports whether the code is an ASCII letter, optionally within
// the given bounds (zero bounds default to the full alphabet).
func IsAlpha(code rune) bool {
	code &^= 32 // uppercase fold
	return code >= 'A' && code <= 'Z'
}

// IsAlphaNumeric reports whether the code is an ASCII letter or digit.
func IsAlphaNumeric(code rune) bool {
	return IsNumber(code) || IsAlpha(code)
}

// IsAlphaNumericWord reports letters, digits and underscore.
func IsAlphaNumericWord(code rune) bool {
	return IsAlphaNumeric(code) || code == '_'
}

// IsAlphaWord reports letters and underscore.
func IsAlphaWord(code rune) bool {
	return IsAlpha(code) || code == '_'
}

// IsQuote reports single or double quote characters.
func IsQuote(code rune) bool {
	return code == '\'' || code == '"'
}
