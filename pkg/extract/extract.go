// Package extract locates an expandable abbreviation in a line of
// editor text by scanning backward from the caret.
package extract

import (
	"strings"

	"github.com/yaklabco/goemmet/pkg/config"
)

// Options controls extraction behavior.
type Options struct {
	// LookAhead moves the caret past auto-inserted closing quotes and
	// braces so `div[foo|]` extracts the whole element.
	LookAhead bool

	// Type selects which brace kinds participate in the abbreviation:
	// markup uses (), [] and {}, stylesheets only ().
	Type config.Type

	// Prefix is text that must precede the abbreviation, for templating
	// dialects like `<% ul>li %>`.
	Prefix string
}

// DefaultOptions returns extraction defaults for a pipeline type.
// Look-ahead only makes sense for markup, where editors auto-close
// brackets of attribute and text blocks.
func DefaultOptions(typ config.Type) *Options {
	if typ == "" {
		typ = config.TypeMarkup
	}
	return &Options{LookAhead: typ == config.TypeMarkup, Type: typ}
}

// Abbreviation is an extraction result. Location is where the
// abbreviation text begins; Start additionally covers the prefix, so
// editors know the full span to replace.
type Abbreviation struct {
	Abbreviation string
	Location     int
	Start        int
	End          int
}

const specialChars = "#.*:$-_!@%^+>/"

// Extract scans backward from pos and returns the abbreviation ending
// there, or nil when the text under the caret is not expandable. pos is
// a byte offset into line; passing a negative value means end of line.
func Extract(line string, pos int, opts *Options) *Abbreviation {
	if opts == nil {
		opts = DefaultOptions(config.TypeMarkup)
	}
	typ := opts.Type
	if typ == "" {
		typ = config.TypeMarkup
	}

	if pos < 0 || pos > len(line) {
		pos = len(line)
	}
	if opts.LookAhead {
		pos = offsetPastAutoClosed(line, pos, typ)
	}

	bound, prefixStart := startBoundary(line, pos, opts.Prefix)
	if bound < 0 {
		return nil
	}

	sc := &bwScanner{text: line, start: bound, pos: pos}
	var stack []byte

	for !sc.sol() {
		ch := sc.peek()

		if bytesContain(stack, '}') {
			// Inside a text block everything except the braces is
			// payload.
			if ch == '}' {
				stack = append(stack, ch)
				sc.pos--
				continue
			}
			if ch != '{' {
				sc.pos--
				continue
			}
		}

		if isCloseBrace(ch, typ) {
			stack = append(stack, ch)
		} else if isOpenBrace(ch, typ) {
			if len(stack) == 0 || stack[len(stack)-1] != pairFor(ch) {
				break
			}
			stack = stack[:len(stack)-1]
		} else if bytesContain(stack, ']') || bytesContain(stack, '}') {
			sc.pos--
			continue
		} else if isAtHTMLTag(sc) || !isAbbreviationChar(ch) {
			break
		}

		sc.pos--
	}

	if len(stack) != 0 || sc.pos == pos {
		return nil
	}

	// Operators cannot start an abbreviation; they belong to whatever
	// precedes the expandable part.
	abbr := strings.TrimLeft(line[sc.pos:pos], "*+>^")
	if abbr == "" {
		return nil
	}

	location := pos - len(abbr)
	start := location
	if opts.Prefix != "" {
		start = prefixStart
	}
	return &Abbreviation{Abbreviation: abbr, Location: location, Start: start, End: pos}
}

// offsetPastAutoClosed advances the caret past characters an editor
// inserts automatically: one closing quote plus any closing braces.
func offsetPastAutoClosed(line string, pos int, typ config.Type) int {
	if pos < len(line) && isQuoteChar(line[pos]) {
		pos++
	}
	for pos < len(line) && isCloseBrace(line[pos], typ) {
		pos++
	}
	return pos
}

// startBoundary returns the leftmost offset the backward scan may reach
// and, when a prefix is required, the offset where that prefix starts.
// Without a prefix the boundary is the line start; with one the scan
// must stop right after the nearest prefix occurrence.
func startBoundary(line string, pos int, prefix string) (bound, prefixStart int) {
	if prefix == "" {
		return 0, 0
	}

	sc := &bwScanner{text: line, pos: pos}
	for !sc.sol() {
		if sc.consumePair(']', '[') || sc.consumePair('}', '{') {
			continue
		}
		after := sc.pos
		if sc.consumeString(prefix) {
			return after, sc.pos
		}
		sc.pos--
	}
	return -1, 0
}

func isAbbreviationChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		strings.IndexByte(specialChars, ch) >= 0
}

func isOpenBrace(ch byte, typ config.Type) bool {
	return ch == '(' || typ == config.TypeMarkup && (ch == '[' || ch == '{')
}

func isCloseBrace(ch byte, typ config.Type) bool {
	return ch == ')' || typ == config.TypeMarkup && (ch == ']' || ch == '}')
}

func pairFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

func isQuoteChar(ch byte) bool { return ch == '\'' || ch == '"' }

func bytesContain(stack []byte, ch byte) bool {
	for _, b := range stack {
		if b == ch {
			return true
		}
	}
	return false
}
