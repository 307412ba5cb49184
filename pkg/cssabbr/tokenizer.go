package cssabbr

import (
	"strconv"

	"github.com/yaklabco/goemmet/pkg/scanner"
)

// Tokenize converts a stylesheet abbreviation into a token stream. When
// isValue is set, the whole input is scanned in value mode (numbers and
// dashes allowed in literals), used for snippet bodies and explicit
// value contexts.
func Tokenize(abbr string, isValue bool) ([]Token, error) {
	brackets := 0
	s := scanner.New(abbr)
	var tokens []Token

	for !s.EOF() {
		token, err := getToken(s, brackets == 0 && !isValue)
		if err != nil {
			return nil, err
		}
		if token == nil {
			return nil, s.Error("Unexpected character")
		}

		if b, ok := token.(Bracket); ok {
			if b.Open {
				brackets++
			} else {
				brackets--
				if brackets < 0 {
					return nil, s.Error("Unexpected bracket")
				}
			}
		}

		tokens = append(tokens, token)

		// After a color or unit-less number, forcibly re-attempt operator
		// consumption: a following dash is an explicit value delimiter,
		// not part of the next number.
		if shouldConsumeDashAfter(token) {
			if op := operatorToken(s); op != nil {
				tokens = append(tokens, op)
			}
		}
	}

	return tokens, nil
}

func shouldConsumeDashAfter(token Token) bool {
	switch t := token.(type) {
	case ColorValue:
		return true
	case NumberValue:
		return t.Unit == ""
	}
	return false
}

func getToken(s *scanner.Scanner, short bool) (Token, error) {
	if t, err := field(s); t != nil || err != nil {
		return t, err
	}
	if t := numberValue(s); t != nil {
		return t, nil
	}
	if t := colorValue(s); t != nil {
		return t, nil
	}
	if t, err := stringValue(s); t != nil || err != nil {
		return t, err
	}
	if t := bracket(s); t != nil {
		return t, nil
	}
	if t := operatorToken(s); t != nil {
		return t, nil
	}
	if t := whiteSpace(s); t != nil {
		return t, nil
	}
	if t := literal(s, short); t != nil {
		return t, nil
	}
	return nil, nil
}

func field(s *scanner.Scanner) (Token, error) {
	start := s.Pos
	if s.Eat('$') && s.Eat('{') {
		index := 0
		hasIndex := false
		name := ""

		s.Start = s.Pos
		if s.EatWhile(scanner.IsNumber) {
			index, _ = strconv.Atoi(s.Current())
			hasIndex = true
			if s.Eat(':') {
				s.Start = s.Pos
				s.EatWhile(func(c rune) bool { return c != '}' })
				name = s.Current()
			}
		} else if scanner.IsAlpha(s.Peek()) {
			s.Start = s.Pos
			s.EatWhile(func(c rune) bool { return c != '}' })
			name = s.Current()
		}

		if s.Eat('}') {
			return Field{Index: index, HasIndex: hasIndex, Name: name, Loc: Loc{start, s.Pos}}, nil
		}
		return nil, s.Error("Expecting }")
	}
	s.Pos = start
	return nil, nil
}

func numberValue(s *scanner.Scanner) Token {
	start := s.Pos
	if !consumeNumber(s) {
		return nil
	}
	rawValue := s.Substring(start, s.Pos)
	value, _ := strconv.ParseFloat(rawValue, 64)

	// Unit is a `%` or an alpha word right after the number.
	unitStart := s.Pos
	if !s.Eat('%') {
		s.EatWhile(scanner.IsAlphaWord)
	}
	unit := s.Substring(unitStart, s.Pos)

	return NumberValue{Value: value, RawValue: rawValue, Unit: unit, Loc: Loc{start, s.Pos}}
}

func consumeNumber(s *scanner.Scanner) bool {
	start := s.Pos
	s.Eat('-')
	afterNegative := s.Pos

	hasDecimal := s.EatWhile(scanner.IsNumber)
	prevPos := s.Pos
	if s.Eat('.') {
		hasFloatPart := s.EatWhile(scanner.IsNumber)
		if !hasDecimal && !hasFloatPart {
			// A lone dot is not a number.
			s.Pos = prevPos
		}
	}

	// A dash with no digits after it is not a number either.
	if s.Pos == afterNegative && start != afterNegative {
		s.Pos = start
	}
	return s.Pos != start
}

func colorValue(s *scanner.Scanner) Token {
	start := s.Pos
	if !s.Eat('#') {
		return nil
	}

	valueStart := s.Pos
	color := ""
	alpha := ""

	if s.EatWhile(isHex) {
		color = s.Substring(valueStart, s.Pos)
		alpha = colorAlpha(s)
	} else if s.Eat('t') {
		color = "t"
		alpha = colorAlpha(s)
		if alpha == "" {
			alpha = "0"
		}
	} else {
		alpha = colorAlpha(s)
	}

	if color != "" || alpha != "" || s.EOF() {
		r, g, b, a := parseColor(color, alpha)
		return ColorValue{
			R: r, G: g, B: b, A: a,
			Raw: s.Substring(start+1, s.Pos),
			Loc: Loc{start, s.Pos},
		}
	}

	// Not a color value; keep the hash as a plain literal so snippet
	// bodies like `#${1:000}` write the field right after it.
	return Literal{Value: "#", Loc: Loc{start, s.Pos}}
}

func colorAlpha(s *scanner.Scanner) string {
	start := s.Pos
	if s.Eat('.') {
		s.Start = start
		if s.EatWhile(scanner.IsNumber) {
			return s.Current()
		}
		return "1"
	}
	return ""
}

// parseColor expands the hex shorthand: per-digit doubling for 1-3 digit
// forms, `t` for transparent.
func parseColor(value, alpha string) (r, g, b int, a float64) {
	a = 1
	if alpha != "" {
		a, _ = strconv.ParseFloat(alpha, 64)
	}

	rs, gs, bs := "0", "0", "0"
	switch {
	case value == "t":
		a = 0
	case len(value) == 0:
		// keep black
	case len(value) == 1:
		rs = value + value
		gs, bs = rs, rs
	case len(value) == 2:
		rs, gs, bs = value, value, value
	case len(value) == 3:
		rs = string(value[0]) + string(value[0])
		gs = string(value[1]) + string(value[1])
		bs = string(value[2]) + string(value[2])
	default:
		value += value
		rs, gs, bs = value[0:2], value[2:4], value[4:6]
	}

	pr, _ := strconv.ParseInt(rs, 16, 32)
	pg, _ := strconv.ParseInt(gs, 16, 32)
	pb, _ := strconv.ParseInt(bs, 16, 32)
	return int(pr), int(pg), int(pb), a
}

func stringValue(s *scanner.Scanner) (Token, error) {
	start := s.Pos
	ch := s.Peek()
	if !scanner.IsQuote(ch) {
		return nil, nil
	}
	s.Pos++
	valueStart := s.Pos
	for !s.EOF() {
		if s.Peek() == ch {
			value := s.Substring(valueStart, s.Pos)
			s.Pos++
			return StringValue{Value: value, Single: ch == '\'', Loc: Loc{start, s.Pos}}, nil
		}
		s.Pos++
	}
	return nil, s.Error("Unterminated string")
}

func bracket(s *scanner.Scanner) Token {
	start := s.Pos
	switch {
	case s.Eat('('):
		return Bracket{Open: true, Loc: Loc{start, s.Pos}}
	case s.Eat(')'):
		return Bracket{Loc: Loc{start, s.Pos}}
	}
	return nil
}

func operatorToken(s *scanner.Scanner) Token {
	start := s.Pos
	var kind OperatorKind
	switch s.Peek() {
	case '+':
		kind = OpSibling
	case '!':
		kind = OpImportant
	case ',':
		kind = OpArgumentDelimiter
	case ':':
		kind = OpPropertyDelimiter
	case '-':
		kind = OpValueDelimiter
	default:
		return nil
	}
	s.Pos++
	return Operator{Kind: kind, Loc: Loc{start, s.Pos}}
}

func whiteSpace(s *scanner.Scanner) Token {
	start := s.Pos
	if s.EatWhile(scanner.IsSpace) {
		return WhiteSpace{Loc{start, s.Pos}}
	}
	return nil
}

// literal consumes an identifier fragment. In short mode (scanning the
// property-name part of an abbreviation) only letters and a few value
// characters are allowed, so compound inputs like `scale3d` do not get
// swallowed whole; in full mode digits and dashes are allowed too.
func literal(s *scanner.Scanner, short bool) Token {
	start := s.Pos

	switch {
	case s.EatFunc(isIdentPrefix):
		// SCSS/LESS variable reference
		s.EatWhile(isKeywordChar)
	case s.EatFunc(scanner.IsAlphaWord):
		if short {
			s.EatWhile(isLiteralChar)
		} else {
			s.EatWhile(isKeywordChar)
		}
	default:
		// Dots are allowed only at the beginning of a literal.
		s.Eat('.')
		s.EatWhile(isLiteralChar)
	}

	if s.Pos == start {
		return nil
	}
	return Literal{Value: s.Substring(start, s.Pos), Loc: Loc{start, s.Pos}}
}

func isIdentPrefix(code rune) bool { return code == '@' || code == '$' }

func isKeywordChar(code rune) bool {
	return scanner.IsAlphaNumericWord(code) || code == '-'
}

func isLiteralChar(code rune) bool {
	return scanner.IsAlphaWord(code) || code == '%' || code == '/'
}

func isHex(code rune) bool {
	if scanner.IsNumber(code) {
		return true
	}
	folded := code &^ 32
	return folded >= 'A' && folded <= 'F'
}
