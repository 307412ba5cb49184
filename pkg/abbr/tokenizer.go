package abbr

import (
	"strconv"

	"github.com/yaklabco/goemmet/pkg/scanner"
)

// tokenizer context: bracket/quote depth counters used to decide which
// characters terminate a literal.
type tokenizerCtx struct {
	group      int
	attribute  int
	expression int
	quote      rune // active quote char, 0 when outside quoted text
}

// Tokenize converts an abbreviation string into a flat token stream.
// It returns a *scanner.Error with the offending position when an
// unrecognized character or unterminated field is found.
func Tokenize(source string) ([]Token, error) {
	s := scanner.New(source)
	ctx := &tokenizerCtx{}
	var result []Token

	for !s.EOF() {
		ch := s.Peek()
		token, err := getToken(s, ctx)
		if err != nil {
			return nil, err
		}
		if token == nil {
			return nil, s.Error("Unexpected character")
		}
		result = append(result, token)

		switch t := token.(type) {
		case Quote:
			if ch == ctx.quote {
				ctx.quote = 0
			} else if ctx.quote == 0 {
				ctx.quote = ch
			}
			_ = t
		case Bracket:
			delta := -1
			if t.Open {
				delta = 1
			}
			switch t.Context {
			case BracketGroup:
				ctx.group += delta
			case BracketAttribute:
				ctx.attribute += delta
			case BracketExpression:
				ctx.expression += delta
			}
		}
	}

	return result, nil
}

func getToken(s *scanner.Scanner, ctx *tokenizerCtx) (Token, error) {
	if t, err := field(s, ctx); t != nil || err != nil {
		return t, err
	}
	if t := repeaterPlaceholder(s); t != nil {
		return t, nil
	}
	if t := repeaterNumber(s); t != nil {
		return t, nil
	}
	if t := repeater(s); t != nil {
		return t, nil
	}
	if t := whiteSpace(s); t != nil {
		return t, nil
	}
	if t := literal(s, ctx); t != nil {
		return t, nil
	}
	if t := operatorToken(s); t != nil {
		return t, nil
	}
	if t := quote(s); t != nil {
		return t, nil
	}
	if t := bracket(s); t != nil {
		return t, nil
	}
	return nil, nil
}

// field parses `${index}`, `${index:placeholder}` or `${name}`. Fields
// are recognized inside attribute and expression contexts only.
func field(s *scanner.Scanner, ctx *tokenizerCtx) (Token, error) {
	start := s.Pos
	if (ctx.expression > 0 || ctx.attribute > 0) && s.Eat('$') && s.Eat('{') {
		index := 0
		hasIndex := false
		name := ""

		s.Start = s.Pos
		if s.EatWhile(scanner.IsNumber) {
			index, _ = strconv.Atoi(s.Current())
			hasIndex = true
			if s.Eat(':') {
				n, err := consumePlaceholder(s)
				if err != nil {
					return nil, err
				}
				name = n
			}
		} else if scanner.IsAlpha(s.Peek()) {
			n, err := consumePlaceholder(s)
			if err != nil {
				return nil, err
			}
			name = n
		}

		if s.Eat('}') {
			return FieldToken{Index: index, HasIndex: hasIndex, Name: name, Loc: Loc{start, s.Pos}}, nil
		}
		return nil, s.Error("Expecting }")
	}
	s.Pos = start
	return nil, nil
}

// consumePlaceholder reads the body of a field placeholder, allowing
// balanced nested `{}` pairs.
func consumePlaceholder(s *scanner.Scanner) (string, error) {
	var stack []int
	s.Start = s.Pos

	for !s.EOF() {
		if s.Eat('{') {
			stack = append(stack, s.Pos)
		} else if s.Eat('}') {
			if len(stack) == 0 {
				s.BackUp(1)
				break
			}
			stack = stack[:len(stack)-1]
		} else {
			s.Pos++
		}
	}

	if len(stack) != 0 {
		s.Pos = stack[len(stack)-1]
		return "", s.Error("Expecting }")
	}

	return s.Current(), nil
}

func repeaterPlaceholder(s *scanner.Scanner) Token {
	start := s.Pos
	if s.Eat('$') && s.Eat('#') {
		return RepeaterPlaceholder{Loc{start, s.Pos}}
	}
	s.Pos = start
	return nil
}

func repeaterNumber(s *scanner.Scanner) Token {
	start := s.Pos
	if !s.EatWhile(func(c rune) bool { return c == '$' }) {
		return nil
	}
	size := s.Pos - start
	reverse := false
	base := 1
	parent := false

	if s.Eat('@') {
		for s.Eat('^') {
			parent = true
		}
		reverse = s.Eat('-')
		s.Start = s.Pos
		if s.EatWhile(scanner.IsNumber) {
			base, _ = strconv.Atoi(s.Current())
		}
	}

	return RepeaterNumber{Size: size, Reverse: reverse, Base: base, Parent: parent, Loc: Loc{start, s.Pos}}
}

func repeater(s *scanner.Scanner) Token {
	start := s.Pos
	if !s.Eat('*') {
		return nil
	}
	s.Start = s.Pos
	if s.EatWhile(scanner.IsNumber) {
		count, _ := strconv.Atoi(s.Current())
		return Repeater{Count: count, Loc: Loc{start, s.Pos}}
	}
	return Repeater{Count: 1, Implicit: true, Loc: Loc{start, s.Pos}}
}

func whiteSpace(s *scanner.Scanner) Token {
	start := s.Pos
	if s.EatWhile(scanner.IsSpace) {
		return WhiteSpace{Value: s.Substring(start, s.Pos), Loc: Loc{start, s.Pos}}
	}
	return nil
}

func literal(s *scanner.Scanner, ctx *tokenizerCtx) Token {
	start := s.Pos
	var value []rune

	for !s.EOF() {
		// Escaped characters are consumed verbatim in every context.
		if s.Eat('\\') {
			if s.EOF() {
				break
			}
			value = append(value, s.Next())
			continue
		}

		ch := s.Peek()
		if ch == ctx.quote || ch == '$' || isAllowedOperator(ch, ctx) {
			// 1. terminating quote of the current quoted run
			// 2. `$` has special meaning in every context
			// 3. contextually-structural operator
			break
		}
		if ctx.expression > 0 && ch == '}' {
			break
		}
		if ctx.quote == 0 && ctx.expression == 0 {
			if ctx.attribute == 0 && !isElementNameChar(ch) {
				break
			}
			if scanner.IsSpace(ch) || isAllowedRepeater(ch, ctx) || scanner.IsQuote(ch) || isBracketChar(ch) {
				break
			}
		}

		value = append(value, s.Next())
	}

	if s.Pos == start {
		return nil
	}
	return Literal{Value: string(value), Loc: Loc{start, s.Pos}}
}

func operatorToken(s *scanner.Scanner) Token {
	start := s.Pos
	kind, ok := operatorKind(s.Peek())
	if !ok {
		return nil
	}
	s.Pos++
	return Operator{Kind: kind, Loc: Loc{start, s.Pos}}
}

func quote(s *scanner.Scanner) Token {
	start := s.Pos
	switch {
	case s.Eat('\''):
		return Quote{Single: true, Loc: Loc{start, s.Pos}}
	case s.Eat('"'):
		return Quote{Loc: Loc{start, s.Pos}}
	}
	return nil
}

func bracket(s *scanner.Scanner) Token {
	start := s.Pos
	ch := s.Peek()
	var bctx BracketContext
	var open bool

	switch ch {
	case '(', ')':
		bctx, open = BracketGroup, ch == '('
	case '[', ']':
		bctx, open = BracketAttribute, ch == '['
	case '{', '}':
		bctx, open = BracketExpression, ch == '{'
	default:
		return nil
	}

	s.Pos++
	return Bracket{Open: open, Context: bctx, Loc: Loc{start, s.Pos}}
}

func operatorKind(ch rune) (OperatorKind, bool) {
	switch ch {
	case '>':
		return OpChild, true
	case '+':
		return OpSibling, true
	case '^':
		return OpClimb, true
	case '.':
		return OpClass, true
	case '#':
		return OpID, true
	case '=':
		return OpEqual, true
	case '/':
		return OpClose, true
	}
	return "", false
}

// operatorText is the inverse of operatorKind: the source character for
// an operator kind.
func operatorText(kind OperatorKind) string {
	switch kind {
	case OpChild:
		return ">"
	case OpSibling:
		return "+"
	case OpClimb:
		return "^"
	case OpClass:
		return "."
	case OpID:
		return "#"
	case OpEqual:
		return "="
	case OpClose:
		return "/"
	}
	return ""
}

// bracketText returns the source character for a bracket token.
func bracketText(t Bracket) string {
	switch t.Context {
	case BracketGroup:
		if t.Open {
			return "("
		}
		return ")"
	case BracketAttribute:
		if t.Open {
			return "["
		}
		return "]"
	case BracketExpression:
		if t.Open {
			return "{"
		}
		return "}"
	}
	return ""
}

// isAllowedOperator reports whether the character acts as an operator in
// the current context: no operators inside quotes or expressions, and
// only `=` inside attribute sets.
func isAllowedOperator(ch rune, ctx *tokenizerCtx) bool {
	kind, ok := operatorKind(ch)
	if !ok || ctx.quote != 0 || ctx.expression > 0 {
		return false
	}
	return ctx.attribute == 0 || kind == OpEqual
}

func isAllowedRepeater(ch rune, ctx *tokenizerCtx) bool {
	return ch == '*' && ctx.attribute == 0 && ctx.expression == 0
}

func isBracketChar(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// isElementNameChar reports characters valid in an element name outside
// any bracket context.
func isElementNameChar(ch rune) bool {
	return scanner.IsAlphaNumericWord(ch) || ch == '-' || ch == ':' || ch == '!'
}
