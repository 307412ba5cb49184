package abbr

import (
	"github.com/yaklabco/goemmet/pkg/scanner"
)

// TokenElement is a single element of the pre-unroll parse tree: a name,
// interleaved attributes/text/repeat in any order, and nested children.
type TokenElement struct {
	Name       []Token
	Attributes []TokenAttribute
	Value      []Token
	Repeat     *Repeater
	SelfClose  bool
	Children   []Statement
}

// TokenGroup is a parenthesized statement sequence with an optional
// repeat.
type TokenGroup struct {
	Children []Statement
	Repeat   *Repeater
}

// Statement is either a *TokenElement or a *TokenGroup.
type Statement interface {
	statement()
}

func (*TokenElement) statement() {}
func (*TokenGroup) statement()   {}

// TokenAttribute is a parsed attribute: name/value token slices plus the
// delimiter shape observed at parse time.
type TokenAttribute struct {
	Name     []Token
	Value    []Token
	Expression bool   // value was wrapped in {...}
	ValueQuote rune   // quote char wrapping the value, 0 for raw
	Multiple   bool   // produced by `.` shorthand, may merge with others
}

// tokenScanner is a cursor over the token list.
type tokenScanner struct {
	tokens []Token
	start  int
	pos    int
}

func (ts *tokenScanner) readable() bool { return ts.pos < len(ts.tokens) }

func (ts *tokenScanner) peek() Token {
	if ts.readable() {
		return ts.tokens[ts.pos]
	}
	return nil
}

func (ts *tokenScanner) consume(match func(Token) bool) bool {
	if ts.readable() && match(ts.peek()) {
		ts.pos++
		return true
	}
	return false
}

func (ts *tokenScanner) slice() []Token {
	out := make([]Token, ts.pos-ts.start)
	copy(out, ts.tokens[ts.start:ts.pos])
	return out
}

func (ts *tokenScanner) errorAt(message string) *scanner.Error {
	pos := 0
	if ts.readable() {
		pos, _ = ts.peek().Range()
	} else if n := len(ts.tokens); n > 0 {
		_, pos = ts.tokens[n-1].Range()
	}
	return &scanner.Error{Message: message, Pos: pos}
}

// ParseTokens builds the TokenGroup/TokenElement tree from a token
// stream. It fails with a positioned error if trailing tokens remain.
func ParseTokens(tokens []Token, opts *ParseOptions) (*TokenGroup, error) {
	ts := &tokenScanner{tokens: tokens}
	result, err := statements(ts, opts)
	if err != nil {
		return nil, err
	}
	if ts.readable() {
		return nil, ts.errorAt("Unexpected character")
	}
	return result, nil
}

func statements(ts *tokenScanner, opts *ParseOptions) (*TokenGroup, error) {
	result := &TokenGroup{}
	var ctx Statement = result
	var stack []Statement

	appendChild := func(parent, child Statement) {
		switch p := parent.(type) {
		case *TokenGroup:
			p.Children = append(p.Children, child)
		case *TokenElement:
			p.Children = append(p.Children, child)
		}
	}

	for ts.readable() {
		node, err := element(ts, opts)
		if err != nil {
			return nil, err
		}
		if node == nil {
			g, err := group(ts, opts)
			if err != nil {
				return nil, err
			}
			if g == nil {
				break
			}
			node = g
		}

		appendChild(ctx, node)

		if ts.consume(isOperator(OpChild)) {
			stack = append(stack, ctx)
			ctx = node
		} else if ts.consume(isOperator(OpSibling)) {
			continue
		} else if ts.consume(isOperator(OpClimb)) {
			for {
				if len(stack) > 0 {
					ctx = stack[len(stack)-1]
					stack = stack[:len(stack)-1]
				}
				if !ts.consume(isOperator(OpClimb)) {
					break
				}
			}
		}
	}

	return result, nil
}

func group(ts *tokenScanner, opts *ParseOptions) (Statement, error) {
	if !ts.consume(isBracket(BracketGroup, true)) {
		return nil, nil
	}
	result, err := statements(ts, opts)
	if err != nil {
		return nil, err
	}
	if !ts.consume(isBracket(BracketGroup, false)) {
		return nil, ts.errorAt("Expecting )")
	}
	if ts.consume(isRepeater) {
		r := ts.tokens[ts.pos-1].(Repeater)
		result.Repeat = &r
	}
	return result, nil
}

func element(ts *tokenScanner, opts *ParseOptions) (Statement, error) {
	elem := &TokenElement{}

	if elementName(ts, opts) {
		elem.Name = ts.slice()
	}

	for ts.readable() {
		ts.start = ts.pos
		if elem.Repeat == nil && !isEmptyElement(elem) && ts.consume(isRepeater) {
			r := ts.tokens[ts.pos-1].(Repeater)
			elem.Repeat = &r
		} else if elem.Value == nil && text(ts) {
			elem.Value = elementText(ts)
		} else if attrs := shortAttribute(ts, OpID); attrs != nil {
			elem.Attributes = append(elem.Attributes, attrs...)
		} else if attrs := shortAttribute(ts, OpClass); attrs != nil {
			elem.Attributes = append(elem.Attributes, attrs...)
		} else if attrs, err := attributeSet(ts); attrs != nil || err != nil {
			if err != nil {
				return nil, err
			}
			if elem.Attributes == nil {
				elem.Attributes = []TokenAttribute{}
			}
			elem.Attributes = append(elem.Attributes, attrs...)
		} else {
			if !isEmptyElement(elem) && ts.consume(isOperator(OpClose)) {
				elem.SelfClose = true
				if elem.Repeat == nil && ts.consume(isRepeater) {
					r := ts.tokens[ts.pos-1].(Repeater)
					elem.Repeat = &r
				}
			}
			break
		}
	}

	if isEmptyElement(elem) {
		return nil, nil
	}
	return elem, nil
}

// elementName consumes tokens that form an element name: literals,
// repeater numbers and placeholders. In JSX mode, dotted capitalized
// names (`Foo.Bar`) are consumed as a single name.
func elementName(ts *tokenScanner, opts *ParseOptions) bool {
	start := ts.pos
	ts.start = start

	if opts != nil && opts.JSX && ts.consume(isCapitalizedLiteral) {
		for ts.readable() {
			pos := ts.pos
			if !ts.consume(isOperator(OpClass)) || !ts.consume(isCapitalizedLiteral) {
				ts.pos = pos
				break
			}
		}
	}

	for ts.readable() && ts.consume(isElementNameToken) {
	}

	return ts.pos != start
}

// text consumes an `{...}` expression, tracking nested braces.
func text(ts *tokenScanner) bool {
	start := ts.pos
	if !ts.consume(isBracket(BracketExpression, true)) {
		return false
	}
	brackets := 1
	for ts.readable() {
		token := ts.peek()
		ts.pos++
		if b, ok := token.(Bracket); ok && b.Context == BracketExpression {
			if b.Open {
				brackets++
			} else {
				brackets--
			}
			if brackets == 0 {
				break
			}
		}
	}
	ts.start = start
	return true
}

// elementText returns the consumed expression body, outer braces
// stripped.
func elementText(ts *tokenScanner) []Token {
	from, to := ts.start+1, ts.pos-1
	if to < from {
		to = from
	}
	out := make([]Token, to-from)
	copy(out, ts.tokens[ts.start+1:to])
	return out
}

// shortAttribute parses `.class` and `#id` shorthand.
func shortAttribute(ts *tokenScanner, kind OperatorKind) []TokenAttribute {
	if !ts.consume(isOperator(kind)) {
		return nil
	}

	name := "class"
	if kind == OpID {
		name = "id"
	}
	attr := TokenAttribute{
		Name:     []Token{Literal{Value: name}},
		Multiple: kind == OpClass,
	}
	// Empty class/id names (`.` or `.-foo`) keep the value unset.
	// A following `{...}` is element text, never part of the name.
	if attributeValue(ts, false) {
		attr.Value = ts.slice()
	}
	return []TokenAttribute{attr}
}

// attributeSet parses a bracketed `[name=value ...]` list.
func attributeSet(ts *tokenScanner) ([]TokenAttribute, error) {
	if !ts.consume(isBracket(BracketAttribute, true)) {
		return nil, nil
	}

	attributes := []TokenAttribute{}
	for ts.readable() {
		if ts.consume(isBracket(BracketAttribute, false)) {
			return attributes, nil
		}
		attr, ok := attribute(ts)
		if ok {
			attributes = append(attributes, attr)
		} else if !ts.consume(isWhiteSpaceToken) {
			return nil, ts.errorAt("Unexpected token")
		}
	}
	return attributes, nil
}

func attribute(ts *tokenScanner) (TokenAttribute, bool) {
	if q, ok := quoted(ts); ok {
		// Standalone quoted value: a value for the default attribute.
		return TokenAttribute{Value: q.tokens, ValueQuote: q.quote}, true
	}

	if !attributeName(ts) {
		return TokenAttribute{}, false
	}
	attr := TokenAttribute{Name: ts.slice()}

	if ts.consume(isOperator(OpEqual)) {
		if q, ok := quoted(ts); ok {
			attr.Value = q.tokens
			attr.ValueQuote = q.quote
		} else if expr, ok := expressionValue(ts); ok {
			attr.Value = expr
			attr.Expression = true
		} else if attributeValue(ts, true) {
			attr.Value = ts.slice()
		}
	}
	return attr, true
}

// attributeName consumes tokens valid inside an attribute name.
func attributeName(ts *tokenScanner) bool {
	start := ts.pos
	ts.start = start
	for ts.readable() && ts.consume(isValueToken) {
	}
	return ts.pos != start
}

// attributeValue consumes an unquoted attribute value. Balanced
// expression brackets are part of the value only when allowExpression is
// set; the `.class`/`#id` shorthand stops before them.
func attributeValue(ts *tokenScanner, allowExpression bool) bool {
	start := ts.pos
	var stack int
	for ts.readable() {
		token := ts.peek()
		if b, ok := token.(Bracket); ok && b.Context == BracketExpression {
			if !allowExpression {
				break
			}
			if b.Open {
				stack++
			} else if stack == 0 {
				break
			} else {
				stack--
			}
			ts.pos++
		} else if isValueToken(token) {
			ts.pos++
		} else {
			break
		}
	}
	if ts.pos == start {
		return false
	}
	ts.start = start
	return true
}

type quotedValue struct {
	tokens []Token
	quote  rune
}

// quoted consumes a quoted token run, returning the inner tokens.
func quoted(ts *tokenScanner) (quotedValue, bool) {
	start := ts.pos
	q, ok := ts.peek().(Quote)
	if !ok {
		return quotedValue{}, false
	}
	ts.pos++
	for ts.readable() {
		token := ts.peek()
		ts.pos++
		if q2, ok := token.(Quote); ok && q2.Single == q.Single {
			inner := make([]Token, 0, ts.pos-start-2)
			inner = append(inner, ts.tokens[start+1:ts.pos-1]...)
			ch := '"'
			if q.Single {
				ch = '\''
			}
			return quotedValue{tokens: inner, quote: rune(ch)}, true
		}
	}
	ts.pos = start
	return quotedValue{}, false
}

// expressionValue consumes a `{...}` wrapped value, returning the inner
// tokens.
func expressionValue(ts *tokenScanner) ([]Token, bool) {
	start := ts.pos
	if !ts.consume(isBracket(BracketExpression, true)) {
		return nil, false
	}
	brackets := 1
	for ts.readable() {
		token := ts.peek()
		ts.pos++
		if b, ok := token.(Bracket); ok && b.Context == BracketExpression {
			if b.Open {
				brackets++
			} else {
				brackets--
			}
			if brackets == 0 {
				inner := make([]Token, 0, ts.pos-start-2)
				inner = append(inner, ts.tokens[start+1:ts.pos-1]...)
				return inner, true
			}
		}
	}
	ts.pos = start
	return nil, false
}

func isEmptyElement(elem *TokenElement) bool {
	return elem.Name == nil && elem.Value == nil && elem.Attributes == nil && elem.Repeat == nil
}

func isOperator(kind OperatorKind) func(Token) bool {
	return func(t Token) bool {
		op, ok := t.(Operator)
		return ok && op.Kind == kind
	}
}

func isBracket(ctx BracketContext, open bool) func(Token) bool {
	return func(t Token) bool {
		b, ok := t.(Bracket)
		return ok && b.Context == ctx && b.Open == open
	}
}

func isRepeater(t Token) bool {
	_, ok := t.(Repeater)
	return ok
}

func isWhiteSpaceToken(t Token) bool {
	_, ok := t.(WhiteSpace)
	return ok
}

func isCapitalizedLiteral(t Token) bool {
	l, ok := t.(Literal)
	if !ok || l.Value == "" {
		return false
	}
	first := l.Value[0]
	return first >= 'A' && first <= 'Z'
}

func isElementNameToken(t Token) bool {
	switch t.(type) {
	case Literal, RepeaterNumber, RepeaterPlaceholder:
		return true
	}
	return false
}

// isValueToken reports tokens allowed inside attribute names or values.
// Dots and dashes inside attribute context arrive as literals; `=` is
// the only operator token emitted there and always terminates a name.
func isValueToken(t Token) bool {
	switch t.(type) {
	case Literal, RepeaterNumber, RepeaterPlaceholder, FieldToken:
		return true
	}
	return false
}
