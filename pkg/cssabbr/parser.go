package cssabbr

import "github.com/yaklabco/goemmet/pkg/scanner"

// ValueItem is one fragment of a CSS value: a plain token or a function
// call.
type ValueItem interface{ valueItem() }

// TokenItem wraps a single token used as a value fragment.
type TokenItem struct {
	Token Token
}

// FunctionCall is a `name(arguments)` value fragment.
type FunctionCall struct {
	Name      string
	Arguments []CSSValue
}

func (TokenItem) valueItem()    {}
func (FunctionCall) valueItem() {}

// CSSValue is a space-separated value group.
type CSSValue struct {
	Value []ValueItem
}

// Property is a parsed stylesheet abbreviation statement: an optional
// property name followed by values, optionally marked `!important`.
type Property struct {
	Name      string
	Value     []CSSValue
	Important bool
}

// ParseOptions controls stylesheet abbreviation parsing.
type ParseOptions struct {
	// Value parses the input as a bare value list without a property
	// name, used for snippet bodies.
	Value bool
}

// Parse tokenizes and parses a stylesheet abbreviation into a list of
// properties.
func Parse(abbr string, opts ParseOptions) ([]*Property, error) {
	tokens, err := Tokenize(abbr, opts.Value)
	if err != nil {
		return nil, err
	}
	return ParseTokenList(tokens, opts)
}

// ParseTokenList parses an already-tokenized stylesheet abbreviation.
func ParseTokenList(tokens []Token, opts ParseOptions) ([]*Property, error) {
	ts := &tokenScanner{tokens: tokens}
	var result []*Property
	for ts.readable() {
		prop, err := consumeProperty(ts, opts)
		if err != nil {
			return nil, err
		}
		if prop != nil {
			result = append(result, prop)
		} else if !ts.consumeFunc(isSiblingOperator) {
			return nil, ts.errorAt("Unexpected token")
		}
	}
	return result, nil
}

type tokenScanner struct {
	tokens []Token
	pos    int
}

func (ts *tokenScanner) readable() bool { return ts.pos < len(ts.tokens) }

func (ts *tokenScanner) peek() Token {
	if ts.readable() {
		return ts.tokens[ts.pos]
	}
	return nil
}

func (ts *tokenScanner) next() Token {
	t := ts.peek()
	if t != nil {
		ts.pos++
	}
	return t
}

func (ts *tokenScanner) consumeFunc(match func(Token) bool) bool {
	if t := ts.peek(); t != nil && match(t) {
		ts.pos++
		return true
	}
	return false
}

func (ts *tokenScanner) errorAt(message string) error {
	pos := 0
	if t := ts.peek(); t != nil {
		pos, _ = t.Range()
	}
	return &scanner.Error{Message: message, Pos: pos}
}

// consumeProperty reads a single property with its values. Properties
// are separated by the `+` sibling operator.
func consumeProperty(ts *tokenScanner, opts ParseOptions) (*Property, error) {
	var prop Property
	valueMode := opts.Value

	for ts.readable() {
		token := ts.peek()

		if isSiblingOperator(token) {
			break
		}

		switch t := token.(type) {
		case Operator:
			switch t.Kind {
			case OpImportant:
				ts.pos++
				prop.Important = true
				continue
			case OpPropertyDelimiter:
				ts.pos++
				valueMode = true
				continue
			}
		case Literal:
			// A literal directly followed by an open bracket is a
			// function call value, not a property name.
			next, _ := ts.peekAhead(1).(Bracket)
			if prop.Name == "" && !valueMode && !next.Open {
				ts.pos++
				prop.Name = t.Value
				// An explicit dash right after a name glues the next
				// literal onto it: `bd-rad` style property names.
				for {
					if op, ok := ts.peek().(Operator); ok && op.Kind == OpValueDelimiter {
						if lit, ok := ts.peekAhead(1).(Literal); ok {
							ts.pos += 2
							prop.Name += "-" + lit.Value
							continue
						}
					}
					break
				}
				valueMode = true
				continue
			}
		case WhiteSpace:
			ts.pos++
			continue
		}

		// Whitespace always ends a value group at the property level;
		// only function arguments read through it.
		value, err := consumeValue(ts, false)
		if err != nil {
			return nil, err
		}
		if value == nil {
			break
		}
		prop.Value = append(prop.Value, *value)
	}

	if prop.Name == "" && prop.Value == nil && !prop.Important {
		return nil, nil
	}
	return &prop, nil
}

func (ts *tokenScanner) peekAhead(n int) Token {
	if ts.pos+n < len(ts.tokens) {
		return ts.tokens[ts.pos+n]
	}
	return nil
}

// consumeValue reads one space-separated value group. Dashes act as
// delimiters between fragments; a dash directly before a number negates
// it, so `10-20` reads as `10px -20px`.
func consumeValue(ts *tokenScanner, inArgument bool) (*CSSValue, error) {
	var value CSSValue

	for ts.readable() {
		token := ts.peek()
		switch t := token.(type) {
		case NumberValue, ColorValue, StringValue, Field:
			ts.pos++
			value.Value = append(value.Value, TokenItem{Token: token})
		case Literal:
			ts.pos++
			if b, ok := ts.peek().(Bracket); ok && b.Open {
				args, err := consumeArguments(ts)
				if err != nil {
					return nil, err
				}
				value.Value = append(value.Value, FunctionCall{Name: t.Value, Arguments: args})
			} else {
				value.Value = append(value.Value, TokenItem{Token: token})
			}
		case Operator:
			if t.Kind != OpValueDelimiter {
				return finishValue(&value), nil
			}
			ts.pos++
			if num, ok := ts.peek().(NumberValue); ok {
				ts.pos++
				num.Value = -num.Value
				num.RawValue = "-" + num.RawValue
				value.Value = append(value.Value, TokenItem{Token: num})
			}
			// A dash not followed by a number is a plain separator.
		case WhiteSpace:
			ts.pos++
			if inArgument {
				continue
			}
			return finishValue(&value), nil
		default:
			return finishValue(&value), nil
		}
	}

	return finishValue(&value), nil
}

func finishValue(v *CSSValue) *CSSValue {
	if v.Value == nil {
		return nil
	}
	return v
}

// consumeArguments reads a parenthesized, comma-separated argument list
// for a function call. The scanner is positioned at the opening bracket.
func consumeArguments(ts *tokenScanner) ([]CSSValue, error) {
	ts.pos++ // opening bracket
	var args []CSSValue

	for ts.readable() {
		token := ts.peek()
		if b, ok := token.(Bracket); ok && !b.Open {
			ts.pos++
			return args, nil
		}
		if op, ok := token.(Operator); ok && op.Kind == OpArgumentDelimiter {
			ts.pos++
			continue
		}
		if _, ok := token.(WhiteSpace); ok {
			ts.pos++
			continue
		}

		value, err := consumeValue(ts, true)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, ts.errorAt("Unexpected token in arguments")
		}
		args = append(args, *value)
	}

	return nil, ts.errorAt("Expecting )")
}

func isSiblingOperator(t Token) bool {
	op, ok := t.(Operator)
	return ok && op.Kind == OpSibling
}
