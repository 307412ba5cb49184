package abbr

import (
	"regexp"
	"strconv"
	"strings"
)

// convertState carries shared conversion context: the active repeater
// stack, caller text and the repeat guard counter.
type convertState struct {
	opts        *ParseOptions
	repeaters   []*Repeat
	inserted    bool // any caller text consumed during conversion
	iterated    bool // text consumed within the current repeat iteration
	repeatGuard int
}

const defaultMaxRepeat = 1 << 20

// Convert unrolls repeaters in the parse tree and produces the final
// abbreviation node tree. For explicit `*N` the node is copied N times
// with per-iteration numbering; an implicit `*` bound to multi-line
// caller text repeats once per line. If caller text was supplied but no
// node consumed it through a repeater placeholder, the text is inserted
// into the deepest last descendant.
func Convert(group *TokenGroup, opts *ParseOptions) *Abbreviation {
	if opts == nil {
		opts = &ParseOptions{}
	}
	state := &convertState{opts: opts, repeatGuard: opts.MaxRepeat}
	if state.repeatGuard <= 0 {
		state.repeatGuard = defaultMaxRepeat
	}

	result := &Abbreviation{}
	for _, child := range group.Children {
		result.Children = append(result.Children, convertStatement(child, state)...)
	}

	if opts.Text != nil && !state.inserted && len(result.Children) > 0 {
		deepest := DeepestNode(result.Children[len(result.Children)-1])
		text := strings.Join(opts.Text, "\n")
		InsertText(deepest, text)
		if deepest.Name == "a" && opts.Href && looksLikeURL(text) {
			insertHref(deepest, text)
		}
	}

	return result
}

func convertStatement(node Statement, state *convertState) []*Node {
	repeat := statementRepeat(node)
	if repeat == nil {
		return convertOne(node, state, nil)
	}

	count := repeat.Count
	if repeat.Implicit && state.opts.Text != nil {
		count = len(state.opts.Text)
	}
	if count < 1 {
		count = 1
	}

	active := &Repeat{Count: count, Implicit: repeat.Implicit}
	state.repeaters = append(state.repeaters, active)

	var result []*Node
	for i := 0; i < count; i++ {
		active.Value = i
		state.iterated = false
		items := convertOne(node, state, active)

		if active.Implicit && !state.iterated && len(items) > 0 {
			// Implicit repeater without placeholders inside: insert the
			// line for this iteration into the deepest node.
			deepest := DeepestNode(items[len(items)-1])
			InsertText(deepest, state.getText(i))
			state.inserted = true
		}

		result = append(result, items...)

		state.repeatGuard--
		if state.repeatGuard <= 0 {
			break
		}
	}

	state.repeaters = state.repeaters[:len(state.repeaters)-1]
	return result
}

func statementRepeat(node Statement) *Repeater {
	switch n := node.(type) {
	case *TokenElement:
		return n.Repeat
	case *TokenGroup:
		return n.Repeat
	}
	return nil
}

func convertOne(node Statement, state *convertState, repeat *Repeat) []*Node {
	switch n := node.(type) {
	case *TokenGroup:
		return convertGroup(n, state, repeat)
	case *TokenElement:
		return convertElement(n, state, repeat)
	}
	return nil
}

func convertGroup(group *TokenGroup, state *convertState, repeat *Repeat) []*Node {
	var result []*Node
	for _, child := range group.Children {
		result = append(result, convertStatement(child, state)...)
	}
	if repeat != nil {
		attachRepeater(result, repeat)
	}
	return result
}

// attachRepeater marks every result item of a repeated group that does
// not already carry a repeater with the group's one.
func attachRepeater(items []*Node, repeat *Repeat) {
	for _, item := range items {
		if item.Repeat == nil {
			r := *repeat
			item.Repeat = &r
		}
	}
}

func convertElement(elem *TokenElement, state *convertState, repeat *Repeat) []*Node {
	node := &Node{
		Name:        stringifyName(elem.Name, state),
		SelfClosing: elem.SelfClose,
	}
	if repeat != nil {
		r := *repeat
		node.Repeat = &r
	}
	if elem.Value != nil {
		node.Value = stringifyValue(elem.Value, state)
	}
	for _, attr := range elem.Attributes {
		node.Attributes = append(node.Attributes, convertAttribute(attr, state))
	}
	if elem.Attributes != nil && node.Attributes == nil {
		node.Attributes = []Attribute{}
	}

	var children []*Node
	for _, child := range elem.Children {
		children = append(children, convertStatement(child, state)...)
	}

	// Text-only snippet nodes without fields are flattened: their
	// children become siblings of the node rather than nested below it.
	if node.Name == "" && node.Attributes == nil && node.Value != nil && !node.Value.HasField() {
		return append([]*Node{node}, children...)
	}

	node.Children = children
	return []*Node{node}
}

func convertAttribute(attr TokenAttribute, state *convertState) Attribute {
	result := Attribute{
		Multiple:  attr.Multiple,
		ValueType: ValueRaw,
	}

	switch {
	case attr.Expression:
		result.ValueType = ValueExpression
	case attr.ValueQuote == '\'':
		result.ValueType = ValueSingleQuote
	case attr.ValueQuote == '"':
		result.ValueType = ValueDoubleQuote
	}

	if attr.Name != nil {
		name := stringifyName(attr.Name, state)
		if strings.HasPrefix(name, "!") {
			name = name[1:]
			result.Implied = true
		}
		if strings.HasSuffix(name, ".") {
			name = name[:len(name)-1]
			result.Boolean = true
		}
		result.Name = name
	}
	if attr.Value != nil {
		result.Value = stringifyValue(attr.Value, state)
	}
	return result
}

// stringifyName resolves name tokens (literals plus repeater numbering)
// into a plain string.
func stringifyName(tokens []Token, state *convertState) string {
	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString(stringifyToken(token, state))
	}
	return sb.String()
}

// stringifyValue resolves value tokens into mixed text/field items.
// Adjacent text runs are merged.
func stringifyValue(tokens []Token, state *convertState) Value {
	var result Value
	pushText := func(text string) {
		if text == "" {
			return
		}
		if n := len(result); n > 0 {
			if t, ok := result[n-1].(Text); ok {
				result[n-1] = t + Text(text)
				return
			}
		}
		result = append(result, Text(text))
	}

	for _, token := range tokens {
		if f, ok := token.(FieldToken); ok {
			if !f.HasIndex && f.Name != "" {
				// Variable reference: resolve against supplied variables,
				// falling back to the variable name as placeholder text.
				if v, ok := state.opts.Variables[f.Name]; ok {
					pushText(v)
				} else {
					pushText(f.Name)
				}
				continue
			}
			result = append(result, Field{Index: f.Index, Name: f.Name})
			continue
		}
		pushText(stringifyToken(token, state))
	}
	return result
}

func stringifyToken(token Token, state *convertState) string {
	switch t := token.(type) {
	case Literal:
		return t.Value
	case Quote:
		if t.Single {
			return "'"
		}
		return `"`
	case Bracket:
		return bracketText(t)
	case Operator:
		return operatorText(t.Kind)
	case WhiteSpace:
		return t.Value
	case RepeaterPlaceholder:
		state.inserted = true
		state.iterated = true
		return state.getText(currentRepeatValue(state))
	case RepeaterNumber:
		return repeaterNumberText(t, state)
	case FieldToken:
		// Indexed fields are handled by stringifyValue; a bare field in
		// a name context degrades to its placeholder text.
		return t.Name
	}
	return ""
}

func repeaterNumberText(t RepeaterNumber, state *convertState) string {
	value := 1
	lastIx := len(state.repeaters) - 1
	if lastIx >= 0 {
		repeater := state.repeaters[lastIx]
		if t.Parent && lastIx > 0 {
			repeater = state.repeaters[lastIx-1]
		}
		if t.Reverse {
			value = t.Base + repeater.Count - repeater.Value - 1
		} else {
			value = t.Base + repeater.Value
		}
	}

	result := strconv.Itoa(value)
	for len(result) < t.Size {
		result = "0" + result
	}
	return result
}

func currentRepeatValue(state *convertState) int {
	if n := len(state.repeaters); n > 0 {
		return state.repeaters[n-1].Value
	}
	return -1
}

// getText returns the caller-supplied text line for the given repeat
// iteration, or all lines joined when the index is out of range.
func (s *convertState) getText(pos int) string {
	if s.opts.Text == nil {
		return ""
	}
	if pos >= 0 && pos < len(s.opts.Text) {
		return s.opts.Text[pos]
	}
	return strings.Join(s.opts.Text, "\n")
}

var urlPattern = regexp.MustCompile(`^(?:https?:|ftp:|file:)?//|^(?:[a-z0-9-]+\.)+[a-z]{2,}`)
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

func looksLikeURL(text string) bool {
	text = strings.TrimSpace(strings.ToLower(text))
	return urlPattern.MatchString(text) || emailPattern.MatchString(text)
}

// insertHref mirrors wrapped URL-like text into the href attribute of
// the deepest anchor element.
func insertHref(node *Node, text string) {
	href := strings.TrimSpace(text)
	lower := strings.ToLower(href)
	switch {
	case emailPattern.MatchString(lower):
		href = "mailto:" + href
	case !strings.Contains(lower, "://") && !strings.HasPrefix(lower, "//"):
		href = "http://" + href
	}

	for i, attr := range node.Attributes {
		if attr.Name == "href" {
			if attr.Value == nil {
				node.Attributes[i].Value = Value{Text(href)}
			}
			return
		}
	}
	node.Attributes = append(node.Attributes, Attribute{
		Name:      "href",
		Value:     Value{Text(href)},
		ValueType: ValueDoubleQuote,
	})
}
