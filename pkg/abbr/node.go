package abbr

// ValueType describes how an attribute value was delimited in the
// source, which drives quoting decisions in renderers.
type ValueType string

const (
	ValueRaw         ValueType = "raw"
	ValueSingleQuote ValueType = "singleQuote"
	ValueDoubleQuote ValueType = "doubleQuote"
	ValueExpression  ValueType = "expression"
)

// ValueItem is one piece of a node or attribute value: either literal
// Text or a Field tabstop.
type ValueItem interface{ valueItem() }

// Text is a literal run within a value.
type Text string

// Field is a tabstop placeholder within a value.
type Field struct {
	Index int
	Name  string
}

func (Text) valueItem()  {}
func (Field) valueItem() {}

// Value is a node or attribute value: mixed literal text and fields.
type Value []ValueItem

// HasField reports whether the value contains a tabstop.
func (v Value) HasField() bool {
	for _, item := range v {
		if _, ok := item.(Field); ok {
			return true
		}
	}
	return false
}

// String renders the value with field placeholders inlined.
func (v Value) String() string {
	out := ""
	for _, item := range v {
		switch t := item.(type) {
		case Text:
			out += string(t)
		case Field:
			out += t.Name
		}
	}
	return out
}

// Attribute is a fully-converted element attribute.
type Attribute struct {
	Name      string
	Value     Value
	Boolean   bool
	Implied   bool
	Multiple  bool
	ValueType ValueType
}

// Repeat captures a node's repeater state after unrolling: Count copies
// were produced and this node is iteration Value (0-based).
type Repeat struct {
	Count    int
	Value    int
	Implicit bool
}

// Node is a node of the final abbreviation tree. A node with no name and
// no attributes is a "snippet" node (pure text or wrapper); this
// classification drives formatting and merging decisions downstream.
type Node struct {
	Name        string
	Value       Value
	Attributes  []Attribute
	Children    []*Node
	Repeat      *Repeat
	SelfClosing bool
}

// IsSnippet reports whether the node is a text-only snippet node.
func (n *Node) IsSnippet() bool {
	return n.Name == "" && n.Attributes == nil
}

// Abbreviation is the root of the converted node tree.
type Abbreviation struct {
	Children []*Node
}

// ParseOptions alter parsing and conversion behavior.
type ParseOptions struct {
	// Text is caller-supplied content (e.g. wrapped selection), one
	// entry per line. A nil slice means no text was supplied.
	Text []string

	// Variables resolve `${name}` references in snippets.
	Variables map[string]string

	// MaxRepeat caps total repeater output to guard against
	// pathological `*9999999` input. Zero means no limit.
	MaxRepeat int

	// JSX enables JSX-specific parsing (dotted capitalized names).
	JSX bool

	// Href enables wrapping URL-like supplied text into an href value.
	Href bool
}

// Parse tokenizes, parses and converts an abbreviation string into the
// final node tree.
func Parse(source string, opts *ParseOptions) (*Abbreviation, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	group, err := ParseTokens(tokens, opts)
	if err != nil {
		return nil, err
	}
	return Convert(group, opts), nil
}

// DeepestNode returns the deepest last descendant of the node.
func DeepestNode(node *Node) *Node {
	for len(node.Children) > 0 {
		node = node.Children[len(node.Children)-1]
	}
	return node
}

// InsertText places caller-supplied text into the node: the first empty
// field is replaced when present, otherwise the text is appended.
func InsertText(node *Node, text string) {
	if len(node.Value) > 0 {
		var result Value
		inserted := false
		for _, item := range node.Value {
			if f, ok := item.(Field); ok && f.Name == "" && !inserted {
				result = append(result, Text(text))
				inserted = true
				continue
			}
			result = append(result, item)
		}
		if !inserted {
			result = append(result, Text(text))
		}
		node.Value = result
		return
	}
	node.Value = Value{Text(text)}
}

// CloneNode returns a deep copy of the node and its subtree.
func CloneNode(node *Node) *Node {
	clone := &Node{
		Name:        node.Name,
		SelfClosing: node.SelfClosing,
	}
	if node.Value != nil {
		clone.Value = append(Value(nil), node.Value...)
	}
	if node.Attributes != nil {
		clone.Attributes = make([]Attribute, len(node.Attributes))
		for i, attr := range node.Attributes {
			clone.Attributes[i] = attr
			if attr.Value != nil {
				clone.Attributes[i].Value = append(Value(nil), attr.Value...)
			}
		}
	}
	if node.Repeat != nil {
		r := *node.Repeat
		clone.Repeat = &r
	}
	for _, child := range node.Children {
		clone.Children = append(clone.Children, CloneNode(child))
	}
	return clone
}
