// Package cssabbr implements the stylesheet abbreviation pipeline: a
// CSS-specific tokenizer (numbers with units, color shortcuts, quoted
// strings, function calls) and a parser producing property/value lists.
package cssabbr

// OperatorKind identifies a stylesheet operator.
type OperatorKind string

const (
	OpSibling           OperatorKind = "sibling"   // +
	OpImportant         OperatorKind = "important" // !
	OpArgumentDelimiter OperatorKind = "argDelim"  // ,
	OpPropertyDelimiter OperatorKind = "propDelim" // :
	OpValueDelimiter    OperatorKind = "valueDelim" // -
)

// Token is one lexical token of a stylesheet abbreviation.
type Token interface {
	Range() (start, end int)
	token()
}

// Loc carries source offsets shared by all token kinds.
type Loc struct {
	Start int
	End   int
}

// Range returns the token's source offsets.
func (l Loc) Range() (int, int) { return l.Start, l.End }

// Literal is an identifier or keyword fragment.
type Literal struct {
	Value string
	Loc
}

// NumberValue is a numeric token with an optional unit. RawValue keeps
// the source spelling so float detection (`1.5`) survives parsing.
type NumberValue struct {
	Value    float64
	RawValue string
	Unit     string
	Loc
}

// StringValue is a quoted string.
type StringValue struct {
	Value  string
	Single bool
	Loc
}

// ColorValue is a parsed `#...` color shortcut.
type ColorValue struct {
	R, G, B int
	A       float64
	Raw     string
	Loc
}

// Bracket is a parenthesis.
type Bracket struct {
	Open bool
	Loc
}

// Operator is a structural stylesheet operator.
type Operator struct {
	Kind OperatorKind
	Loc
}

// WhiteSpace is a run of whitespace characters.
type WhiteSpace struct {
	Loc
}

// Field is the `${index:placeholder}` construct.
type Field struct {
	Index    int
	HasIndex bool
	Name     string
	Loc
}

func (Literal) token()     {}
func (NumberValue) token() {}
func (StringValue) token() {}
func (ColorValue) token()  {}
func (Bracket) token()     {}
func (Operator) token()    {}
func (WhiteSpace) token()  {}
func (Field) token()       {}
