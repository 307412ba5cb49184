// Package abbr implements the markup abbreviation pipeline: a tokenizer
// over the compact shorthand syntax (`ul.list>li.item$*3`), a
// recursive-descent parser producing a token-element tree, and a
// converter that unrolls repeaters into the final abbreviation node tree
// consumed by resolvers and renderers.
package abbr

// BracketContext identifies which paired construct a bracket token opens
// or closes.
type BracketContext string

const (
	BracketGroup      BracketContext = "group"      // ( )
	BracketAttribute  BracketContext = "attribute"  // [ ]
	BracketExpression BracketContext = "expression" // { }
)

// OperatorKind identifies a structural operator.
type OperatorKind string

const (
	OpChild   OperatorKind = "child"   // >
	OpSibling OperatorKind = "sibling" // +
	OpClimb   OperatorKind = "climb"   // ^
	OpClass   OperatorKind = "class"   // .
	OpID      OperatorKind = "id"      // #
	OpEqual   OperatorKind = "equal"   // =
	OpClose   OperatorKind = "close"   // /
)

// Token is one lexical token of a markup abbreviation. Tokens are
// immutable once produced and carry rune offsets into the source.
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

// Literal is a run of plain characters.
type Literal struct {
	Value string
	Loc
}

// Quote is a single or double quote character.
type Quote struct {
	Single bool
	Loc
}

// Bracket opens or closes a group, attribute set or expression.
type Bracket struct {
	Open    bool
	Context BracketContext
	Loc
}

// Operator is a structural operator character.
type Operator struct {
	Kind OperatorKind
	Loc
}

// Repeater is the `*N` construct. Value is filled in during conversion
// with the 0-based iteration index.
type Repeater struct {
	Count    int
	Value    int
	Implicit bool
	Loc
}

// RepeaterPlaceholder is the `$#` construct: inserts caller-supplied
// text for the current repeater iteration.
type RepeaterPlaceholder struct {
	Loc
}

// RepeaterNumber is the `$` numbering construct with optional `@`
// modifiers: `@-` reverses numbering, `@N` sets the base, `@^` numbers
// by the parent repeater.
type RepeaterNumber struct {
	Size    int
	Reverse bool
	Base    int
	Parent  bool
	Loc
}

// FieldToken is the `${index:placeholder}` construct, recognized inside
// attribute and expression contexts only. A field with a name but no
// index is a variable reference resolved at conversion time.
type FieldToken struct {
	Index    int
	HasIndex bool
	Name     string
	Loc
}

// WhiteSpace is a run of whitespace characters.
type WhiteSpace struct {
	Value string
	Loc
}

func (Literal) token()             {}
func (Quote) token()               {}
func (Bracket) token()             {}
func (Operator) token()            {}
func (Repeater) token()            {}
func (RepeaterPlaceholder) token() {}
func (RepeaterNumber) token()      {}
func (FieldToken) token()          {}
func (WhiteSpace) token()          {}
