package cssabbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		abbr  string
		want  []Token
	}{
		{
			name: "property with integer values",
			abbr: "p10",
			want: []Token{
				Literal{Value: "p", Loc: Loc{0, 1}},
				NumberValue{Value: 10, RawValue: "10", Loc: Loc{1, 3}},
			},
		},
		{
			name: "float value",
			abbr: "lh1.5",
			want: []Token{
				Literal{Value: "lh", Loc: Loc{0, 2}},
				NumberValue{Value: 1.5, RawValue: "1.5", Loc: Loc{2, 5}},
			},
		},
		{
			name: "trailing dot is part of the number",
			abbr: "m1.",
			want: []Token{
				Literal{Value: "m", Loc: Loc{0, 1}},
				NumberValue{Value: 1, RawValue: "1.", Loc: Loc{1, 3}},
			},
		},
		{
			name: "unit suffix",
			abbr: "w100px",
			want: []Token{
				Literal{Value: "w", Loc: Loc{0, 1}},
				NumberValue{Value: 100, RawValue: "100", Unit: "px", Loc: Loc{1, 6}},
			},
		},
		{
			name: "percent unit",
			abbr: "w50%",
			want: []Token{
				Literal{Value: "w", Loc: Loc{0, 1}},
				NumberValue{Value: 50, RawValue: "50", Unit: "%", Loc: Loc{1, 4}},
			},
		},
		{
			name: "leading negative number",
			abbr: "m-10",
			want: []Token{
				Literal{Value: "m", Loc: Loc{0, 1}},
				NumberValue{Value: -10, RawValue: "-10", Loc: Loc{1, 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.abbr, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tokens)
		})
	}
}

// A dash after a unit-less number is a value delimiter, not the sign of
// the next number.
func TestTokenizeDashAfterNumber(t *testing.T) {
	tokens, err := Tokenize("m10-20", false)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		Literal{Value: "m", Loc: Loc{0, 1}},
		NumberValue{Value: 10, RawValue: "10", Loc: Loc{1, 3}},
		Operator{Kind: OpValueDelimiter, Loc: Loc{3, 4}},
		NumberValue{Value: 20, RawValue: "20", Loc: Loc{4, 6}},
	}, tokens)
}

func TestTokenizeColors(t *testing.T) {
	tests := []struct {
		abbr string
		want ColorValue
	}{
		{"#f", ColorValue{R: 255, G: 255, B: 255, A: 1, Raw: "f", Loc: Loc{0, 2}}},
		{"#0", ColorValue{A: 1, Raw: "0", Loc: Loc{0, 2}}},
		{"#fc0", ColorValue{R: 255, G: 204, B: 0, A: 1, Raw: "fc0", Loc: Loc{0, 4}}},
		{"#ffcc00", ColorValue{R: 255, G: 204, B: 0, A: 1, Raw: "ffcc00", Loc: Loc{0, 7}}},
		{"#t", ColorValue{A: 0, Raw: "t", Loc: Loc{0, 2}}},
		{"#.5", ColorValue{A: 0.5, Raw: ".5", Loc: Loc{0, 3}}},
		{"#f.5", ColorValue{R: 255, G: 255, B: 255, A: 0.5, Raw: "f.5", Loc: Loc{0, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.abbr, func(t *testing.T) {
			tokens, err := Tokenize(tt.abbr, false)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0])
		})
	}
}

func TestTokenizeOperatorsAndStrings(t *testing.T) {
	tokens, err := Tokenize("p10+m5", false)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		Literal{Value: "p", Loc: Loc{0, 1}},
		NumberValue{Value: 10, RawValue: "10", Loc: Loc{1, 3}},
		Operator{Kind: OpSibling, Loc: Loc{3, 4}},
		Literal{Value: "m", Loc: Loc{4, 5}},
		NumberValue{Value: 5, RawValue: "5", Loc: Loc{5, 6}},
	}, tokens)

	tokens, err = Tokenize(`c'red'`, false)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		Literal{Value: "c", Loc: Loc{0, 1}},
		StringValue{Value: "red", Single: true, Loc: Loc{1, 6}},
	}, tokens)

	_, err = Tokenize(`c"red`, false)
	assert.Error(t, err)
}

func TestTokenizeField(t *testing.T) {
	tokens, err := Tokenize("bg${1:color}", false)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		Literal{Value: "bg", Loc: Loc{0, 2}},
		Field{Index: 1, HasIndex: true, Name: "color", Loc: Loc{2, 12}},
	}, tokens)
}

func TestTokenizeValueMode(t *testing.T) {
	// In value mode digits and dashes belong to literals.
	tokens, err := Tokenize("border-box", true)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, Literal{Value: "border-box", Loc: Loc{0, 10}}, tokens[0])

	// Variable references keep their prefix.
	tokens, err = Tokenize("@grid-size", true)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, Literal{Value: "@grid-size", Loc: Loc{0, 10}}, tokens[0])
}

func TestTokenizeBracketBalance(t *testing.T) {
	_, err := Tokenize("t(", false)
	assert.NoError(t, err)

	_, err = Tokenize("t)", false)
	assert.Error(t, err)
}
