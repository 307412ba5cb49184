package cssabbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, abbr string) *Property {
	t.Helper()
	props, err := Parse(abbr, ParseOptions{})
	require.NoError(t, err)
	require.Len(t, props, 1)
	return props[0]
}

func numbers(prop *Property) []float64 {
	var out []float64
	for _, group := range prop.Value {
		for _, item := range group.Value {
			if ti, ok := item.(TokenItem); ok {
				if num, ok := ti.Token.(NumberValue); ok {
					out = append(out, num.Value)
				}
			}
		}
	}
	return out
}

func TestParseSimpleProperty(t *testing.T) {
	prop := parseOne(t, "p10")
	assert.Equal(t, "p", prop.Name)
	assert.Equal(t, []float64{10}, numbers(prop))
	assert.False(t, prop.Important)
}

func TestParseMultipleValues(t *testing.T) {
	prop := parseOne(t, "m10-20")
	assert.Equal(t, "m", prop.Name)
	assert.Equal(t, []float64{10, -20}, numbers(prop))
}

func TestParseExplicitNegative(t *testing.T) {
	prop := parseOne(t, "m-10-20")
	assert.Equal(t, "m", prop.Name)
	assert.Equal(t, []float64{-10, -20}, numbers(prop))
}

func TestParseSiblingProperties(t *testing.T) {
	props, err := Parse("p10+m5", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "p", props[0].Name)
	assert.Equal(t, "m", props[1].Name)
}

func TestParseImportant(t *testing.T) {
	prop := parseOne(t, "p10!")
	assert.Equal(t, "p", prop.Name)
	assert.True(t, prop.Important)
}

func TestParseKeywordValue(t *testing.T) {
	prop := parseOne(t, "d:n")
	assert.Equal(t, "d", prop.Name)
	require.Len(t, prop.Value, 1)
	ti := prop.Value[0].Value[0].(TokenItem)
	assert.Equal(t, "n", ti.Token.(Literal).Value)
}

func TestParseColorValue(t *testing.T) {
	prop := parseOne(t, "c#f.5")
	assert.Equal(t, "c", prop.Name)
	require.Len(t, prop.Value, 1)
	color := prop.Value[0].Value[0].(TokenItem).Token.(ColorValue)
	assert.Equal(t, 255, color.R)
	assert.Equal(t, 0.5, color.A)
}

func TestParseFunctionCall(t *testing.T) {
	props, err := Parse("transform translate(10px, 20px)", ParseOptions{Value: true})
	require.NoError(t, err)
	require.Len(t, props, 1)

	prop := props[0]
	var fn *FunctionCall
	for _, group := range prop.Value {
		for _, item := range group.Value {
			if call, ok := item.(FunctionCall); ok {
				fn = &call
			}
		}
	}
	require.NotNil(t, fn)
	assert.Equal(t, "translate", fn.Name)
	require.Len(t, fn.Arguments, 2)
}

func TestParseUnterminatedArguments(t *testing.T) {
	_, err := Parse("t(10", ParseOptions{})
	assert.Error(t, err)
}

func TestParseValueMode(t *testing.T) {
	props, err := Parse("0 auto", ParseOptions{Value: true})
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Empty(t, props[0].Name)
	assert.Len(t, props[0].Value, 2)
}

func TestParseLeadingFunctionCall(t *testing.T) {
	prop := parseOne(t, "lg(to right, #0, #f)")
	assert.Empty(t, prop.Name)
	require.Len(t, prop.Value, 1)
	fn, ok := prop.Value[0].Value[0].(FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "lg", fn.Name)
	assert.Len(t, fn.Arguments, 3)
}

func TestParseDashGluedName(t *testing.T) {
	prop := parseOne(t, "bd-rad")
	assert.Equal(t, "bd-rad", prop.Name)
}
