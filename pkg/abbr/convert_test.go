package abbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string, opts *ParseOptions) *Abbreviation {
	t.Helper()
	result, err := Parse(source, opts)
	require.NoError(t, err)
	return result
}

func TestConvertUnrollsRepeat(t *testing.T) {
	result := mustParse(t, "li*3", nil)

	require.Len(t, result.Children, 3)
	for i, child := range result.Children {
		assert.Equal(t, "li", child.Name)
		require.NotNil(t, child.Repeat)
		assert.Equal(t, 3, child.Repeat.Count)
		assert.Equal(t, i, child.Repeat.Value)
	}
}

func TestConvertRepeaterNumbering(t *testing.T) {
	result := mustParse(t, "li.item$*3", nil)

	require.Len(t, result.Children, 3)
	for i, child := range result.Children {
		require.Len(t, child.Attributes, 1)
		assert.Equal(t, Value{Text("item" + string(rune('1'+i)))}, child.Attributes[0].Value)
	}
}

func TestConvertReverseAndPaddedNumbering(t *testing.T) {
	result := mustParse(t, "i$$@-*3", nil)

	var names []string
	for _, child := range result.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"i03", "i02", "i01"}, names)
}

func TestConvertNumberingBase(t *testing.T) {
	result := mustParse(t, "p$@10*2", nil)
	require.Len(t, result.Children, 2)
	assert.Equal(t, "p10", result.Children[0].Name)
	assert.Equal(t, "p11", result.Children[1].Name)
}

func TestConvertGroupAttachesRepeater(t *testing.T) {
	result := mustParse(t, "(p+em)*2", nil)

	require.Len(t, result.Children, 4)
	for _, child := range result.Children {
		require.NotNil(t, child.Repeat, "group repeat must attach to items without one")
	}
	assert.Equal(t, 0, result.Children[0].Repeat.Value)
	assert.Equal(t, 1, result.Children[2].Repeat.Value)
}

func TestConvertImplicitRepeatUsesTextLines(t *testing.T) {
	opts := &ParseOptions{Text: []string{"one", "two", "three"}}
	result := mustParse(t, "li*", opts)

	require.Len(t, result.Children, 3)
	assert.Equal(t, Value{Text("one")}, result.Children[0].Value)
	assert.Equal(t, Value{Text("two")}, result.Children[1].Value)
	assert.Equal(t, Value{Text("three")}, result.Children[2].Value)
}

func TestConvertForceInsertsUnconsumedText(t *testing.T) {
	opts := &ParseOptions{Text: []string{"content"}}
	result := mustParse(t, "div>p", opts)

	require.Len(t, result.Children, 1)
	p := result.Children[0].Children[0]
	assert.Equal(t, Value{Text("content")}, p.Value)
}

func TestConvertTextOnlySnippetFlattens(t *testing.T) {
	// A text node with children and no fields becomes a sibling chain.
	result := mustParse(t, "div>{click}+a", nil)

	div := result.Children[0]
	require.Len(t, div.Children, 2)
	assert.Equal(t, "", div.Children[0].Name)
	assert.Equal(t, Value{Text("click")}, div.Children[0].Value)
	assert.Equal(t, "a", div.Children[1].Name)
}

func TestConvertClassThenText(t *testing.T) {
	// Text after a class shorthand belongs to the element, not the class.
	result := mustParse(t, "li.item{one}", nil)

	li := result.Children[0]
	require.Len(t, li.Attributes, 1)
	assert.Equal(t, Value{Text("item")}, li.Attributes[0].Value)
	assert.Equal(t, Value{Text("one")}, li.Value)
}

func TestConvertJSXDottedName(t *testing.T) {
	result := mustParse(t, "Foo.Bar", &ParseOptions{JSX: true})

	require.Len(t, result.Children, 1)
	assert.Equal(t, "Foo.Bar", result.Children[0].Name)
}

func TestConvertBracketsInAttributeValue(t *testing.T) {
	result := mustParse(t, "div[data-bind=a{1}]", nil)

	div := result.Children[0]
	require.Len(t, div.Attributes, 1)
	assert.Equal(t, Value{Text("a{1}")}, div.Attributes[0].Value)
}

func TestConvertVariableResolution(t *testing.T) {
	opts := &ParseOptions{Variables: map[string]string{"lang": "en"}}
	result := mustParse(t, "html[lang=${lang}]", opts)

	html := result.Children[0]
	require.Len(t, html.Attributes, 1)
	assert.Equal(t, Value{Text("en")}, html.Attributes[0].Value)
}

func TestConvertBooleanAndImpliedAttributes(t *testing.T) {
	result := mustParse(t, "input[required. !hidden]", nil)

	input := result.Children[0]
	require.Len(t, input.Attributes, 2)
	assert.Equal(t, "required", input.Attributes[0].Name)
	assert.True(t, input.Attributes[0].Boolean)
	assert.Equal(t, "hidden", input.Attributes[1].Name)
	assert.True(t, input.Attributes[1].Implied)
}

func TestConvertRepeatGuard(t *testing.T) {
	opts := &ParseOptions{MaxRepeat: 10}
	result := mustParse(t, "li*100000", opts)
	assert.Len(t, result.Children, 10)
}

func TestConvertDeterministic(t *testing.T) {
	a := mustParse(t, "ul>li.item$*4>a[href=#]", nil)
	b := mustParse(t, "ul>li.item$*4>a[href=#]", nil)
	assert.Equal(t, a, b)
}
