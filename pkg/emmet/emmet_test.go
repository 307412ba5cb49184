package emmet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goemmet/pkg/config"
)

func TestExpandDispatch(t *testing.T) {
	out, err := Expand("ul>li.item$*2", nil)
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n\t<li class=\"item1\"></li>\n\t<li class=\"item2\"></li>\n</ul>", out)

	out, err = Expand("m10-20", &config.UserConfig{Syntax: "css"})
	require.NoError(t, err)
	assert.Equal(t, "margin: 10px -20px;", out)
}

func TestExpandTypeOverridesSyntax(t *testing.T) {
	// An explicit type wins over what the syntax implies.
	out, err := Expand("p10", &config.UserConfig{Type: config.TypeStylesheet})
	require.NoError(t, err)
	assert.Equal(t, "padding: 10px;", out)
}

func TestExpandParseError(t *testing.T) {
	_, err := Expand("(div>p", nil)
	assert.Error(t, err)
}
