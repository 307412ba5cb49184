package pretty_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goemmet/internal/ui/pretty"
	"github.com/yaklabco/goemmet/pkg/scanner"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	// bytes.Buffer is not a TTY
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestFormatExpansion(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatExpansion("ul>li", "html", "<ul>\n\t<li></li>\n</ul>")

	assert.Contains(t, out, "ul>li  (html)\n")
	assert.Contains(t, out, "  <ul>\n")
	assert.Contains(t, out, "  \t<li></li>\n")
}

func TestFormatParseError_CaretPosition(t *testing.T) {
	styles := pretty.NewStyles(false)

	err := &scanner.Error{Message: "Expected ]", Pos: 9}
	out := styles.FormatParseError("div>span[", err)

	assert.Contains(t, out, "error: Expected ]\n")
	assert.Contains(t, out, "  div>span[\n")
	assert.Contains(t, out, "  "+"         "+"^\n")
}

func TestFormatParseError_PlainError(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatParseError("div", errors.New("boom"))

	assert.Equal(t, "error: boom\n", out)
}

func TestFormatSnippetMatch(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "bd  border  (0.500)", styles.FormatSnippetMatch("bd", "border", 0.5))
	assert.Equal(t, "bd  border", styles.FormatSnippetMatch("bd", "border", -1))
}
