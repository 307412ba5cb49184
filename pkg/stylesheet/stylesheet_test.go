package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goemmet/pkg/config"
)

func expandCSS(t *testing.T, abbr string, user *config.UserConfig) string {
	t.Helper()
	if user == nil {
		user = &config.UserConfig{}
	}
	if user.Syntax == "" {
		user.Syntax = "css"
	}
	cfg, err := config.Resolve(user)
	require.NoError(t, err)

	out, err := Expand(abbr, cfg)
	require.NoError(t, err)
	return out
}

func TestExpandProperties(t *testing.T) {
	cases := []struct {
		abbr string
		want string
	}{
		{"m10", "margin: 10px;"},
		{"m10-20", "margin: 10px -20px;"},
		{"m-10-20", "margin: -10px -20px;"},
		{"m1.5", "margin: 1.5em;"},
		{"w100p", "width: 100%;"},
		{"z10", "z-index: 10;"},
		{"op.5", "opacity: 0.5;"},
		{"p", "padding: ;"},
		{"p10!", "padding: 10px !important;"},
		{"p10+m20", "padding: 10px;\nmargin: 20px;"},
	}
	for _, c := range cases {
		t.Run(c.abbr, func(t *testing.T) {
			assert.Equal(t, c.want, expandCSS(t, c.abbr, nil))
		})
	}
}

func TestExpandKeywords(t *testing.T) {
	cases := []struct {
		abbr string
		want string
	}{
		{"d", "display: block;"},
		{"d:n", "display: none;"},
		{"dib", "display: inline-block;"},
		{"ovh", "overflow: hidden;"},
		{"pos", "position: relative;"},
		{"fxd:c", "flex-direction: column;"},
		{"tt", "text-transform: uppercase;"},
		{"ta:c", "text-align: center;"},
		// The global keyword list applies when the snippet has none.
		{"m:a", "margin: auto;"},
	}
	for _, c := range cases {
		t.Run(c.abbr, func(t *testing.T) {
			assert.Equal(t, c.want, expandCSS(t, c.abbr, nil))
		})
	}
}

func TestExpandColors(t *testing.T) {
	cases := []struct {
		abbr string
		want string
	}{
		{"c", "color: #000;"},
		{"c#f", "color: #ffffff;"},
		{"c#fc0", "color: #ffcc00;"},
		{"c#f.5", "color: rgba(255, 255, 255, 0.5);"},
		{"c#0.5", "color: rgba(0, 0, 0, 0.5);"},
		{"c#t", "color: transparent;"},
		{"bgc", "background-color: #fff;"},
	}
	for _, c := range cases {
		t.Run(c.abbr, func(t *testing.T) {
			assert.Equal(t, c.want, expandCSS(t, c.abbr, nil))
		})
	}
}

func TestExpandShortHex(t *testing.T) {
	user := &config.UserConfig{Options: map[string]any{"stylesheet.shortHex": true}}
	assert.Equal(t, "color: #fff;", expandCSS(t, "c#f", user))
	assert.Equal(t, "color: #fc0;", expandCSS(t, "c#fc0", user))
	// Channels that do not repeat a nibble stay in full form.
	assert.Equal(t, "color: #ffcc01;", expandCSS(t, "c#ffcc01", user))
}

func TestExpandGradient(t *testing.T) {
	assert.Equal(t,
		"background-image: linear-gradient(to right, #000000, #ffffff);",
		expandCSS(t, "lg(to right, #0, #f)", nil))
	assert.Equal(t,
		"background-image: linear-gradient();",
		expandCSS(t, "lg", nil))
}

func TestExpandRawSnippet(t *testing.T) {
	assert.Equal(t, "@import url(${0});", expandCSS(t, "@i", nil))
	out := expandCSS(t, "@kf", nil)
	assert.Contains(t, out, "@keyframes")
}

func TestExpandUnmatchedTail(t *testing.T) {
	// A trailing fragment that resolves to no keyword leaves the
	// abbreviation as typed.
	assert.Equal(t, "mq: ;", expandCSS(t, "mq", nil))
}

func TestExpandBareValue(t *testing.T) {
	// Without a property name tokens are emitted verbatim.
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", expandCSS(t, "#0.5", nil))
}

func TestExpandValueScope(t *testing.T) {
	user := &config.UserConfig{Context: &config.Context{Name: "display"}}
	assert.Equal(t, "none", expandCSS(t, "n", user))

	user = &config.UserConfig{Context: &config.Context{Name: "margin"}}
	assert.Equal(t, "10px 20px", expandCSS(t, "10 20", user))
}

func TestExpandDependencyKeyword(t *testing.T) {
	// background-repeat's keywords are reachable through the background
	// shorthand.
	assert.Equal(t, "background: no-repeat;", expandCSS(t, "bgn", nil))
}

func TestExpandSectionScope(t *testing.T) {
	user := &config.UserConfig{Context: &config.Context{Name: config.ScopeSection}}
	assert.Equal(t, "@media ${1:screen} {\n\t${0}\n}", expandCSS(t, "@m", user))

	// Property snippets are out of scope between rule sections.
	assert.Equal(t, "", expandCSS(t, "p10", user))
}

func TestExpandPropertyScope(t *testing.T) {
	user := &config.UserConfig{Context: &config.Context{Name: config.ScopeProperty}}
	assert.Equal(t, "text-align: left;", expandCSS(t, "ta", user))
}

func TestExpandUnitOptions(t *testing.T) {
	user := &config.UserConfig{Options: map[string]any{"stylesheet.intUnit": "rem"}}
	assert.Equal(t, "margin: 5rem;", expandCSS(t, "m5", user))

	user = &config.UserConfig{Options: map[string]any{"stylesheet.floatUnit": "vh"}}
	assert.Equal(t, "width: 1.5vh;", expandCSS(t, "w1.5", user))

	user = &config.UserConfig{Options: map[string]any{
		"stylesheet.unitAliases": map[string]any{"g": "vh"},
	}}
	assert.Equal(t, "height: 10vh;", expandCSS(t, "h10g", user))
}

func TestExpandJSON(t *testing.T) {
	user := &config.UserConfig{Options: map[string]any{"stylesheet.json": true}}
	assert.Equal(t, "padding: 10,", expandCSS(t, "p10", user))
	assert.Equal(t, "zIndex: 10,", expandCSS(t, "z10", user))
	assert.Equal(t, "backgroundColor: '#fff',", expandCSS(t, "bgc", user))
	assert.Equal(t, "fontSize: '12rem',", expandCSS(t, "fz12rem", user))

	user = &config.UserConfig{Options: map[string]any{
		"stylesheet.json":             true,
		"stylesheet.jsonDoubleQuotes": true,
	}}
	assert.Equal(t, `color: "#ffffff",`, expandCSS(t, "c#f", user))
}

func TestExpandUserSnippets(t *testing.T) {
	user := &config.UserConfig{Snippets: map[string]string{
		"foo": "foo-bar",
		"hi":  "hello world {}",
	}}
	assert.Equal(t, "foo-bar: ;", expandCSS(t, "foo", user))
	assert.Equal(t, "hello world {}", expandCSS(t, "hi", user))
}

func TestExpandSnippetCache(t *testing.T) {
	cache := &config.Cache{}
	cfg, err := config.Resolve(&config.UserConfig{Syntax: "css", Cache: cache})
	require.NoError(t, err)

	first, err := Expand("m10", cfg)
	require.NoError(t, err)
	require.NotNil(t, cache.StylesheetSnippets)

	second, err := Expand("m10", cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpandDeterministic(t *testing.T) {
	want := expandCSS(t, "d", nil)
	for i := 0; i < 25; i++ {
		assert.Equal(t, want, expandCSS(t, "d", nil))
	}
}

func TestSyntaxFormatting(t *testing.T) {
	assert.Equal(t, "margin: 10px", expandCSS(t, "m10", &config.UserConfig{Syntax: "sass"}))
	assert.Equal(t, "margin 10px", expandCSS(t, "m10", &config.UserConfig{Syntax: "stylus"}))
}
