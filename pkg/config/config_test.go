package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, TypeMarkup, cfg.Type)
	assert.Equal(t, "html", cfg.Syntax)
	assert.Equal(t, "\t", cfg.Options.Indent)
	assert.Equal(t, "en", cfg.Variables["lang"])
	assert.Equal(t, "a[href]", cfg.Snippets["a"])
	assert.NotNil(t, cfg.Cache)
}

func TestResolveTypeFromSyntax(t *testing.T) {
	for _, syntax := range []string{"css", "scss", "sass", "less", "stylus"} {
		cfg, err := Resolve(&UserConfig{Syntax: syntax})
		require.NoError(t, err)
		assert.Equal(t, TypeStylesheet, cfg.Type, syntax)
		assert.Equal(t, "margin", cfg.Snippets["m"])
	}

	cfg, err := Resolve(&UserConfig{Syntax: "pug"})
	require.NoError(t, err)
	assert.Equal(t, TypeMarkup, cfg.Type)
}

func TestResolveSyntaxOverlays(t *testing.T) {
	cfg, err := Resolve(&UserConfig{Syntax: "xhtml"})
	require.NoError(t, err)
	assert.Equal(t, SelfCloseXHTML, cfg.Options.SelfClosingStyle)

	cfg, err = Resolve(&UserConfig{Syntax: "xsl"})
	require.NoError(t, err)
	assert.Equal(t, SelfCloseXML, cfg.Options.SelfClosingStyle)
	assert.Equal(t, "xsl:value-of[select]", cfg.Snippets["val"])

	cfg, err = Resolve(&UserConfig{Syntax: "jsx"})
	require.NoError(t, err)
	assert.True(t, cfg.Options.JSXEnabled)

	cfg, err = Resolve(&UserConfig{Syntax: "sass"})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Options.StylesheetAfter)
}

func TestResolveAliasKeys(t *testing.T) {
	cfg, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Snippets["!"], cfg.Snippets["html:5"])
	assert.Equal(t, "button[type=${1:button}]", cfg.Snippets["btn"])
	assert.Equal(t, "button[type=${1:button}]", cfg.Snippets["button"])
}

func TestResolveUserOverridesWin(t *testing.T) {
	cfg, err := Resolve(&UserConfig{
		Variables: map[string]string{"lang": "fr"},
		Snippets:  map[string]string{"a": "a[href=#]"},
		Options:   map[string]any{"output.indent": "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Variables["lang"])
	assert.Equal(t, "a[href=#]", cfg.Snippets["a"])
	assert.Equal(t, "  ", cfg.Options.Indent)
}

func TestResolveUnknownOption(t *testing.T) {
	_, err := Resolve(&UserConfig{Options: map[string]any{"output.bogus": true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.bogus")
}

func TestApplyMapCoercion(t *testing.T) {
	opts := NewOptions()
	err := opts.ApplyMap(map[string]any{
		"output.inlineBreak":             0,
		"output.formatSkip":              []any{"html", "head"},
		"stylesheet.fuzzySearchMinScore": 0.3,
		"stylesheet.unitAliases":         map[string]any{"e": "em"},
		"bem.enabled":                    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, opts.InlineBreak)
	assert.Equal(t, []string{"html", "head"}, opts.FormatSkip)
	assert.Equal(t, 0.3, opts.StylesheetFuzzySearchMinScore)
	assert.True(t, opts.BEMEnabled)
}

func TestParseUserConfigYAML(t *testing.T) {
	user, err := ParseUserConfig([]byte(`
syntax: pug
variables:
  lang: de
options:
  output.format: false
snippets:
  hero: section.hero>h1
`))
	require.NoError(t, err)
	assert.Equal(t, "pug", user.Syntax)
	assert.Equal(t, "de", user.Variables["lang"])

	cfg, err := Resolve(user)
	require.NoError(t, err)
	assert.False(t, cfg.Options.Format)
	assert.Equal(t, "section.hero>h1", cfg.Snippets["hero"])
}

func TestOptionsClone(t *testing.T) {
	base := NewOptions()
	clone := base.Clone()
	clone.FormatSkip[0] = "changed"
	clone.StylesheetUnitAliases["e"] = "changed"
	assert.Equal(t, "html", base.FormatSkip[0])
	assert.Equal(t, "em", base.StylesheetUnitAliases["e"])
}
