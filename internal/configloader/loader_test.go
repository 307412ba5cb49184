package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goemmet/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadOpts(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	// Stop the upward search at the temp dir.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := Load(context.Background(), loadOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, "html", result.Config.Syntax)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	path := writeConfig(t, dir, ".goemmet.yaml", `
syntax: pug
variables:
  lang: fr
snippets:
  hero: section.hero>h1
`)

	result, err := Load(context.Background(), loadOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, "pug", result.Config.Syntax)
	assert.Equal(t, "fr", result.Config.Variables["lang"])
	assert.Equal(t, "section.hero>h1", result.Config.Snippets["hero"])
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "syntax: haml\n")

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), loadOpts(nested))
	require.NoError(t, err)

	assert.Equal(t, "haml", result.Config.Syntax)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".goemmet.yaml", "syntax: haml\n")

	// The nested VCS root hides the outer config.
	nested := filepath.Join(dir, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, ".git"), 0o755))

	result, err := Load(context.Background(), loadOpts(nested))
	require.NoError(t, err)

	assert.Equal(t, "html", result.Config.Syntax)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "syntax: pug\nmaxRepeat: 100\n")
	explicit := writeConfig(t, dir, "override.yaml", "syntax: haml\n")

	opts := loadOpts(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "haml", result.Config.Syntax)
	// Non-conflicting project settings survive the overlay.
	assert.Equal(t, 100, result.Config.MaxRepeat)
}

func TestLoad_SyntaxOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", `
options:
  output.indent: "  "
syntaxes:
  css:
    options:
      stylesheet.shortHex: true
`)

	opts := loadOpts(dir)
	opts.Syntax = "css"

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "css", result.Config.Syntax)
	assert.Equal(t, "  ", result.Config.Options["output.indent"])
	assert.Equal(t, true, result.Config.Options["stylesheet.shortHex"])
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "syntax: pug\n")

	t.Setenv("GOEMMET_SYNTAX", "slim")
	t.Setenv("GOEMMET_MAX_REPEAT", "42")
	t.Setenv("GOEMMET_BEM", "true")

	opts := loadOpts(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "slim", result.Config.Syntax)
	assert.Equal(t, 42, result.Config.MaxRepeat)
	assert.Equal(t, true, result.Config.Options["bem.enabled"])
}

func TestLoad_EnvInvalidValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	t.Setenv("GOEMMET_MAX_REPEAT", "lots")

	opts := loadOpts(dir)
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOEMMET_MAX_REPEAT")
}

func TestLoad_CLIHighestPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "syntax: pug\n")

	t.Setenv("GOEMMET_SYNTAX", "slim")

	opts := loadOpts(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.UserConfig{Syntax: "haml"}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "haml", result.Config.Syntax)
}

func TestLoad_InvalidType(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "type: wysiwyg\n")

	_, err := Load(context.Background(), loadOpts(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markup or stylesheet")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", "syntax: [unclosed\n")

	_, err := Load(context.Background(), loadOpts(dir))
	require.Error(t, err)
}

func TestLoad_ResolvesWithEngine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".goemmet.yaml", `
syntaxes:
  css:
    options:
      stylesheet.between: " = "
`)

	opts := loadOpts(dir)
	opts.Syntax = "css"

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg, err := config.Resolve(result.Config)
	require.NoError(t, err)
	assert.Equal(t, " = ", cfg.Options.StylesheetBetween)
}

func TestMergeFile_SyntaxSections(t *testing.T) {
	base := &FileConfig{
		Syntaxes: map[string]*config.UserConfig{
			"css": {Options: map[string]any{"stylesheet.shortHex": true}},
		},
	}
	override := &FileConfig{
		Syntaxes: map[string]*config.UserConfig{
			"css": {Options: map[string]any{"stylesheet.json": true}},
			"jsx": {Options: map[string]any{"markup.href": false}},
		},
	}

	merged := mergeFile(base, override)

	require.Contains(t, merged.Syntaxes, "css")
	require.Contains(t, merged.Syntaxes, "jsx")
	assert.Equal(t, true, merged.Syntaxes["css"].Options["stylesheet.shortHex"])
	assert.Equal(t, true, merged.Syntaxes["css"].Options["stylesheet.json"])
}

func TestTemplate_ParsesAsFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", string(Template()))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)

	// Every section ships commented out.
	assert.Equal(t, &FileConfig{}, cfg)
}
