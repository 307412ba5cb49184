// Package syntaxdetect maps source files to expansion syntaxes.
// It uses go-enry to detect the language of a file, then normalizes
// the result to the syntax names the expansion engine understands.
package syntaxdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Syntax constants for the supported expansion syntaxes.
const (
	SyntaxHTML   = "html"
	SyntaxXML    = "xml"
	SyntaxXSL    = "xsl"
	SyntaxJSX    = "jsx"
	SyntaxVue    = "vue"
	SyntaxSvelte = "svelte"
	SyntaxPug    = "pug"
	SyntaxHaml   = "haml"
	SyntaxSlim   = "slim"
	SyntaxCSS    = "css"
	SyntaxSCSS   = "scss"
	SyntaxSass   = "sass"
	SyntaxLess   = "less"
	SyntaxStylus = "stylus"
	SyntaxSSS    = "sss"
)

// languageSyntaxes maps go-enry language names to expansion syntaxes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var languageSyntaxes = map[string]string{
	"HTML":       SyntaxHTML,
	"XML":        SyntaxXML,
	"XSLT":       SyntaxXSL,
	"JavaScript": SyntaxJSX,
	"TypeScript": SyntaxJSX,
	"TSX":        SyntaxJSX,
	"JSX":        SyntaxJSX,
	"Vue":        SyntaxVue,
	"Svelte":     SyntaxSvelte,
	"Pug":        SyntaxPug,
	"Haml":       SyntaxHaml,
	"Slim":       SyntaxSlim,
	"CSS":        SyntaxCSS,
	"SCSS":       SyntaxSCSS,
	"Sass":       SyntaxSass,
	"Less":       SyntaxLess,
	"Stylus":     SyntaxStylus,
	"SugarSS":    SyntaxSSS,
}

// extensionSyntaxes is the fallback when enry cannot classify the file.
//
//nolint:gochecknoglobals // Read-only lookup table.
var extensionSyntaxes = map[string]string{
	".html":   SyntaxHTML,
	".htm":    SyntaxHTML,
	".xhtml":  "xhtml",
	".xml":    SyntaxXML,
	".xsl":    SyntaxXSL,
	".xslt":   SyntaxXSL,
	".js":     SyntaxJSX,
	".jsx":    SyntaxJSX,
	".ts":     SyntaxJSX,
	".tsx":    SyntaxJSX,
	".vue":    SyntaxVue,
	".svelte": SyntaxSvelte,
	".pug":    SyntaxPug,
	".jade":   SyntaxPug,
	".haml":   SyntaxHaml,
	".slim":   SyntaxSlim,
	".css":    SyntaxCSS,
	".scss":   SyntaxSCSS,
	".sass":   SyntaxSass,
	".less":   SyntaxLess,
	".styl":   SyntaxStylus,
	".stylus": SyntaxStylus,
	".sss":    SyntaxSSS,
}

// Detect returns the expansion syntax for a file.
// Content may be nil; the extension alone is often enough.
// Returns "html" when nothing matches.
func Detect(filename string, content []byte) string {
	// Strategy 1: extension lookup (most direct for the syntaxes we care about).
	ext := strings.ToLower(filepath.Ext(filename))
	if syntax, ok := extensionSyntaxes[ext]; ok {
		return syntax
	}

	// Strategy 2: let enry classify the file.
	if lang := enry.GetLanguage(filepath.Base(filename), content); lang != "" {
		if syntax, ok := languageSyntaxes[lang]; ok {
			return syntax
		}
	}

	return SyntaxHTML
}
