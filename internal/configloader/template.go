package configloader

// Template returns the starter configuration document written by
// `goemmet init`. Every section ships commented out so the file is a
// no-op until the user uncomments what they need.
func Template() []byte {
	return []byte(`# goemmet configuration
# See 'goemmet help' for the full option list.

# Default output syntax when none is given on the command line.
# syntax: html

# Cap on nodes produced by repeated groups (*N).
# maxRepeat: 1000

# Variable substitutions for ${name} placeholders.
# variables:
#   lang: en
#   charset: UTF-8

# Dotted option keys, applied to every syntax.
# options:
#   output.indent: "  "
#   comment.enabled: true
#   bem.enabled: true

# Custom snippets, merged over the built-in set.
# snippets:
#   hero: section.hero>h1+p

# Per-syntax overrides.
# syntaxes:
#   css:
#     options:
#       stylesheet.shortHex: true
#   jsx:
#     options:
#       markup.href: false
`)
}
