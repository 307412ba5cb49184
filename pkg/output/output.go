// Package output implements the render-time text accumulator shared by
// all dialect renderers: indentation levels, line/column tracking and
// field placeholder emission.
package output

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goemmet/pkg/config"
)

// Stream accumulates rendered output for a single expansion. It is
// mutated by exactly one renderer pass and discarded after String.
type Stream struct {
	opts *config.Options
	sb   strings.Builder

	// Level is the current indentation depth, adjusted by renderers as
	// they descend into children.
	Level int

	offset int
	line   int
	column int
}

// New returns a stream rendering with the given options at a base
// indentation level.
func New(opts *config.Options, level int) *Stream {
	return &Stream{opts: opts, Level: level}
}

// Options exposes the formatting options the stream was created with.
func (s *Stream) Options() *config.Options { return s.opts }

// String returns the accumulated output.
func (s *Stream) String() string { return s.sb.String() }

// Offset returns the number of characters pushed so far.
func (s *Stream) Offset() int { return s.offset }

// Push appends text verbatim. The text must not contain line breaks;
// use PushString for multi-line values so position tracking stays
// correct.
func (s *Stream) Push(text string) {
	s.sb.WriteString(text)
	n := len([]rune(text))
	s.offset += n
	s.column += n
}

// PushString appends text, splitting on line breaks and re-indenting
// each continuation line at the current level.
func (s *Stream) PushString(text string) {
	lines := SplitByLines(text)
	for i, line := range lines {
		if i > 0 {
			s.PushNewline(true)
		}
		s.Push(line)
	}
}

// PushNewline emits the configured newline plus base indent, indenting
// to the current level when indent is set.
func (s *Stream) PushNewline(indent bool) {
	s.sb.WriteString(s.opts.Newline)
	s.offset += len([]rune(s.opts.Newline))
	s.line++
	s.column = 0

	s.Push(s.opts.BaseIndent)
	if indent {
		s.PushIndent(s.Level)
	}
}

// PushIndent emits size copies of the indent string.
func (s *Stream) PushIndent(size int) {
	for i := 0; i < size; i++ {
		s.Push(s.opts.Indent)
	}
}

// PushField emits a tabstop/field through the configured field callback.
func (s *Stream) PushField(index int, placeholder string) {
	s.PushString(s.opts.Field(index, placeholder))
}

var reLines = regexp.MustCompile(`\r\n|\r|\n`)

// SplitByLines splits text on any newline convention.
func SplitByLines(text string) []string {
	return reLines.Split(text, -1)
}

// TagName applies the configured tag casing.
func TagName(name string, opts *config.Options) string {
	return strCase(name, opts.TagCase)
}

// AttrName applies the configured attribute casing.
func AttrName(name string, opts *config.Options) string {
	return strCase(name, opts.AttributeCase)
}

// AttrQuote returns the configured attribute quote character.
func AttrQuote(opts *config.Options) string {
	if opts.AttributeQuotes == "single" {
		return "'"
	}
	return "\""
}

// IsBooleanAttribute reports whether the attribute renders without a
// value in compact mode: either a trailing-dot marker in the
// abbreviation or a known boolean attribute name.
func IsBooleanAttribute(name string, opts *config.Options) bool {
	name = strings.ToLower(name)
	for _, b := range opts.BooleanAttributes {
		if b == name {
			return true
		}
	}
	return false
}

// IsInline reports whether the element name belongs to the configured
// inline set. Unnamed (text) nodes count as inline.
func IsInline(name string, opts *config.Options) bool {
	if name == "" {
		return true
	}
	name = strings.ToLower(name)
	for _, el := range opts.InlineElements {
		if el == name {
			return true
		}
	}
	return false
}

// SelfClose returns the token closing an empty element for the
// configured style.
func SelfClose(opts *config.Options) string {
	switch opts.SelfClosingStyle {
	case config.SelfCloseXHTML:
		return " /"
	case config.SelfCloseXML:
		return "/"
	default:
		return ""
	}
}

func strCase(name string, c config.StringCase) string {
	switch c {
	case config.CaseLower:
		return strings.ToLower(name)
	case config.CaseUpper:
		return strings.ToUpper(name)
	default:
		return name
	}
}
