package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/goemmet/pkg/scanner"
)

// FormatExpansion formats an expansion result for terminal output.
// The abbreviation and target syntax head the block, the expanded
// text follows indented one level.
func (s *Styles) FormatExpansion(abbr, syntax, result string) string {
	var builder strings.Builder

	builder.WriteString(s.Abbreviation.Render(abbr))
	builder.WriteString("  ")
	builder.WriteString(s.Syntax.Render("(" + syntax + ")"))
	builder.WriteByte('\n')

	for _, line := range strings.Split(result, "\n") {
		builder.WriteString("  " + s.Expansion.Render(line) + "\n")
	}

	return builder.String()
}

// FormatParseError renders a parse failure with a caret under the
// offending position when the error carries one:
//
//	error: unexpected character
//	  div>span[
//	           ^
func (s *Styles) FormatParseError(abbr string, err error) string {
	var builder strings.Builder

	var scanErr *scanner.Error
	if errors.As(err, &scanErr) {
		builder.WriteString(s.Error.Render("error:") + " " + scanErr.Message + "\n")
		builder.WriteString("  " + s.SourceLine.Render(abbr) + "\n")
		col := scanErr.Pos
		if col > len([]rune(abbr)) {
			col = len([]rune(abbr))
		}
		builder.WriteString("  " + strings.Repeat(" ", col) + s.Caret.Render("^") + "\n")
		return builder.String()
	}

	builder.WriteString(s.Error.Render("error:") + " " + err.Error() + "\n")
	return builder.String()
}

// FormatSnippetMatch formats a single snippet row for listing output.
// A negative score means the row is a plain listing entry without a
// match score column.
func (s *Styles) FormatSnippetMatch(key, value string, score float64) string {
	row := s.SnippetKey.Render(key) + "  " + s.SnippetValue.Render(value)
	if score >= 0 {
		row += "  " + s.Score.Render(fmt.Sprintf("(%.3f)", score))
	}
	return row
}
