// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Expansion components
	Abbreviation lipgloss.Style
	Expansion    lipgloss.Style
	Syntax       lipgloss.Style
	Field        lipgloss.Style

	// Snippet listing
	SnippetKey   lipgloss.Style
	SnippetValue lipgloss.Style
	Score        lipgloss.Style

	// Error rendering
	Error      lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Misc
	Success lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Abbreviation: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		// Expansions carry literal tabs; keep them instead of padding.
		Expansion: lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion),
		Syntax:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),

		SnippetKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		SnippetValue: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Score:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Abbreviation: plain,
		Expansion:    plain.TabWidth(lipgloss.NoTabConversion),
		Syntax:       plain,
		Field:        plain,
		SnippetKey:   plain,
		SnippetValue: plain,
		Score:        plain,
		Error:        plain,
		SourceLine:   plain,
		Caret:        plain,
		Success:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// TerminalWidth returns the column width of the terminal behind w,
// or fallback when w is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
