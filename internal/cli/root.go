// Package cli provides the Cobra command structure for goemmet.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goemmet/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goemmet command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goemmet",
		Short: "Expand Emmet abbreviations from the command line",
		Long: `goemmet expands Emmet abbreviations into HTML, CSS and a family of
related syntaxes (JSX, Pug, Haml, Slim, SCSS, Less, Stylus and more).

Markup abbreviations like ul>li.item$*3 unfold into full element trees;
stylesheet abbreviations like m10-20 resolve against a fuzzy-matched
snippet dictionary into complete property declarations.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newExpandCommand())
	rootCmd.AddCommand(newSnippetsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
