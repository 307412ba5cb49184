package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goemmet/internal/ui/pretty"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/stylesheet"
)

type snippetsFlags struct {
	syntax   string
	format   string
	limit    int
	minScore float64
}

const formatJSON = "json"

// snippetInfo represents a snippet in JSON output.
type snippetInfo struct {
	Key   string  `json:"key"`
	Value string  `json:"value"`
	Score float64 `json:"score,omitempty"`
}

func newSnippetsCommand() *cobra.Command {
	flags := &snippetsFlags{}

	cmd := &cobra.Command{
		Use:   "snippets [query]",
		Short: "List or search the snippet dictionary",
		Long: `List the snippets available for a syntax, or fuzzy-search them.

With a query, snippets are ranked by the same fuzzy score the expansion
engine uses, so the top hit is what an abbreviation would resolve to.

Examples:
  goemmet snippets -s css            # Full stylesheet dictionary
  goemmet snippets -s css bgc        # What does bgc resolve to?
  goemmet snippets --format json bq  # Machine-readable output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnippets(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.syntax, "syntax", "s", "html", "syntax whose dictionary to use")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.limit, "limit", 10, "maximum matches to show for a query")
	cmd.Flags().Float64Var(&flags.minScore, "min-score", 0.3, "minimum fuzzy score for query matches")

	return cmd
}

func runSnippets(cmd *cobra.Command, args []string, flags *snippetsFlags) error {
	user, err := loadConfig(cmd, flags.syntax, &config.UserConfig{Syntax: flags.syntax})
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(user)
	if err != nil {
		return err
	}

	var infos []snippetInfo
	if len(args) == 1 {
		infos = searchSnippets(cfg.Snippets, args[0], flags)
	} else {
		infos = listSnippets(cfg.Snippets)
	}

	if flags.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("encoding snippets: %w", err)
		}
		return nil
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	if len(infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Dim.Render("no matches"))
		return nil
	}

	width := pretty.TerminalWidth(cmd.OutOrStdout(), 100)
	for _, info := range infos {
		score := info.Score
		if len(args) == 0 {
			score = -1
		}
		value := truncate(info.Value, width-len(info.Key)-12)
		fmt.Fprintln(cmd.OutOrStdout(), styles.FormatSnippetMatch(info.Key, value, score))
	}

	return nil
}

// truncate shortens long snippet bodies so every row stays on one line.
func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// listSnippets returns the whole dictionary sorted by key.
func listSnippets(snippets map[string]string) []snippetInfo {
	infos := make([]snippetInfo, 0, len(snippets))
	for key, value := range snippets {
		infos = append(infos, snippetInfo{Key: key, Value: value})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// searchSnippets ranks the dictionary against a query using the
// engine's fuzzy score. Ties break alphabetically for stable output.
func searchSnippets(snippets map[string]string, query string, flags *snippetsFlags) []snippetInfo {
	infos := make([]snippetInfo, 0, len(snippets))
	for key, value := range snippets {
		score := stylesheet.Score(query, key, true)
		if score < flags.minScore || score == 0 {
			continue
		}
		infos = append(infos, snippetInfo{Key: key, Value: value, Score: score})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Score != infos[j].Score {
			return infos[i].Score > infos[j].Score
		}
		return infos[i].Key < infos[j].Key
	})

	if flags.limit > 0 && len(infos) > flags.limit {
		infos = infos[:flags.limit]
	}
	return infos
}
