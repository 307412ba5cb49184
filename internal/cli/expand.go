package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goemmet/internal/configloader"
	"github.com/yaklabco/goemmet/internal/logging"
	"github.com/yaklabco/goemmet/internal/ui/pretty"
	"github.com/yaklabco/goemmet/pkg/config"
	"github.com/yaklabco/goemmet/pkg/emmet"
	"github.com/yaklabco/goemmet/pkg/extract"
)

type expandFlags struct {
	syntax  string
	typ     string
	target  string
	options []string
	text    []string
	extract bool
	pos     int
}

func newExpandCommand() *cobra.Command {
	flags := &expandFlags{pos: -1}

	cmd := &cobra.Command{
		Use:   "expand [abbreviations...]",
		Short: "Expand Emmet abbreviations",
		Long:  expandLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.syntax, "syntax", "s", "", "output syntax: html, css, jsx, pug, ...")
	cmd.Flags().StringVarP(&flags.typ, "type", "t", "", "expansion type: markup or stylesheet")
	cmd.Flags().StringVar(&flags.target, "target", "", "detect syntax from this file")
	cmd.Flags().StringArrayVarP(&flags.options, "option", "o", nil,
		"set a dotted option key, e.g. -o output.indent='  '")
	cmd.Flags().StringArrayVar(&flags.text, "text", nil,
		"text lines to wrap with the abbreviation")
	cmd.Flags().BoolVar(&flags.extract, "extract", false,
		"treat each input as a source line and extract the abbreviation first")
	cmd.Flags().IntVar(&flags.pos, "pos", -1,
		"extraction position within the line (default: end of line)")

	return cmd
}

const expandLongDescription = `Expand Emmet abbreviations into markup or stylesheet text.

Abbreviations are taken from the arguments, or from stdin one per line
when no arguments are given.

Examples:
  goemmet expand "ul>li.item$*3"           # Markup expansion
  goemmet expand -s css m10-20             # Stylesheet expansion
  goemmet expand --target style.scss p10   # Syntax from file name
  goemmet expand -o bem.enabled=true "div.block__elem"
  echo "div>p" | goemmet expand            # Read from stdin
  goemmet expand --extract '<div>ul>li'    # Pull the abbreviation out first`

func runExpand(cmd *cobra.Command, args []string, flags *expandFlags) error {
	logger := logging.FromContext(cmd.Context())

	syntax := flags.syntax
	if syntax == "" && flags.target != "" {
		detected, err := syntaxFromTarget(cmd.Context(), flags.target)
		if err != nil {
			return err
		}
		syntax = detected
		logger.Debug("detected syntax", logging.FieldPath, flags.target, logging.FieldSyntax, syntax)
	}

	cliCfg := &config.UserConfig{
		Syntax: syntax,
		Type:   config.Type(flags.typ),
		Text:   flags.text,
	}
	if len(flags.options) > 0 {
		opts, err := parseOptionFlags(flags.options)
		if err != nil {
			return err
		}
		cliCfg.Options = opts
	}

	user, err := loadConfig(cmd, syntax, cliCfg)
	if err != nil {
		return err
	}

	abbrs := args
	if len(abbrs) == 0 {
		abbrs, err = readLines(cmd)
		if err != nil {
			return err
		}
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styled := pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())
	styles := pretty.NewStyles(styled)

	for _, abbr := range abbrs {
		abbr = strings.TrimSpace(abbr)
		if abbr == "" {
			continue
		}

		if flags.extract {
			extracted, err := extractAbbreviation(abbr, flags.pos, user)
			if err != nil {
				return err
			}
			abbr = extracted
		}

		result, err := emmet.Expand(abbr, user)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatParseError(abbr, err))
			return err
		}

		if styled {
			fmt.Fprint(cmd.OutOrStdout(), styles.FormatExpansion(abbr, user.Syntax, result))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
	}

	return nil
}

// loadConfig resolves the merged user configuration for a command run.
func loadConfig(cmd *cobra.Command, syntax string, cliCfg *config.UserConfig) (*config.UserConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	ctx := cmd.Context()
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		Syntax:       syntax,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfigLoad, err)
	}

	logger := logging.Default()
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// extractAbbreviation pulls the abbreviation out of a source line.
func extractAbbreviation(line string, pos int, user *config.UserConfig) (string, error) {
	typ := user.Type
	if typ == "" && config.IsStylesheetSyntax(user.Syntax) {
		typ = config.TypeStylesheet
	}

	if pos < 0 || pos > len(line) {
		pos = len(line)
	}

	found := extract.Extract(line, pos, extract.DefaultOptions(typ))
	if found == nil {
		return "", fmt.Errorf("no abbreviation found in %q at position %d", line, pos)
	}
	return found.Abbreviation, nil
}

// parseOptionFlags converts k=v pairs into typed option values.
// Booleans and numbers are detected; everything else stays a string.
func parseOptionFlags(pairs []string) (map[string]any, error) {
	opts := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid option %q: expected key=value", pair)
		}

		switch {
		case raw == "true" || raw == "false":
			opts[key] = raw == "true"
		default:
			if n, err := strconv.Atoi(raw); err == nil {
				opts[key] = n
			} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
				opts[key] = f
			} else {
				opts[key] = raw
			}
		}
	}
	return opts, nil
}

// readLines reads abbreviations from stdin, one per line.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
