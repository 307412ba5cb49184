package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goemmet/internal/configloader"
	"github.com/yaklabco/goemmet/internal/logging"
	"github.com/yaklabco/goemmet/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	backup bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new goemmet configuration file",
		Long: `Create a new .goemmet.yaml configuration file in the current directory.
Every section ships commented out, so the file is a no-op until edited.

Examples:
  goemmet init                       Create .goemmet.yaml
  goemmet init --output custom.yaml  Write to a custom file path
  goemmet init --force               Overwrite an existing file
  goemmet init --force --backup      Keep the old file as a .bak sidecar`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "Back up an existing file before overwriting")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .goemmet.yaml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".goemmet.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		if flags.backup {
			created, err := fsutil.CreateBackup(ctx, absPath, fsutil.BackupConfig{
				Enabled: true,
				Mode:    fsutil.BackupModeSidecar,
			})
			if err != nil {
				return fmt.Errorf("backup existing file: %w", err)
			}
			if created {
				logger.Info("backed up existing file",
					logging.FieldPath, fsutil.BackupPath(absPath, fsutil.BackupModeSidecar))
			}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, configloader.Template(), 0); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'goemmet snippets' to see the snippet dictionary")

	return nil
}
