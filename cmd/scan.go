package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bylickilabs/GithubRepoCatalog/internal/application"
	"github.com/spf13/cobra"
)

var (
	scanDryRun bool
	scanJSON   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Scan a directory tree for Git repositories",
	Long: `Recursively scan a directory tree for Git repositories and record
each one in the catalog with its size, last modification time and origin
remote. Without an argument the configured default root is scanned.

Rescanning the same root refreshes existing records in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := scanRoot(args)
		if err != nil {
			return err
		}

		result, err := service().Scan(cmd.Context(), root, scanDryRun)
		if err != nil {
			return err
		}

		if scanJSON {
			return printJSON(result)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Scanned %s\n", result.Root)
		_, _ = fmt.Fprintf(os.Stdout, "  Repositories found: %d\n", result.Found)

		if scanDryRun {
			_, _ = fmt.Fprintln(os.Stdout, "  Dry run, nothing stored")
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "  Cataloged: %d\n", result.Stored)
		}

		if result.Skipped > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "  Skipped: %d\n", result.Skipped)
		}

		_, _ = fmt.Fprintf(os.Stdout, "  Duration: %s\n", result.Elapsed.Round(time.Millisecond))

		return nil
	},
}

// scanRoot picks the scan root from the argument or the configured default.
func scanRoot(args []string) (string, error) {
	if len(args) == 1 {
		return expandPath(args[0])
	}

	cfg, err := service().Store.GetConfig()
	if err != nil {
		return "", fmt.Errorf("failed to get config: %w", err)
	}

	if cfg.DefaultRoot == "" {
		return "", fmt.Errorf("no root given and no default root configured, run '%s configure --default-root <path>'", application.AppName)
	}

	return cfg.DefaultRoot, nil
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "Discover and report without writing to the catalog")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output scan results as JSON")
}
