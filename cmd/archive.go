package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bylickilabs/GithubRepoCatalog/internal/archive"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	archiveOutput     string
	archiveIncludeGit bool
	archiveForce      bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive <repo>",
	Short: "Write a zip archive of a repository",
	Long: `Write a compressed zip archive of a repository's working tree.
The repository may be given as a path or as a cataloged name. The .git
directory is left out unless --include-git is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := service().Resolve(args[0])
		if err != nil {
			return err
		}

		output, err := expandPath(archiveOutput)
		if err != nil {
			return err
		}

		if _, err := os.Stat(output); err == nil && !archiveForce {
			if !confirmOverwrite(output) {
				return fmt.Errorf("refusing to overwrite %s", output)
			}
		}

		_, _ = fmt.Fprintf(os.Stderr, "Archiving %s...\n", repo.Path)

		start := time.Now()

		summary, err := archive.Create(repo.Path, output, archiveIncludeGit)
		if err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "✓ Archive created: %s\n", output)
		_, _ = fmt.Fprintf(os.Stdout, "  Files: %d\n", summary.Written)

		if summary.Skipped > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "  Skipped: %d\n", summary.Skipped)
		}

		_, _ = fmt.Fprintf(os.Stdout, "  Input size: %s\n", humanize.IBytes(uint64(summary.BytesRead)))

		if summary.BytesRead > 0 {
			ratio := float64(summary.OutputSize) / float64(summary.BytesRead) * 100
			_, _ = fmt.Fprintf(os.Stdout, "  Archive size: %s (%.1f%% of input)\n", humanize.IBytes(uint64(summary.OutputSize)), ratio)
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "  Archive size: %s\n", humanize.IBytes(uint64(summary.OutputSize)))
		}

		_, _ = fmt.Fprintf(os.Stdout, "  Duration: %s\n", time.Since(start).Round(time.Millisecond))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVarP(&archiveOutput, "output", "o", "", "Output zip path (required)")
	archiveCmd.Flags().BoolVar(&archiveIncludeGit, "include-git", false, "Keep the .git directory in the archive")
	archiveCmd.Flags().BoolVar(&archiveForce, "force", false, "Overwrite the output file without asking")

	_ = archiveCmd.MarkFlagRequired("output")
}
