package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/catalog"
	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export the catalog as CSV",
	Long: `Write the catalog as a CSV spreadsheet. With a query argument only
matching repositories are exported, so the file mirrors a filtered view.
Pass '-' as the output path to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			repos []model.Repository
			err   error
		)

		if len(args) == 1 {
			repos, err = service().Search(args[0])
		} else {
			repos, err = service().List()
		}

		if err != nil {
			return err
		}

		if exportOutput == "-" {
			return catalog.ExportCSV(os.Stdout, repos)
		}

		output, err := expandPath(exportOutput)
		if err != nil {
			return err
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		if err := catalog.ExportCSV(f, repos); err != nil {
			_ = f.Close()

			return err
		}

		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "✓ Exported %d repositories to %s\n", len(repos), output)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", catalog.DefaultExportName, "Output file path, - for stdout")
}
