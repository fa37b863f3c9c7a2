package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/security"
	"github.com/spf13/cobra"
)

var (
	auditRedact bool
	auditJSON   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <repo>",
	Short: "Scan a repository working tree for secrets",
	Long: `Scan a repository's working tree for leaked credentials using the
bundled gitleaks rules. Findings are reported, not enforced: the command
exits zero either way.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := service().Resolve(args[0])
		if err != nil {
			return err
		}

		auditor, err := security.NewAuditor(auditRedact)
		if err != nil {
			return err
		}

		result, err := auditor.ScanWorkTree(cmd.Context(), repo.Path)
		if err != nil {
			return err
		}

		if auditJSON {
			return printJSON(result)
		}

		if !result.HasLeaks {
			_, _ = fmt.Fprintf(os.Stdout, "No secrets found in %s\n", result.ScannedPath)

			return nil
		}

		_, _ = fmt.Fprint(os.Stdout, security.FormatFindings(result.Findings))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().BoolVar(&auditRedact, "redact", false, "Redact secret values in the report")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Output findings as JSON")
}
