package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", application.AppDisplayName, application.AppVersion)
		_, _ = fmt.Fprintf(os.Stdout, "Project: %s\n", application.ProjectURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
