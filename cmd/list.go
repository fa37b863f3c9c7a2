package cmd

import (
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged repositories",
	Long:  `Display every cataloged repository, newest modification first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := service().List()
		if err != nil {
			return err
		}

		if listJSON {
			return printJSON(repos)
		}

		if len(repos) == 0 {
			printEmptyCatalog()

			return nil
		}

		printReposTable(repos)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output repositories as JSON")
}
