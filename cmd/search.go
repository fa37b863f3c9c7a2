package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by repository name",
	Long:  `Display cataloged repositories whose name contains the query, matched case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := service().Search(args[0])
		if err != nil {
			return err
		}

		if searchJSON {
			return printJSON(repos)
		}

		if len(repos) == 0 {
			_, _ = fmt.Fprintf(os.Stdout, "No repositories match %q.\n", args[0])

			return nil
		}

		printReposTable(repos)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output repositories as JSON")
}
