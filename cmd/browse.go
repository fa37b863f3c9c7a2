package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse the catalog in an interactive list. Type / to filter by name,
Enter to print the selected repository's details, q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := service().List()
		if err != nil {
			return err
		}

		if len(repos) == 0 {
			printEmptyCatalog()

			return nil
		}

		p := tea.NewProgram(tui.NewBrowse(repos))

		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("failed to run browser: %w", err)
		}

		m := finalModel.(tui.BrowseModel)

		if selected := m.Selected(); selected != nil {
			_, _ = fmt.Fprintln(os.Stdout, tui.DetailCard(*selected))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
