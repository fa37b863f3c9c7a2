package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/giturl"
	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/bylickilabs/GithubRepoCatalog/internal/sysopen"
	"github.com/bylickilabs/GithubRepoCatalog/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
)

var openRemote bool

var openCmd = &cobra.Command{
	Use:   "open [repo]",
	Short: "Open a repository in the file manager",
	Long: `Open a repository directory in the system file manager. Without an
argument an interactive picker is shown. With --remote the repository's
origin remote is opened in the web browser instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := pickRepo(args)
		if err != nil || repo == nil {
			return err
		}

		if openRemote {
			if !repo.HasRemote() {
				return fmt.Errorf("no remote recorded for %s", repo.Name)
			}

			target, err := giturl.BrowseURL(repo.RemoteURL)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Opening %s...\n", target)

			return browser.OpenURL(target)
		}

		cfg, err := service().Store.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Opening %s...\n", repo.Path)

		return sysopen.Open(repo.Path, cfg.OpenCommand)
	},
}

// pickRepo resolves the argument, or runs the interactive picker when the
// argument is omitted. A nil repository means the picker was quit.
func pickRepo(args []string) (*model.Repository, error) {
	if len(args) == 1 {
		repo, err := service().Resolve(args[0])
		if err != nil {
			return nil, err
		}

		return &repo, nil
	}

	repos, err := service().List()
	if err != nil {
		return nil, err
	}

	if len(repos) == 0 {
		printEmptyCatalog()

		return nil, nil
	}

	p := tea.NewProgram(tui.NewBrowse(repos))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}

	m := finalModel.(tui.BrowseModel)

	return m.Selected(), nil
}

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().BoolVar(&openRemote, "remote", false, "Open the origin remote in the web browser")
}
