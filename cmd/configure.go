package cmd

import (
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/bylickilabs/GithubRepoCatalog/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfgShow        bool
	cfgReset       bool
	cfgDefaultRoot string
	cfgOpenCommand string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Show or change persisted settings",
	Long: `Show or change the settings kept alongside the catalog: the default
scan root and the command used to open repositories. Without flags the
current configuration is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := service().Store

		if cfgShow {
			return showCurrentConfig(st)
		}

		if cfgReset {
			if err := st.SaveConfig(model.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, "✓ Configuration reset to defaults")

			return showCurrentConfig(st)
		}

		if cmd.Flags().Changed("default-root") || cmd.Flags().Changed("open-command") {
			cfg, err := st.GetConfig()
			if err != nil {
				return fmt.Errorf("failed to get config: %w", err)
			}

			if cmd.Flags().Changed("default-root") {
				root := cfgDefaultRoot

				// An empty value clears the setting.
				if root != "" {
					if root, err = expandPath(root); err != nil {
						return err
					}

					info, statErr := os.Stat(root)
					if statErr != nil || !info.IsDir() {
						return fmt.Errorf("default root %s is not a directory", root)
					}
				}

				cfg.DefaultRoot = root
			}

			if cmd.Flags().Changed("open-command") {
				cfg.OpenCommand = cfgOpenCommand
			}

			if err := st.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, "✓ Configuration saved")
		}

		return showCurrentConfig(st)
	},
}

func showCurrentConfig(st store.Store) error {
	cfg, err := st.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	defaultRoot := cfg.DefaultRoot
	if defaultRoot == "" {
		defaultRoot = "(not set)"
	}

	openCommand := cfg.OpenCommand
	if openCommand == "" {
		openCommand = "(system default)"
	}

	_, _ = fmt.Fprintln(os.Stdout, "Current configuration:")
	_, _ = fmt.Fprintf(os.Stdout, "  Default root: %s\n", defaultRoot)
	_, _ = fmt.Fprintf(os.Stdout, "  Open command: %s\n", openCommand)

	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().BoolVar(&cfgShow, "show", false, "Show the current configuration")
	configureCmd.Flags().BoolVar(&cfgReset, "reset", false, "Reset all settings to defaults")
	configureCmd.Flags().StringVar(&cfgDefaultRoot, "default-root", "", "Directory scanned when no root is given")
	configureCmd.Flags().StringVar(&cfgOpenCommand, "open-command", "", "Command used to open repository directories")
}
