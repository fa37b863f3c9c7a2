package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bylickilabs/GithubRepoCatalog/internal/preview"
	"github.com/spf13/cobra"
)

var previewJSON bool

var previewCmd = &cobra.Command{
	Use:   "preview <repo>",
	Short: "Pick the best preview image for a repository",
	Long: `Inspect a repository's asset directories and pick the image that
best matches the 1280x640 social preview shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := service().Resolve(args[0])
		if err != nil {
			return err
		}

		img, err := preview.NewSelector().Pick(repo.Path)

		switch {
		case errors.Is(err, preview.ErrUnavailable):
			_, _ = fmt.Fprintln(os.Stdout, "Image preview unavailable.")

			return nil
		case errors.Is(err, preview.ErrNoImage):
			_, _ = fmt.Fprintf(os.Stdout, "No preview image found in %s.\n", repo.Path)

			return nil
		case err != nil:
			return err
		}

		if previewJSON {
			return printJSON(img)
		}

		_, _ = fmt.Fprintf(os.Stdout, "%s (%dx%d)\n", img.Path, img.Width, img.Height)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "Output the selected image as JSON")
}
