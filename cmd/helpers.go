package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bylickilabs/GithubRepoCatalog/internal/application"
	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Overwrite? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// confirmOverwrite asks before clobbering path. Without a terminal on stdin
// the answer is always no.
func confirmOverwrite(path string) bool {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return false
	}

	return promptConfirm(fmt.Sprintf("%s exists. Overwrite? [y/N]: ", path))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, string(output))

	return nil
}

// printEmptyCatalog prints a "no results" message with a scan hint.
func printEmptyCatalog() {
	_, _ = fmt.Fprintln(os.Stdout, "No repositories cataloged.")
	_, _ = fmt.Fprintf(os.Stdout, "Scan a directory with: %s scan <root>\n", application.AppName)
}

// printReposTable renders catalog records as an aligned table.
func printReposTable(repos []model.Repository) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Calculate column widths
	maxName := len("NAME")
	maxSize := len("SIZE (MB)")
	maxRemote := len("REMOTE")

	for _, r := range repos {
		if n := len(r.Name); n > maxName {
			maxName = n
		}
		if n := len(r.SizeMB()); n > maxSize {
			maxSize = n
		}
		if n := len(r.RemoteURL); n > maxRemote {
			maxRemote = n
		}
	}

	if maxName > 32 {
		maxName = 32
	}
	if maxRemote > 48 {
		maxRemote = 48
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s  %s  %s  %s  %s\n",
		headerStyle.Render(padRight("NAME", maxName)),
		headerStyle.Render(padRight("SIZE (MB)", maxSize)),
		headerStyle.Render(padRight("MODIFIED", len(model.MtimeLayout))),
		headerStyle.Render(padRight("REMOTE", maxRemote)),
		headerStyle.Render("PATH"),
	)

	for _, r := range repos {
		remote := r.RemoteURL
		if remote == "" {
			remote = "-"
		}

		_, _ = fmt.Fprintf(os.Stdout, "%s  %s  %s  %s  %s\n",
			padRight(truncateString(r.Name, maxName), maxName),
			padRight(r.SizeMB(), maxSize),
			padRight(r.ModifiedString(), len(model.MtimeLayout)),
			padRight(truncateString(remote, maxRemote), maxRemote),
			pathStyle.Render(r.Path),
		)
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}

	return s + strings.Repeat(" ", length-len(s))
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
