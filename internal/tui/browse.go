// Package tui holds the interactive catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type repoItem struct {
	repo model.Repository
}

func (i repoItem) Title() string {
	return i.repo.Name
}

func (i repoItem) Description() string {
	return fmt.Sprintf("%s MB · %s · %s", i.repo.SizeMB(), i.repo.ModifiedString(), i.repo.Path)
}

func (i repoItem) FilterValue() string {
	return i.repo.Name
}

// BrowseModel is the list UI over the catalog. It only renders records
// handed to it; nothing inside the loop touches the store or the disk.
type BrowseModel struct {
	list     list.Model
	selected *model.Repository
	quitting bool
}

// NewBrowse builds the browser over the given records.
func NewBrowse(repos []model.Repository) BrowseModel {
	items := make([]list.Item, len(repos))
	for i, repo := range repos {
		items[i] = repoItem{repo: repo}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Repository Catalog"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return BrowseModel{list: l}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		// While the filter input is focused, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(repoItem); ok {
				m.selected = &i.repo
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the record chosen with enter, or nil when the browser
// was quit without choosing.
func (m BrowseModel) Selected() *model.Repository {
	return m.selected
}

// DetailCard renders a one-repository summary for printing after the
// browser exits.
func DetailCard(repo model.Repository) string {
	remote := repo.RemoteURL
	if remote == "" {
		remote = "(none)"
	}

	lines := []string{
		cardTitleStyle.Render(repo.Name),
		fmt.Sprintf("%s %s", cardLabelStyle.Render("Path:"), repo.Path),
		fmt.Sprintf("%s %s MB", cardLabelStyle.Render("Size:"), repo.SizeMB()),
		fmt.Sprintf("%s %s", cardLabelStyle.Render("Modified:"), repo.ModifiedString()),
		fmt.Sprintf("%s %s", cardLabelStyle.Render("Remote:"), remote),
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}
