package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/hydra-pin/internal/errors"
	"github.com/firefly-engineering/hydra-pin/internal/hydra"
)

// buildItem implements list.Item for build display
type buildItem struct {
	candidate hydra.Candidate
}

func (i buildItem) Title() string {
	return "build " + i.candidate.Job.BuildID.String()
}

func (i buildItem) Description() string {
	status := i.candidate.Job.Status
	if status == "" {
		status = "Succeeded"
	}
	if i.candidate.Job.Name != "" {
		return fmt.Sprintf("✓ %s | %s | %s", status, i.candidate.Key, i.candidate.Job.Name)
	}
	return fmt.Sprintf("✓ %s | %s", status, i.candidate.Key)
}

func (i buildItem) FilterValue() string {
	return i.candidate.Job.BuildID.String()
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the build picker
type Model struct {
	list     list.Model
	chosen   *hydra.Candidate
	quitting bool
}

// NewPicker creates a new build picker
func NewPicker(pkg string, candidates []hydra.Candidate) Model {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = buildItem{candidate: c}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = fmt.Sprintf("hydra-pin - Select a build of %s", pkg)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(buildItem); ok {
				c := item.candidate
				m.chosen = &c
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Pin  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Chosen returns the selected build, or false if the picker was aborted.
func (m Model) Chosen() (hydra.Candidate, bool) {
	if m.chosen == nil {
		return hydra.Candidate{}, false
	}
	return *m.chosen, true
}

// BuildPicker returns a selector that asks the user to choose among the
// successful builds of pkg. A single candidate is returned without prompting.
func BuildPicker(pkg string) func([]hydra.Candidate) (hydra.Candidate, error) {
	return func(candidates []hydra.Candidate) (hydra.Candidate, error) {
		if len(candidates) == 1 {
			return candidates[0], nil
		}

		p := tea.NewProgram(NewPicker(pkg, candidates), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return hydra.Candidate{}, err
		}

		chosen, ok := finalModel.(Model).Chosen()
		if !ok {
			return hydra.Candidate{}, errors.ValidationError("no build selected")
		}
		return chosen, nil
	}
}
