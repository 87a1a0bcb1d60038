package projects

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/keys"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// ProjectDeletedMsg is sent after the user deletes a project, so the
// root model can refresh anything showing its tasks. The store has
// already cascaded the project's tasks away by the time this fires.
type ProjectDeletedMsg struct {
	ProjectID string
}

// Model is the project list view.
type Model struct {
	store  *store.Store
	keys   *keys.KeyMap
	cursor int
	width  int
	height int
}

// New creates a new projects model.
func New(s *store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{store: s, keys: k, width: width, height: height}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the project list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	projects := m.store.Projects()

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(projects)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.DeleteTask):
		if m.cursor >= len(projects) {
			return m, nil
		}
		id := projects[m.cursor].ID
		if !m.store.DeleteProject(id) {
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		return m, func() tea.Msg { return ProjectDeletedMsg{ProjectID: id} }
	}

	return m, nil
}

// View renders the project list with task and member counts.
func (m Model) View() string {
	projects := m.store.Projects()
	tasks := m.store.Tasks()

	perProject := make(map[string]int, len(projects))
	completed := make(map[string]int, len(projects))
	for _, t := range tasks {
		perProject[t.ProjectID]++
		if t.Status == model.StatusCompleted {
			completed[t.ProjectID]++
		}
	}

	lines := []string{theme.ColumnTitleStyle.Render(
		fmt.Sprintf("Projects (%d)", len(projects)),
	)}

	if len(projects) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("no projects"))
	}
	for i, p := range projects {
		line := fmt.Sprintf(
			"%s  %s  %d members, %d/%d tasks done",
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●"),
			p.Name,
			len(p.Members),
			completed[p.ID],
			perProject[p.ID],
		)
		if p.Description != "" {
			line += "  " + theme.DimmedStyle.Render(p.Description)
		}
		if i == m.cursor {
			line = theme.SelectedCardStyle.Render(line)
		} else {
			line = theme.CardStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
