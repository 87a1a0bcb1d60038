package teams

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/stats"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// Model is the teams view: one row per user with workload statistics.
type Model struct {
	store  *store.Store
	width  int
	height int
}

// New creates a new teams model.
func New(s *store.Store, width, height int) Model {
	return Model{store: s, width: width, height: height}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update is a no-op; the teams view is a read-only surface.
func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the per-user workload table.
func (m Model) View() string {
	now := time.Now()
	users := m.store.Users()
	tasks := m.store.Tasks()
	projects := m.store.Projects()

	lines := []string{theme.ColumnTitleStyle.Render(
		fmt.Sprintf("Team (%d members)", len(users)),
	)}

	for _, user := range users {
		s := stats.ComputeUserStats(tasks, user.ID, now)
		memberOf := stats.ProjectsForUser(projects, user.ID)

		role := theme.DimmedStyle.Render(string(user.Role))
		line := fmt.Sprintf(
			"%-4s %-16s %s  %d tasks: %d done, %d in progress, %d pending",
			user.Initials(),
			user.Name,
			role,
			s.Total,
			s.Completed,
			s.InProgress,
			s.Pending,
		)
		if s.Overdue > 0 {
			line += " " + theme.OverdueStyle.Render(fmt.Sprintf("%d overdue", s.Overdue))
		}
		line += theme.DimmedStyle.Render(
			fmt.Sprintf("  %d%% done, %d projects", s.CompletionRate, len(memberOf)),
		)
		lines = append(lines, line)
	}

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
