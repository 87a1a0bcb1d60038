package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/stats"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// Model is the dashboard view: overview cards, critical tasks, and the
// most recently touched tasks. It reads fresh snapshots on every render,
// so feed-driven mutations show up without any wiring.
type Model struct {
	store  *store.Store
	width  int
	height int
}

// New creates a new dashboard model.
func New(s *store.Store, width, height int) Model {
	return Model{store: s, width: width, height: height}
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update is a no-op; the dashboard is a read-only surface.
func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	now := time.Now()
	tasks := m.store.Tasks()
	overview := stats.ComputeOverview(tasks, m.store.Projects(), now)

	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statCard("Tasks", fmt.Sprintf("%d", overview.TotalTasks), theme.ColorBlue),
		statCard("Completed", fmt.Sprintf("%d", overview.Completed), theme.ColorGreen),
		statCard("In Progress", fmt.Sprintf("%d", overview.InProgress), theme.ColorYellow),
		statCard("Overdue", fmt.Sprintf("%d", overview.Overdue), theme.ColorRed),
		statCard("Projects", fmt.Sprintf("%d", overview.ActiveProjects), theme.ColorMagenta),
		statCard("Done", fmt.Sprintf("%d%%", overview.CompletionRate), theme.ColorGreen),
	)

	critical := m.renderTaskSection(
		"Critical tasks",
		stats.CriticalTasks(tasks, now, 5),
		now,
	)
	recent := m.renderTaskSection(
		"Recently updated",
		stats.RecentTasks(tasks, 5),
		now,
	)

	return lipgloss.JoinVertical(lipgloss.Left, cards, critical, recent)
}

func (m Model) renderTaskSection(title string, tasks []model.Task, now time.Time) string {
	lines := []string{theme.ColumnTitleStyle.Render(title)}

	if len(tasks) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("nothing here"))
	}
	for _, task := range tasks {
		line := theme.PriorityStyle(task.Priority).Render(string(task.Priority)) +
			" " + task.Title +
			" " + theme.StatusStyle(task.Status).Render(string(task.Status))
		if task.DueDate != nil {
			due := "due " + task.DueDate.Format("Jan 02")
			if task.Overdue(now) {
				line += " " + theme.OverdueStyle.Render(due)
			} else {
				line += " " + theme.DimmedStyle.Render(due)
			}
		}
		lines = append(lines, line)
	}

	return theme.PanelStyle.Width(m.width - 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func statCard(label, value string, color lipgloss.AdaptiveColor) string {
	return theme.PanelStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
			theme.DimmedStyle.Render(label),
		),
	)
}
