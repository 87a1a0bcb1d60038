package board

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/keys"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/stats"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// TaskDeletedMsg is sent after the user deletes a task from the board so
// the root model can announce it on the feed.
type TaskDeletedMsg struct {
	TaskID string
}

// OpenTaskFormMsg asks the root model to open the task form. Task is nil
// for a create.
type OpenTaskFormMsg struct {
	Task *model.Task
}

// Model is the kanban board view: one column per status, a cursor, and
// keyboard-driven column moves standing in for drag and drop.
type Model struct {
	store  *store.Store
	keys   *keys.KeyMap
	column int
	cursor int

	searchMode  bool
	searchInput textinput.Model
	query       string

	width  int
	height int
}

// New creates a new board model.
func New(s *store.Store, k *keys.KeyMap, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search tasks..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		store:       s,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetSize updates the board dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
}

// Searching reports whether the search input currently owns the
// keyboard.
func (m Model) Searching() bool {
	return m.searchMode
}

// columns returns the visible tasks split by status, applying the
// current search query.
func (m Model) columns() map[model.Status][]model.Task {
	tasks := m.store.Tasks()
	if m.query != "" {
		q := m.query
		tasks = stats.Filter(tasks, stats.TaskFilter{Query: &q})
	}
	return stats.TasksByStatus(tasks)
}

// selected returns the task under the cursor, or nil when the focused
// column is empty.
func (m Model) selected() *model.Task {
	columns := m.columns()
	column := columns[model.AllStatuses[m.column]]
	if len(column) == 0 {
		return nil
	}
	cursor := m.cursor
	if cursor >= len(column) {
		cursor = len(column) - 1
	}
	task := column[cursor]
	return &task
}

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		m.cursor = 0
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.column < len(model.AllStatuses)-1 {
			m.column++
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		column := m.columns()[model.AllStatuses[m.column]]
		if m.cursor < len(column)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveLeft):
		return m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveRight):
		return m.moveSelected(1)

	case key.Matches(msg, m.keys.NewTask):
		return m, func() tea.Msg { return OpenTaskFormMsg{} }

	case key.Matches(msg, m.keys.EditTask):
		if task := m.selected(); task != nil {
			return m, func() tea.Msg { return OpenTaskFormMsg{Task: task} }
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteTask):
		task := m.selected()
		if task == nil {
			return m, nil
		}
		if !m.store.DeleteTask(task.ID) {
			return m, nil
		}
		id := task.ID
		return m, func() tea.Msg { return TaskDeletedMsg{TaskID: id} }
	}

	return m, nil
}

// moveSelected shifts the task under the cursor to the adjacent status
// column. Moves past either end of the board are ignored.
func (m Model) moveSelected(direction int) (Model, tea.Cmd) {
	task := m.selected()
	if task == nil {
		return m, nil
	}

	target := task.Status.ColumnIndex() + direction
	if target < 0 || target >= len(model.AllStatuses) {
		return m, nil
	}

	m.store.MoveTask(task.ID, model.AllStatuses[target])
	m.column = target
	m.cursor = 0
	return m, nil
}

// View renders the three status columns side by side.
func (m Model) View() string {
	columns := m.columns()

	columnWidth := m.width/len(model.AllStatuses) - 2
	if columnWidth < 20 {
		columnWidth = 20
	}
	columnHeight := m.height - 2
	if m.searchMode {
		columnHeight -= 2
	}

	rendered := make([]string, 0, len(model.AllStatuses))
	for i, status := range model.AllStatuses {
		rendered = append(rendered, m.renderColumn(
			status,
			columns[status],
			i == m.column,
			columnWidth,
			columnHeight,
		))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if m.searchMode {
		return lipgloss.JoinVertical(lipgloss.Left, m.searchInput.View(), board)
	}
	return board
}

func (m Model) renderColumn(
	status model.Status,
	tasks []model.Task,
	focused bool,
	width, height int,
) string {
	title := theme.ColumnTitleStyle.Render(
		fmt.Sprintf("%s (%d)", columnLabel(status), len(tasks)),
	)

	lines := []string{title}
	for i, task := range tasks {
		selected := focused && i == m.cursor
		lines = append(lines, m.renderCard(task, selected, width-2))
	}

	style := theme.ColumnStyle.Width(width).Height(height)
	if focused {
		style = style.BorderForeground(theme.ColorBlue)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderCard(task model.Task, selected bool, width int) string {
	title := task.Title
	if lipgloss.Width(title) > width-8 && width > 11 {
		title = title[:width-11] + "..."
	}

	badge := theme.PriorityStyle(task.Priority).Render(priorityBadge(task.Priority))
	line := badge + " " + title

	if task.AssigneeID != nil {
		if user := m.store.UserByID(*task.AssigneeID); user != nil {
			line += " " + theme.DimmedStyle.Render("@"+user.Initials())
		}
	}

	if task.DueDate != nil {
		due := task.DueDate.Format("Jan 02")
		if task.Overdue(time.Now()) {
			line += " " + theme.OverdueStyle.Render(due)
		} else {
			line += " " + theme.DimmedStyle.Render(due)
		}
	}

	if selected {
		return theme.SelectedCardStyle.Render(line)
	}
	return theme.CardStyle.Render(line)
}

// columnLabel returns the display heading for a status column.
func columnLabel(status model.Status) string {
	switch status {
	case model.StatusPending:
		return "Pending"
	case model.StatusInProgress:
		return "In Progress"
	case model.StatusCompleted:
		return "Completed"
	}
	return string(status)
}

// priorityBadge returns the one-letter marker for a priority.
func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "!!"
	case model.PriorityHigh:
		return "!"
	case model.PriorityMedium:
		return "•"
	default:
		return "·"
	}
}
