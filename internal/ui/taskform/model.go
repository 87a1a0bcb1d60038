package taskform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// TaskCreatedMsg is dispatched when a new task is created via the form.
// The draft still needs to be handed to the store by the root model,
// which also broadcasts the creation on the feed.
type TaskCreatedMsg struct {
	Draft store.TaskDraft
}

// TaskUpdatedMsg is dispatched when an existing task is edited via the
// form.
type TaskUpdatedMsg struct {
	TaskID string
	Patch  store.TaskPatch
}

// TaskFormCancelMsg is dispatched when the user cancels the form.
type TaskFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	status      string
	priority    string
	assigneeID  string
	projectID   string
	dueDate     string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	users    []model.User
	projects []model.Project
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb: &formBindings{
			status:   string(model.StatusPending),
			priority: string(model.PriorityMedium),
		},
		width:  width,
		height: height,
	}
}

// SetOptions sets the available users and projects for the selectors.
func (m *Model) SetOptions(users []model.User, projects []model.Project) {
	m.users = users
	m.projects = projects
}

// StartCreate initializes the form for creating a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.fb.title = ""
	m.fb.description = ""
	m.fb.status = string(model.StatusPending)
	m.fb.priority = string(model.PriorityMedium)
	m.fb.assigneeID = ""
	m.fb.projectID = ""
	if len(m.projects) > 0 {
		m.fb.projectID = m.projects[0].ID
	}
	m.fb.dueDate = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing task.
func (m *Model) StartEdit(task model.Task) tea.Cmd {
	m.editMode = true
	m.editID = task.ID
	m.fb.title = task.Title
	m.fb.description = task.Description
	m.fb.status = string(task.Status)
	m.fb.priority = string(task.Priority)
	if task.AssigneeID != nil {
		m.fb.assigneeID = *task.AssigneeID
	} else {
		m.fb.assigneeID = ""
	}
	m.fb.projectID = task.ProjectID
	if task.DueDate != nil {
		m.fb.dueDate = task.DueDate.Format("2006-01-02")
	} else {
		m.fb.dueDate = ""
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return TaskFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	assigneeOpts := []huh.Option[string]{
		huh.NewOption("Unassigned", ""),
	}
	for _, u := range m.users {
		assigneeOpts = append(assigneeOpts, huh.NewOption(u.Name, u.ID))
	}

	projectOpts := make([]huh.Option[string], 0, len(m.projects))
	for _, p := range m.projects {
		projectOpts = append(projectOpts, huh.NewOption(p.Name, p.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("What needs to be done?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Pending", string(model.StatusPending)),
				huh.NewOption("In Progress", string(model.StatusInProgress)),
				huh.NewOption("Completed", string(model.StatusCompleted)),
			).
			Value(&m.fb.status),
		huh.NewSelect[string]().
			Title("Priority").
			Options(
				huh.NewOption("Urgent", string(model.PriorityUrgent)),
				huh.NewOption("High", string(model.PriorityHigh)),
				huh.NewOption("Medium", string(model.PriorityMedium)),
				huh.NewOption("Low", string(model.PriorityLow)),
			).
			Value(&m.fb.priority),
		huh.NewSelect[string]().
			Title("Assignee").
			Options(assigneeOpts...).
			Value(&m.fb.assigneeID),
		huh.NewSelect[string]().
			Title("Project").
			Options(projectOpts...).
			Value(&m.fb.projectID),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.dueDate).
			Validate(validateOptionalDate),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	var assignee *string
	if m.fb.assigneeID != "" {
		id := m.fb.assigneeID
		assignee = &id
	}

	var due *time.Time
	if m.fb.dueDate != "" {
		if t, err := time.Parse("2006-01-02", m.fb.dueDate); err == nil {
			due = &t
		}
	}

	if m.editMode {
		id := m.editID
		patch := store.TaskPatch{
			Title:       store.Some(m.fb.title),
			Description: store.Some(m.fb.description),
			Status:      store.Some(model.Status(m.fb.status)),
			Priority:    store.Some(model.Priority(m.fb.priority)),
			AssigneeID:  store.Some(assignee),
			ProjectID:   store.Some(m.fb.projectID),
			DueDate:     store.Some(due),
		}
		return func() tea.Msg { return TaskUpdatedMsg{TaskID: id, Patch: patch} }
	}

	draft := store.TaskDraft{
		Title:       m.fb.title,
		Description: m.fb.description,
		Status:      model.Status(m.fb.status),
		Priority:    model.Priority(m.fb.priority),
		AssigneeID:  assignee,
		ProjectID:   m.fb.projectID,
		DueDate:     due,
	}
	return func() tea.Msg { return TaskCreatedMsg{Draft: draft} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
