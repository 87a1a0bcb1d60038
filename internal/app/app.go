// Package app wires the store, the feed simulator, and the views into
// the root Bubble Tea model.
package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskboard/internal/auth"
	"github.com/nhle/taskboard/internal/feed"
	"github.com/nhle/taskboard/internal/keys"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/ui"
	"github.com/nhle/taskboard/internal/ui/board"
	"github.com/nhle/taskboard/internal/ui/dashboard"
	loginview "github.com/nhle/taskboard/internal/ui/login"
	notifview "github.com/nhle/taskboard/internal/ui/notifications"
	projectsview "github.com/nhle/taskboard/internal/ui/projects"
	"github.com/nhle/taskboard/internal/ui/taskform"
	teamsview "github.com/nhle/taskboard/internal/ui/teams"
)

// FeedEventMsg wraps a feed event for the Bubble Tea runtime.
type FeedEventMsg struct {
	Event feed.Event
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewBoard
	ViewDashboard
	ViewProjects
	ViewTeams
	ViewNotifications
	ViewTaskForm
)

// Model is the root Bubble Tea model that manages view routing, the
// session, and the bridge between the feed simulator and the runtime.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout

	store         *store.Store
	simulator     *feed.Simulator
	authenticator *auth.Authenticator
	keys          *keys.KeyMap

	loginView     loginview.Model
	boardView     board.Model
	dashboardView dashboard.Model
	projectsView  projectsview.Model
	teamsView     teamsview.Model
	notifView     notifview.Model
	taskFormView  taskform.Model

	feedEnabled bool
	eventCh     chan feed.Event
	lastEvent   string
}

// New creates the root application model. The simulator stays
// disconnected until a user signs in.
func New(s *store.Store, sim *feed.Simulator, feedEnabled bool) Model {
	k := keys.DefaultKeyMap()
	a := auth.New(s)

	m := Model{
		currentView:   ViewLogin,
		layout:        ui.NewLayout(80, 24),
		store:         s,
		simulator:     sim,
		authenticator: a,
		keys:          k,
		loginView:     loginview.New(a, 80, 24),
		boardView:     board.New(s, k, 80, 22),
		dashboardView: dashboard.New(s, 80, 22),
		projectsView:  projectsview.New(s, k, 80, 22),
		teamsView:     teamsview.New(s, 80, 22),
		notifView:     notifview.New(s, k, 80, 22),
		taskFormView:  taskform.New(80, 22),
		feedEnabled:   feedEnabled,
		eventCh:       make(chan feed.Event, 16),
	}

	// Forward every feed kind into the Bubble Tea runtime. Handlers run
	// on the simulator goroutine; the non-blocking send keeps a stalled
	// UI from stalling the feed.
	forward := func(e feed.Event) {
		select {
		case m.eventCh <- e:
		default:
		}
	}
	for _, kind := range []feed.Type{
		feed.TypeTaskUpdated,
		feed.TypeTaskCreated,
		feed.TypeTaskDeleted,
		feed.TypeNotificationAdded,
		feed.TypeProjectUpdated,
	} {
		sim.Subscribe(kind, forward)
	}

	return m
}

// Init starts the login form and the feed event subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loginView.Init(), m.waitForEvent())
}

// waitForEvent returns a command that blocks on the next feed event.
func (m Model) waitForEvent() tea.Cmd {
	ch := m.eventCh
	return func() tea.Msg {
		return FeedEventMsg{Event: <-ch}
	}
}

// Update handles messages for the root model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(msg.Width, msg.Height)
		m.boardView.SetSize(msg.Width, contentHeight)
		m.dashboardView.SetSize(msg.Width, contentHeight)
		m.projectsView.SetSize(msg.Width, contentHeight)
		m.teamsView.SetSize(msg.Width, contentHeight)
		m.notifView.SetSize(msg.Width, contentHeight)
		m.taskFormView.SetSize(msg.Width, contentHeight)
		return m, nil

	case FeedEventMsg:
		m.lastEvent = string(msg.Event.Type)
		return m, m.waitForEvent()

	case loginview.SignedInMsg:
		if m.feedEnabled {
			m.simulator.Connect()
		}
		m.currentView = ViewBoard
		return m, nil

	case board.OpenTaskFormMsg:
		m.previousView = m.currentView
		m.currentView = ViewTaskForm
		m.taskFormView.SetOptions(m.store.Users(), m.store.Projects())
		if msg.Task != nil {
			return m, m.taskFormView.StartEdit(*msg.Task)
		}
		return m, m.taskFormView.StartCreate()

	case taskform.TaskCreatedMsg:
		draft := msg.Draft
		if user := m.store.CurrentUser(); user != nil {
			draft.CreatedBy = user.ID
		}
		created := m.store.AddTask(draft)
		m.simulator.EmitTaskCreated(created)
		m.currentView = m.previousView
		return m, nil

	case taskform.TaskUpdatedMsg:
		m.store.UpdateTask(msg.TaskID, msg.Patch)
		m.currentView = m.previousView
		return m, nil

	case taskform.TaskFormCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case board.TaskDeletedMsg:
		m.simulator.EmitTaskDeleted(msg.TaskID)
		return m, nil

	case projectsview.ProjectDeletedMsg:
		// The cascade already removed the project's tasks; views read
		// fresh snapshots, so nothing else to do.
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m.updateCurrentView(msg)
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The login screen, the task form, and an active board search own
	// the keyboard entirely.
	if m.currentView == ViewLogin || m.currentView == ViewTaskForm {
		return m.updateCurrentView(msg)
	}
	if m.currentView == ViewBoard && m.boardView.Searching() {
		return m.updateCurrentView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.simulator.Disconnect()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Logout):
		m.simulator.Disconnect()
		m.authenticator.Logout()
		m.currentView = ViewLogin
		m.loginView = loginview.New(m.authenticator, m.layout.Width, m.layout.Height)
		return m, m.loginView.Init()

	case key.Matches(msg, m.keys.Board):
		m.currentView = ViewBoard
		return m, nil

	case key.Matches(msg, m.keys.Dashboard):
		m.currentView = ViewDashboard
		return m, nil

	case key.Matches(msg, m.keys.Projects):
		m.currentView = ViewProjects
		return m, nil

	case key.Matches(msg, m.keys.Teams):
		m.currentView = ViewTeams
		return m, nil

	case key.Matches(msg, m.keys.Notifications):
		if m.currentView == ViewNotifications {
			m.currentView = ViewBoard
		} else {
			m.currentView = ViewNotifications
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.store.ToggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.store.ToggleSidebar()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewNotifications {
			m.currentView = ViewBoard
			return m, nil
		}
	}

	return m.updateCurrentView(msg)
}

func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewProjects:
		m.projectsView, cmd = m.projectsView.Update(msg)
	case ViewTeams:
		m.teamsView, cmd = m.teamsView.Update(msg)
	case ViewNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case ViewTaskForm:
		m.taskFormView, cmd = m.taskFormView.Update(msg)
	}

	return m, cmd
}

// View renders the active view inside the shared frame.
func (m Model) View() string {
	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	var content string
	switch m.currentView {
	case ViewBoard:
		content = m.boardView.View()
	case ViewDashboard:
		content = m.dashboardView.View()
	case ViewProjects:
		content = m.projectsView.View()
	case ViewTeams:
		content = m.teamsView.View()
	case ViewNotifications:
		content = m.notifView.View()
	case ViewTaskForm:
		content = m.taskFormView.View()
	}

	header := m.layout.RenderHeader("taskboard", m.headerStatus())
	statusBar := m.layout.RenderStatusBar(m.statusHints())
	return m.layout.RenderWithFrame(header, content, statusBar)
}

// headerStatus builds the right-hand header segment: session user,
// unread count, feed state, and the last feed event kind.
func (m Model) headerStatus() string {
	status := ""

	if user := m.store.CurrentUser(); user != nil {
		status += user.Name
		if unread := m.store.UnreadCount(user.ID); unread > 0 {
			status += "  ✉ " + strconv.Itoa(unread)
		}
	}

	if m.simulator.Connected() {
		status += "  live"
		if m.lastEvent != "" {
			status += " (" + m.lastEvent + ")"
		}
	} else {
		status += "  offline"
	}

	if m.store.Theme() == model.ThemeDark {
		status += "  dark"
	}

	return status
}

func (m Model) statusHints() string {
	switch m.currentView {
	case ViewBoard:
		return "1-4 views • n notifications • a add • e edit • x delete • H/L move • / search • q quit"
	case ViewNotifications:
		return "enter mark read • A mark all read • esc back • q quit"
	case ViewTaskForm:
		return "enter next • esc cancel"
	default:
		return "1 board • 2 dashboard • 3 projects • 4 teams • n notifications • t theme • Q log out • q quit"
	}
}
