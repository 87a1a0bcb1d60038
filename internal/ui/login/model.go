package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/auth"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/theme"
)

// SignedInMsg is dispatched when a login or registration succeeds.
type SignedInMsg struct {
	User model.User
}

// mode selects between the sign-in and sign-up forms.
type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	email    string
	password string
}

// Model is the login screen shown until a user signs in.
type Model struct {
	authenticator *auth.Authenticator
	form          *huh.Form
	fb            *formBindings
	mode          mode
	errMessage    string
	width         int
	height        int
}

// New creates the login model and its initial sign-in form.
func New(a *auth.Authenticator, width, height int) Model {
	m := Model{
		authenticator: a,
		fb:            &formBindings{},
		width:         width,
		height:        height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the login form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the login screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "tab" {
		// Switch between sign in and sign up.
		if m.mode == modeLogin {
			m.mode = modeRegister
		} else {
			m.mode = modeLogin
		}
		m.errMessage = ""
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}
	if m.form.State == huh.StateAborted {
		m.errMessage = ""
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	return m, cmd
}

// submit runs the authenticator and either signs in or re-shows the
// form with the failure message.
func (m Model) submit() (Model, tea.Cmd) {
	var user *model.User
	var err error

	if m.mode == modeRegister {
		user, err = m.authenticator.Register(m.fb.name, m.fb.email, m.fb.password)
	} else {
		user, err = m.authenticator.Login(m.fb.email, m.fb.password)
	}

	if err != nil {
		m.errMessage = err.Error()
		m.fb.password = ""
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	signedIn := *user
	return m, func() tea.Msg { return SignedInMsg{User: signedIn} }
}

// View renders the centered login card.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorBlue).
		Render("taskboard")

	subtitle := theme.HelpStyle.Render("tab: switch sign in / sign up")
	hint := theme.DimmedStyle.Render(
		"demo account: joao@example.com / " + auth.DemoPassword,
	)

	parts := []string{title, "", m.form.View(), subtitle, hint}
	if m.errMessage != "" {
		parts = append(parts, theme.OverdueStyle.Render(m.errMessage))
	}

	card := theme.PanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		card,
	)
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{}

	if m.mode == modeRegister {
		fields = append(fields,
			huh.NewInput().
				Title("Name").
				Placeholder("Your name").
				Value(&m.fb.name),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&m.fb.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.fb.password),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(48)
}
