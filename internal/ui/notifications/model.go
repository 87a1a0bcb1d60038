package notifications

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/keys"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/theme"
)

// Model is the notification drawer, listing the current user's
// notifications newest first.
type Model struct {
	store  *store.Store
	keys   *keys.KeyMap
	cursor int
	width  int
	height int
}

// New creates a new notifications model.
func New(s *store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{store: s, keys: k, width: width, height: height}
}

// SetSize updates the drawer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// visible returns the current user's notifications, newest first.
func (m Model) visible() []model.Notification {
	user := m.store.CurrentUser()
	if user == nil {
		return nil
	}

	var mine []model.Notification
	for _, n := range m.store.Notifications() {
		if n.UserID == user.ID {
			mine = append(mine, n)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine
}

// Update handles messages for the notification drawer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.visible()

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.MarkRead):
		if m.cursor < len(visible) {
			m.store.MarkNotificationRead(visible[m.cursor].ID)
		}

	case key.Matches(keyMsg, m.keys.MarkAllRead):
		// Marks every notification in the store, not only the visible
		// ones; see Store.MarkAllNotificationsRead.
		m.store.MarkAllNotificationsRead()
	}

	return m, nil
}

// View renders the notification drawer.
func (m Model) View() string {
	user := m.store.CurrentUser()
	if user == nil {
		return theme.PanelStyle.Render(theme.DimmedStyle.Render("sign in to see notifications"))
	}

	visible := m.visible()
	unread := m.store.UnreadCount(user.ID)

	title := fmt.Sprintf("Notifications (%d unread)", unread)
	lines := []string{theme.ColumnTitleStyle.Render(title)}

	if len(visible) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("all caught up"))
	}
	for i, n := range visible {
		marker := "●"
		if n.Read {
			marker = " "
		}
		line := fmt.Sprintf(
			"%s %s %s — %s",
			theme.NotificationStyle(n.Type).Render(marker),
			n.CreatedAt.Format("Jan 02 15:04"),
			n.Title,
			n.Message,
		)
		if n.Read {
			line = theme.DimmedStyle.Render(line)
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
