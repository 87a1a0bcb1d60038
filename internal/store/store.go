// Package store holds the single authoritative in-memory state for the
// dashboard: users, projects, tasks, notifications, and UI preferences.
//
// All mutations go through the operations defined here and are serialized
// behind one mutex, so readers always observe a fully applied state and
// the project-delete cascade is never visible half done. Operations given
// an unknown id leave state unchanged and report false; nothing in this
// package returns an error.
package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/taskboard/internal/model"
)

// Store is the process-wide domain state container. Construct it with New
// and pass it by reference to whatever owns the event loop; there is no
// package-level instance.
type Store struct {
	mu sync.RWMutex

	users         []model.User
	projects      []model.Project
	tasks         []model.Task
	notifications []model.Notification

	currentUser *model.User
	sidebarOpen bool
	theme       model.Theme

	now      func() time.Time
	useUUIDs bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithUUIDs switches id generation from the legacy collection-length
// scheme to random UUIDs. The legacy scheme can hand out a duplicate id
// after a delete followed by an add; UUIDs are the safe choice when that
// compatibility is not needed.
func WithUUIDs() Option {
	return func(s *Store) { s.useUUIDs = true }
}

// WithTheme sets the initial theme preference.
func WithTheme(t model.Theme) Option {
	return func(s *Store) { s.theme = t }
}

// WithSidebarOpen sets the initial sidebar preference.
func WithSidebarOpen(open bool) Option {
	return func(s *Store) { s.sidebarOpen = open }
}

// New creates an empty Store. Seed the initial collections with Seed.
func New(opts ...Option) *Store {
	s := &Store{
		sidebarOpen: true,
		theme:       model.ThemeLight,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces all four collections at once. It is meant to be called
// once at startup with fixture data, before any readers exist.
func (s *Store) Seed(
	users []model.User,
	projects []model.Project,
	tasks []model.Task,
	notifications []model.Notification,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]model.User(nil), users...)
	s.projects = append([]model.Project(nil), projects...)
	s.tasks = append([]model.Task(nil), tasks...)
	s.notifications = append([]model.Notification(nil), notifications...)
}

// nextID derives an id for a new entity in a collection of length n.
// The legacy scheme is (n+1) stringified, kept for compatibility with
// the fixture ids; see WithUUIDs for the collision-safe alternative.
func (s *Store) nextID(n int) string {
	if s.useUUIDs {
		return uuid.NewString()
	}
	return strconv.Itoa(n + 1)
}

// === Session ===

// SetCurrentUser replaces the session's current user. Pass nil to
// represent "logged out". No validation is performed.
func (s *Store) SetCurrentUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.currentUser = nil
		return
	}
	copied := *u
	s.currentUser = &copied
}

// CurrentUser returns a copy of the session's current user, or nil when
// nobody is signed in.
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	copied := *s.currentUser
	return &copied
}

// === Users ===

// Users returns a snapshot of the user collection.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// UserByID returns a copy of the user with the given id, or nil.
func (s *Store) UserByID(id string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			copied := u
			return &copied
		}
	}
	return nil
}

// UserByEmail returns a copy of the user with the given email, or nil.
func (s *Store) UserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied
		}
	}
	return nil
}

// AddUser appends a new user with a generated id and returns it.
// Users are otherwise immutable; there is no update or delete.
func (s *Store) AddUser(draft UserDraft) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:        s.nextID(len(s.users)),
		Name:      draft.Name,
		Email:     draft.Email,
		Avatar:    draft.Avatar,
		Role:      draft.Role,
		CreatedAt: s.now(),
	}
	s.users = append(s.users, u)
	return u
}

// === Projects ===

// Projects returns a snapshot of the project collection.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]model.Project, len(s.projects))
	for i, p := range s.projects {
		projects[i] = p
		projects[i].Members = append([]string(nil), p.Members...)
	}
	return projects
}

// ProjectByID returns a copy of the project with the given id, or nil.
func (s *Store) ProjectByID(id string) *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			copied := p
			copied.Members = append([]string(nil), p.Members...)
			return &copied
		}
	}
	return nil
}

// AddProject appends a new project with a generated id and both
// timestamps stamped to now, and returns it.
func (s *Store) AddProject(draft ProjectDraft) model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := model.Project{
		ID:          s.nextID(len(s.projects)),
		Name:        draft.Name,
		Description: draft.Description,
		Color:       draft.Color,
		Members:     append([]string(nil), draft.Members...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects = append(s.projects, p)
	return p
}

// UpdateProject merges the patch into the project with the given id and
// refreshes its UpdatedAt. It reports whether a project matched.
func (s *Store) UpdateProject(id string, patch ProjectPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		patch.apply(&s.projects[i])
		s.projects[i].UpdatedAt = s.now()
		return true
	}
	return false
}

// DeleteProject removes the project with the given id along with every
// task referencing it, as one state transition. It reports whether a
// project matched; the task cascade runs regardless of task count.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	projects := s.projects[:0]
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		projects = append(projects, p)
	}
	s.projects = projects

	if !found {
		return false
	}

	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID == id {
			continue
		}
		tasks = append(tasks, t)
	}
	s.tasks = tasks
	return true
}

// === Tasks ===

// Tasks returns a snapshot of the task collection.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

// TaskByID returns a copy of the task with the given id, or nil.
func (s *Store) TaskByID(id string) *model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			copied := t
			return &copied
		}
	}
	return nil
}

// AddTask appends a new task with a generated id and both timestamps
// stamped to now, and returns it. The store does not verify that
// ProjectID or AssigneeID reference existing entities; callers are
// expected to pass ids they read from this store.
func (s *Store) AddTask(draft TaskDraft) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := model.Task{
		ID:          s.nextID(len(s.tasks)),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		AssigneeID:  draft.AssigneeID,
		ProjectID:   draft.ProjectID,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   draft.CreatedBy,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// UpdateTask merges the patch into the task with the given id and
// refreshes its UpdatedAt. It reports whether a task matched.
func (s *Store) UpdateTask(id string, patch TaskPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		patch.apply(&s.tasks[i])
		s.tasks[i].UpdatedAt = s.now()
		return true
	}
	return false
}

// DeleteTask removes the task with the given id, reporting whether one
// matched.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// MoveTask sets the task's status, used for kanban column moves. Every
// transition is allowed, including to the current status; UpdatedAt is
// refreshed either way. It reports whether a task matched.
func (s *Store) MoveTask(id string, status model.Status) bool {
	return s.UpdateTask(id, TaskPatch{Status: Some(status)})
}

// === Notifications ===

// Notifications returns a snapshot of the notification collection.
func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.notifications...)
}

// AddNotification appends a new notification with a generated id and
// CreatedAt stamped to now, and returns it. The read flag is taken from
// the draft as given.
func (s *Store) AddNotification(draft NotificationDraft) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        s.nextID(len(s.notifications)),
		Title:     draft.Title,
		Message:   draft.Message,
		Type:      draft.Type,
		Read:      draft.Read,
		UserID:    draft.UserID,
		CreatedAt: s.now(),
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead sets the read flag on the notification with the
// given id, reporting whether one matched.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead sets the read flag on every notification in
// the collection, regardless of recipient. Marking notifications that
// belong to other users looks wrong for a multi-user session, but it is
// the behavior the dashboard has always had; callers wanting per-user
// semantics must filter ids themselves.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications addressed to
// the given user.
func (s *Store) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// === UI preferences ===

// SidebarOpen reports the sidebar preference.
func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// ToggleSidebar flips the sidebar preference.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

// SetSidebarOpen sets the sidebar preference.
func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

// Theme returns the theme preference.
func (s *Store) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips the theme between light and dark.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
}

// SetTheme sets the theme preference.
func (s *Store) SetTheme(t model.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}
