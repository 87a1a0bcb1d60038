package store

import (
	"time"

	"github.com/nhle/taskboard/internal/model"
)

// Fixtures bundles the seed collections for a fresh store.
type Fixtures struct {
	Users         []model.User
	Projects      []model.Project
	Tasks         []model.Task
	Notifications []model.Notification
}

// SeedFixtures seeds the store from a fixture bundle.
func (s *Store) SeedFixtures(f Fixtures) {
	s.Seed(f.Users, f.Projects, f.Tasks, f.Notifications)
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad fixture timestamp: " + value)
	}
	return t
}

func strptr(s string) *string { return &s }

func tsptr(value string) *time.Time {
	t := ts(value)
	return &t
}

// DefaultFixtures returns the demo dataset the dashboard ships with:
// four users, three projects, five tasks, and three notifications, with
// ids lining up with the legacy length-based id scheme.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Users: []model.User{
			{
				ID:        "1",
				Name:      "Joao Silva",
				Email:     "joao@example.com",
				Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Role:      model.RoleAdmin,
				CreatedAt: ts("2024-01-01T00:00:00Z"),
			},
			{
				ID:        "2",
				Name:      "Maria Santos",
				Email:     "maria@example.com",
				Avatar:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=face",
				Role:      model.RoleMember,
				CreatedAt: ts("2024-01-02T00:00:00Z"),
			},
			{
				ID:        "3",
				Name:      "Pedro Costa",
				Email:     "pedro@example.com",
				Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
				Role:      model.RoleMember,
				CreatedAt: ts("2024-01-03T00:00:00Z"),
			},
			{
				ID:        "4",
				Name:      "Ana Oliveira",
				Email:     "ana@example.com",
				Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
				Role:      model.RoleMember,
				CreatedAt: ts("2024-01-04T00:00:00Z"),
			},
		},
		Projects: []model.Project{
			{
				ID:          "1",
				Name:        "E-commerce Platform",
				Description: "Full e-commerce platform build-out",
				Color:       "#3b82f6",
				Members:     []string{"1", "2", "3"},
				CreatedAt:   ts("2024-01-01T00:00:00Z"),
				UpdatedAt:   ts("2024-01-15T00:00:00Z"),
			},
			{
				ID:          "2",
				Name:        "Mobile App",
				Description: "Mobile application for iOS and Android",
				Color:       "#10b981",
				Members:     []string{"1", "2", "4"},
				CreatedAt:   ts("2024-01-05T00:00:00Z"),
				UpdatedAt:   ts("2024-01-20T00:00:00Z"),
			},
			{
				ID:          "3",
				Name:        "Marketing Campaign",
				Description: "Digital marketing campaign for Q1 2024",
				Color:       "#f59e0b",
				Members:     []string{"1", "3", "4"},
				CreatedAt:   ts("2024-01-10T00:00:00Z"),
				UpdatedAt:   ts("2024-01-25T00:00:00Z"),
			},
		},
		Tasks: []model.Task{
			{
				ID:          "1",
				Title:       "Set up the database",
				Description: "Configure PostgreSQL and create the initial tables",
				Status:      model.StatusCompleted,
				Priority:    model.PriorityHigh,
				AssigneeID:  strptr("2"),
				ProjectID:   "1",
				DueDate:     tsptr("2024-01-20T00:00:00Z"),
				CreatedAt:   ts("2024-01-15T00:00:00Z"),
				UpdatedAt:   ts("2024-01-18T00:00:00Z"),
				CreatedBy:   "1",
			},
			{
				ID:          "2",
				Title:       "Implement authentication",
				Description: "Login and registration flow for users",
				Status:      model.StatusInProgress,
				Priority:    model.PriorityHigh,
				AssigneeID:  strptr("3"),
				ProjectID:   "1",
				DueDate:     tsptr("2024-01-25T00:00:00Z"),
				CreatedAt:   ts("2024-01-16T00:00:00Z"),
				UpdatedAt:   ts("2024-01-20T00:00:00Z"),
				CreatedBy:   "1",
			},
			{
				ID:          "3",
				Title:       "Interface design",
				Description: "Create wireframes and interface prototypes",
				Status:      model.StatusPending,
				Priority:    model.PriorityMedium,
				AssigneeID:  strptr("4"),
				ProjectID:   "2",
				DueDate:     tsptr("2024-01-30T00:00:00Z"),
				CreatedAt:   ts("2024-01-18T00:00:00Z"),
				UpdatedAt:   ts("2024-01-18T00:00:00Z"),
				CreatedBy:   "1",
			},
			{
				ID:          "4",
				Title:       "Set up CI/CD",
				Description: "Continuous integration and deployment pipeline",
				Status:      model.StatusPending,
				Priority:    model.PriorityMedium,
				AssigneeID:  strptr("2"),
				ProjectID:   "1",
				DueDate:     tsptr("2024-02-01T00:00:00Z"),
				CreatedAt:   ts("2024-01-19T00:00:00Z"),
				UpdatedAt:   ts("2024-01-19T00:00:00Z"),
				CreatedBy:   "1",
			},
			{
				ID:          "5",
				Title:       "Market research",
				Description: "Competitor and trend analysis",
				Status:      model.StatusInProgress,
				Priority:    model.PriorityLow,
				AssigneeID:  strptr("3"),
				ProjectID:   "3",
				DueDate:     tsptr("2024-02-05T00:00:00Z"),
				CreatedAt:   ts("2024-01-20T00:00:00Z"),
				UpdatedAt:   ts("2024-01-22T00:00:00Z"),
				CreatedBy:   "1",
			},
		},
		Notifications: []model.Notification{
			{
				ID:        "1",
				Title:     "New task assigned",
				Message:   `You were assigned the task "Implement authentication"`,
				Type:      model.NotificationInfo,
				Read:      false,
				UserID:    "3",
				CreatedAt: ts("2024-01-20T10:00:00Z"),
			},
			{
				ID:        "2",
				Title:     "Task completed",
				Message:   `The task "Set up the database" was marked as completed`,
				Type:      model.NotificationSuccess,
				Read:      false,
				UserID:    "1",
				CreatedAt: ts("2024-01-18T15:30:00Z"),
			},
			{
				ID:        "3",
				Title:     "Deadline approaching",
				Message:   `The task "Interface design" is due in 2 days`,
				Type:      model.NotificationWarning,
				Read:      true,
				UserID:    "4",
				CreatedAt: ts("2024-01-22T09:00:00Z"),
			},
		},
	}
}
