package store

import (
	"time"

	"github.com/nhle/taskboard/internal/model"
)

// Optional wraps a patch field. A zero Optional means "leave the field
// unchanged"; one built with Some overwrites, including overwriting a
// nullable field with nil.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns an Optional that overwrites with v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// UserDraft carries the caller-supplied fields for AddUser.
type UserDraft struct {
	Name   string
	Email  string
	Avatar string
	Role   model.Role
}

// ProjectDraft carries the caller-supplied fields for AddProject; id and
// timestamps are assigned by the store.
type ProjectDraft struct {
	Name        string
	Description string
	Color       string
	Members     []string
}

// TaskDraft carries the caller-supplied fields for AddTask; id and
// timestamps are assigned by the store.
type TaskDraft struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	AssigneeID  *string
	ProjectID   string
	DueDate     *time.Time
	CreatedBy   string
}

// NotificationDraft carries the caller-supplied fields for
// AddNotification; id and CreatedAt are assigned by the store.
type NotificationDraft struct {
	Title   string
	Message string
	Type    model.NotificationType
	Read    bool
	UserID  string
}

// ProjectPatch selects which project fields an update overwrites.
type ProjectPatch struct {
	Name        Optional[string]
	Description Optional[string]
	Color       Optional[string]
	Members     Optional[[]string]
}

func (p ProjectPatch) apply(project *model.Project) {
	if p.Name.Valid {
		project.Name = p.Name.Value
	}
	if p.Description.Valid {
		project.Description = p.Description.Value
	}
	if p.Color.Valid {
		project.Color = p.Color.Value
	}
	if p.Members.Valid {
		project.Members = append([]string(nil), p.Members.Value...)
	}
}

// TaskPatch selects which task fields an update overwrites. AssigneeID
// and DueDate take a pointer value, so Some[*string](nil) clears the
// assignee while a zero Optional leaves it alone.
type TaskPatch struct {
	Title       Optional[string]
	Description Optional[string]
	Status      Optional[model.Status]
	Priority    Optional[model.Priority]
	AssigneeID  Optional[*string]
	ProjectID   Optional[string]
	DueDate     Optional[*time.Time]
}

func (p TaskPatch) apply(task *model.Task) {
	if p.Title.Valid {
		task.Title = p.Title.Value
	}
	if p.Description.Valid {
		task.Description = p.Description.Value
	}
	if p.Status.Valid {
		task.Status = p.Status.Value
	}
	if p.Priority.Valid {
		task.Priority = p.Priority.Value
	}
	if p.AssigneeID.Valid {
		task.AssigneeID = p.AssigneeID.Value
	}
	if p.ProjectID.Valid {
		task.ProjectID = p.ProjectID.Value
	}
	if p.DueDate.Valid {
		task.DueDate = p.DueDate.Value
	}
}
