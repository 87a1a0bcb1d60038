package model

import "time"

// Status is the kanban column a task lives in.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses lists every status in kanban column order.
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ColumnIndex returns the position of s among the kanban columns,
// or -1 for an unknown status.
func (s Status) ColumnIndex() int {
	for i, known := range AllStatuses {
		if s == known {
			return i
		}
	}
	return -1
}

// Priority is the urgency level assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the severity of p, higher meaning more urgent.
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Task is a single work item on a project board.
type Task struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`

	// Title is the human-readable summary of the task.
	Title string `json:"title"`

	// Description is the full body text.
	Description string `json:"description"`

	// Status is the kanban column (use Status* constants).
	Status Status `json:"status"`

	// Priority is the urgency level (use Priority* constants).
	Priority Priority `json:"priority"`

	// AssigneeID references the assigned user, nil when unassigned.
	AssigneeID *string `json:"assignee_id,omitempty"`

	// ProjectID references the project this task belongs to.
	ProjectID string `json:"project_id"`

	// DueDate is the deadline, nil when the task has none.
	DueDate *time.Time `json:"due_date,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation to the task.
	UpdatedAt time.Time `json:"updated_at"`

	// CreatedBy is the user who created the task.
	CreatedBy string `json:"created_by"`
}

// Overdue reports whether the task is past its due date and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}
