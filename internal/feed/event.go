// Package feed emulates an inbound real-time event source so the UI can
// be built against a live-updates contract without a network connection.
package feed

import (
	"time"

	"github.com/nhle/taskboard/internal/model"
)

// Type identifies the kind of a feed event.
type Type string

const (
	// TypeTaskUpdated announces a task status change.
	TypeTaskUpdated Type = "task_updated"
	// TypeTaskCreated announces a task created by a UI surface.
	TypeTaskCreated Type = "task_created"
	// TypeTaskDeleted announces a task deleted by a UI surface.
	TypeTaskDeleted Type = "task_deleted"
	// TypeNotificationAdded announces a notification delivered to the
	// current user.
	TypeNotificationAdded Type = "notification_added"
	// TypeProjectUpdated announces a project edited by a UI surface.
	TypeProjectUpdated Type = "project_updated"
)

// Event is a single broadcast to subscribers. Payload holds the concrete
// per-kind data; switch on it to consume an event without ambiguity.
type Event struct {
	Type      Type
	Timestamp time.Time
	Payload   Payload
}

// Payload is the closed set of per-kind event payloads.
type Payload interface {
	eventPayload()
}

// TaskUpdatedPayload carries the data for task_updated events.
type TaskUpdatedPayload struct {
	TaskID    string
	NewStatus model.Status
	// Task is the post-update snapshot of the task.
	Task model.Task
}

// TaskCreatedPayload carries the data for task_created events.
type TaskCreatedPayload struct {
	Task model.Task
}

// TaskDeletedPayload carries the data for task_deleted events.
type TaskDeletedPayload struct {
	TaskID string
}

// NotificationAddedPayload carries the data for notification_added events.
type NotificationAddedPayload struct {
	Message string
}

// ProjectUpdatedPayload carries the data for project_updated events.
type ProjectUpdatedPayload struct {
	Project model.Project
}

func (TaskUpdatedPayload) eventPayload()       {}
func (TaskCreatedPayload) eventPayload()       {}
func (TaskDeletedPayload) eventPayload()       {}
func (NotificationAddedPayload) eventPayload() {}
func (ProjectUpdatedPayload) eventPayload()    {}
