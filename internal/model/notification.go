package model

import "time"

// NotificationType represents the kind of notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification represents an alert surfaced to a user about activity
// on the board.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Title is the short heading shown in the panel.
	Title string `json:"title"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// Type classifies the notification (use Notification* constants).
	Type NotificationType `json:"type"`

	// Read indicates whether the recipient has seen this notification.
	Read bool `json:"read"`

	// UserID identifies the intended recipient.
	UserID string `json:"user_id"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"created_at"`
}
