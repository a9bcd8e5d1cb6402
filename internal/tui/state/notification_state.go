package state

import "fmt"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warnings such as "select a bill first"
	LevelWarning
	// LevelError represents failed operations
	LevelError
)

// maxNotifications bounds the stack; the oldest banner is dropped first
const maxNotifications = 3

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages the banners shown above the status bar.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
}

// Info adds an informational notification.
func (s *NotificationState) Info(format string, args ...any) {
	s.Add(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn adds a warning notification.
func (s *NotificationState) Warn(message string) {
	s.Add(LevelWarning, message)
}

// Error adds an error notification carrying the underlying message.
func (s *NotificationState) Error(err error) {
	s.Add(LevelError, "An error occurred: "+err.Error())
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
