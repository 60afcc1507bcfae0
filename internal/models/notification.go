package models

import "time"

// NotificationLevel уровень уведомления.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification неблокирующее уведомление, показываемое пользователю.
type Notification struct {
	Level     NotificationLevel
	Message   string
	Read      bool
	CreatedAt time.Time
}
