package entities

import "time"

// Message records one sprint-completion announcement.
type Message struct {
	ID         int64
	UserID     int64
	TemplateID int64
	SprintID   int64
	Timestamp  time.Time
}

// MessageInsert carries resolved foreign keys for a new message row.
type MessageInsert struct {
	UserID     int64
	TemplateID int64
	SprintID   int64
}

// MessageFilter is an equality filter over message columns.
type MessageFilter struct {
	UserID   *int64
	SprintID *int64
}
