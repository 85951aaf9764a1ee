package models

import "errors"

// NotificationType tags a notification and selects its icon and which optional fields apply
type NotificationType string

const (
	NotificationTypeReaction NotificationType = "reaction"
	NotificationTypeFollow   NotificationType = "follow"
	NotificationTypeJoin     NotificationType = "join"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeComment  NotificationType = "comment"
	NotificationTypeLeave    NotificationType = "leave"
)

// NotificationTypes lists the closed set of known types in display-table order
var NotificationTypes = []NotificationType{
	NotificationTypeReaction,
	NotificationTypeFollow,
	NotificationTypeJoin,
	NotificationTypeMessage,
	NotificationTypeComment,
	NotificationTypeLeave,
}

// IsKnown reports whether t belongs to the closed enumeration
func (t NotificationType) IsKnown() bool {
	switch t {
	case NotificationTypeReaction, NotificationTypeFollow, NotificationTypeJoin,
		NotificationTypeMessage, NotificationTypeComment, NotificationTypeLeave:
		return true
	}
	return false
}

// Notification represents a single social-interaction event shown in the panel
type Notification struct {
	ID        string           `json:"id" validate:"required,max=64"`
	User      Actor            `json:"user"`
	Type      NotificationType `json:"type" validate:"required,max=30"`
	Content   string           `json:"content" validate:"required,max=280"`
	Time      string           `json:"time" validate:"required,max=40"` // pre-formatted, e.g. "5m ago"
	IsRead    bool             `json:"is_read"`
	PostTitle string           `json:"post_title,omitempty" validate:"omitempty,max=280"` // reaction
	Message   string           `json:"message,omitempty" validate:"omitempty,max=5000"`   // message
	GroupName string           `json:"group_name,omitempty" validate:"omitempty,max=100"` // join, leave
	HasImage  bool             `json:"has_image,omitempty"`                               // comment
}

// Actor is the display identity of whoever triggered a notification
type Actor struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Avatar string `json:"avatar" validate:"required,max=512"` // opaque asset path
}

// WithRead returns a copy of n marked as read
func (n Notification) WithRead() Notification {
	n.IsRead = true
	return n
}

// ErrDuplicateID is returned when two notifications share an id
var ErrDuplicateID = errors.New("duplicate notification id")
