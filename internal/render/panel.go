package render

import (
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
)

// Panel is the view model for the notifications panel
type Panel struct {
	Title       string
	UnreadCount int
	ShowBadge   bool
	Items       []Item
}

// Item is one rendered notification row
type Item struct {
	models.Notification
	Icon                 models.Icon
	HasIcon              bool
	Unread               bool
	ShowImagePlaceholder bool
	ShowMessage          bool
}

// BuildPanel derives everything the templates need from the notifications.
// Unknown types get no icon but keep their text.
func BuildPanel(notifications []models.Notification) Panel {
	unread := repositories.CountUnread(notifications)
	panel := Panel{
		Title:       "Notifications",
		UnreadCount: unread,
		ShowBadge:   unread > 0,
		Items:       make([]Item, len(notifications)),
	}

	for i, n := range notifications {
		icon, ok := models.IconFor(n.Type)
		panel.Items[i] = Item{
			Notification:         n,
			Icon:                 icon,
			HasIcon:              ok,
			Unread:               !n.IsRead,
			ShowImagePlaceholder: n.HasImage,
			ShowMessage:          n.Message != "",
		}
	}
	return panel
}

// RowClass returns the CSS classes for a row; unread rows get the highlighted treatment
func (i Item) RowClass() string {
	if i.Unread {
		return "notification notification--unread"
	}
	return "notification notification--read"
}
