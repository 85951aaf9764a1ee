package models

// Icon describes the glyph rendered next to a notification
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

var notificationIcons = map[NotificationType]Icon{
	NotificationTypeReaction: {Name: "heart", Glyph: "♥", Color: "red"},
	NotificationTypeFollow:   {Name: "person-add", Glyph: "+", Color: "blue"},
	NotificationTypeJoin:     {Name: "people", Glyph: "👥", Color: "green"},
	NotificationTypeMessage:  {Name: "chat-bubble", Glyph: "💬", Color: "purple"},
	NotificationTypeComment:  {Name: "chat-bubble", Glyph: "💬", Color: "blue"},
	NotificationTypeLeave:    {Name: "person-remove", Glyph: "−", Color: "gray"},
}

// IconFor returns the icon for t. ok is false for types outside the enumeration.
func IconFor(t NotificationType) (icon Icon, ok bool) {
	icon, ok = notificationIcons[t]
	return icon, ok
}
