package validators

import (
	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the notification rules registered
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterStructValidation(notificationStructLevel, models.Notification{})
	return &CustomValidator{validator: v}
}

// Validate validates a struct using its `validate` tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// notificationStructLevel rejects type-specific fields on the wrong known type.
// Unknown types are left alone so they can still render as plain text.
func notificationStructLevel(sl validator.StructLevel) {
	n := sl.Current().Interface().(models.Notification)
	if !n.Type.IsKnown() {
		return
	}

	if n.PostTitle != "" && n.Type != models.NotificationTypeReaction {
		sl.ReportError(n.PostTitle, "PostTitle", "post_title", "reaction_only", string(n.Type))
	}
	if n.Message != "" && n.Type != models.NotificationTypeMessage {
		sl.ReportError(n.Message, "Message", "message", "message_only", string(n.Type))
	}
	if n.GroupName != "" && n.Type != models.NotificationTypeJoin && n.Type != models.NotificationTypeLeave {
		sl.ReportError(n.GroupName, "GroupName", "group_name", "group_only", string(n.Type))
	}
	if n.HasImage && n.Type != models.NotificationTypeComment {
		sl.ReportError(n.HasImage, "HasImage", "has_image", "comment_only", string(n.Type))
	}
}
