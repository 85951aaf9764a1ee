package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/validators"
	"github.com/google/uuid"
)

// Defaults returns the built-in dataset the panel starts with
func Defaults() []models.Notification {
	return []models.Notification{
		{
			ID:        "1",
			User:      models.Actor{Name: "Mark Webber", Avatar: "public/avatar-mark-webber.webp"},
			Type:      models.NotificationTypeReaction,
			Content:   "reacted to your recent post",
			PostTitle: "My first tournament today!",
			Time:      "1m ago",
			IsRead:    false,
		},
		{
			ID:      "2",
			User:    models.Actor{Name: "Angela Gray", Avatar: "public/avatar-angela-gray.webp"},
			Type:    models.NotificationTypeFollow,
			Content: "followed you",
			Time:    "5m ago",
			IsRead:  false,
		},
		{
			ID:        "3",
			User:      models.Actor{Name: "Jacob Thompson", Avatar: "public/avatar-jacob-thompson.webp"},
			Type:      models.NotificationTypeJoin,
			Content:   "has joined your group",
			GroupName: "Chess Club",
			Time:      "1 day ago",
			IsRead:    false,
		},
		{
			ID:      "4",
			User:    models.Actor{Name: "Rizky Hasanuddin", Avatar: "public/avatar-rizky-hasanuddin.webp"},
			Type:    models.NotificationTypeMessage,
			Content: "sent you a private message",
			Message: "Hello, thanks for setting up the Chess Club. I've been a member for a few weeks now and I'm already having lots of fun and improving my game.",
			Time:    "5 days ago",
			IsRead:  true,
		},
		{
			ID:       "5",
			User:     models.Actor{Name: "Kimberly Smith", Avatar: "/public/avatar-kimberly-smith.webp"},
			Type:     models.NotificationTypeComment,
			Content:  "commented on your picture",
			Time:     "1 week ago",
			HasImage: true,
			IsRead:   true,
		},
		{
			ID:        "6",
			User:      models.Actor{Name: "Nathan Peterson", Avatar: "public/avatar-nathan-peterson.webp"},
			Type:      models.NotificationTypeReaction,
			Content:   "reacted to your recent post",
			PostTitle: "5 end-game strategies to increase your win rate",
			Time:      "2 weeks ago",
			IsRead:    true,
		},
		{
			ID:        "7",
			User:      models.Actor{Name: "Anna Kim", Avatar: "public/avatar-anna-kim.webp"},
			Type:      models.NotificationTypeLeave,
			Content:   "left the group",
			GroupName: "Chess Club",
			Time:      "2 weeks ago",
			IsRead:    true,
		},
	}
}

// Load returns the records from path, or Defaults when path is empty
func Load(path string) ([]models.Notification, error) {
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a JSON array of notifications. Records without an id get a
// generated one; unknown types are kept and render without an icon.
func LoadFile(path string) ([]models.Notification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var notifications []models.Notification
	if err := json.Unmarshal(data, &notifications); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	v := validators.NewValidator()
	seen := make(map[string]struct{}, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %s", i, models.ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}

		if err := v.Validate(*n); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, n.ID, err)
		}
		if !n.Type.IsKnown() {
			slog.Warn("seed record has unknown type", "id", n.ID, "type", n.Type)
		}
	}

	slog.Info("loaded seed file", "path", path, "count", len(notifications))
	return notifications, nil
}
