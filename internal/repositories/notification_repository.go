package repositories

import (
	"fmt"
	"sync"

	"github.com/anonto42/nano-midea/notifications/internal/models"
)

// NotificationRepository defines the interface for notification panel state
type NotificationRepository interface {
	List() []models.Notification
	GetUnreadCount() int
	MarkAllAsRead() []models.Notification
}

// memoryNotificationRepository holds the panel's notifications for the life of the process.
// The slice is never mutated after it is stored; updates swap in a new slice.
type memoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

// NewMemoryNotificationRepository seeds a repository with notifications in display order
func NewMemoryNotificationRepository(seed []models.Notification) (NotificationRepository, error) {
	seen := make(map[string]struct{}, len(seed))
	for _, n := range seed {
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("%w: %s", models.ErrDuplicateID, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	notifications := make([]models.Notification, len(seed))
	copy(notifications, seed)
	return &memoryNotificationRepository{notifications: notifications}, nil
}

// List returns a snapshot of the notifications
func (r *memoryNotificationRepository) List() []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *memoryNotificationRepository) GetUnreadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return CountUnread(r.notifications)
}

// MarkAllAsRead replaces the list with a copy in which every notification is read
func (r *memoryNotificationRepository) MarkAllAsRead() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.Notification, len(r.notifications))
	for i, n := range r.notifications {
		next[i] = n.WithRead()
	}
	r.notifications = next

	out := make([]models.Notification, len(next))
	copy(out, next)
	return out
}

// CountUnread counts notifications whose IsRead flag is false
func CountUnread(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
