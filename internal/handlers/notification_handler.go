package handlers

import (
	"log/slog"
	"net/http"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/anonto42/nano-midea/notifications/internal/repositories"
	"github.com/anonto42/nano-midea/notifications/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the notifications panel and its JSON mirror
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	metrics.UnreadNotifications.Set(float64(notifRepo.GetUnreadCount()))
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterPanelRoutes registers the HTML panel routes
func (h *NotificationHandler) RegisterPanelRoutes(e *echo.Echo) {
	e.GET("/", h.ShowPanel)
	e.POST("/notifications/read-all", h.SubmitMarkAllAsRead)
}

// RegisterNotificationRoutes registers the JSON notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// ShowPanel renders the full page, or only the panel for htmx requests
func (h *NotificationHandler) ShowPanel(c echo.Context) error {
	return h.renderPanel(c, http.StatusOK, h.notificationRepository.List())
}

// SubmitMarkAllAsRead handles the panel's "Mark all as read" form
func (h *NotificationHandler) SubmitMarkAllAsRead(c echo.Context) error {
	updated := h.markAll()
	if isHTMX(c) {
		return h.renderPanel(c, http.StatusOK, updated)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// GetNotifications returns every notification with the unread count
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	notifications := h.notificationRepository.List()

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notifications": notifications,
			"unreadCount":   repositories.CountUnread(notifications),
		},
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count := h.notificationRepository.GetUnreadCount()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAllAsRead marks all notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	updated := h.markAll()

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notifications": updated,
			"unreadCount":   repositories.CountUnread(updated),
		},
	})
}

func (h *NotificationHandler) markAll() []models.Notification {
	before := h.notificationRepository.GetUnreadCount()
	updated := h.notificationRepository.MarkAllAsRead()

	metrics.MarkAllAsReadTotal.Inc()
	metrics.UnreadNotifications.Set(float64(repositories.CountUnread(updated)))
	slog.Info("marked all notifications as read", "changed", before, "total", len(updated))
	return updated
}

func (h *NotificationHandler) renderPanel(c echo.Context, status int, notifications []models.Notification) error {
	panel := render.BuildPanel(notifications)
	metrics.UnreadNotifications.Set(float64(panel.UnreadCount))

	tmpl := "layout"
	if isHTMX(c) {
		tmpl = "panel"
	}
	return c.Render(status, tmpl, panel)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
