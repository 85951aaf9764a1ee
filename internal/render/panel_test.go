package render

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/anonto42/nano-midea/notifications/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPanel(t *testing.T, name string, notifications []models.Notification) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, BuildPanel(notifications), nil))
	return buf.String()
}

// rowFor returns the rendered <li> for the notification with id
func rowFor(t *testing.T, out, id string) string {
	t.Helper()
	start := strings.Index(out, `data-id="`+id+`"`)
	require.NotEqual(t, -1, start, "row %s not rendered", id)
	end := strings.Index(out[start:], "</li>")
	require.NotEqual(t, -1, end)
	return out[start : start+end]
}

func TestBuildPanel(t *testing.T) {
	panel := BuildPanel(seed.Defaults())

	assert.Equal(t, 3, panel.UnreadCount)
	assert.True(t, panel.ShowBadge)
	require.Len(t, panel.Items, 7)

	for i, item := range panel.Items {
		assert.Equal(t, seed.Defaults()[i].ID, item.ID, "order preserved")
		assert.True(t, item.HasIcon)
		assert.Equal(t, !item.IsRead, item.Unread)
	}
	assert.True(t, panel.Items[4].ShowImagePlaceholder)
	assert.True(t, panel.Items[3].ShowMessage)
	assert.False(t, panel.Items[0].ShowMessage)
}

func TestBuildPanel_Empty(t *testing.T) {
	panel := BuildPanel(nil)
	assert.Equal(t, 0, panel.UnreadCount)
	assert.False(t, panel.ShowBadge)
	assert.Empty(t, panel.Items)
}

func TestBuildPanel_UnknownType(t *testing.T) {
	panel := BuildPanel([]models.Notification{{ID: "x", Type: "mention", Content: "mentioned you"}})

	require.Len(t, panel.Items, 1)
	assert.False(t, panel.Items[0].HasIcon)
	assert.Equal(t, models.Icon{}, panel.Items[0].Icon)
}

func TestItem_RowClass(t *testing.T) {
	assert.Contains(t, Item{Unread: true}.RowClass(), "notification--unread")
	assert.NotContains(t, Item{Unread: false}.RowClass(), "notification--unread")
}

func TestRender_UnreadMarkers(t *testing.T) {
	out := renderPanel(t, "panel", seed.Defaults())

	unreadRow := rowFor(t, out, "1")
	assert.Contains(t, out, `data-id="1"`)
	assert.Contains(t, unreadRow, "unread-dot")

	readRow := rowFor(t, out, "6")
	assert.NotContains(t, readRow, "unread-dot")

	assert.Equal(t, 3, strings.Count(out, "notification--unread"))
	assert.Equal(t, 4, strings.Count(out, "notification--read\""))
	assert.Contains(t, out, `data-unread-count="3"`)
}

func TestRender_ImagePlaceholder(t *testing.T) {
	out := renderPanel(t, "panel", seed.Defaults())

	assert.Contains(t, rowFor(t, out, "5"), "image-placeholder")
	for _, id := range []string{"1", "2", "3", "4", "6", "7"} {
		assert.NotContains(t, rowFor(t, out, id), "image-placeholder")
	}
}

func TestRender_MessageBlock(t *testing.T) {
	items := seed.Defaults()
	out := renderPanel(t, "panel", items)

	row := rowFor(t, out, "4")
	assert.Contains(t, row, `class="message"`)
	assert.Contains(t, row, html.EscapeString(items[3].Message))

	for _, id := range []string{"1", "2", "3", "5", "6", "7"} {
		assert.NotContains(t, rowFor(t, out, id), `class="message"`)
	}
}

func TestRender_Icons(t *testing.T) {
	out := renderPanel(t, "panel", seed.Defaults())

	assert.Contains(t, rowFor(t, out, "1"), "icon-heart icon--red")
	assert.Contains(t, rowFor(t, out, "2"), "icon-person-add icon--blue")
	assert.Contains(t, rowFor(t, out, "3"), "icon-people icon--green")
	assert.Contains(t, rowFor(t, out, "4"), "icon-chat-bubble icon--purple")
	assert.Contains(t, rowFor(t, out, "5"), "icon-chat-bubble icon--blue")
	assert.Contains(t, rowFor(t, out, "7"), "icon-person-remove icon--gray")
}

func TestRender_UnknownTypeStillShowsText(t *testing.T) {
	out := renderPanel(t, "panel", []models.Notification{{
		ID:      "x",
		User:    models.Actor{Name: "Ann", Avatar: "public/ann.webp"},
		Type:    "mention",
		Content: "mentioned you",
		Time:    "now",
	}})

	row := rowFor(t, out, "x")
	assert.NotContains(t, row, `class="icon`)
	assert.Contains(t, row, "mentioned you")
	assert.Contains(t, row, "Ann")
}

func TestRender_OptionalFields(t *testing.T) {
	out := renderPanel(t, "panel", seed.Defaults())

	assert.Contains(t, rowFor(t, out, "1"), "My first tournament today!")
	assert.Contains(t, rowFor(t, out, "3"), `<span class="group-name">Chess Club</span>`)
	assert.NotContains(t, rowFor(t, out, "2"), "post-title")
	assert.NotContains(t, rowFor(t, out, "2"), "group-name")
}

func TestRender_AllReadHidesBadge(t *testing.T) {
	items := seed.Defaults()
	for i := range items {
		items[i] = items[i].WithRead()
	}
	out := renderPanel(t, "panel", items)

	assert.NotContains(t, out, "unread-badge")
	assert.NotContains(t, out, "notification--unread")
	assert.NotContains(t, out, "unread-dot")
}

func TestRender_Layout(t *testing.T) {
	out := renderPanel(t, "layout", seed.Defaults())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `id="notifications-panel"`)
	assert.Contains(t, out, "Mark all as read")
}
