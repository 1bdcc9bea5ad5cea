package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beyondborder/backend/internal/middleware"
	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/service"
	"github.com/beyondborder/backend/internal/sse"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationService struct {
	notifications []model.Notification
	unread        int64
	knownIDs      map[uint64]bool
	markedAll     bool
}

func (f *fakeNotificationService) List(_ context.Context, page, pageSize int, unreadOnly bool) ([]model.Notification, service.Pagination, error) {
	return f.notifications, service.Pagination{Page: page, PageSize: pageSize, Total: int64(len(f.notifications)), Pages: 1}, nil
}

func (f *fakeNotificationService) UnreadCount(context.Context) (int64, error) {
	return f.unread, nil
}

func (f *fakeNotificationService) MarkRead(_ context.Context, id uint64) error {
	if !f.knownIDs[id] {
		return service.ErrNotFound
	}
	return nil
}

func (f *fakeNotificationService) MarkAllRead(context.Context) error {
	f.markedAll = true
	return nil
}

func (f *fakeNotificationService) Delete(_ context.Context, id uint64) error {
	if !f.knownIDs[id] {
		return service.ErrNotFound
	}
	return nil
}

func newNotificationContext(t *testing.T, method, target string, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c, rec
}

func TestListNotificationsEnvelope(t *testing.T) {
	svc := &fakeNotificationService{
		notifications: []model.Notification{{ID: 1, Title: "New Contact Inquiry", Type: model.NotificationTypeContact}},
	}
	h := NewNotificationHandler(svc, sse.NewRegistry())

	c, rec := newNotificationContext(t, http.MethodGet, "/api/notifications?page=1&pageSize=20", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Notifications []model.Notification `json:"notifications"`
			Pagination    service.Pagination   `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Notifications, 1)
	assert.Equal(t, "New Contact Inquiry", resp.Data.Notifications[0].Title)
	assert.Equal(t, 1, resp.Data.Pagination.Page)
}

func TestUnreadCount(t *testing.T) {
	h := NewNotificationHandler(&fakeNotificationService{unread: 4}, sse.NewRegistry())
	c, rec := newNotificationContext(t, http.MethodGet, "/api/notifications/unread-count", "")
	require.NoError(t, h.UnreadCount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":4`)
}

func TestMarkReadUnknownIDReturns404(t *testing.T) {
	h := NewNotificationHandler(&fakeNotificationService{knownIDs: map[uint64]bool{}}, sse.NewRegistry())
	c, rec := newNotificationContext(t, http.MethodPatch, "/api/notifications/99/read", "99")
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestDeleteUnknownIDReturns404(t *testing.T) {
	h := NewNotificationHandler(&fakeNotificationService{knownIDs: map[uint64]bool{}}, sse.NewRegistry())
	c, rec := newNotificationContext(t, http.MethodDelete, "/api/notifications/99", "99")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteInvalidIDReturns400(t *testing.T) {
	h := NewNotificationHandler(&fakeNotificationService{}, sse.NewRegistry())
	c, rec := newNotificationContext(t, http.MethodDelete, "/api/notifications/abc", "abc")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsReportsConnections(t *testing.T) {
	registry := sse.NewRegistry()
	h := NewNotificationHandler(&fakeNotificationService{}, registry)
	c, rec := newNotificationContext(t, http.MethodGet, "/api/notifications/stats", "")
	require.NoError(t, h.Stats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"activeConnections":0`)
}

func TestStreamSendsConnectedFrame(t *testing.T) {
	registry := sse.NewRegistry()
	h := NewNotificationHandler(&fakeNotificationService{}, registry)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/stream", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyAdminID, uint64(7))

	done := make(chan error, 1)
	go func() { done <- h.Stream(c) }()

	deadline := time.Now().Add(2 * time.Second)
	for registry.Stats().ActiveConnections == 0 {
		if time.Now().After(deadline) {
			t.Fatal("connection never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, []string{"7"}, registry.Stats().Connections)

	registry.RemoveClient("7")
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after eviction")
	}

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: "), "body=%q", body)
	assert.Contains(t, body, `"type":"connected"`)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}
