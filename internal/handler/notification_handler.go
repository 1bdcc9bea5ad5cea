package handler

import (
	"net/http"
	"strconv"

	"github.com/beyondborder/backend/internal/middleware"
	"github.com/beyondborder/backend/internal/service"
	"github.com/beyondborder/backend/internal/sse"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	svc      service.NotificationService
	registry *sse.Registry
}

func NewNotificationHandler(svc service.NotificationService, registry *sse.Registry) *NotificationHandler {
	return &NotificationHandler{svc: svc, registry: registry}
}

func (h *NotificationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	unreadOnly := c.QueryParam("unreadOnly") == "true"

	list, p, err := h.svc.List(c.Request().Context(), page, pageSize, unreadOnly)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", map[string]any{
		"notifications": list,
		"pagination":    p,
	}))
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	cnt, err := h.svc.UnreadCount(c.Request().Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", map[string]any{"count": cnt}))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.MarkRead(c.Request().Context(), id); err != nil {
		return respondError(c, err, "notification not found")
	}
	return c.JSON(http.StatusOK, OK("notification marked as read", nil))
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.svc.MarkAllRead(c.Request().Context()); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("all notifications marked as read", nil))
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "notification not found")
	}
	return c.JSON(http.StatusOK, OK("notification deleted", nil))
}

func (h *NotificationHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, OK("", h.registry.Stats()))
}

// Stream opens the admin's SSE channel and holds the request open until
// the client disconnects or the registry evicts the connection (stale
// heartbeat, or a newer connection from the same admin).
func (h *NotificationHandler) Stream(c echo.Context) error {
	adminID := strconv.FormatUint(middleware.AdminID(c), 10)

	stream, err := sse.NewResponseStream(c.Response())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, Fail("streaming unsupported"))
	}
	if err := h.registry.AddClient(adminID, stream); err != nil {
		h.registry.Disconnect(adminID, stream)
		return nil
	}

	select {
	case <-c.Request().Context().Done():
		h.registry.Disconnect(adminID, stream)
	case <-stream.Done():
	}
	return nil
}
