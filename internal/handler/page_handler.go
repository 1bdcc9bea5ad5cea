package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PageHandler struct {
	svc service.PageService
}

func NewPageHandler(svc service.PageService) *PageHandler {
	return &PageHandler{svc: svc}
}

type PageRequest struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	IsPublished     bool   `json:"isPublished"`
}

type PageResponse struct {
	ID              uint64 `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	IsPublished     bool   `json:"isPublished"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func toPageResponse(p *model.Page) PageResponse {
	return PageResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

func (r PageRequest) toInput() service.PageInput {
	return service.PageInput{
		Slug:            r.Slug,
		Title:           r.Title,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsPublished:     r.IsPublished,
	}
}

// ListPublic serves only published pages.
func (h *PageHandler) ListPublic(c echo.Context) error {
	return h.list(c, true)
}

// ListAdmin serves drafts too.
func (h *PageHandler) ListAdmin(c echo.Context) error {
	return h.list(c, false)
}

func (h *PageHandler) list(c echo.Context, publishedOnly bool) error {
	pages, err := h.svc.List(c.Request().Context(), publishedOnly)
	if err != nil {
		return respondError(c, err, "")
	}
	resp := make([]PageResponse, 0, len(pages))
	for i := range pages {
		resp = append(resp, toPageResponse(&pages[i]))
	}
	return c.JSON(http.StatusOK, OK("", resp))
}

func (h *PageHandler) GetBySlug(c echo.Context) error {
	p, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return respondError(c, err, "page not found")
	}
	return c.JSON(http.StatusOK, OK("", toPageResponse(p)))
}

func (h *PageHandler) Create(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	p, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, OK("page created", toPageResponse(p)))
}

func (h *PageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	p, err := h.svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, err, "page not found")
	}
	return c.JSON(http.StatusOK, OK("page updated", toPageResponse(p)))
}

func (h *PageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "page not found")
	}
	return c.JSON(http.StatusOK, OK("page deleted", nil))
}

func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
