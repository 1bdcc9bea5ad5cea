package handler

import (
	"net/http"

	"github.com/beyondborder/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ContentHandler covers the smaller content surfaces: breadcrumbs,
// testimonials, team members, why-choose-us items and the about-us text.
type ContentHandler struct {
	breadcrumbs  service.BreadcrumbService
	testimonials service.TestimonialService
	team         service.TeamService
	why          service.WhyChooseUsService
	about        service.AboutService
}

func NewContentHandler(
	breadcrumbs service.BreadcrumbService,
	testimonials service.TestimonialService,
	team service.TeamService,
	why service.WhyChooseUsService,
	about service.AboutService,
) *ContentHandler {
	return &ContentHandler{
		breadcrumbs:  breadcrumbs,
		testimonials: testimonials,
		team:         team,
		why:          why,
		about:        about,
	}
}

type BreadcrumbRequest struct {
	PageSlug string  `json:"pageSlug"`
	Title    string  `json:"title"`
	ImageURL *string `json:"imageUrl"`
}

func (h *ContentHandler) ListBreadcrumbs(c echo.Context) error {
	list, err := h.breadcrumbs.List(c.Request().Context(), c.QueryParam("pageSlug"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", list))
}

func (h *ContentHandler) CreateBreadcrumb(c echo.Context) error {
	var req BreadcrumbRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	b, err := h.breadcrumbs.Create(c.Request().Context(), service.BreadcrumbInput{
		PageSlug: req.PageSlug, Title: req.Title, ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, OK("breadcrumb created", b))
}

func (h *ContentHandler) UpdateBreadcrumb(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	var req BreadcrumbRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	b, err := h.breadcrumbs.Update(c.Request().Context(), id, service.BreadcrumbInput{
		PageSlug: req.PageSlug, Title: req.Title, ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err, "breadcrumb not found")
	}
	return c.JSON(http.StatusOK, OK("breadcrumb updated", b))
}

func (h *ContentHandler) DeleteBreadcrumb(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.breadcrumbs.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "breadcrumb not found")
	}
	return c.JSON(http.StatusOK, OK("breadcrumb deleted", nil))
}

type TestimonialRequest struct {
	AuthorName  string  `json:"authorName"`
	Company     string  `json:"company"`
	Quote       string  `json:"quote"`
	Rating      uint8   `json:"rating"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished bool    `json:"isPublished"`
}

func (r TestimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		AuthorName:  r.AuthorName,
		Company:     r.Company,
		Quote:       r.Quote,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		IsPublished: r.IsPublished,
	}
}

func (h *ContentHandler) ListTestimonialsPublic(c echo.Context) error {
	list, err := h.testimonials.List(c.Request().Context(), true)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", list))
}

func (h *ContentHandler) ListTestimonialsAdmin(c echo.Context) error {
	list, err := h.testimonials.List(c.Request().Context(), false)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", list))
}

func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	t, err := h.testimonials.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, OK("testimonial created", t))
}

func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	t, err := h.testimonials.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, err, "testimonial not found")
	}
	return c.JSON(http.StatusOK, OK("testimonial updated", t))
}

func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.testimonials.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "testimonial not found")
	}
	return c.JSON(http.StatusOK, OK("testimonial deleted", nil))
}

type TeamMemberRequest struct {
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Bio       string  `json:"bio"`
	ImageURL  *string `json:"imageUrl"`
	SortOrder int     `json:"sortOrder"`
}

func (h *ContentHandler) ListTeam(c echo.Context) error {
	list, err := h.team.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", list))
}

func (h *ContentHandler) CreateTeamMember(c echo.Context) error {
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	m, err := h.team.Create(c.Request().Context(), service.TeamMemberInput{
		Name: req.Name, Position: req.Position, Bio: req.Bio,
		ImageURL: req.ImageURL, SortOrder: req.SortOrder,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, OK("team member created", m))
}

func (h *ContentHandler) UpdateTeamMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	m, err := h.team.Update(c.Request().Context(), id, service.TeamMemberInput{
		Name: req.Name, Position: req.Position, Bio: req.Bio,
		ImageURL: req.ImageURL, SortOrder: req.SortOrder,
	})
	if err != nil {
		return respondError(c, err, "team member not found")
	}
	return c.JSON(http.StatusOK, OK("team member updated", m))
}

func (h *ContentHandler) DeleteTeamMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.team.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "team member not found")
	}
	return c.JSON(http.StatusOK, OK("team member deleted", nil))
}

type WhyChooseUsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sortOrder"`
}

func (h *ContentHandler) ListWhyChooseUs(c echo.Context) error {
	list, err := h.why.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", list))
}

func (h *ContentHandler) CreateWhyChooseUs(c echo.Context) error {
	var req WhyChooseUsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	item, err := h.why.Create(c.Request().Context(), service.WhyChooseUsInput{
		Title: req.Title, Description: req.Description,
		Icon: req.Icon, SortOrder: req.SortOrder,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, OK("item created", item))
}

func (h *ContentHandler) UpdateWhyChooseUs(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	var req WhyChooseUsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	item, err := h.why.Update(c.Request().Context(), id, service.WhyChooseUsInput{
		Title: req.Title, Description: req.Description,
		Icon: req.Icon, SortOrder: req.SortOrder,
	})
	if err != nil {
		return respondError(c, err, "item not found")
	}
	return c.JSON(http.StatusOK, OK("item updated", item))
}

func (h *ContentHandler) DeleteWhyChooseUs(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.why.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "item not found")
	}
	return c.JSON(http.StatusOK, OK("item deleted", nil))
}

type AboutUsRequest struct {
	Content  string  `json:"content"`
	Mission  string  `json:"mission"`
	Vision   string  `json:"vision"`
	ImageURL *string `json:"imageUrl"`
}

func (h *ContentHandler) GetAbout(c echo.Context) error {
	a, err := h.about.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", a))
}

func (h *ContentHandler) UpdateAbout(c echo.Context) error {
	var req AboutUsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	a, err := h.about.Update(c.Request().Context(), service.AboutUsInput{
		Content: req.Content, Mission: req.Mission,
		Vision: req.Vision, ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("about us updated", a))
}
