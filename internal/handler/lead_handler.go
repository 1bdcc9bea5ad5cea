package handler

import (
	"net/http"
	"strconv"

	"github.com/beyondborder/backend/internal/event"
	"github.com/beyondborder/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// LeadHandler serves the public lead-capture forms and the admin read side.
// Each create answers the submitter first and only then emits the domain
// event, so the notification pipeline can never delay or fail the form.
type LeadHandler struct {
	svc service.LeadService
	bus *event.Bus
}

func NewLeadHandler(svc service.LeadService, bus *event.Bus) *LeadHandler {
	return &LeadHandler{svc: svc, bus: bus}
}

type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

func (h *LeadHandler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	contact, err := h.svc.CreateContact(c.Request().Context(), service.ContactInput{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Description: req.Description,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	if err := c.JSON(http.StatusCreated, OK("thank you for reaching out", contact)); err != nil {
		return err
	}
	h.bus.Emit(event.ContactCreated{Contact: *contact})
	return nil
}

type ConsultantRequestRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

func (h *LeadHandler) CreateConsultantRequest(c echo.Context) error {
	var req ConsultantRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	created, err := h.svc.CreateConsultantRequest(c.Request().Context(), service.ConsultantRequestInput{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
		Organization: req.Organization, Message: req.Message,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	if err := c.JSON(http.StatusCreated, OK("request received", created)); err != nil {
		return err
	}
	h.bus.Emit(event.ConsultantCreated{Request: *created})
	return nil
}

type CommunityMemberRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Expertise string `json:"expertise"`
}

func (h *LeadHandler) CreateCommunityMember(c echo.Context) error {
	var req CommunityMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	member, err := h.svc.CreateCommunityMember(c.Request().Context(), service.CommunityMemberInput{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
		Company: req.Company, Expertise: req.Expertise,
	})
	if err != nil {
		return respondError(c, err, "")
	}
	if err := c.JSON(http.StatusCreated, OK("application received", member)); err != nil {
		return err
	}
	h.bus.Emit(event.CommunityCreated{Member: *member})
	return nil
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return page, pageSize
}

func (h *LeadHandler) ListContacts(c echo.Context) error {
	page, pageSize := pageParams(c)
	list, p, err := h.svc.ListContacts(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", map[string]any{"items": list, "pagination": p}))
}

func (h *LeadHandler) ListConsultantRequests(c echo.Context) error {
	page, pageSize := pageParams(c)
	list, p, err := h.svc.ListConsultantRequests(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", map[string]any{"items": list, "pagination": p}))
}

func (h *LeadHandler) ListCommunityMembers(c echo.Context) error {
	page, pageSize := pageParams(c)
	list, p, err := h.svc.ListCommunityMembers(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("", map[string]any{"items": list, "pagination": p}))
}

func (h *LeadHandler) DeleteContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.DeleteContact(c.Request().Context(), id); err != nil {
		return respondError(c, err, "contact not found")
	}
	return c.JSON(http.StatusOK, OK("contact deleted", nil))
}

func (h *LeadHandler) DeleteConsultantRequest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.DeleteConsultantRequest(c.Request().Context(), id); err != nil {
		return respondError(c, err, "consultant request not found")
	}
	return c.JSON(http.StatusOK, OK("consultant request deleted", nil))
}

func (h *LeadHandler) DeleteCommunityMember(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid id"))
	}
	if err := h.svc.DeleteCommunityMember(c.Request().Context(), id); err != nil {
		return respondError(c, err, "community member not found")
	}
	return c.JSON(http.StatusOK, OK("community member deleted", nil))
}
