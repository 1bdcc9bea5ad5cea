package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/beyondborder/backend/internal/middleware"
	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminResponse struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func toAdminResponse(a *model.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("invalid json"))
	}
	token, admin, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, Fail("invalid email or password"))
		}
		return respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, OK("logged in", map[string]any{
		"token": token,
		"admin": toAdminResponse(admin),
	}))
}

func (h *AuthHandler) Me(c echo.Context) error {
	admin, err := h.svc.GetAdmin(c.Request().Context(), middleware.AdminID(c))
	if err != nil {
		return respondError(c, err, "admin not found")
	}
	return c.JSON(http.StatusOK, OK("", toAdminResponse(admin)))
}
