package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/beyondborder/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// Response is the uniform envelope every JSON endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// respondError maps service-layer failures onto the error taxonomy:
// validation → 400 with field errors, unknown id → 404, anything else →
// 500 with the detail kept server-side.
func respondError(c echo.Context, err error, notFoundMessage string) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "validation failed",
			Errors:  verr.Fields,
		})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, Fail(notFoundMessage))
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, Fail("internal server error"))
}
