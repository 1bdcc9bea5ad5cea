package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// AllowedUploadExt reports whether filename carries an accepted image
// extension. The check is by name only; content sniffing is out of scope.
func AllowedUploadExt(filename string) bool {
	return allowedUploadExts[strings.ToLower(filepath.Ext(filename))]
}

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, Fail("file field is required"))
	}
	if !AllowedUploadExt(fileHeader.Filename) {
		return c.JSON(http.StatusBadRequest, Fail("file type not allowed"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err, "")
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return respondError(c, err, "")
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return respondError(c, err, "")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(http.StatusCreated, OK("file uploaded", map[string]string{
		"filename": name,
		"url":      "/uploads/" + name,
	}))
}
