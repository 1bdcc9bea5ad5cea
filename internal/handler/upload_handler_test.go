package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAllowedUploadExt(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"diagram.svg", true},
		{"anim.webp", true},
		{"malware.exe", false},
		{"script.svg.js", false},
		{"noext", false},
		{"archive.tar.gz", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := AllowedUploadExt(tt.filename); got != tt.want {
				t.Fatalf("AllowedUploadExt(%q)=%v want=%v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "evil.exe")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("not an image")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewUploadHandler(t.TempDir())
	if err := h.Upload(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
}

func TestUploadStoresAllowedFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "team.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte{0x89, 'P', 'N', 'G'}); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewUploadHandler(t.TempDir())
	if err := h.Upload(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d want=201 body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"url":"/uploads/`) {
		t.Fatalf("body=%s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), ".png") {
		t.Fatalf("stored name should keep the extension: %s", rec.Body.String())
	}
}
