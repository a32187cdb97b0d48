package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/storage"
)

// FileHandler streams stored profile images back to the browser.
type FileHandler struct {
	images *storage.ImageService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(images *storage.ImageService) *FileHandler {
	return &FileHandler{images: images}
}

// ImageGet serves a stored image by name.
func (h *FileHandler) ImageGet(c echo.Context) error {
	name := c.Param("name")

	rc, err := h.images.Open(c.Request().Context(), name)
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Image not found.")
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to open image", "name", name, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read image.")
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, rc)
}
