package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/layouts"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/pages"
)

// HomeHandler handles requests for the marketing home page.
type HomeHandler struct {
	dev bool
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(dev bool) *HomeHandler {
	return &HomeHandler{dev: dev}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	page := layouts.Base("Home", view.GetFlashData(c), h.dev, pages.Home())
	return c.Render(http.StatusOK, "", page)
}
