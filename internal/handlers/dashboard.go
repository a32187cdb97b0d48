package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/layouts"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/pages"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// DashboardHandler serves the member dashboard page and its tab fragments.
type DashboardHandler struct {
	editors  *profile.Manager
	settings *settings.Service
	dev      bool
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(editors *profile.Manager, settings *settings.Service, dev bool) *DashboardHandler {
	return &DashboardHandler{editors: editors, settings: settings, dev: dev}
}

// DashboardGet handles the GET request for the dashboard page.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	sessionID := middleware.SessionIDFrom(c)
	editor := h.editors.Get(sessionID)

	data := dashboard.Data{
		Profile:   editor.Profile(),
		Settings:  h.settings.Get(sessionID),
		ActiveTab: partials.NormalizeTab(c.QueryParam("tab")),
	}
	page := layouts.Base("Dashboard", view.GetFlashData(c), h.dev, pages.Dashboard(data))
	return c.Render(http.StatusOK, "", page)
}

// TabGet swaps the active dashboard tab.
func (h *DashboardHandler) TabGet(c echo.Context) error {
	tab := partials.NormalizeTab(c.QueryParam("tab"))
	return c.Render(http.StatusOK, "", partials.TabArea(tab))
}
