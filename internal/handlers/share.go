package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// ShareHandler serves the share modal and dispatches share intents.
type ShareHandler struct {
	editors *profile.Manager
	baseURL string
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(editors *profile.Manager, baseURL string) *ShareHandler {
	return &ShareHandler{editors: editors, baseURL: baseURL}
}

func (h *ShareHandler) pageURL() string {
	return h.baseURL + "/dashboard"
}

// ModalGet opens the share modal with the generated share text.
func (h *ShareHandler) ModalGet(c echo.Context) error {
	p := h.editors.Get(middleware.SessionIDFrom(c)).Profile()
	data := dashboard.ShareData{
		Text:    profile.ShareText(p),
		PageURL: h.pageURL(),
	}
	return c.Render(http.StatusOK, "", partials.ShareModal(data))
}

// DispatchGet resolves a share target. The copy target returns the share
// text itself; social targets redirect to the platform's share intent URL.
// Unknown targets are a no-op.
func (h *ShareHandler) DispatchGet(c echo.Context) error {
	target, ok := profile.ParseShareTarget(c.Param("target"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	p := h.editors.Get(middleware.SessionIDFrom(c)).Profile()
	text := profile.ShareText(p)

	if target == profile.ShareCopy {
		return c.String(http.StatusOK, text)
	}
	url, ok := profile.ShareURL(target, text, h.pageURL())
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusFound, url)
}
