package pages

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// Dashboard is the member dashboard page: saved profile header plus the
// tabbed content area. Modals mount into the layout's #modal-root.
func Dashboard(data dashboard.Data) gomponents.Node {
	return html.Main(
		html.Class("container mx-auto px-6 py-10 max-w-4xl"),
		partials.ProfileHeader(data.Profile, false),
		partials.TabArea(data.ActiveTab),
	)
}
