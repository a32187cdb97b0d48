package partials

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
)

// Flash renders the one-shot notification area. With oob set, the fragment
// carries an hx-swap-oob marker so it replaces the existing area when it
// rides along on another htmx response.
func Flash(data view.FlashData, oob bool) gomponents.Node {
	return html.Div(
		html.ID("flash-root"),
		html.Class("fixed top-4 right-4 z-50 space-y-2"),
		gomponents.If(oob, gomponents.Attr("hx-swap-oob", "true")),
		gomponents.Map(data.Success, func(msg string) gomponents.Node {
			return html.Div(
				html.Class("px-4 py-3 rounded-lg shadow bg-green-600 text-white text-sm"),
				html.Role("alert"),
				gomponents.Text(msg),
			)
		}),
		gomponents.Map(data.Error, func(msg string) gomponents.Node {
			return html.Div(
				html.Class("px-4 py-3 rounded-lg shadow bg-red-600 text-white text-sm"),
				html.Role("alert"),
				gomponents.Text(msg),
			)
		}),
	)
}
