package partials

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/view/dto/dashboard"
)

// ShareModal shows the share-text preview and the outbound share targets.
// Copy happens in the browser; the social buttons round-trip through the
// server, which redirects to the pre-filled intent URL.
func ShareModal(data dashboard.ShareData) gomponents.Node {
	return modalShell("Share Profile",
		html.Div(
			html.Class("space-y-4"),
			html.Textarea(
				html.ID("share-text"),
				html.ReadOnly(),
				html.Rows("8"),
				html.Class("w-full px-3 py-2 border border-gray-300 rounded-lg text-sm bg-gray-50"),
				gomponents.Text(data.Text),
			),
			html.Div(
				html.Class("grid grid-cols-2 gap-3"),
				html.Button(
					html.ID("copy-share-button"),
					html.Type("button"),
					html.Class("px-4 py-2 rounded-lg bg-gray-800 text-white text-sm font-medium hover:bg-gray-900"),
					gomponents.Attr("onclick", "copyShareText()"),
					gomponents.Text("Copy to Clipboard"),
				),
				shareLink("Share on X", "/share/twitter"),
				shareLink("Share on Facebook", "/share/facebook"),
				shareLink("Share on LinkedIn", "/share/linkedin"),
			),
		),
	)
}

func shareLink(label, href string) gomponents.Node {
	return html.A(
		html.Href(href),
		html.Target("_blank"),
		html.Rel("noopener"),
		html.Class("px-4 py-2 rounded-lg border border-gray-300 text-sm font-medium text-center hover:bg-gray-50"),
		gomponents.Text(label),
	)
}
