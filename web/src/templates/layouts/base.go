package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/view"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// PageTitle handles the conditional logic for the page title.
func PageTitle(title string) string {
	if title != "" {
		return title + " - Grohub"
	}
	return "Grohub"
}

// appScript carries the small amount of inline JS the pages need (clipboard
// copy for the share modal). It is a templ component so the raw script
// stays out of the gomponents element tree.
func appScript() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script>
function copyShareText() {
  var el = document.getElementById("share-text");
  if (!el) return;
  navigator.clipboard.writeText(el.value).then(function () {
    var btn = document.getElementById("copy-share-button");
    if (btn) { btn.textContent = "Copied!"; }
  });
}
function closeModal() {
  var root = document.getElementById("modal-root");
  if (root) { root.innerHTML = ""; }
}
</script>`)
		return err
	})
}

// reloadScript reconnects to the dev reload socket and refreshes the page
// on any signal. Only injected in development.
func reloadScript() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script>
(function connect() {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/dev/reload");
  ws.onmessage = function () { location.reload(); };
  ws.onclose = function () { setTimeout(connect, 1000); };
})();
</script>`)
		return err
	})
}

// Base wraps page content in the shared HTML shell: head assets, flash
// messages and the modal mount point.
func Base(title string, flash view.FlashData, dev bool, content gomponents.Node) gomponents.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(gomponents.Text(PageTitle(title))),
				html.Script(html.Src("https://unpkg.com/htmx.org@1.9.12")),
				html.Script(html.Src("https://cdn.tailwindcss.com")),
				html.Link(html.Rel("stylesheet"), html.Href("/static/css/site.css")),
			),
			html.Body(
				html.Class("bg-gray-50 text-gray-900 antialiased min-h-screen"),
				partials.Flash(flash, false),
				content,
				html.Div(html.ID("modal-root")),
				view.AdaptTemplToGomponent(appScript()),
				gomponents.If(dev, view.AdaptTemplToGomponent(reloadScript())),
			),
		),
	)
}
