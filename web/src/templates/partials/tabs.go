package partials

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// DashboardTabs are the navigation tabs of the dashboard, in display order.
var DashboardTabs = []string{"overview", "events", "resources", "connections"}

var tabLabels = map[string]string{
	"overview":    "Overview",
	"events":      "My Events",
	"resources":   "Saved Resources",
	"connections": "Connections",
}

var tabBlurbs = map[string]string{
	"overview":    "A quick glance at your activity across Grohub.",
	"events":      "Events you have joined or bookmarked will show up here.",
	"resources":   "Guides and resources you saved for later.",
	"connections": "People you have connected with through the community.",
}

// NormalizeTab maps unknown tab names to the default tab.
func NormalizeTab(tab string) string {
	if _, ok := tabLabels[tab]; ok {
		return tab
	}
	return "overview"
}

// TabArea renders the tab strip together with the active content panel.
// Tab clicks swap the whole area so the active highlight moves with the
// panel.
func TabArea(active string) gomponents.Node {
	active = NormalizeTab(active)
	return html.Div(
		html.ID("tab-area"),
		html.Class("mt-6"),
		tabNav(active),
		tabPanel(active),
	)
}

func tabNav(active string) gomponents.Node {
	return html.Nav(
		html.Class("flex gap-1 border-b border-gray-200"),
		gomponents.Map(DashboardTabs, func(tab string) gomponents.Node {
			class := "px-4 py-2 text-sm font-medium rounded-t-lg "
			if tab == active {
				class += "bg-white border border-b-0 border-gray-200 text-emerald-700"
			} else {
				class += "text-gray-500 hover:text-gray-800"
			}
			return html.Button(
				html.Type("button"),
				html.Class(class),
				hx.Get("/dashboard/tab?tab="+tab),
				hx.Target("#tab-area"),
				hx.Swap("outerHTML"),
				gomponents.Text(tabLabels[tab]),
			)
		}),
	)
}

func tabPanel(active string) gomponents.Node {
	return html.Div(
		html.Class("bg-white rounded-b-xl rounded-tr-xl shadow p-8"),
		html.H2(html.Class("text-lg font-semibold"), gomponents.Text(tabLabels[active])),
		html.P(html.Class("mt-2 text-gray-500"), gomponents.Text(tabBlurbs[active])),
		html.Div(
			html.Class("mt-6 border-2 border-dashed border-gray-200 rounded-lg p-10 text-center text-gray-400"),
			gomponents.Text("Nothing here yet."),
		),
	)
}
