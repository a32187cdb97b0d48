package partials

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// socialLink renders one outbound link of the profile header; empty links
// render nothing.
func socialLink(label, href string) gomponents.Node {
	if href == "" {
		return nil
	}
	return html.A(
		html.Href(href),
		html.Target("_blank"),
		html.Rel("noopener"),
		html.Class("text-sm text-emerald-700 hover:text-emerald-900 underline"),
		gomponents.Text(label),
	)
}

// ProfileHeader renders the saved profile card at the top of the dashboard.
// With oob set it replaces the existing header out-of-band, which is how a
// successful save refreshes the page without a reload.
func ProfileHeader(p domain.Profile, oob bool) gomponents.Node {
	return html.Section(
		html.ID("profile-header"),
		gomponents.If(oob, gomponents.Attr("hx-swap-oob", "true")),
		html.Class("bg-white rounded-xl shadow p-8 flex flex-col md:flex-row gap-6"),

		html.Div(
			html.Class("shrink-0"),
			avatar(p),
		),

		html.Div(
			html.Class("flex-1"),
			html.H1(html.Class("text-2xl font-bold"), gomponents.Text(p.Name)),
			html.P(html.Class("text-emerald-700 font-medium"), gomponents.Text(p.Designation)),
			gomponents.If(p.Bio != "",
				html.P(html.Class("mt-2 text-gray-600"), gomponents.Text(p.Bio)),
			),
			html.Div(
				html.Class("mt-3 flex flex-wrap gap-2"),
				gomponents.Map(p.Skills, func(skill string) gomponents.Node {
					return html.Span(
						html.Class("px-3 py-1 bg-emerald-50 text-emerald-800 rounded-full text-sm"),
						gomponents.Text(skill),
					)
				}),
			),
			html.Div(
				html.Class("mt-4 flex flex-wrap gap-4"),
				socialLink("LinkedIn", p.Social.LinkedIn),
				socialLink("GitHub", p.Social.GitHub),
				socialLink("Instagram", p.Social.Instagram),
				gomponents.If(p.Social.Email != "", socialLink("Email", "mailto:"+p.Social.Email)),
			),
		),

		html.Div(
			html.Class("flex md:flex-col gap-2"),
			headerButton("Edit Profile", "/dashboard/edit"),
			headerButton("Share", "/dashboard/share"),
			headerButton("Settings", "/dashboard/settings"),
		),
	)
}

func avatar(p domain.Profile) gomponents.Node {
	if p.ProfileImage != "" {
		return html.Img(
			html.Src(p.ProfileImage),
			html.Alt(p.Name),
			html.Class("w-24 h-24 rounded-full object-cover"),
		)
	}
	initial := "?"
	if p.Name != "" {
		initial = string([]rune(p.Name)[0])
	}
	return html.Div(
		html.Class("w-24 h-24 rounded-full bg-emerald-600 text-white flex items-center justify-center text-3xl font-bold"),
		gomponents.Text(initial),
	)
}

func headerButton(label, modalPath string) gomponents.Node {
	return html.Button(
		html.Type("button"),
		html.Class("px-4 py-2 rounded-lg border border-emerald-600 text-emerald-700 hover:bg-emerald-50 text-sm font-medium"),
		hx.Get(modalPath),
		hx.Target("#modal-root"),
		hx.Swap("innerHTML"),
		gomponents.Text(label),
	)
}
