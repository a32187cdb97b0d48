package pages

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type card struct {
	title string
	text  string
}

// Home is the marketing landing page: hero, about, events, resources and
// interests sections.
func Home() gomponents.Node {
	return html.Main(
		hero(),
		about(),
		cardSection("events", "Upcoming Events", []card{
			{"Community Meetup", "Meet fellow members in your city and swap stories over coffee."},
			{"Skill Share Night", "Members teach members: short, hands-on sessions on anything."},
			{"Grohub Summit", "Our yearly gathering with talks, workshops and way too much pizza."},
		}),
		cardSection("resources", "Resources", []card{
			{"Getting Started Guide", "Everything you need to set up your profile and find your people."},
			{"Community Handbook", "How we treat each other, and how to get the most out of Grohub."},
			{"Organizer Toolkit", "Templates and checklists for running your own events."},
		}),
		interests(),
		footer(),
	)
}

func hero() gomponents.Node {
	return html.Section(
		html.ID("hero"),
		html.Class("bg-emerald-700 text-white"),
		html.Div(
			html.Class("container mx-auto px-6 py-24 text-center"),
			html.H1(
				html.Class("text-4xl md:text-5xl font-extrabold tracking-tight"),
				gomponents.Text("Grow together on Grohub"),
			),
			html.P(
				html.Class("mt-4 text-lg text-emerald-100 max-w-2xl mx-auto"),
				gomponents.Text("A community for people who build, learn and share. Create your profile, find your interests and connect with people who care about the same things."),
			),
			html.A(
				html.Href("/dashboard"),
				html.Class("mt-8 inline-block px-8 py-3 bg-white text-emerald-700 rounded-lg font-semibold hover:bg-emerald-50"),
				gomponents.Text("Open your dashboard"),
			),
		),
	)
}

func about() gomponents.Node {
	return html.Section(
		html.ID("about"),
		html.Class("container mx-auto px-6 py-16"),
		html.Div(
			html.Class("bg-white shadow rounded-xl p-10 max-w-3xl mx-auto"),
			html.H2(html.Class("text-3xl font-bold mb-4"), gomponents.Text("About Grohub")),
			html.P(
				html.Class("text-gray-600 leading-relaxed"),
				gomponents.Text("Grohub started as a handful of friends trading advice in a group chat and grew into a community of thousands. We believe the best way to grow is alongside other people: sharing what you know, asking about what you don't, and showing up for each other's events."),
			),
		),
	)
}

func cardSection(id, title string, cards []card) gomponents.Node {
	return html.Section(
		html.ID(id),
		html.Class("container mx-auto px-6 py-12"),
		html.H2(html.Class("text-3xl font-bold text-center mb-8"), gomponents.Text(title)),
		html.Div(
			html.Class("grid md:grid-cols-3 gap-6"),
			gomponents.Map(cards, func(c card) gomponents.Node {
				return html.Div(
					html.Class("bg-white rounded-xl shadow p-6 hover:shadow-lg transition-shadow"),
					html.H3(html.Class("font-semibold text-lg mb-2"), gomponents.Text(c.title)),
					html.P(html.Class("text-gray-500 text-sm"), gomponents.Text(c.text)),
				)
			}),
		),
	)
}

func interests() gomponents.Node {
	topics := []string{
		"Technology", "Design", "Photography", "Cooking", "Hiking",
		"Music", "Writing", "Gardening", "Gaming", "Languages",
	}
	return html.Section(
		html.ID("interests"),
		html.Class("container mx-auto px-6 py-12 text-center"),
		html.H2(html.Class("text-3xl font-bold mb-8"), gomponents.Text("Find your interests")),
		html.Div(
			html.Class("flex flex-wrap justify-center gap-3 max-w-2xl mx-auto"),
			gomponents.Map(topics, func(topic string) gomponents.Node {
				return html.Span(
					html.Class("px-4 py-2 bg-white rounded-full shadow text-sm text-gray-700"),
					gomponents.Text(topic),
				)
			}),
		),
	)
}

func footer() gomponents.Node {
	return html.Footer(
		html.Class("bg-gray-900 text-gray-400 text-sm"),
		html.Div(
			html.Class("container mx-auto px-6 py-8 text-center"),
			gomponents.Text("Grohub — grow together."),
		),
	)
}
