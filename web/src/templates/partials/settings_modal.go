package partials

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// SettingsModal renders the four settings groups. Each group is its own
// form that posts on change and swaps only itself, so toggling a switch
// never disturbs the other groups.
func SettingsModal(s domain.Settings) gomponents.Node {
	return modalShell("Settings",
		html.Div(
			html.Class("space-y-8"),
			PrivacySection(s.Privacy),
			NotificationsSection(s.Notifications),
			AppearanceSection(s.Appearance),
			AccountSection(s.Account),
		),
	)
}

// PrivacySection renders the privacy group form.
func PrivacySection(p domain.PrivacySettings) gomponents.Node {
	return settingsForm("settings-privacy", "Privacy", "/dashboard/settings/privacy",
		selectRow("profileVisibility", "Profile visibility", string(p.ProfileVisibility), []selectOption{
			{string(domain.VisibilityPublic), "Public"},
			{string(domain.VisibilityConnections), "Connections only"},
			{string(domain.VisibilityPrivate), "Private"},
		}),
		checkboxRow("showEmail", "Show email on profile", p.ShowEmail),
		checkboxRow("showSkills", "Show skills on profile", p.ShowSkills),
		checkboxRow("allowMessages", "Allow direct messages", p.AllowMessages),
	)
}

// NotificationsSection renders the notifications group form.
func NotificationsSection(n domain.NotificationSettings) gomponents.Node {
	return settingsForm("settings-notifications", "Notifications", "/dashboard/settings/notifications",
		checkboxRow("emailNotifications", "Email notifications", n.EmailNotifications),
		checkboxRow("pushNotifications", "Push notifications", n.PushNotifications),
		checkboxRow("eventReminders", "Event reminders", n.EventReminders),
		checkboxRow("weeklyDigest", "Weekly digest", n.WeeklyDigest),
		checkboxRow("marketingEmails", "Marketing emails", n.MarketingEmails),
	)
}

// AppearanceSection renders the appearance group form.
func AppearanceSection(a domain.AppearanceSettings) gomponents.Node {
	return settingsForm("settings-appearance", "Appearance", "/dashboard/settings/appearance",
		selectRow("theme", "Theme", string(a.Theme), []selectOption{
			{string(domain.ThemeLight), "Light"},
			{string(domain.ThemeDark), "Dark"},
			{string(domain.ThemeSystem), "System"},
		}),
		selectRow("language", "Language", a.Language, []selectOption{
			{"en", "English"},
			{"es", "Español"},
			{"fr", "Français"},
			{"de", "Deutsch"},
			{"pt-BR", "Português (Brasil)"},
		}),
		selectRow("colorScheme", "Accent color", string(a.ColorScheme), []selectOption{
			{string(domain.ColorSchemeGreen), "Green"},
			{string(domain.ColorSchemeBlue), "Blue"},
			{string(domain.ColorSchemePurple), "Purple"},
			{string(domain.ColorSchemeOrange), "Orange"},
		}),
	)
}

// AccountSection renders the account group form.
func AccountSection(a domain.AccountSettings) gomponents.Node {
	return settingsForm("settings-account", "Account", "/dashboard/settings/account",
		checkboxRow("twoFactor", "Two-factor authentication", a.TwoFactor),
		checkboxRow("loginAlerts", "Login alerts", a.LoginAlerts),
	)
}

func settingsForm(id, title, action string, rows ...gomponents.Node) gomponents.Node {
	children := []gomponents.Node{
		html.ID(id),
		hx.Post(action),
		hx.Trigger("change"),
		hx.Target("#" + id),
		hx.Swap("outerHTML"),
		html.H3(html.Class("text-sm font-semibold text-gray-700 mb-3"), gomponents.Text(title)),
	}
	children = append(children, rows...)
	return html.Form(children...)
}

type selectOption struct {
	value string
	label string
}

func selectRow(name, label, current string, options []selectOption) gomponents.Node {
	return html.Div(
		html.Class("flex items-center justify-between py-2"),
		html.Label(html.Class("text-sm text-gray-600"), gomponents.Text(label)),
		html.Select(
			html.Name(name),
			html.Class("px-2 py-1 border border-gray-300 rounded-lg text-sm"),
			gomponents.Map(options, func(o selectOption) gomponents.Node {
				return html.Option(
					html.Value(o.value),
					gomponents.If(o.value == current, html.Selected()),
					gomponents.Text(o.label),
				)
			}),
		),
	)
}

func checkboxRow(name, label string, checked bool) gomponents.Node {
	return html.Div(
		html.Class("flex items-center justify-between py-2"),
		html.Label(html.Class("text-sm text-gray-600"), gomponents.Text(label)),
		html.Input(
			html.Type("checkbox"),
			html.Name(name),
			html.Value("true"),
			gomponents.If(checked, html.Checked()),
			html.Class("w-4 h-4 accent-emerald-600"),
		),
	)
}
