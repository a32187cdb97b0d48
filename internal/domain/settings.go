package domain

// Visibility controls who can see a profile.
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityConnections Visibility = "connections"
	VisibilityPrivate     Visibility = "private"
)

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ColorScheme is the accent color preference.
type ColorScheme string

const (
	ColorSchemeGreen  ColorScheme = "green"
	ColorSchemeBlue   ColorScheme = "blue"
	ColorSchemePurple ColorScheme = "purple"
	ColorSchemeOrange ColorScheme = "orange"
)

// PrivacySettings controls profile exposure.
type PrivacySettings struct {
	ProfileVisibility Visibility `json:"profileVisibility"`
	ShowEmail         bool       `json:"showEmail"`
	ShowSkills        bool       `json:"showSkills"`
	AllowMessages     bool       `json:"allowMessages"`
}

// NotificationSettings controls which notifications a member receives.
type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	EventReminders     bool `json:"eventReminders"`
	WeeklyDigest       bool `json:"weeklyDigest"`
	MarketingEmails    bool `json:"marketingEmails"`
}

// AppearanceSettings controls how the UI is rendered. Language is a BCP 47
// language tag (e.g. "en", "pt-BR").
type AppearanceSettings struct {
	Theme       Theme       `json:"theme"`
	Language    string      `json:"language"`
	ColorScheme ColorScheme `json:"colorScheme"`
}

// AccountSettings controls account-level security options. DataDownload is
// reserved for a future export feature and is never read today.
type AccountSettings struct {
	TwoFactor    bool `json:"twoFactor"`
	LoginAlerts  bool `json:"loginAlerts"`
	DataDownload bool `json:"dataDownload"`
}

// Settings groups all member preferences. Each group is patched as a whole
// through its own typed operation; there is no string-keyed access.
type Settings struct {
	Privacy       PrivacySettings      `json:"privacy"`
	Notifications NotificationSettings `json:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance"`
	Account       AccountSettings      `json:"account"`
}

// DefaultSettings returns the fixed defaults a new session starts with.
func DefaultSettings() Settings {
	return Settings{
		Privacy: PrivacySettings{
			ProfileVisibility: VisibilityPublic,
			ShowEmail:         false,
			ShowSkills:        true,
			AllowMessages:     true,
		},
		Notifications: NotificationSettings{
			EmailNotifications: true,
			PushNotifications:  true,
			EventReminders:     true,
			WeeklyDigest:       false,
			MarketingEmails:    false,
		},
		Appearance: AppearanceSettings{
			Theme:       ThemeLight,
			Language:    "en",
			ColorScheme: ColorSchemeGreen,
		},
		Account: AccountSettings{
			TwoFactor:   false,
			LoginAlerts: true,
		},
	}
}
