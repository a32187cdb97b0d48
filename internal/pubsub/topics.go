package pubsub

// Topics carried on the in-process bus.
const (
	// TopicProfileSaved fires when an edited profile is promoted to the
	// canonical one. Payload: ProfileSavedEvent.
	TopicProfileSaved = "profile.saved"

	// TopicSettingsChanged fires when a settings group is patched.
	// Payload: SettingsChangedEvent.
	TopicSettingsChanged = "settings.changed"

	// TopicAssetChanged fires in development when a static asset on disk
	// changes; live-reload clients listen for it. Payload: the file path.
	TopicAssetChanged = "assets.changed"
)

// ProfileSavedEvent is the payload published on TopicProfileSaved.
type ProfileSavedEvent struct {
	Name        string   `json:"name"`
	Designation string   `json:"designation"`
	Skills      []string `json:"skills"`
}

// SettingsChangedEvent is the payload published on TopicSettingsChanged.
type SettingsChangedEvent struct {
	Group string `json:"group"`
}
