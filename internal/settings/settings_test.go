package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
)

func TestGet_SeedsDefaults(t *testing.T) {
	svc := settings.NewService()
	got := svc.Get("sid")
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestApply_TouchesOnlyItsGroup(t *testing.T) {
	svc := settings.NewService()
	defaults := domain.DefaultSettings()

	got := svc.ApplyPrivacy("sid", domain.PrivacySettings{
		ProfileVisibility: domain.VisibilityPrivate,
		ShowEmail:         true,
	})

	assert.Equal(t, domain.VisibilityPrivate, got.Privacy.ProfileVisibility)
	assert.True(t, got.Privacy.ShowEmail)
	assert.False(t, got.Privacy.ShowSkills, "fields of the patched group are overwritten as a whole")
	assert.Equal(t, defaults.Notifications, got.Notifications)
	assert.Equal(t, defaults.Appearance, got.Appearance)
	assert.Equal(t, defaults.Account, got.Account)
}

func TestApplyNotifications(t *testing.T) {
	svc := settings.NewService()
	got := svc.ApplyNotifications("sid", domain.NotificationSettings{WeeklyDigest: true})
	assert.True(t, got.Notifications.WeeklyDigest)
	assert.False(t, got.Notifications.EmailNotifications)
}

func TestApplyAppearance_LanguageValidation(t *testing.T) {
	svc := settings.NewService()

	got := svc.ApplyAppearance("sid", domain.AppearanceSettings{
		Theme:       domain.ThemeDark,
		Language:    "pt-BR",
		ColorScheme: domain.ColorSchemeBlue,
	})
	assert.Equal(t, "pt-BR", got.Appearance.Language)
	assert.Equal(t, domain.ThemeDark, got.Appearance.Theme)

	// A malformed tag keeps the previous language but still applies the
	// rest of the group.
	got = svc.ApplyAppearance("sid", domain.AppearanceSettings{
		Theme:       domain.ThemeSystem,
		Language:    "not a language !!",
		ColorScheme: domain.ColorSchemePurple,
	})
	assert.Equal(t, "pt-BR", got.Appearance.Language)
	assert.Equal(t, domain.ThemeSystem, got.Appearance.Theme)
	assert.Equal(t, domain.ColorSchemePurple, got.Appearance.ColorScheme)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := settings.NewService()
	svc.ApplyAccount("a", domain.AccountSettings{TwoFactor: true})
	assert.False(t, svc.Get("b").Account.TwoFactor)
}
