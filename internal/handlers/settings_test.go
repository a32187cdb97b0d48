package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/handlers"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
)

func newSettingsServer(t *testing.T) (*echo.Echo, *settings.Service, *spyPublisher) {
	t.Helper()

	svc := settings.NewService()
	publisher := &spyPublisher{}
	h := handlers.NewSettingsHandler(svc, publisher)

	e := newTestEcho()
	e.GET("/dashboard/settings", h.ModalGet)
	e.POST("/dashboard/settings/privacy", h.PrivacyPost)
	e.POST("/dashboard/settings/notifications", h.NotificationsPost)
	e.POST("/dashboard/settings/appearance", h.AppearancePost)
	e.POST("/dashboard/settings/account", h.AccountPost)
	return e, svc, publisher
}

func TestSettingsModal_RendersAllGroups(t *testing.T) {
	e, _, _ := newSettingsServer(t)

	rec := get(e, "/dashboard/settings")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Privacy")
	assert.Contains(t, body, "Notifications")
	assert.Contains(t, body, "Appearance")
	assert.Contains(t, body, "Account")
}

func TestPrivacyPost_PatchesOnlyItsGroup(t *testing.T) {
	e, svc, publisher := newSettingsServer(t)

	// Unchecked checkboxes are simply absent from the form body.
	rec := postForm(e, "/dashboard/settings/privacy", url.Values{
		"profileVisibility": {"private"},
		"showSkills":        {"true"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := svc.Get(testSessionID)
	assert.Equal(t, domain.VisibilityPrivate, got.Privacy.ProfileVisibility)
	assert.False(t, got.Privacy.ShowEmail)
	assert.True(t, got.Privacy.ShowSkills)
	assert.Equal(t, domain.DefaultSettings().Notifications, got.Notifications, "other groups are untouched")

	msgs := publisher.published()
	require.Len(t, msgs, 1)
	assert.Equal(t, pubsub.TopicSettingsChanged, msgs[0].Topic)
	assert.Contains(t, string(msgs[0].Payload), "privacy")
}

func TestNotificationsPost_RoundTripsFormNames(t *testing.T) {
	e, svc, publisher := newSettingsServer(t)

	rec := postForm(e, "/dashboard/settings/notifications", url.Values{
		"emailNotifications": {"true"},
		"marketingEmails":    {"true"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := svc.Get(testSessionID)
	assert.True(t, got.Notifications.EmailNotifications)
	assert.True(t, got.Notifications.MarketingEmails)
	assert.False(t, got.Notifications.PushNotifications)
	assert.False(t, got.Notifications.EventReminders)
	assert.False(t, got.Notifications.WeeklyDigest)

	msgs := publisher.published()
	require.Len(t, msgs, 1)
	assert.Contains(t, string(msgs[0].Payload), "notifications")
}

func TestAppearancePost_InvalidLanguageKeepsPrevious(t *testing.T) {
	e, svc, _ := newSettingsServer(t)

	rec := postForm(e, "/dashboard/settings/appearance", url.Values{
		"theme":       {"dark"},
		"language":    {"not-a-tag!"},
		"colorScheme": {"purple"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := svc.Get(testSessionID)
	assert.Equal(t, domain.ThemeDark, got.Appearance.Theme)
	assert.Equal(t, domain.DefaultSettings().Appearance.Language, got.Appearance.Language)
	assert.Equal(t, domain.ColorSchemePurple, got.Appearance.ColorScheme)
}

func TestAccountPost_TogglesFlags(t *testing.T) {
	e, svc, _ := newSettingsServer(t)

	rec := postForm(e, "/dashboard/settings/account", url.Values{
		"twoFactor": {"true"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := svc.Get(testSessionID)
	assert.True(t, got.Account.TwoFactor)
	assert.False(t, got.Account.LoginAlerts)
}
