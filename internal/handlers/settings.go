package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/middleware"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/settings"
	"github.com/grohubglobal/Dynamic-web-sub000/web/src/templates/partials"
)

// SettingsHandler serves the settings modal and applies per-group patches.
type SettingsHandler struct {
	settings  *settings.Service
	publisher pubsub.Publisher
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *settings.Service, publisher pubsub.Publisher) *SettingsHandler {
	return &SettingsHandler{settings: settings, publisher: publisher}
}

// ModalGet opens the settings modal with the session's current settings.
func (h *SettingsHandler) ModalGet(c echo.Context) error {
	current := h.settings.Get(middleware.SessionIDFrom(c))
	return c.Render(http.StatusOK, "", partials.SettingsModal(current))
}

// PrivacyPost applies the privacy group and re-renders its section.
func (h *SettingsHandler) PrivacyPost(c echo.Context) error {
	var req PrivacyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	updated := h.settings.ApplyPrivacy(middleware.SessionIDFrom(c), domain.PrivacySettings{
		ProfileVisibility: domain.Visibility(req.ProfileVisibility),
		ShowEmail:         req.ShowEmail,
		ShowSkills:        req.ShowSkills,
		AllowMessages:     req.AllowMessages,
	})
	h.publishChanged(c, "privacy")
	return c.Render(http.StatusOK, "", partials.PrivacySection(updated.Privacy))
}

// NotificationsPost applies the notifications group and re-renders its
// section.
func (h *SettingsHandler) NotificationsPost(c echo.Context) error {
	var req NotificationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	updated := h.settings.ApplyNotifications(middleware.SessionIDFrom(c), domain.NotificationSettings{
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		EventReminders:     req.EventReminders,
		WeeklyDigest:       req.WeeklyDigest,
		MarketingEmails:    req.MarketingEmails,
	})
	h.publishChanged(c, "notifications")
	return c.Render(http.StatusOK, "", partials.NotificationsSection(updated.Notifications))
}

// AppearancePost applies the appearance group and re-renders its section.
func (h *SettingsHandler) AppearancePost(c echo.Context) error {
	var req AppearanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	updated := h.settings.ApplyAppearance(middleware.SessionIDFrom(c), domain.AppearanceSettings{
		Theme:       domain.Theme(req.Theme),
		Language:    req.Language,
		ColorScheme: domain.ColorScheme(req.ColorScheme),
	})
	h.publishChanged(c, "appearance")
	return c.Render(http.StatusOK, "", partials.AppearanceSection(updated.Appearance))
}

// AccountPost applies the account group and re-renders its section.
func (h *SettingsHandler) AccountPost(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	updated := h.settings.ApplyAccount(middleware.SessionIDFrom(c), domain.AccountSettings{
		TwoFactor:   req.TwoFactor,
		LoginAlerts: req.LoginAlerts,
	})
	h.publishChanged(c, "account")
	return c.Render(http.StatusOK, "", partials.AccountSection(updated.Account))
}

func (h *SettingsHandler) publishChanged(c echo.Context, group string) {
	logger := middleware.FromContext(c.Request().Context())
	payload, err := json.Marshal(pubsub.SettingsChangedEvent{Group: group})
	if err != nil {
		logger.Error("failed to encode settings.changed payload", "error", err)
		return
	}
	err = h.publisher.Publish(c.Request().Context(), pubsub.Message{
		Topic:     pubsub.TopicSettingsChanged,
		SessionID: middleware.SessionIDFrom(c),
		Payload:   payload,
	})
	if err != nil {
		logger.Error("failed to publish settings.changed", "error", err)
	}
}
