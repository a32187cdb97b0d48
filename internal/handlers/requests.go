package handlers

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// UploadImageRequest defines the DTO for the profile image upload endpoint.
type UploadImageRequest struct {
	File *multipart.FileHeader `form:"file" validate:"required"`
}

// FieldEditRequest defines the DTO for posting a single edit-form field.
type FieldEditRequest struct {
	Field string `form:"field" validate:"required"`
	Value string `form:"value"`
}

// SkillRequest defines the DTO for adding or removing a skill. A blank
// skill is not a binding error: adding one is a quiet no-op.
type SkillRequest struct {
	Skill string `form:"skill"`
}

// PrivacyRequest carries the privacy settings form.
type PrivacyRequest struct {
	ProfileVisibility string `form:"profileVisibility"`
	ShowEmail         bool   `form:"showEmail"`
	ShowSkills        bool   `form:"showSkills"`
	AllowMessages     bool   `form:"allowMessages"`
}

// NotificationsRequest carries the notification settings form.
type NotificationsRequest struct {
	EmailNotifications bool `form:"emailNotifications"`
	PushNotifications  bool `form:"pushNotifications"`
	EventReminders     bool `form:"eventReminders"`
	WeeklyDigest       bool `form:"weeklyDigest"`
	MarketingEmails    bool `form:"marketingEmails"`
}

// AppearanceRequest carries the appearance settings form.
type AppearanceRequest struct {
	Theme       string `form:"theme"`
	Language    string `form:"language"`
	ColorScheme string `form:"colorScheme"`
}

// AccountRequest carries the account settings form.
type AccountRequest struct {
	TwoFactor   bool `form:"twoFactor"`
	LoginAlerts bool `form:"loginAlerts"`
}
