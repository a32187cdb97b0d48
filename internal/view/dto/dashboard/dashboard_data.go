// Package dashboard holds the view models (DTOs) for the dashboard
// templates. They flatten editor state into simple values that are safe and
// easy to render.
package dashboard

import "github.com/grohubglobal/Dynamic-web-sub000/internal/domain"

// VerificationState is the renderable form of the tri-state check result.
type VerificationState string

const (
	VerificationUnknown VerificationState = "unknown"
	VerificationValid   VerificationState = "valid"
	VerificationInvalid VerificationState = "invalid"
)

// SocialLinkInput backs a single social link row of the edit form.
type SocialLinkInput struct {
	Platform     domain.Platform
	Label        string
	Placeholder  string
	Value        string
	Error        string
	Verification VerificationState
	// Verifiable is false for email, which is validated but never goes
	// through the simulated check.
	Verifiable bool
}

// EditFormData backs the edit-profile modal.
type EditFormData struct {
	Name             string
	NameError        string
	Designation      string
	DesignationError string
	Bio              string
	ProfileImage     string
	Uploading        bool
	Skills           []string
	NewSkill         string
	Social           []SocialLinkInput
}

// ShareData backs the share modal.
type ShareData struct {
	Text    string
	PageURL string
}

// Data backs the dashboard page as a whole.
type Data struct {
	Profile   domain.Profile
	Settings  domain.Settings
	ActiveTab string
}
