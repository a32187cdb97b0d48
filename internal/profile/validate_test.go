package profile_test

import (
	"testing"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
	"github.com/grohubglobal/Dynamic-web-sub000/internal/profile"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"jane.doe+tag@example.org", true},
		{"a@b", false},
		{"", false},
		{"a b@c.de", false},
		{"a@b c.de", false},
		{"@example.com", false},
		{"user@domain.", false},
	}
	for _, tt := range tests {
		if got := profile.ValidEmail(tt.input); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidLinkedIn(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.linkedin.com/in/jane-doe", true},
		{"http://linkedin.com/in/jane-doe/", true},
		{"https://linkedin.com/in/", false},
		{"https://linkedin.com/jane-doe", false},
		{"https://www.linkedin.com/in/jane_doe", false},
		{"HTTPS://LINKEDIN.COM/IN/JANE", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := profile.ValidLinkedIn(tt.input); got != tt.want {
			t.Errorf("ValidLinkedIn(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidInstagram(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.instagram.com/jane.doe", true},
		{"http://instagram.com/jane_doe/", true},
		{"https://instagram.com/jane-doe", false},
		{"https://instagram.com/", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := profile.ValidInstagram(tt.input); got != tt.want {
			t.Errorf("ValidInstagram(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidGitHub(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://github.com/jane-doe", true},
		{"http://www.github.com/jane/", true},
		{"https://github.com/jane.doe", false},
		{"https://github.com/", false},
		{"https://gitlab.com/jane", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := profile.ValidGitHub(tt.input); got != tt.want {
			t.Errorf("ValidGitHub(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidLinkDispatch(t *testing.T) {
	if !profile.ValidLink(domain.PlatformEmail, "a@b.co") {
		t.Error("expected email dispatch to pass")
	}
	if !profile.ValidLink(domain.PlatformGitHub, "https://github.com/jane") {
		t.Error("expected github dispatch to pass")
	}
	if profile.ValidLink(domain.Platform("myspace"), "anything") {
		t.Error("unknown platform must be invalid")
	}
}
