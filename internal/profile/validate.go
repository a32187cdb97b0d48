package profile

import (
	"regexp"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// Link patterns are compiled once at package initialization. They are
// deliberately case-sensitive on the scheme and host tokens.
var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	linkedInPattern  = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
	instagramPattern = regexp.MustCompile(`^https?://(www\.)?instagram\.com/[a-zA-Z0-9_.]+/?$`)
	gitHubPattern    = regexp.MustCompile(`^https?://(www\.)?github\.com/[a-zA-Z0-9-]+/?$`)
)

// ValidEmail reports whether s has the shape local@domain.tld with no
// embedded whitespace. The empty string is invalid.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidLinkedIn reports whether s is a LinkedIn profile URL.
func ValidLinkedIn(s string) bool {
	return linkedInPattern.MatchString(s)
}

// ValidInstagram reports whether s is an Instagram profile URL.
func ValidInstagram(s string) bool {
	return instagramPattern.MatchString(s)
}

// ValidGitHub reports whether s is a GitHub profile URL.
func ValidGitHub(s string) bool {
	return gitHubPattern.MatchString(s)
}

// ValidLink dispatches to the validator for the given platform. Unknown
// platforms are reported as invalid.
func ValidLink(p domain.Platform, s string) bool {
	switch p {
	case domain.PlatformEmail:
		return ValidEmail(s)
	case domain.PlatformLinkedIn:
		return ValidLinkedIn(s)
	case domain.PlatformInstagram:
		return ValidInstagram(s)
	case domain.PlatformGitHub:
		return ValidGitHub(s)
	}
	return false
}
