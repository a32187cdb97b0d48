package domain

// Platform identifies one of the social channels that can be attached to a
// profile. Email is a platform for linking purposes but is never verified,
// only validated.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformGitHub    Platform = "github"
	PlatformEmail     Platform = "email"
)

// VerifiablePlatforms lists the platforms that go through the simulated
// verification flow. Email is deliberately absent.
func VerifiablePlatforms() []Platform {
	return []Platform{PlatformLinkedIn, PlatformInstagram, PlatformGitHub}
}

// SocialLinks holds the outbound links of a profile. An empty string means
// the link is unset; there is no separate presence flag.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
	GitHub    string `json:"github"`
}

// Get returns the link for the given platform.
func (s SocialLinks) Get(p Platform) string {
	switch p {
	case PlatformLinkedIn:
		return s.LinkedIn
	case PlatformInstagram:
		return s.Instagram
	case PlatformEmail:
		return s.Email
	case PlatformGitHub:
		return s.GitHub
	}
	return ""
}

// Set stores the link for the given platform. Unknown platforms are ignored.
func (s *SocialLinks) Set(p Platform, value string) {
	switch p {
	case PlatformLinkedIn:
		s.LinkedIn = value
	case PlatformInstagram:
		s.Instagram = value
	case PlatformEmail:
		s.Email = value
	case PlatformGitHub:
		s.GitHub = value
	}
}

// Profile is the canonical, saved representation of a member's displayed
// information. It lives in memory for the lifetime of a session and is only
// replaced wholesale when an edit is saved.
type Profile struct {
	Name         string      `json:"name"`
	Designation  string      `json:"designation"`
	ProfileImage string      `json:"profileImage"`
	Bio          string      `json:"bio"`
	Skills       []string    `json:"skills"`
	Social       SocialLinks `json:"socialLinks"`
}

// Clone returns a deep copy of the profile. Skills are copied so the draft
// and the canonical profile never share a backing array.
func (p Profile) Clone() Profile {
	out := p
	out.Skills = make([]string, len(p.Skills))
	copy(out.Skills, p.Skills)
	return out
}

// DefaultProfile returns the fixed profile a new session starts with.
func DefaultProfile() Profile {
	return Profile{
		Name:        "Alex Morgan",
		Designation: "Community Manager",
		Bio:         "Building communities around shared interests and helping people grow together.",
		Skills:      []string{"Community Building", "Event Planning", "Public Speaking"},
		Social: SocialLinks{
			LinkedIn: "https://www.linkedin.com/in/alex-morgan",
			Email:    "alex@grohub.io",
		},
	}
}
