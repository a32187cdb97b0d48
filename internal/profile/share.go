package profile

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// ShareTarget tags where a profile is being shared to.
type ShareTarget string

const (
	ShareCopy     ShareTarget = "copy"
	ShareTwitter  ShareTarget = "twitter"
	ShareFacebook ShareTarget = "facebook"
	ShareLinkedIn ShareTarget = "linkedin"
)

// ParseShareTarget maps a request parameter to a known share target. The
// second return value is false for anything unrecognized; callers ignore
// those requests.
func ParseShareTarget(s string) (ShareTarget, bool) {
	switch ShareTarget(s) {
	case ShareCopy, ShareTwitter, ShareFacebook, ShareLinkedIn:
		return ShareTarget(s), true
	}
	return "", false
}

// ShareText renders the shareable text blob for a profile. Links appear in a
// fixed order (LinkedIn, GitHub, Instagram, Email); empty links are omitted
// entirely, and a trailing email line carries no trailing newline.
func ShareText(p domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Check out %s's profile on Grohub!\n\n%s\n\nConnect with me:\n", p.Name, p.Designation)
	if p.Social.LinkedIn != "" {
		b.WriteString("LinkedIn: " + p.Social.LinkedIn + "\n")
	}
	if p.Social.GitHub != "" {
		b.WriteString("GitHub: " + p.Social.GitHub + "\n")
	}
	if p.Social.Instagram != "" {
		b.WriteString("Instagram: " + p.Social.Instagram + "\n")
	}
	if p.Social.Email != "" {
		b.WriteString("Email: " + p.Social.Email)
	}
	return b.String()
}

// ShareURL builds the pre-filled share intent URL for a social target. The
// boolean is false for ShareCopy (which has no URL) and unknown targets.
func ShareURL(target ShareTarget, text, pageURL string) (string, bool) {
	switch target {
	case ShareTwitter:
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) + "&url=" + url.QueryEscape(pageURL), true
	case ShareFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(pageURL), true
	case ShareLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(pageURL), true
	}
	return "", false
}
