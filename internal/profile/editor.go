package profile

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// Validation messages surfaced next to form fields.
const (
	msgNameRequired        = "Name is required"
	msgNameTooShort        = "Name must be at least 2 characters"
	msgDesignationRequired = "Designation is required"
	msgInvalidEmail        = "Please enter a valid email address"
	msgInvalidLinkedIn     = "Please enter a valid LinkedIn URL"
	msgInvalidInstagram    = "Please enter a valid Instagram URL"
	msgInvalidGitHub       = "Please enter a valid GitHub URL"
)

// Verification holds the tri-state pattern-check result per platform:
// nil means unchecked, true passed, false failed.
type Verification map[domain.Platform]*bool

// Editor owns the editable draft of a profile together with its validation
// errors, per-platform verification state and the pending skill input. All
// of that is derived state: re-running Validate against the draft always
// reproduces the error map.
//
// An Editor is safe for concurrent use. Verification runs on its own
// goroutine and commits its result only when no newer edit superseded it,
// so a fast second edit can never be overwritten by a stale slow check.
type Editor struct {
	mu           sync.Mutex
	profile      domain.Profile
	draft        domain.Profile
	errors       map[Field]string
	verification Verification
	verifySeq    map[domain.Platform]uint64
	newSkill     string
	uploading    bool
	verifyDelay  time.Duration
}

// NewEditor creates an editor around a canonical profile. verifyDelay is the
// simulated latency of a social link check; tests shrink it to near zero.
func NewEditor(p domain.Profile, verifyDelay time.Duration) *Editor {
	e := &Editor{
		profile:     p.Clone(),
		verifyDelay: verifyDelay,
		verifySeq:   make(map[domain.Platform]uint64),
	}
	e.reset()
	return e
}

// reset seeds the draft from the canonical profile and clears all derived
// state. Callers must hold e.mu or have exclusive access.
func (e *Editor) reset() {
	e.draft = e.profile.Clone()
	e.errors = make(map[Field]string)
	e.verification = make(Verification)
	e.newSkill = ""
}

// Profile returns a copy of the canonical (saved) profile.
func (e *Editor) Profile() domain.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Clone()
}

// Draft returns a copy of the working draft.
func (e *Editor) Draft() domain.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Errors returns a copy of the current field error map.
func (e *Editor) Errors() map[Field]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[Field]string, len(e.errors))
	for k, v := range e.errors {
		out[k] = v
	}
	return out
}

// Verification returns a copy of the per-platform verification state.
// Platforms that have never been checked are present with a nil value.
func (e *Editor) Verification() Verification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(Verification, len(e.verification))
	for _, p := range domain.VerifiablePlatforms() {
		out[p] = nil
		if v := e.verification[p]; v != nil {
			result := *v
			out[p] = &result
		}
	}
	return out
}

// NewSkill returns the pending skill input text.
func (e *Editor) NewSkill() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newSkill
}

// SetNewSkill records the pending skill input text.
func (e *Editor) SetNewSkill(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newSkill = v
}

// Uploading reports whether an image upload is in flight.
func (e *Editor) Uploading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.uploading
}

// SetUploading flips the upload-in-progress flag.
func (e *Editor) SetUploading(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.uploading = v
}

// Begin discards any previous draft and starts a fresh edit from the
// canonical profile.
func (e *Editor) Begin() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Cancel throws the draft away, resetting it to the canonical profile. No
// validation runs.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Save validates the draft and, when it passes, promotes it to the
// canonical profile. On failure the draft and its errors are left in place
// so the form can re-render them.
func (e *Editor) Save() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.validate() {
		return false
	}
	e.profile = e.draft.Clone()
	return true
}

// Validate recomputes the error map from the draft, replacing it wholesale.
// It returns true iff the draft is saveable.
func (e *Editor) Validate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.validate()
}

func (e *Editor) validate() bool {
	errs := make(map[Field]string)

	name := strings.TrimSpace(e.draft.Name)
	switch {
	case name == "":
		errs[FieldName] = msgNameRequired
	case utf8.RuneCountInString(name) < 2:
		errs[FieldName] = msgNameTooShort
	}

	if strings.TrimSpace(e.draft.Designation) == "" {
		errs[FieldDesignation] = msgDesignationRequired
	}

	// Links are optional: only a non-empty value is checked against its
	// platform pattern.
	links := []struct {
		platform domain.Platform
		message  string
	}{
		{domain.PlatformEmail, msgInvalidEmail},
		{domain.PlatformLinkedIn, msgInvalidLinkedIn},
		{domain.PlatformInstagram, msgInvalidInstagram},
		{domain.PlatformGitHub, msgInvalidGitHub},
	}
	for _, l := range links {
		if v := e.draft.Social.Get(l.platform); v != "" && !ValidLink(l.platform, v) {
			errs[SocialField(l.platform)] = l.message
		}
	}

	e.errors = errs
	return len(errs) == 0
}

// SetField writes a single draft field. The value is stored exactly as
// given, with no trimming. Writing a social link resets that platform's
// verification and, when the value is non-blank, kicks off an asynchronous
// re-check. Any error previously recorded for the field is cleared
// optimistically; it is not re-validated until the next full Validate.
func (e *Editor) SetField(f Field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if platform, ok := f.Social(); ok {
		e.draft.Social.Set(platform, value)
		if platform != domain.PlatformEmail {
			e.verifySeq[platform]++
			e.verification[platform] = nil
			if strings.TrimSpace(value) != "" {
				go e.verify(platform, value, e.verifySeq[platform])
			}
		}
	} else {
		switch f {
		case FieldName:
			e.draft.Name = value
		case FieldDesignation:
			e.draft.Designation = value
		case FieldBio:
			e.draft.Bio = value
		case FieldImage:
			e.draft.ProfileImage = value
		}
	}

	delete(e.errors, f)
}

// AddSkill appends a skill to the draft. Blank input and case-sensitive
// exact duplicates are no-ops. On success the pending skill input is
// cleared. Returns whether the skill was added.
func (e *Editor) AddSkill(raw string) bool {
	skill := strings.TrimSpace(raw)
	if skill == "" {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.draft.Skills {
		if s == skill {
			return false
		}
	}
	e.draft.Skills = append(e.draft.Skills, skill)
	e.newSkill = ""
	return true
}

// RemoveSkill deletes the exact-match skill from the draft; absent skills
// are a no-op.
func (e *Editor) RemoveSkill(skill string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.draft.Skills {
		if s == skill {
			e.draft.Skills = append(e.draft.Skills[:i], e.draft.Skills[i+1:]...)
			return
		}
	}
}

// verify simulates the latency of a platform check, then commits the
// pattern-check result. Results are keyed to the edit that started them:
// if the field changed again while this check was sleeping, the stale
// result is discarded so the freshest edit always wins. A panic during the
// check collapses to a failed verification.
func (e *Editor) verify(platform domain.Platform, link string, seq uint64) {
	result := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				result = false
			}
		}()
		time.Sleep(e.verifyDelay)
		result = ValidLink(platform, link)
	}()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.verifySeq[platform] != seq {
		return
	}
	e.verification[platform] = &result
}
