package profile

import (
	"fmt"
	"strings"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

type fieldKind int

const (
	fieldName fieldKind = iota
	fieldDesignation
	fieldBio
	fieldImage
	fieldSocial
)

// Field identifies an editable slot of the profile form. It is a small
// tagged union rather than a string key, so an unknown field name is a
// parse error instead of a silent no-op write.
type Field struct {
	kind     fieldKind
	platform domain.Platform
}

var (
	FieldName        = Field{kind: fieldName}
	FieldDesignation = Field{kind: fieldDesignation}
	FieldBio         = Field{kind: fieldBio}
	FieldImage       = Field{kind: fieldImage}
)

// SocialField returns the field identifier for a platform link.
func SocialField(p domain.Platform) Field {
	return Field{kind: fieldSocial, platform: p}
}

// Social returns the platform for a social field, or false for any other
// field kind.
func (f Field) Social() (domain.Platform, bool) {
	if f.kind == fieldSocial {
		return f.platform, true
	}
	return "", false
}

// String returns the form name of the field. Social fields use the bare
// platform name, which is also the key convention for the error map.
func (f Field) String() string {
	switch f.kind {
	case fieldName:
		return "name"
	case fieldDesignation:
		return "designation"
	case fieldBio:
		return "bio"
	case fieldImage:
		return "profileImage"
	case fieldSocial:
		return string(f.platform)
	}
	return "unknown"
}

// ParseField resolves a form field name to a Field. Social fields arrive as
// "social.<platform>".
func ParseField(name string) (Field, error) {
	if platform, ok := strings.CutPrefix(name, "social."); ok {
		switch p := domain.Platform(platform); p {
		case domain.PlatformLinkedIn, domain.PlatformInstagram, domain.PlatformEmail, domain.PlatformGitHub:
			return SocialField(p), nil
		}
		return Field{}, fmt.Errorf("unknown social platform %q", platform)
	}
	switch name {
	case "name":
		return FieldName, nil
	case "designation":
		return FieldDesignation, nil
	case "bio":
		return FieldBio, nil
	case "profileImage":
		return FieldImage, nil
	}
	return Field{}, fmt.Errorf("unknown form field %q", name)
}
