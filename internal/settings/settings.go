// Package settings holds per-session member preferences. Each settings
// group is patched through its own typed operation, so an unknown field is
// a compile error rather than a silent write into a string-keyed map.
package settings

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// Service owns the settings of every session. Like profiles, settings are
// transient: they are seeded with fixed defaults on first access and live
// only as long as the process.
type Service struct {
	mu         sync.Mutex
	bySessions map[string]domain.Settings
}

// NewService creates an empty settings registry.
func NewService() *Service {
	return &Service{bySessions: make(map[string]domain.Settings)}
}

// Get returns the settings for a session, seeding defaults on first use.
func (s *Service) Get(sessionID string) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID)
}

func (s *Service) get(sessionID string) domain.Settings {
	cur, ok := s.bySessions[sessionID]
	if !ok {
		cur = domain.DefaultSettings()
		s.bySessions[sessionID] = cur
	}
	return cur
}

// ApplyPrivacy overwrites the privacy group, leaving all others untouched.
func (s *Service) ApplyPrivacy(sessionID string, p domain.PrivacySettings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.get(sessionID)
	cur.Privacy = p
	s.bySessions[sessionID] = cur
	return cur
}

// ApplyNotifications overwrites the notifications group.
func (s *Service) ApplyNotifications(sessionID string, n domain.NotificationSettings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.get(sessionID)
	cur.Notifications = n
	s.bySessions[sessionID] = cur
	return cur
}

// ApplyAppearance overwrites the appearance group. The language must be a
// parseable BCP 47 tag; anything else keeps the previous language while the
// rest of the group is still applied.
func (s *Service) ApplyAppearance(sessionID string, a domain.AppearanceSettings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.get(sessionID)
	if _, err := language.Parse(a.Language); err != nil {
		a.Language = cur.Appearance.Language
	}
	cur.Appearance = a
	s.bySessions[sessionID] = cur
	return cur
}

// ApplyAccount overwrites the account group.
func (s *Service) ApplyAccount(sessionID string, a domain.AccountSettings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.get(sessionID)
	cur.Account = a
	s.bySessions[sessionID] = cur
	return cur
}
