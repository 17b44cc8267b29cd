package models

import "time"

// Session is a server-side login session. UserID is nil for anonymous
// visitors whose session only carries a pending return-to target.
type Session struct {
	Base
	UserID    *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ReturnTo  string    `json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
