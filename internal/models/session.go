package models

import "time"

// Session is one issued login session. Sessions are explicit rows rather
// than client-held ambient state: sign-out revokes the row and the JWT
// carrying its ID stops being accepted.
type Session struct {
	ID        string     `json:"id" gorm:"primaryKey"` // uuid, also the JWT jti
	ProfileID uint       `json:"profile_id" gorm:"index"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Active reports whether the session can still authenticate requests.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
