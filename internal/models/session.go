package models

import "time"

// Session binds an opaque token to the authenticated administrator. Sessions
// live in process memory only; a restart invalidates all of them.
type Session struct {
	User      string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
