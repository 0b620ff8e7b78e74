package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the currently authenticated account, if any.
// The zero value is the "no account" state. A Session is a plain value owned
// by the caller and passed into every itinerary operation.
type Session struct {
	ID        uuid.UUID
	AccountID int64
	Username  string
	StartedAt time.Time
}

// NewSession binds a fresh session to an authenticated account.
// ID only exists to correlate log lines for one login.
func NewSession(a Account) Session {
	return Session{
		ID:        uuid.New(),
		AccountID: a.ID,
		Username:  a.Username,
		StartedAt: time.Now().UTC(),
	}
}

// Active reports whether the session is bound to an account.
func (s Session) Active() bool {
	return s.AccountID != 0
}
