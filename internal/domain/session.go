package domain

// SessionState names the position of the current login session in its
// lifecycle.
type SessionState string

const (
	// SessionAnonymous means no account is logged in.
	SessionAnonymous SessionState = "anonymous"
	// SessionPendingPasswordChange means the account logged in with a
	// temporary credential and must change it before anything else.
	SessionPendingPasswordChange SessionState = "pending_password_change"
	// SessionActive means the account is fully authenticated.
	SessionActive SessionState = "active"
)

// Session is the currently authenticated account, if any. It is persisted
// across process restarts and rehydrated on startup.
type Session struct {
	Account       *Account
	Authenticated bool
}

// State derives the session lifecycle position from the account's
// first-login flag.
func (s *Session) State() SessionState {
	if s == nil || !s.Authenticated || s.Account == nil {
		return SessionAnonymous
	}
	if s.Account.IsFirstLogin {
		return SessionPendingPasswordChange
	}
	return SessionActive
}
