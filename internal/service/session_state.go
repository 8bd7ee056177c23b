package service

import (
	"errors"
	"log/slog"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/kvstore"
)

// sessionKey is the fixed key the current session is persisted under.
// Absence means anonymous.
const sessionKey = "horas-auth"

// storedAccount is the persisted JSON form of an account inside a session
// entry.
type storedAccount struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	IsFirstLogin    bool    `json:"isFirstLogin"`
	MonthlyEarnings float64 `json:"monthlyEarnings,omitempty"`
}

type storedSession struct {
	Account *storedAccount `json:"account"`
}

func encodeSession(s *domain.Session) storedSession {
	if s == nil || s.Account == nil {
		return storedSession{}
	}
	return storedSession{Account: &storedAccount{
		ID:              s.Account.ID,
		Email:           s.Account.Email,
		Role:            string(s.Account.Role),
		IsFirstLogin:    s.Account.IsFirstLogin,
		MonthlyEarnings: s.Account.MonthlyEarnings,
	}}
}

func decodeSession(s storedSession) *domain.Session {
	if s.Account == nil {
		return &domain.Session{}
	}
	return &domain.Session{
		Account: &domain.Account{
			ID:              s.Account.ID,
			Email:           s.Account.Email,
			Role:            domain.Role(s.Account.Role),
			IsFirstLogin:    s.Account.IsFirstLogin,
			MonthlyEarnings: s.Account.MonthlyEarnings,
		},
		Authenticated: true,
	}
}

// restoreSession rehydrates the persisted session, if any. Unreadable
// entries are discarded rather than propagated.
func restoreSession(kv *kvstore.Store, log *slog.Logger) *domain.Session {
	var stored storedSession
	if err := kv.Get(sessionKey, &stored); err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Warn("discarding unreadable persisted session", "error", err)
		}
		return &domain.Session{}
	}
	return decodeSession(stored)
}
