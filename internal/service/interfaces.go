package service

import (
	"context"

	"github.com/fcosta/horas/internal/domain"
)

// IdentityService owns the current login session and the account
// directory. Account-management operations require the admin role;
// per-account reads are allowed for admins and for the owning account.
type IdentityService interface {
	// Login authenticates an email/password pair and persists the
	// resulting session. The returned session is pending a password
	// change when the account still carries its first-login flag.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Logout clears the session and its persisted entry. Always succeeds.
	Logout(ctx context.Context)
	// Session returns the current session; never nil.
	Session() *domain.Session
	// UpdateCredential replaces the authenticated account's password and
	// clears its first-login flag.
	UpdateCredential(ctx context.Context, newPassword string) error

	CreateAccount(ctx context.Context, email string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)

	WorkSessionsFor(ctx context.Context, accountID string) ([]domain.WorkSession, error)
	ComputeMonthlyEarnings(ctx context.Context, accountID string) (float64, error)
}
