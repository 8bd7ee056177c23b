package repository

import (
	"context"

	"github.com/fcosta/horas/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListStaff(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id string) error
}

// CredentialRepo stores one password hash per account email. Hashes go in,
// hashes come out; verification happens in the security package.
type CredentialRepo interface {
	Set(ctx context.Context, email, passwordHash string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}
