package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fcosta/horas/internal/db"
	"github.com/fcosta/horas/internal/domain"
)

// SQLiteCredentialRepo implements CredentialRepo using a SQLite database.
type SQLiteCredentialRepo struct {
	db db.DBTX
}

// NewSQLiteCredentialRepo creates a new SQLiteCredentialRepo.
func NewSQLiteCredentialRepo(conn db.DBTX) *SQLiteCredentialRepo {
	return &SQLiteCredentialRepo{db: conn}
}

// Set stores or replaces the password hash for an email.
func (r *SQLiteCredentialRepo) Set(ctx context.Context, email, passwordHash string) error {
	query := `INSERT INTO credentials (email, password_hash, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET password_hash = excluded.password_hash, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, email, passwordHash, nowUTC())
	if err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (r *SQLiteCredentialRepo) Get(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM credentials WHERE email = ?`, email).Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("credential for %s: %w", email, domain.ErrNotFound)
		}
		return "", fmt.Errorf("reading credential: %w", err)
	}
	return hash, nil
}

func (r *SQLiteCredentialRepo) Delete(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE email = ?`, email); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
