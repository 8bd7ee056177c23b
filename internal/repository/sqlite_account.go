package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fcosta/horas/internal/db"
	"github.com/fcosta/horas/internal/domain"
)

// accountColumns is the canonical SELECT column list for accounts.
const accountColumns = `id, email, role, is_first_login, monthly_earnings, created_at`

// SQLiteAccountRepo implements AccountRepo using a SQLite database.
type SQLiteAccountRepo struct {
	db db.DBTX
}

// NewSQLiteAccountRepo creates a new SQLiteAccountRepo.
func NewSQLiteAccountRepo(conn db.DBTX) *SQLiteAccountRepo {
	return &SQLiteAccountRepo{db: conn}
}

func (r *SQLiteAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, email, role, is_first_login, monthly_earnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Email,
		string(a.Role),
		boolToInt(a.IsFirstLogin),
		a.MonthlyEarnings,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("account %s: %w", a.Email, domain.ErrConflict)
		}
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

func (r *SQLiteAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = ?`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

// ListStaff returns all non-admin accounts ordered by creation time.
func (r *SQLiteAccountRepo) ListStaff(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE role != 'admin' ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing staff accounts: %w", err)
	}
	defer rows.Close()
	return r.scanAccounts(rows)
}

func (r *SQLiteAccountRepo) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET email = ?, role = ?, is_first_login = ?, monthly_earnings = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Email,
		string(a.Role),
		boolToInt(a.IsFirstLogin),
		a.MonthlyEarnings,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteAccountRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanAccount scans a single account from a *sql.Row.
func (r *SQLiteAccountRepo) scanAccount(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	var firstLogin int
	var createdAtStr string

	err := row.Scan(&a.ID, &a.Email, &role, &firstLogin, &a.MonthlyEarnings, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("account: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning account: %w", err)
	}
	return r.populateAccount(&a, role, firstLogin, createdAtStr)
}

// scanAccounts scans multiple accounts from *sql.Rows.
func (r *SQLiteAccountRepo) scanAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for rows.Next() {
		var a domain.Account
		var role string
		var firstLogin int
		var createdAtStr string

		if err := rows.Scan(&a.ID, &a.Email, &role, &firstLogin, &a.MonthlyEarnings, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning account row: %w", err)
		}
		account, parseErr := r.populateAccount(&a, role, firstLogin, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteAccountRepo) populateAccount(a *domain.Account, role string, firstLogin int, createdAtStr string) (*domain.Account, error) {
	a.Role = domain.Role(role)
	a.IsFirstLogin = intToBool(firstLogin)
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing account created_at: %w", err)
	}
	a.CreatedAt = createdAt
	return a, nil
}
