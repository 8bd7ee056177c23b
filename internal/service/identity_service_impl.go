package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fcosta/horas/internal/db"
	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/kvstore"
	"github.com/fcosta/horas/internal/notify"
	"github.com/fcosta/horas/internal/records"
	"github.com/fcosta/horas/internal/repository"
	"github.com/fcosta/horas/internal/security"
	"github.com/google/uuid"
)

// Bootstrap admin identity. Exactly one admin account exists; it is seeded
// on first start and can never be deleted.
const (
	BootstrapAdminID       = "1"
	BootstrapAdminEmail    = "admin@formula.com"
	bootstrapAdminPassword = "admin123"
)

const minPasswordLen = 6

type identityService struct {
	accounts repository.AccountRepo
	creds    repository.CredentialRepo
	uow      db.UnitOfWork
	kv       *kvstore.Store
	notifier notify.Notifier
	obs      UseCaseObserver
	log      *slog.Logger

	session *domain.Session
	now     func() time.Time
}

// NewIdentityService wires the identity service and rehydrates any
// persisted session.
func NewIdentityService(
	accounts repository.AccountRepo,
	creds repository.CredentialRepo,
	uow db.UnitOfWork,
	kv *kvstore.Store,
	notifier notify.Notifier,
	obs UseCaseObserver,
	log *slog.Logger,
) IdentityService {
	if log == nil {
		log = slog.Default()
	}
	if obs == nil {
		obs = NoopUseCaseObserver{}
	}
	return &identityService{
		accounts: accounts,
		creds:    creds,
		uow:      uow,
		kv:       kv,
		notifier: notifier,
		obs:      obs,
		log:      log,
		session:  restoreSession(kv, log),
		now:      time.Now,
	}
}

// EnsureBootstrapAdmin seeds the admin account and its credential if the
// directory does not have them yet.
func EnsureBootstrapAdmin(ctx context.Context, accounts repository.AccountRepo, creds repository.CredentialRepo) error {
	if _, err := accounts.GetByID(ctx, BootstrapAdminID); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := security.HashPassword(bootstrapAdminPassword)
	if err != nil {
		return err
	}
	admin := &domain.Account{
		ID:           BootstrapAdminID,
		Email:        BootstrapAdminEmail,
		Role:         domain.RoleAdmin,
		IsFirstLogin: false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return err
	}
	return creds.Set(ctx, admin.Email, hash)
}

func (s *identityService) Session() *domain.Session {
	return s.session
}

func (s *identityService) Login(ctx context.Context, email, password string) (sess *domain.Session, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "login", start, err, nil) }()

	email = strings.TrimSpace(strings.ToLower(email))

	account, lookupErr := s.accounts.GetByEmail(ctx, email)
	if lookupErr != nil {
		if errors.Is(lookupErr, domain.ErrNotFound) {
			return nil, domain.ErrAuthentication
		}
		return nil, lookupErr
	}
	hash, credErr := s.creds.Get(ctx, email)
	if credErr != nil {
		if errors.Is(credErr, domain.ErrNotFound) {
			return nil, domain.ErrAuthentication
		}
		return nil, credErr
	}
	ok, verifyErr := security.VerifyPassword(password, hash)
	if verifyErr != nil || !ok {
		return nil, domain.ErrAuthentication
	}

	s.session = &domain.Session{Account: account, Authenticated: true}
	s.persistSession()
	return s.session, nil
}

func (s *identityService) Logout(ctx context.Context) {
	s.session = &domain.Session{}
	if err := s.kv.Delete(sessionKey); err != nil {
		s.log.Error("clearing persisted session failed", "error", err)
	}
}

func (s *identityService) UpdateCredential(ctx context.Context, newPassword string) (err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "update_credential", start, err, nil) }()

	if s.session.State() == domain.SessionAnonymous {
		return domain.ErrAuthentication
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, domain.ErrValidation)
	}

	account := s.session.Account
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	wasFirstLogin := account.IsFirstLogin
	account.IsFirstLogin = false
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCredentialRepo(tx).Set(ctx, account.Email, hash); err != nil {
			return err
		}
		if wasFirstLogin {
			return repository.NewSQLiteAccountRepo(tx).Update(ctx, account)
		}
		return nil
	})
	if err != nil {
		account.IsFirstLogin = wasFirstLogin
		return err
	}

	s.persistSession()
	return nil
}

func (s *identityService) CreateAccount(ctx context.Context, email string) (account *domain.Account, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "create_account", start, err, map[string]any{"email": email}) }()

	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required: %w", domain.ErrValidation)
	}

	tempPassword, err := security.GenerateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := security.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	account = &domain.Account{
		ID:           uuid.New().String(),
		Email:        email,
		Role:         domain.RoleStaff,
		IsFirstLogin: true,
		CreatedAt:    s.now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteAccountRepo(tx).Create(ctx, account); err != nil {
			return err
		}
		return repository.NewSQLiteCredentialRepo(tx).Set(ctx, email, hash)
	})
	if err != nil {
		return nil, err
	}

	// Delivery is best-effort; the wrapped notifier logs failures and the
	// account stays created either way.
	if s.notifier != nil {
		_ = s.notifier.Send(notify.RenderWelcome(email, tempPassword))
	}
	return account, nil
}

func (s *identityService) DeleteAccount(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "delete_account", start, err, map[string]any{"account_id": id}) }()

	if err := s.requireAdmin(); err != nil {
		return err
	}
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.IsAdmin() {
		return fmt.Errorf("admin accounts cannot be deleted: %w", domain.ErrAuthorization)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCredentialRepo(tx).Delete(ctx, account.Email); err != nil {
			return err
		}
		return repository.NewSQLiteAccountRepo(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	// Cascade: the account's logged history goes with it.
	if err := records.DeleteAllFor(s.kv, id); err != nil {
		s.log.Error("deleting account records failed", "account_id", id, "error", err)
	}
	return nil
}

func (s *identityService) ListAccounts(ctx context.Context) (accounts []*domain.Account, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "list_accounts", start, err, nil) }()

	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.accounts.ListStaff(ctx)
}

func (s *identityService) WorkSessionsFor(ctx context.Context, accountID string) ([]domain.WorkSession, error) {
	if err := s.requireAdminOrSelf(accountID); err != nil {
		return nil, err
	}
	return records.SessionsFor(s.kv, accountID, s.log), nil
}

// ComputeMonthlyEarnings sums the earnings of the account's work sessions
// dated within the current calendar month, boundaries inclusive in local
// time, and refreshes the account's cached aggregate.
func (s *identityService) ComputeMonthlyEarnings(ctx context.Context, accountID string) (total float64, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.obs, "monthly_earnings", start, err, map[string]any{"account_id": accountID}) }()

	if err := s.requireAdminOrSelf(accountID); err != nil {
		return 0, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)

	for _, sess := range records.SessionsFor(s.kv, accountID, s.log) {
		if sess.Date.Before(monthStart) || sess.Date.After(monthEnd) {
			continue
		}
		total += sess.Earnings
	}

	account, lookupErr := s.accounts.GetByID(ctx, accountID)
	if lookupErr == nil {
		account.MonthlyEarnings = total
		if updateErr := s.accounts.Update(ctx, account); updateErr != nil {
			s.log.Warn("caching monthly earnings failed", "account_id", accountID, "error", updateErr)
		}
	}
	return total, nil
}

func (s *identityService) requireAdmin() error {
	if s.session.State() == domain.SessionAnonymous {
		return domain.ErrAuthentication
	}
	if !s.session.Account.IsAdmin() {
		return domain.ErrAuthorization
	}
	return nil
}

func (s *identityService) requireAdminOrSelf(accountID string) error {
	if s.session.State() == domain.SessionAnonymous {
		return domain.ErrAuthentication
	}
	if !s.session.Account.IsAdmin() && s.session.Account.ID != accountID {
		return domain.ErrAuthorization
	}
	return nil
}

// persistSession mirrors the session to storage. A write failure is logged
// and the in-memory session stands.
func (s *identityService) persistSession() {
	if err := s.kv.Set(sessionKey, encodeSession(s.session)); err != nil {
		s.log.Error("persisting session failed", "error", fmt.Errorf("%v: %w", err, domain.ErrPersistence))
	}
}
