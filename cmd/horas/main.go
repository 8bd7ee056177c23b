package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fcosta/horas/internal/cli"
	"github.com/fcosta/horas/internal/db"
	"github.com/fcosta/horas/internal/kvstore"
	"github.com/fcosta/horas/internal/notify"
	"github.com/fcosta/horas/internal/records"
	"github.com/fcosta/horas/internal/repository"
	"github.com/fcosta/horas/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data directory: env var or default ~/.horas
	dataDir := os.Getenv("HORAS_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".horas")
	}

	dbPath := os.Getenv("HORAS_DB")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "horas.db")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Open the record storage and the account directory
	kv, err := kvstore.Open(filepath.Join(dataDir, "storage"))
	if err != nil {
		return fmt.Errorf("opening record storage: %w", err)
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening account directory: %w", err)
	}
	defer database.Close()

	// Wire repositories and seed the bootstrap admin
	accountRepo := repository.NewSQLiteAccountRepo(database)
	credRepo := repository.NewSQLiteCredentialRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	if err := service.EnsureBootstrapAdmin(context.Background(), accountRepo, credRepo); err != nil {
		return fmt.Errorf("seeding bootstrap admin: %w", err)
	}

	// Wire the notification transport with its log fallback
	notifier := notify.NewLoggedNotifier(notify.NewSMTPNotifier(notify.LoadConfig()), logger)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("HORAS_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Identity: service.NewIdentityService(accountRepo, credRepo, uow, kv, notifier, observer, logger),
		OpenRecords: func(userID string) *records.Store {
			store := records.NewStore(kv, userID, logger)
			store.Load()
			return store
		},
	}

	// Detect interactive terminal for prompt forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
