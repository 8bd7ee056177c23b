package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fcosta/horas/internal/records"
	"github.com/fcosta/horas/internal/repository"
	"github.com/fcosta/horas/internal/service"
	"github.com/fcosta/horas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a full non-interactive App over in-memory SQLite and a
// temp-dir record store.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	accounts := repository.NewSQLiteAccountRepo(database)
	creds := repository.NewSQLiteCredentialRepo(database)
	kv := testutil.NewTestKV(t)

	require.NoError(t, service.EnsureBootstrapAdmin(context.Background(), accounts, creds))

	identity := service.NewIdentityService(accounts, creds, testutil.NewTestUoW(database), kv, nil, nil, nil)
	return &App{
		Identity: identity,
		OpenRecords: func(userID string) *records.Store {
			store := records.NewStore(kv, userID, nil)
			store.Load()
			return store
		},
		IsInteractive: func() bool { return false },
	}
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func login(t *testing.T, app *App) {
	t.Helper()
	_, err := runCmd(t, app, "login", "--email", service.BootstrapAdminEmail, "--password", "admin123")
	require.NoError(t, err)
}

func TestLoginCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCmd(t, app, "login", "--email", service.BootstrapAdminEmail, "--password", "admin123")
	require.NoError(t, err)
	assert.Contains(t, out, "SIGNED IN")
	assert.Contains(t, out, service.BootstrapAdminEmail)
}

func TestLoginCmd_MissingFlags(t *testing.T) {
	app := newTestApp(t)

	_, err := runCmd(t, app, "login", "--email", service.BootstrapAdminEmail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password")
}

func TestStatusCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "SIGNED OUT")

	login(t, app)
	out, err = runCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "SIGNED IN")
	assert.Contains(t, out, "admin")
}

func TestLogoutCmd(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	out, err := runCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "SIGNED OUT")

	_, err = runCmd(t, app, "log", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestLogCmd_AddListEditRemove(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	out, err := runCmd(t, app, "log", "add", "--date", "2024-06-10", "--start", "09:00", "--end", "11:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 10/06/2024: 2.50h, 30,00 €")

	out, err = runCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "10/06/2024")
	assert.Contains(t, out, "Total hours:")

	id := app.OpenRecords(service.BootstrapAdminID).WorkSessions()[0].ID

	out, err = runCmd(t, app, "log", "edit", id[:8], "--end", "13:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 10/06/2024: 4.00h, 48,00 €")

	out, err = runCmd(t, app, "log", "rm", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted session on 10/06/2024.")

	out, err = runCmd(t, app, "log", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No work sessions logged.")
}

func TestLogAddCmd_RejectsBackwardsRange(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, err := runCmd(t, app, "log", "add", "--date", "2024-06-10", "--start", "11:30", "--end", "09:00")
	require.Error(t, err)
}

func TestTrialCmd(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	out, err := runCmd(t, app, "trial", "add",
		"--date", "2024-06-12", "--time", "15:00", "--patient", "Maria", "--closed")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded trial visit for Maria.")

	out, err = runCmd(t, app, "trial", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Maria")
	assert.Contains(t, out, "yes")
}

func TestReportCmd(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, err := runCmd(t, app, "log", "add", "--date", "2024-06-10", "--start", "09:00", "--end", "11:30")
	require.NoError(t, err)

	out, err := runCmd(t, app, "report", "--from", "2024-06-01", "--to", "2024-06-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Hours Report")
	assert.Contains(t, out, "Period: 01/06/2024 - 30/06/2024")
	assert.Contains(t, out, "page 1 of 1")
}

func TestReportCmd_WritesFile(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	path := filepath.Join(t.TempDir(), "june.txt")
	out, err := runCmd(t, app, "report", "--from", "2024-06-01", "--to", "2024-06-30", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Hours Report")
}

func TestReportCmd_RequiresRange(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, err := runCmd(t, app, "report", "--from", "2024-06-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--to")
}

func TestAdminAccountsCmd(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	out, err := runCmd(t, app, "admin", "accounts", "create", "joana@formula.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Created account")

	out, err = runCmd(t, app, "admin", "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "joana@formula.com")

	id := strings.TrimSpace(accountID(t, app, "joana@formula.com"))
	out, err = runCmd(t, app, "admin", "accounts", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Account deleted.")

	out, err = runCmd(t, app, "admin", "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No staff accounts.")
}

func accountID(t *testing.T, app *App, email string) string {
	t.Helper()
	accounts, err := app.Identity.ListAccounts(context.Background())
	require.NoError(t, err)
	for _, a := range accounts {
		if a.Email == email {
			return a.ID
		}
	}
	t.Fatalf("no account with email %s", email)
	return ""
}

func TestAdminEarningsCmd(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	_, err := runCmd(t, app, "log", "add", "--date", "2024-06-10", "--start", "09:00", "--end", "11:30")
	require.NoError(t, err)

	out, err := runCmd(t, app, "admin", "earnings", service.BootstrapAdminID)
	require.NoError(t, err)
	assert.Contains(t, out, "This month:")
	assert.Contains(t, out, "10/06/2024")
}
