package cli

import (
	"fmt"
	"time"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/records"
	"github.com/spf13/pflag"
)

// requireActive returns the current account when the session is fully
// authenticated. A pending password change blocks everything except the
// passwd and logout commands.
func requireActive(app *App) (*domain.Account, error) {
	session := app.Identity.Session()
	switch session.State() {
	case domain.SessionAnonymous:
		return nil, fmt.Errorf("not signed in (run: horas login)")
	case domain.SessionPendingPasswordChange:
		return nil, fmt.Errorf("password change required before anything else (run: horas passwd)")
	}
	return session.Account, nil
}

// openOwnRecords opens the loaded record store for the signed-in account.
func openOwnRecords(app *App) (*records.Store, *domain.Account, error) {
	account, err := requireActive(app)
	if err != nil {
		return nil, nil, err
	}
	return app.OpenRecords(account.ID), account, nil
}

// parseDate parses a YYYY-MM-DD calendar date in local time.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseClockOn parses an HH:MM clock time and anchors it on the given date.
func parseClockOn(date time.Time, s string) (time.Time, error) {
	clock, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}

// addRangeFlags registers the shared --from/--to date-range flags.
func addRangeFlags(fs *pflag.FlagSet, from, to *string) {
	fs.StringVar(from, "from", "", "range start (YYYY-MM-DD)")
	fs.StringVar(to, "to", "", "range end (YYYY-MM-DD)")
}
