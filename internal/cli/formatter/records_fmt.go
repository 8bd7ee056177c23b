package formatter

import (
	"fmt"
	"strings"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/timeutil"
)

// SessionsTable renders logged work sessions with a totals line.
func SessionsTable(sessions []domain.WorkSession) string {
	if len(sessions) == 0 {
		return Dim("No work sessions logged.")
	}

	rows := make([][]string, 0, len(sessions))
	var totalHours, totalEarnings float64
	for _, s := range sessions {
		totalHours += s.Hours
		totalEarnings += s.Earnings
		date := timeutil.FormatDate(s.Date)
		if timeutil.IsHoliday(s.Date) {
			date = StyleYellow.Render(date + " (holiday)")
		}
		rows = append(rows, []string{
			shortID(s.ID),
			date,
			timeutil.FormatTime(s.StartTime),
			timeutil.FormatTime(s.EndTime),
			fmt.Sprintf("%.2f", s.Hours),
			StyleGreen.Render(timeutil.FormatCurrency(s.Earnings)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(
		[]string{"ID", "DATE", "START", "END", "HOURS", "EARNINGS"},
		rows,
	))
	fmt.Fprintf(&b, "\n%s %s  %s %s\n",
		Bold("Total hours:"), fmt.Sprintf("%.2f", domain.RoundHours(totalHours)),
		Bold("Total earnings:"), StyleGreen.Render(timeutil.FormatCurrency(totalEarnings)),
	)
	return b.String()
}

// VisitsTable renders trial visits with their conversion flag.
func VisitsTable(visits []domain.TrialVisit) string {
	if len(visits) == 0 {
		return Dim("No trial visits recorded.")
	}

	rows := make([][]string, 0, len(visits))
	for _, v := range visits {
		converted := StyleDim.Render("no")
		if v.ClosedPackage {
			converted = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			shortID(v.ID),
			timeutil.FormatDate(v.Date),
			timeutil.FormatTime(v.Time),
			v.PatientName,
			converted,
		})
	}
	return RenderTable([]string{"ID", "DATE", "TIME", "PATIENT", "PACKAGE"}, rows)
}

// AccountsTable renders the staff account directory.
func AccountsTable(accounts []*domain.Account) string {
	if len(accounts) == 0 {
		return Dim("No staff accounts.")
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		first := StyleDim.Render("no")
		if a.IsFirstLogin {
			first = StyleYellow.Render("yes")
		}
		rows = append(rows, []string{
			a.ID,
			a.Email,
			string(a.Role),
			first,
			timeutil.FormatCurrency(a.MonthlyEarnings),
		})
	}
	return RenderTable([]string{"ID", "EMAIL", "ROLE", "FIRST LOGIN", "MONTHLY EARNINGS"}, rows)
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
