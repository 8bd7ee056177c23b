// Package report builds the paginated hours report: logged work sessions,
// trial visits, and summary totals over a date range.
package report

import (
	"fmt"
	"time"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/timeutil"
)

// linesPerPage is the fixed page height of the rendered document.
const linesPerPage = 40

// Page is one page of rendered report lines.
type Page struct {
	Number int
	Lines  []string
}

// Document is a rendered, paginated report.
type Document struct {
	Title string
	Pages []Page
}

// Build renders the report for sessions and visits whose dates fall within
// [from, to], day-granular and inclusive on both ends. The range must be
// valid.
func Build(sessions []domain.WorkSession, visits []domain.TrialVisit, from, to time.Time) (*Document, error) {
	if !timeutil.IsValidDate(from) || !timeutil.IsValidDate(to) {
		return nil, fmt.Errorf("report range is required: %w", domain.ErrValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("report range end before start: %w", domain.ErrValidation)
	}

	var lines []string
	lines = append(lines,
		"Hours Report",
		fmt.Sprintf("Period: %s - %s", timeutil.FormatDate(from), timeutil.FormatDate(to)),
		"",
		"Worked Hours",
	)

	var totalHours float64
	for _, s := range sessions {
		if !inRange(s.Date, from, to) {
			continue
		}
		totalHours += s.Hours
		lines = append(lines, fmt.Sprintf("%s - %s to %s - %.2fh",
			timeutil.FormatDate(s.Date),
			timeutil.FormatTime(s.StartTime),
			timeutil.FormatTime(s.EndTime),
			s.Hours,
		))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Total hours: %.2f", domain.RoundHours(totalHours)),
		fmt.Sprintf("Period earnings: %s", timeutil.FormatCurrency(EarningsForPeriod(sessions, from, to))),
	)

	var visitLines []string
	for _, v := range visits {
		if !inRange(v.Date, from, to) {
			continue
		}
		converted := "no"
		if v.ClosedPackage {
			converted = "yes"
		}
		visitLines = append(visitLines, fmt.Sprintf("%s - %s - %s - package: %s",
			timeutil.FormatDate(v.Date),
			timeutil.FormatTime(v.Time),
			v.PatientName,
			converted,
		))
	}
	if len(visitLines) > 0 {
		lines = append(lines, "", "Trial Visits")
		lines = append(lines, visitLines...)
	}

	return &Document{
		Title: fmt.Sprintf("report-%s-%s", timeutil.FormatDate(from), timeutil.FormatDate(to)),
		Pages: paginate(lines),
	}, nil
}

// EarningsForPeriod sums the earnings of sessions dated within [from, to],
// comparing at day granularity. Invalid ranges yield 0.
func EarningsForPeriod(sessions []domain.WorkSession, from, to time.Time) float64 {
	if !timeutil.IsValidDate(from) || !timeutil.IsValidDate(to) {
		return 0
	}
	var total float64
	for _, s := range sessions {
		if inRange(s.Date, from, to) {
			total += s.Earnings
		}
	}
	return total
}

// inRange compares calendar dates only, so a session on the last day of
// the range counts regardless of its time of day.
func inRange(d, from, to time.Time) bool {
	day := dayOf(d)
	return !day.Before(dayOf(from)) && !day.After(dayOf(to))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func paginate(lines []string) []Page {
	var pages []Page
	for start := 0; start < len(lines); start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, Page{Number: len(pages) + 1, Lines: lines[start:end]})
	}
	if pages == nil {
		pages = []Page{{Number: 1}}
	}
	return pages
}
