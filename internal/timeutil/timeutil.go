// Package timeutil holds the pure date, duration, and locale formatting
// helpers shared by the record store, report builder, and CLI. Every
// function is total: invalid input yields a zero value or a fixed
// placeholder, never an error.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// DatePlaceholder is returned by FormatDate for invalid input.
	DatePlaceholder = "--/--/----"
	// TimePlaceholder is returned by FormatTime for invalid input.
	TimePlaceholder = "--:--"
)

// IsValidDate reports whether t carries a usable time value.
func IsValidDate(t time.Time) bool {
	return !t.IsZero()
}

// CalculateHours returns the length of [start, end] in hours rounded to
// 2 decimal places. Invalid bounds or end before start yield 0; durations
// are never negative.
func CalculateHours(start, end time.Time) float64 {
	if !IsValidDate(start) || !IsValidDate(end) {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		return 0
	}
	return math.Round(diff.Hours()*100) / 100
}

// FormatDate renders t as dd/mm/yyyy, or the placeholder when invalid.
func FormatDate(t time.Time) string {
	if !IsValidDate(t) {
		return DatePlaceholder
	}
	return t.Format("02/01/2006")
}

// FormatTime renders t as HH:MM in 24-hour form, or the placeholder when
// invalid.
func FormatTime(t time.Time) string {
	if !IsValidDate(t) {
		return TimePlaceholder
	}
	return t.Format("15:04")
}

// FormatCurrency renders amount as a pt-PT euro string: space as the
// thousands separator, comma as the decimal separator, trailing euro sign
// (e.g. "1 234,56 €").
func FormatCurrency(amount float64) string {
	neg := amount < 0 || (amount == 0 && math.Signbit(amount))
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	s := fmt.Sprintf("%s,%02d €", strings.Join(groups, " "), frac)
	if neg {
		return "-" + s
	}
	return s
}
