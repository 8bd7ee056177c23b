package domain

import (
	"fmt"
	"math"
	"time"
)

// HourlyRate is the flat per-hour pay in euros used to derive earnings
// from logged hours.
const HourlyRate = 12.0

// WorkSession is one logged work interval and its derived pay.
type WorkSession struct {
	ID        string
	UserID    string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time

	// Derived from StartTime/EndTime; recomputed on every edit.
	Hours    float64
	Earnings float64
}

// Validate checks the time-range invariant: both bounds must be set and
// EndTime must come strictly after StartTime.
func (s *WorkSession) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("work session owner is required: %w", ErrValidation)
	}
	if s.Date.IsZero() {
		return fmt.Errorf("work session date is required: %w", ErrValidation)
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return fmt.Errorf("start and end times are required: %w", ErrValidation)
	}
	if !s.EndTime.After(s.StartTime) {
		return fmt.Errorf("end time must be after start time: %w", ErrValidation)
	}
	return nil
}

// Derive recomputes Hours and Earnings from the time bounds. Hours is the
// interval length in hours rounded to 2 decimals; Earnings is Hours at the
// flat hourly rate.
func (s *WorkSession) Derive() {
	s.Hours = RoundHours(s.EndTime.Sub(s.StartTime).Hours())
	s.Earnings = s.Hours * HourlyRate
}

// RoundHours rounds an hour count to 2 decimal places.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
