package domain

import (
	"fmt"
	"strings"
	"time"
)

// TrialVisit is one prospective-client trial session. Visits form an
// append-only log: they are created but never edited or deleted.
type TrialVisit struct {
	ID          string
	UserID      string
	Date        time.Time
	Time        time.Time
	PatientName string
	// ClosedPackage records whether the visit converted to a sale.
	ClosedPackage bool
}

func (v *TrialVisit) Validate() error {
	if v.UserID == "" {
		return fmt.Errorf("trial visit owner is required: %w", ErrValidation)
	}
	if v.Date.IsZero() || v.Time.IsZero() {
		return fmt.Errorf("trial visit date and time are required: %w", ErrValidation)
	}
	if strings.TrimSpace(v.PatientName) == "" {
		return fmt.Errorf("patient name is required: %w", ErrValidation)
	}
	return nil
}
