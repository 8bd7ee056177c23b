package records

import (
	"fmt"
	"time"

	"github.com/fcosta/horas/internal/domain"
)

// Stored forms mirror the JSON layout on disk: timestamps as ISO-8601
// strings, field names fixed by the storage schema.

type storedWorkSession struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId,omitempty"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Hours     float64 `json:"hours"`
	Earnings  float64 `json:"earnings"`
}

type storedTrialVisit struct {
	ID            string `json:"id"`
	UserID        string `json:"userId,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PatientName   string `json:"patientName"`
	ClosedPackage bool   `json:"closedPackage"`
}

func encodeWorkSession(s domain.WorkSession) storedWorkSession {
	return storedWorkSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Date:      s.Date.Format(time.RFC3339),
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		Hours:     s.Hours,
		Earnings:  s.Earnings,
	}
}

func encodeTrialVisit(v domain.TrialVisit) storedTrialVisit {
	return storedTrialVisit{
		ID:            v.ID,
		UserID:        v.UserID,
		Date:          v.Date.Format(time.RFC3339),
		Time:          v.Time.Format(time.RFC3339),
		PatientName:   v.PatientName,
		ClosedPackage: v.ClosedPackage,
	}
}

// decodeWorkSession reconstructs a work session from its stored form.
// Records whose timestamps fail to parse are reported as errors and
// discarded by callers rather than loaded half-converted.
func decodeWorkSession(s storedWorkSession) (domain.WorkSession, error) {
	date, err := parseTimestamp(s.Date)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("work session %s date: %w", s.ID, err)
	}
	start, err := parseTimestamp(s.StartTime)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("work session %s start time: %w", s.ID, err)
	}
	end, err := parseTimestamp(s.EndTime)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("work session %s end time: %w", s.ID, err)
	}
	userID := s.UserID
	if userID == "" {
		userID = DefaultOwnerID
	}
	return domain.WorkSession{
		ID:        s.ID,
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Hours:     s.Hours,
		Earnings:  s.Earnings,
	}, nil
}

func decodeTrialVisit(v storedTrialVisit) (domain.TrialVisit, error) {
	date, err := parseTimestamp(v.Date)
	if err != nil {
		return domain.TrialVisit{}, fmt.Errorf("trial visit %s date: %w", v.ID, err)
	}
	at, err := parseTimestamp(v.Time)
	if err != nil {
		return domain.TrialVisit{}, fmt.Errorf("trial visit %s time: %w", v.ID, err)
	}
	userID := v.UserID
	if userID == "" {
		userID = DefaultOwnerID
	}
	return domain.TrialVisit{
		ID:            v.ID,
		UserID:        userID,
		Date:          date,
		Time:          at,
		PatientName:   v.PatientName,
		ClosedPackage: v.ClosedPackage,
	}, nil
}

// parseTimestamp accepts RFC3339 with or without fractional seconds,
// which covers every layout older storage versions wrote.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
