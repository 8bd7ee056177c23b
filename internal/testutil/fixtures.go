package testutil

import (
	"time"

	"github.com/fcosta/horas/internal/domain"
	"github.com/google/uuid"
)

// WorkSession options
type SessionOption func(*domain.WorkSession)

func WithSessionDate(d time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.Date = d
		s.StartTime = time.Date(d.Year(), d.Month(), d.Day(), s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, d.Location())
		s.EndTime = time.Date(d.Year(), d.Month(), d.Day(), s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, d.Location())
	}
}

func WithClockRange(startHour, startMin, endHour, endMin int) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartTime = time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), startHour, startMin, 0, 0, s.Date.Location())
		s.EndTime = time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), endHour, endMin, 0, 0, s.Date.Location())
	}
}

// NewTestWorkSession builds a valid 9:00-11:30 session on 2024-06-10 with
// derived fields computed.
func NewTestWorkSession(userID string, opts ...SessionOption) domain.WorkSession {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	s := domain.WorkSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		StartTime: time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2024, 6, 10, 11, 30, 0, 0, time.Local),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.Derive()
	return s
}

// NewTestTrialVisit builds a valid trial visit on 2024-06-12.
func NewTestTrialVisit(userID, patient string) domain.TrialVisit {
	return domain.TrialVisit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local),
		Time:        time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local),
		PatientName: patient,
	}
}

// NewTestAccount builds a staff account.
func NewTestAccount(email string) *domain.Account {
	return &domain.Account{
		ID:           uuid.New().String(),
		Email:        email,
		Role:         domain.RoleStaff,
		IsFirstLogin: true,
		CreatedAt:    time.Now().UTC(),
	}
}
