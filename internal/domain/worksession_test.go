package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func validSession() WorkSession {
	return WorkSession{
		ID:        "s1",
		UserID:    "u1",
		Date:      testDay,
		StartTime: testDay.Add(9 * time.Hour),
		EndTime:   testDay.Add(11*time.Hour + 30*time.Minute),
	}
}

func TestWorkSessionValidate(t *testing.T) {
	s := validSession()
	require.NoError(t, s.Validate())
}

func TestWorkSessionValidate_EndNotAfterStart(t *testing.T) {
	s := validSession()
	s.EndTime = s.StartTime
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	s.EndTime = s.StartTime.Add(-time.Minute)
	assert.ErrorIs(t, s.Validate(), ErrValidation)
}

func TestWorkSessionValidate_MissingFields(t *testing.T) {
	s := validSession()
	s.UserID = ""
	assert.ErrorIs(t, s.Validate(), ErrValidation)

	s = validSession()
	s.Date = time.Time{}
	assert.ErrorIs(t, s.Validate(), ErrValidation)

	s = validSession()
	s.StartTime = time.Time{}
	assert.ErrorIs(t, s.Validate(), ErrValidation)
}

func TestWorkSessionDerive(t *testing.T) {
	s := validSession()
	s.Derive()
	assert.Equal(t, 2.5, s.Hours)
	assert.Equal(t, 2.5*HourlyRate, s.Earnings)
}

func TestWorkSessionDerive_Rounds(t *testing.T) {
	s := validSession()
	s.EndTime = s.StartTime.Add(100 * time.Minute)
	s.Derive()
	assert.Equal(t, 1.67, s.Hours)
	assert.InDelta(t, 20.04, s.Earnings, 1e-9)
}

func TestTrialVisitValidate(t *testing.T) {
	v := TrialVisit{
		ID:          "v1",
		UserID:      "u1",
		Date:        testDay,
		Time:        testDay.Add(15 * time.Hour),
		PatientName: "Maria",
	}
	require.NoError(t, v.Validate())

	v.PatientName = "   "
	assert.ErrorIs(t, v.Validate(), ErrValidation)

	v.PatientName = "Maria"
	v.Time = time.Time{}
	assert.ErrorIs(t, v.Validate(), ErrValidation)
}

func TestSessionState(t *testing.T) {
	var nilSession *Session
	assert.Equal(t, SessionAnonymous, nilSession.State())
	assert.Equal(t, SessionAnonymous, (&Session{}).State())

	staff := &Account{ID: "u1", Role: RoleStaff, IsFirstLogin: true}
	assert.Equal(t, SessionPendingPasswordChange, (&Session{Account: staff, Authenticated: true}).State())

	staff.IsFirstLogin = false
	assert.Equal(t, SessionActive, (&Session{Account: staff, Authenticated: true}).State())
}
