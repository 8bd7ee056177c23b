package cli

import (
	"testing"
	"time"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), got)

	_, err = parseDate("10/06/2024")
	assert.Error(t, err)
	_, err = parseDate("")
	assert.Error(t, err)
}

func TestParseClockOn(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	got, err := parseClockOn(day, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local), got)

	_, err = parseClockOn(day, "9h30")
	assert.Error(t, err)
}

func TestBuildWorkSession(t *testing.T) {
	session, err := buildWorkSession("2024-06-10", "09:00", "11:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local), session.StartTime)
	assert.Equal(t, time.Date(2024, 6, 10, 11, 30, 0, 0, time.Local), session.EndTime)

	_, err = buildWorkSession("bad", "09:00", "11:30")
	assert.Error(t, err)
	_, err = buildWorkSession("2024-06-10", "bad", "11:30")
	assert.Error(t, err)
}

func TestFindSession(t *testing.T) {
	sessions := []domain.WorkSession{
		testutil.NewTestWorkSession("1"),
		testutil.NewTestWorkSession("1"),
	}
	sessions[0].ID = "aaaa1111-0000-0000-0000-000000000000"
	sessions[1].ID = "aaaa2222-0000-0000-0000-000000000000"

	// Full ID.
	got, err := findSession(sessions, sessions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, sessions[0].ID, got.ID)

	// Unique prefix.
	got, err = findSession(sessions, "aaaa2222")
	require.NoError(t, err)
	assert.Equal(t, sessions[1].ID, got.ID)

	// Ambiguous prefix.
	_, err = findSession(sessions, "aaaa")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	// Too short for prefix matching.
	_, err = findSession(sessions, "aaa")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = findSession(sessions, "ffff0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
