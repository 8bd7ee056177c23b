package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_DetectableWhenWrapped(t *testing.T) {
	sentinels := []error{
		ErrValidation,
		ErrAuthentication,
		ErrAuthorization,
		ErrNotFound,
		ErrConflict,
		ErrPersistence,
	}
	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("account x: %w", sentinel)
		assert.ErrorIs(t, wrapped, sentinel)
	}
}

func TestSentinels_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrConflict))
	assert.False(t, errors.Is(ErrAuthentication, ErrAuthorization))
}

func TestErrAuthentication_LeaksNoDetail(t *testing.T) {
	assert.Equal(t, "invalid email or password", ErrAuthentication.Error())
}
