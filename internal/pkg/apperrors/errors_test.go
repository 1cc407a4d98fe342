package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewValidationError("reason is too short").WithField("reason")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "reason is too short", err.Error())
	assert.Equal(t, "reason", err.Field)
}

func TestCustomErrorMessageFallback(t *testing.T) {
	err := &CustomError{Err: ErrAlreadyRated}
	assert.Equal(t, ErrAlreadyRated.Error(), err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestWrappedSentinelsSurviveFmtErrorf(t *testing.T) {
	err := fmt.Errorf("rating answer 7: %w", ErrAlreadyRated)
	assert.True(t, errors.Is(err, ErrAlreadyRated))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestConstructorsWrapExpectedSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{NewNotFoundError("question not found"), ErrNotFound},
		{NewConflictError("username already exists"), ErrConflict},
		{NewForbiddenError("admin role required"), ErrPermissionDenied},
		{NewValidationError("bad input"), ErrValidation},
	}

	for _, c := range cases {
		assert.True(t, errors.Is(c.err, c.sentinel), "expected %v to wrap %v", c.err, c.sentinel)
	}
}
