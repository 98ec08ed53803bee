package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &AppError{Code: ErrCodeValidation, Message: "title is required"}
		assert.Equal(t, "title is required", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("scan failed")
		err := &AppError{Code: ErrCodeInternal, Message: "load job", Cause: cause}
		assert.Equal(t, "load job: scan failed", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.ErrorIs(t, err, cause)
}

func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  ErrorCode
		check func(error) bool
	}{
		{"not found", NotFound("no such job"), ErrCodeNotFound, IsNotFound},
		{"not found formatted", NotFoundf("job %s not found", "j1"), ErrCodeNotFound, IsNotFound},
		{"conflict", Conflict("already taken"), ErrCodeConflict, IsConflict},
		{"validation", Validation("bad input"), ErrCodeValidation, IsValidation},
		{"invalid transition", InvalidTransition("cannot end a cancelled job"), ErrCodeInvalidTransition, IsInvalidTransition},
		{"forbidden", Forbidden("admin only"), ErrCodeForbidden, IsForbidden},
		{"foreign key", ForeignKey("translator missing"), ErrCodeForeignKey, IsForeignKey},
		{"internal", Internal("boom"), ErrCodeInternal, IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestPredicates_WrappedErrors(t *testing.T) {
	inner := Conflict("job already taken")
	outer := fmt.Errorf("accept job: %w", inner)

	assert.True(t, IsConflict(outer))
	assert.False(t, IsNotFound(outer))
	assert.Equal(t, ErrCodeConflict, GetCode(outer))
}

func TestPredicates_NonAppErrors(t *testing.T) {
	err := errors.New("plain error")

	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsInvalidTransition(err))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, ErrorCode(""), GetCode(err))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("admin_comments", "A flagged job requires an admin comment.")

	require.True(t, IsValidation(err))
	assert.Equal(t, "admin_comments", GetField(err))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestInvalidTransitionf(t *testing.T) {
	err := InvalidTransitionf("cannot %s a job in state %q", "end", "cancelled")

	assert.True(t, IsInvalidTransition(err))
	assert.Contains(t, err.Error(), `cannot end a job in state "cancelled"`)
}
