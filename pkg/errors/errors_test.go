package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusCode(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{Validation("bad", nil), http.StatusBadRequest},
		{NotFound("patient", nil), http.StatusNotFound},
		{Conflict("dup", nil), http.StatusConflict},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("admin only"), http.StatusForbidden},
		{TooLarge("too big"), http.StatusRequestEntityTooLarge},
		{RateLimited(), http.StatusTooManyRequests},
		{Internal(errors.New("db down")), http.StatusInternalServerError},
		{&AppError{Code: "something_else"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestAppError_Wrapping(t *testing.T) {
	cause := errors.New("record not found")
	err := fmt.Errorf("lookup: %w", NotFound("patient", cause))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "patient not found", appErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, ErrNotFound))
	assert.False(t, IsCode(err, ErrConflict))
	assert.Equal(t, "patient not found: record not found", appErr.Error())

	_, ok = As(cause)
	assert.False(t, ok)
}
