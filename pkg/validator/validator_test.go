package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Time   string `json:"admission_time" validate:"required,clocktime"`
	Score  int    `json:"score" validate:"min=1,max=5"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestClockTime(t *testing.T) {
	v := newValidate(t)
	for _, ok := range []string{"00:00", "08:15", "23:59"} {
		assert.NoError(t, v.Var(ok, "clocktime"), ok)
	}
	for _, bad := range []string{"24:00", "8:15", "12:60", "12:30:00", "noon", ""} {
		assert.Error(t, v.Var(bad, "clocktime"), bad)
	}
}

func TestMessageUsesJSONNames(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(sample{Name: "toolong", Time: "25:00", Score: 9, Gender: "x"})
	require.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "name must be at most 5 characters")
	assert.Contains(t, msg, "admission_time must be a time in HH:MM format")
	assert.Contains(t, msg, "score must be at most 5")
	assert.Contains(t, msg, "gender must be one of [male female]")
}

func TestMessageRequired(t *testing.T) {
	v := newValidate(t)
	err := v.Struct(sample{Score: 3})
	require.Error(t, err)
	assert.Contains(t, Message(err), "name is required")
}

func TestMessagePlainError(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
