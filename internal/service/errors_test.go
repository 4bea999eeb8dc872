package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mediflow/mediflow-api/internal/repository"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

func TestStoreError(t *testing.T) {
	assert.NoError(t, StoreError("Patient", "", nil))

	err := StoreError("Patient", "", fmt.Errorf("get: %w", repository.ErrNotFound))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	assert.Equal(t, "Patient not found", err.(*apperrors.AppError).Message)

	err = StoreError("Patient", "Patient ID already exists", repository.ErrConflict)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
	assert.Equal(t, "Patient ID already exists", err.(*apperrors.AppError).Message)

	err = StoreError("Bed", "", repository.ErrConflict)
	assert.Equal(t, "Bed already exists", err.(*apperrors.AppError).Message)

	err = StoreError("Patient", "", errors.New("connection reset"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrInternal))

	validation := apperrors.Validation("bad", nil)
	assert.Same(t, validation, StoreError("Patient", "", validation))
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, SystemClock().Location())
}
