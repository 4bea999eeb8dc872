// Package service holds helpers shared by the business services.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mediflow/mediflow-api/internal/repository"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock reads the wall clock in UTC, so "today" is the UTC date.
func SystemClock() time.Time { return time.Now().UTC() }

// StoreError maps repository sentinels onto client-facing errors.
// resource names the entity in not-found messages, conflict is the message
// used for uniqueness violations.
func StoreError(resource, conflict string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(resource, err)
	case errors.Is(err, repository.ErrConflict):
		if conflict == "" {
			conflict = fmt.Sprintf("%s already exists", resource)
		}
		return apperrors.Conflict(conflict, err)
	default:
		if _, ok := apperrors.As(err); ok {
			return err
		}
		return apperrors.Internal(err)
	}
}
