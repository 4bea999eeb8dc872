package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediflow/mediflow-api/internal/model"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
	"github.com/mediflow/mediflow-api/pkg/pagination"
)

// ParamID parses a uuid path parameter. On failure it responds with 400.
func ParamID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, apperrors.Validation(fmt.Sprintf("%s must be a valid UUID", name), err))
		return uuid.Nil, false
	}
	return id, true
}

// Page reads skip and limit from the query string.
func Page(c *gin.Context) (model.Page, bool) {
	p, err := pagination.Parse(c.Query("skip"), c.Query("limit"))
	if err != nil {
		RespondError(c, apperrors.Validation(err.Error(), err))
		return model.Page{}, false
	}
	return model.Page{Skip: p.Skip, Limit: p.Limit}, true
}

// QueryInt reads an optional bounded integer query parameter.
func QueryInt(c *gin.Context, name string, def, min, max int) (int, bool) {
	n, err := pagination.ParseBounded(name, c.Query(name), def, min, max)
	if err != nil {
		RespondError(c, apperrors.Validation(err.Error(), err))
		return 0, false
	}
	return n, true
}

// QueryUUID reads an optional uuid query parameter; nil when absent.
func QueryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, apperrors.Validation(fmt.Sprintf("%s must be a valid UUID", name), err))
		return nil, false
	}
	return &id, true
}

// QueryBool reads an optional boolean query parameter; nil when absent.
func QueryBool(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		RespondError(c, apperrors.Validation(fmt.Sprintf("%s must be a boolean", name), err))
		return nil, false
	}
	return &b, true
}

// QueryDate reads a required YYYY-MM-DD query parameter.
func QueryDate(c *gin.Context, name string) (model.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		RespondError(c, apperrors.Validation(fmt.Sprintf("%s is required", name), nil))
		return model.Date{}, false
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		RespondError(c, apperrors.Validation(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name), err))
		return model.Date{}, false
	}
	return d, true
}

// QueryEnum reads an optional query parameter restricted to allowed values.
func QueryEnum(c *gin.Context, name string, allowed ...string) (string, bool) {
	raw := c.Query(name)
	if raw == "" {
		return "", true
	}
	for _, a := range allowed {
		if raw == a {
			return raw, true
		}
	}
	RespondError(c, apperrors.Validation(fmt.Sprintf("%s must be one of %v", name, allowed), nil))
	return "", false
}
