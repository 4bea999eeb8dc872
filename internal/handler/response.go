// Package handler holds the response envelope and request helpers shared
// by the HTTP handlers.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mediflow/mediflow-api/internal/model"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
	"github.com/mediflow/mediflow-api/pkg/validator"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Response struct {
	Status string          `json:"status"`
	Data   interface{}     `json:"data"`
	Meta   *model.ListMeta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Code    apperrors.ErrorCode `json:"code"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Status: StatusSuccess, Data: data})
}

func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List writes a page of items. count is the number of items on the page.
func List(c *gin.Context, data interface{}, page model.Page, count int) {
	c.JSON(http.StatusOK, Response{
		Status: StatusSuccess,
		Data:   data,
		Meta:   &model.ListMeta{Skip: page.Skip, Limit: page.Limit, Count: count},
	})
}

// RespondError writes err through the error envelope and aborts the chain.
// Errors that are not AppErrors become a 500 with a generic message.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}

	if appErr.Code == apperrors.ErrInternal {
		log.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.StatusCode(), ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}

// BindJSON decodes the body into dst and runs the binding validators.
// On failure it responds and returns false.
func BindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		RespondError(c, apperrors.TooLarge("request body too large"))
	case errors.Is(err, io.EOF):
		RespondError(c, apperrors.Validation("request body is required", err))
	default:
		RespondError(c, apperrors.Validation(validator.Message(err), err))
	}
	return false
}
