package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

const DefaultMaxBodyBytes int64 = 1 << 20

// SizeLimit rejects declared oversize bodies up front and caps the rest
// with http.MaxBytesReader.
func SizeLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			handler.RespondError(c, apperrors.TooLarge(fmt.Sprintf("request body exceeds %d bytes", maxBytes)))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
