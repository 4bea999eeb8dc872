package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/model"
)

const contextClaims = "claims"

// Guard returns the middleware enforcing capability on a single route.
type Guard func(capability model.Capability) gin.HandlerFunc

func SetClaims(c *gin.Context, claims *model.TokenClaims) {
	c.Set(contextClaims, claims)
}

// Claims returns the verified token claims of the caller, if any.
func Claims(c *gin.Context) (*model.TokenClaims, bool) {
	v, ok := c.Get(contextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*model.TokenClaims)
	return claims, ok
}
