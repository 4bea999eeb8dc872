package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/pkg/auth"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

// Policy maps each capability to the roles holding it.
type Policy map[model.Capability][]model.Role

var allRoles = []model.Role{model.RoleAdmin, model.RoleDoctor, model.RoleNurse, model.RoleAnalyst, model.RoleStaff}

// DefaultPolicy: every authenticated role may read and record patient
// feedback; only admins manage records.
func DefaultPolicy() Policy {
	return Policy{
		model.CapabilityRead:           allRoles,
		model.CapabilityRecordFeedback: allRoles,
		model.CapabilityManage:         {model.RoleAdmin},
	}
}

// Allows reports whether role holds capability. Unknown capabilities are
// denied.
func (p Policy) Allows(capability model.Capability, role model.Role) bool {
	for _, r := range p[capability] {
		if r == role {
			return true
		}
	}
	return false
}

type AuthMiddleware struct {
	jwt    auth.JWTService
	policy Policy
}

func NewAuthMiddleware(jwt auth.JWTService, policy Policy) *AuthMiddleware {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &AuthMiddleware{jwt: jwt, policy: policy}
}

// Authenticate verifies the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		c.Next()
	}
}

// Require authenticates the caller and checks capability against the policy.
func (m *AuthMiddleware) Require(capability model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}

		claims, _ := handler.Claims(c)
		if !m.policy.Allows(capability, claims.Role) {
			handler.RespondError(c, apperrors.Forbidden("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// authenticate responds with 401 and returns false when the request carries
// no valid bearer token.
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	if _, ok := handler.Claims(c); ok {
		return true
	}

	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)

	var err error
	switch {
	case header == "":
		err = apperrors.Unauthorized("Not authenticated")
	case !found || !strings.EqualFold(scheme, "Bearer") || token == "":
		err = apperrors.Unauthorized("Invalid authorization header")
	}
	if err == nil {
		claims, verr := m.jwt.ValidateToken(token)
		if verr != nil {
			err = apperrors.Unauthorized("Could not validate credentials")
		} else {
			handler.SetClaims(c, claims)
		}
	}

	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		handler.RespondError(c, err)
		return false
	}
	return true
}

// Guard exposes Require to handlers registering their routes.
func (m *AuthMiddleware) Guard() handler.Guard {
	return m.Require
}
