package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/mediflow/mediflow-api/internal/handler"
	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/service/auth"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
)

type Handler struct {
	svc auth.AuthService
}

func NewHandler(svc auth.AuthService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts login without a guard; everything else needs a token.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard handler.Guard) {
	g := r.Group("/auth")
	{
		g.POST("/login", h.Login)
		g.GET("/me", guard(model.CapabilityRead), h.Me)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	token, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, token)
}

func (h *Handler) Me(c *gin.Context) {
	claims, ok := handler.Claims(c)
	if !ok {
		handler.RespondError(c, apperrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.svc.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.OK(c, user)
}
