package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenClaims are the JWT claims issued at login.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}

// Capability is the access level a route requires.
type Capability string

const (
	CapabilityRead           Capability = "read"
	CapabilityRecordFeedback Capability = "record_feedback"
	CapabilityManage         Capability = "manage"
)
