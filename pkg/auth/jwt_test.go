package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/model"
)

func testUser() *model.User {
	return &model.User{
		Base:     model.Base{ID: uuid.New()},
		Username: "nurse.joy",
		Role:     model.RoleNurse,
		IsActive: true,
	}
}

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService("secret", "mediflow", 30*time.Minute)
	require.NoError(t, err)

	user := testUser()
	token, ttl, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "nurse.joy", claims.Username)
	assert.Equal(t, model.RoleNurse, claims.Role)
	assert.Equal(t, "mediflow", claims.Issuer)
}

func TestValidateRejects(t *testing.T) {
	svc, err := NewJWTService("secret", "mediflow", time.Minute)
	require.NoError(t, err)
	user := testUser()

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTService("other", "mediflow", time.Minute)
		require.NoError(t, err)
		token, _, err := other.GenerateAccessToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := &jwtService{secret: []byte("secret"), issuer: "mediflow", ttl: time.Minute,
			now: func() time.Time { return time.Now().Add(-time.Hour) }}
		token, _, err := past.GenerateAccessToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewJWTService("secret", "someone-else", time.Minute)
		require.NoError(t, err)
		token, _, err := other.GenerateAccessToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := model.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "mediflow",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			Role: model.RoleAdmin,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		u := testUser()
		u.Role = "janitor"
		token, _, err := svc.GenerateAccessToken(u)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("", "mediflow", time.Minute)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
