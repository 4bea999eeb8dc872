package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore/sqlstoretest"
	"github.com/mediflow/mediflow-api/pkg/auth"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
	"github.com/mediflow/mediflow-api/pkg/security"
)

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, auth.JWTService) {
	t.Helper()
	repos := sqlstoretest.Open(t)
	jwtSvc, err := auth.NewJWTService("test-secret", "mediflow", 30*time.Minute)
	require.NoError(t, err)
	svc := NewService(repos.Users, jwtSvc, security.NewBcryptHasher(bcrypt.MinCost), func() time.Time { return fixedNow })
	return svc, jwtSvc
}

func createUser(t *testing.T, svc *Service, username string, role model.Role) *model.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), &model.CreateUserRequest{
		Username: username,
		Email:    username + "@example.org",
		Role:     role,
		Password: "correct horse",
	})
	require.NoError(t, err)
	return user
}

func TestLogin(t *testing.T) {
	svc, jwtSvc := newService(t)
	user := createUser(t, svc, "drgrey", model.RoleDoctor)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{Username: "drgrey", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	claims, err := jwtSvc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleDoctor, claims.Role)
}

func TestLoginRejects(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	createUser(t, svc, "drgrey", model.RoleDoctor)

	_, err := svc.Login(ctx, &model.LoginRequest{Username: "drgrey", Password: "wrong password"})
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "correct horse"})
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrUnauthorized))
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	repos := sqlstoretest.Open(t)
	jwtSvc, err := auth.NewJWTService("test-secret", "", time.Minute)
	require.NoError(t, err)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	svc := NewService(repos.Users, jwtSvc, hasher, nil)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	user := &model.User{Username: "retired", Email: "retired@example.org", Role: model.RoleNurse, PasswordHash: hash}
	user.Stamp(fixedNow)
	require.NoError(t, repos.Users.Create(context.Background(), user))

	_, err = svc.Login(context.Background(), &model.LoginRequest{Username: "retired", Password: "correct horse"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	user := createUser(t, svc, "admin", model.RoleAdmin)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(fixedNow))

	_, err := svc.CreateUser(ctx, &model.CreateUserRequest{Username: "admin", Email: "x@example.org", Role: model.RoleAdmin, Password: "long enough"})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))

	_, err = svc.CreateUser(ctx, &model.CreateUserRequest{Username: "root", Email: "r@example.org", Role: "superuser", Password: "long enough"})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))

	_, err = svc.CreateUser(ctx, &model.CreateUserRequest{Username: "short", Email: "s@example.org", Role: model.RoleStaff, Password: "abc"})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	user := createUser(t, svc, "analyst", model.RoleAnalyst)

	got, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "analyst", got.Username)

	_, err = svc.Me(ctx, uuid.New())
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
