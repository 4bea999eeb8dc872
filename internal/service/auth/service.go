package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository"
	"github.com/mediflow/mediflow-api/internal/service"
	"github.com/mediflow/mediflow-api/pkg/auth"
	apperrors "github.com/mediflow/mediflow-api/pkg/errors"
	"github.com/mediflow/mediflow-api/pkg/security"
)

const TokenTypeBearer = "bearer"

// ErrInvalidCredentials is deliberately the same for unknown users, wrong
// passwords and deactivated accounts.
var ErrInvalidCredentials = apperrors.Unauthorized("Incorrect username or password")

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
}

type Service struct {
	users  repository.UserRepository
	jwt    auth.JWTService
	hasher security.PasswordHasher
	now    service.Clock
}

func NewService(users repository.UserRepository, jwt auth.JWTService, hasher security.PasswordHasher, now service.Clock) *Service {
	if now == nil {
		now = service.SystemClock
	}
	return &Service{users: users, jwt: jwt, hasher: hasher, now: now}
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		log.Ctx(ctx).Info().Str("username", req.Username).Msg("login rejected: bad password")
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Ctx(ctx).Info().Str("username", req.Username).Msg("login rejected: inactive user")
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(ttl / time.Second),
	}, nil
}

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, service.StoreError("User", "", err)
	}
	return user, nil
}

// CreateUser provisions an account. There is no self-registration; the
// CLI is the only caller.
func (s *Service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if !req.Role.Valid() {
		return nil, apperrors.Validation("role must be one of [admin doctor nurse analyst staff]", nil)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.Validation("username is required", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooShort) {
			return nil, apperrors.Validation("password must be at least 8 characters", err)
		}
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Username:     username,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		PasswordHash: hash,
		IsActive:     true,
	}
	user.Stamp(s.now())

	if err := s.users.Create(ctx, user); err != nil {
		return nil, service.StoreError("User", "Username already exists", err)
	}
	return user, nil
}

var _ AuthService = (*Service)(nil)
