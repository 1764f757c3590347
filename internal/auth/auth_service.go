package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-diamond-payroll/internal/auth/errors"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
}

type service struct {
	repo   user.Repository
	tokens TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo user.Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}
	if !user.CheckPassword(u.Password, req.Password) {
		log.Info("login rejected", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrInactiveUser
	}

	now := s.now().UTC()
	pair, err := s.tokens.issue(u.ID.String(), u.Role, now)
	if err != nil {
		log.Error("sign token failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	u.LastLogin = &now
	if err := s.repo.Update(ctx, u); err != nil {
		log.Warn("record last login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	return AuthResponse{User: user.MapToResponse(u), TokenPair: pair}, nil
}

// Refresh re-reads the account so a changed role or a disabled account takes
// effect on the next refresh.
func (s *service) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, err := s.tokens.parse(refreshToken)
	if err != nil || claims.Type != tokenTypeRefresh {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return AuthResponse{}, err
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrInactiveUser
	}

	pair, err := s.tokens.issue(u.ID.String(), u.Role, s.now().UTC())
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return AuthResponse{User: user.MapToResponse(u), TokenPair: pair}, nil
}

func (s *service) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}
	return user.MapToResponse(u), nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	hashed, err := user.HashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	u := &user.User{
		ID:       uuid.New(),
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return user.UserResponse{}, user.MapRepositoryError(err)
	}

	log.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.String("registered_by", contextutil.GetUserID(ctx)),
	)
	return user.MapToResponse(u), nil
}
