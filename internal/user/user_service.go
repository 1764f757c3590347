package user

import (
	"context"
	"database/sql"
	"time"

	"go-diamond-payroll/internal/domain"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/shared/response"
	usererrors "go-diamond-payroll/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListUsersRequest) ([]UserResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, req ListUsersRequest) ([]UserResponse, *response.PaginationMeta, error) {
	filter := Filter{Role: req.Role, Page: req.Page, PageSize: req.PageSize}
	if filter.Page > 0 && filter.PageSize == 0 {
		filter.PageSize = 20
	}

	users, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}

	var meta *response.PaginationMeta
	if filter.Page > 0 {
		m := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
		meta = &m
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = MapToResponse(&users[i])
	}
	return resp, meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(u), nil
}

// Update changes role and status. An account cannot change its own role or
// status, and the last active admin cannot be demoted or disabled.
func (s *service) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	role, active := u.Role, u.IsActive
	if req.Role != nil {
		role = *req.Role
	}
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if role == u.Role && active == u.IsActive {
		return MapToResponse(u), nil
	}
	if actorID == u.ID.String() {
		return UserResponse{}, usererrors.ErrSelfUpdate
	}

	if u.Role == domain.RoleAdmin && u.IsActive && (role != domain.RoleAdmin || !active) {
		admins, err := qtx.LockActiveByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return UserResponse{}, err
		}
		if len(admins) <= 1 {
			return UserResponse{}, usererrors.ErrLastAdmin
		}
	}

	u.Role, u.IsActive = role, active
	if err := qtx.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	log.Info("user updated",
		zap.String("user_id", id),
		zap.String("role", role),
		zap.Bool("is_active", active),
	)
	return MapToResponse(u), nil
}

func (s *service) ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	u.Password = hashed
	return mapRepositoryError(s.repo.Update(ctx, u))
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !CheckPassword(u.Password, req.CurrentPassword) {
		return usererrors.ErrWrongPassword
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	u.Password = hashed
	return mapRepositoryError(s.repo.Update(ctx, u))
}

func MapToResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		v := u.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &v
	}
	return resp
}
