package app

import (
	"context"

	"go-diamond-payroll/internal/config"
	"go-diamond-payroll/internal/domain"
	"go-diamond-payroll/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// seedAdmin creates the configured admin when no admin exists yet, so a fresh
// install can log in and register everyone else. Without ADMIN_PASSWORD it
// does nothing.
func seedAdmin(ctx context.Context, repo user.Repository, cfg config.AdminConfig, logger *zap.Logger) error {
	if cfg.Password == "" {
		return nil
	}

	_, total, err := repo.FindAll(ctx, user.Filter{Role: domain.RoleAdmin})
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hashed, err := user.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, &user.User{
		ID:       uuid.New(),
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: hashed,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}); err != nil {
		return err
	}

	logger.Info("seeded admin account", zap.String("username", cfg.Username))
	return nil
}
