package auth_test

import (
	"context"
	"testing"
	"time"

	"go-diamond-payroll/internal/auth"
	autherrors "go-diamond-payroll/internal/auth/errors"
	"go-diamond-payroll/internal/domain"
	"go-diamond-payroll/internal/user"
	usererrors "go-diamond-payroll/internal/user/errors"
	userMock "go-diamond-payroll/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var tokens = auth.TokenConfig{Secret: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}

func setupServiceTest(t *testing.T) (*userMock.MockRepository, auth.Service) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	return repo, auth.NewService(repo, tokens)
}

func account(t *testing.T, password string, active bool) *user.User {
	t.Helper()
	hashed, err := user.HashPassword(password)
	require.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: hashed,
		Role:     domain.RoleAccountant,
		IsActive: active,
	}
}

func claimsOf(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) { return []byte(tokens.Secret), nil })
	require.NoError(t, err)
	return token.Claims.(jwt.MapClaims)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		u := account(t, "s3cret-pass", true)

		repo.EXPECT().FindByLogin(ctx, "ravi").Return(u, nil)
		repo.EXPECT().Update(ctx, u).DoAndReturn(func(ctx context.Context, got *user.User) error {
			assert.NotNil(t, got.LastLogin)
			return nil
		})

		resp, err := svc.Login(ctx, auth.LoginRequest{Login: "ravi", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, u.ID.String(), resp.User.ID)
		assert.Equal(t, int64(3600), resp.ExpiresIn)

		access := claimsOf(t, resp.AccessToken)
		assert.Equal(t, u.ID.String(), access["user_id"])
		assert.Equal(t, domain.RoleAccountant, access["role"])
		assert.Equal(t, "access", access["type"])
		assert.Equal(t, "refresh", claimsOf(t, resp.RefreshToken)["type"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		u := account(t, "s3cret-pass", true)
		repo.EXPECT().FindByLogin(ctx, "ravi").Return(u, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Login: "ravi", Password: "nope"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByLogin(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, auth.LoginRequest{Login: "ghost", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		u := account(t, "s3cret-pass", false)
		repo.EXPECT().FindByLogin(ctx, "ravi").Return(u, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Login: "ravi", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, autherrors.ErrInactiveUser)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new pair with the current role", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		u := account(t, "s3cret-pass", true)
		repo.EXPECT().FindByLogin(ctx, "ravi").Return(u, nil)
		repo.EXPECT().Update(ctx, u).Return(nil)
		login, err := svc.Login(ctx, auth.LoginRequest{Login: "ravi", Password: "s3cret-pass"})
		require.NoError(t, err)

		promoted := *u
		promoted.Role = domain.RoleManager
		repo.EXPECT().FindByID(ctx, u.ID.String()).Return(&promoted, nil)

		resp, err := svc.Refresh(ctx, login.RefreshToken)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, claimsOf(t, resp.AccessToken)["role"])
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		u := account(t, "s3cret-pass", true)
		repo.EXPECT().FindByLogin(ctx, "ravi").Return(u, nil)
		repo.EXPECT().Update(ctx, u).Return(nil)
		login, err := svc.Login(ctx, auth.LoginRequest{Login: "ravi", Password: "s3cret-pass"})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, login.AccessToken)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.Refresh(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, u *user.User) error {
			assert.Equal(t, "mina@example.com", u.Email)
			assert.NotEqual(t, "password-123", u.Password)
			assert.True(t, user.CheckPassword(u.Password, "password-123"))
			assert.True(t, u.IsActive)
			return nil
		})

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "mina", Email: " Mina@Example.com ", Password: "password-123", Role: domain.RoleManager,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, resp.Role)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"})

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Username: "mina", Email: "mina@example.com", Password: "password-123", Role: domain.RoleManager,
		})

		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}
