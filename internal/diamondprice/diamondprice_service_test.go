package diamondprice_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-diamond-payroll/internal/diamondprice"
	diamondpriceerrors "go-diamond-payroll/internal/diamondprice/errors"
	diamondpriceMock "go-diamond-payroll/internal/diamondprice/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   diamondprice.Service
	repo      *diamondpriceMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := diamondpriceMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   diamondprice.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDiamondPriceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("default unsets other defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UnsetDefaults(ctx, "A", "").Return(nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *diamondprice.DiamondPrice) error {
			assert.True(t, p.IsDefault)
			assert.True(t, p.IsActive)
			assert.Nil(t, p.DepartmentID)
			return nil
		})
		deps.redismock.ExpectDel(diamondprice.ActiveCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, diamondprice.DiamondPriceRequest{
			Category: " A ", Price: decimal.NewFromInt(4), IsDefault: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "A", resp.Category)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("scoped rule", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(diamondprice.ActiveCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, diamondprice.DiamondPriceRequest{
			Category: "A", Price: decimal.NewFromInt(2), DepartmentID: deptID, SubDepartment: "4P",
		})

		require.NoError(t, err)
		assert.Equal(t, deptID, resp.DepartmentID)
		assert.Equal(t, "4P", resp.SubDepartment)
	})

	cases := []struct {
		name string
		req  diamondprice.DiamondPriceRequest
		want error
	}{
		{"zero price", diamondprice.DiamondPriceRequest{Category: "A"}, diamondpriceerrors.ErrInvalidPrice},
		{"sub-cent price", diamondprice.DiamondPriceRequest{Category: "A", Price: decimal.RequireFromString("2.555")}, diamondpriceerrors.ErrPricePrecision},
		{"sub without department", diamondprice.DiamondPriceRequest{Category: "A", Price: decimal.NewFromInt(1), SubDepartment: "4P"}, diamondpriceerrors.ErrSubDepartmentRequiresDepartment},
		{"scoped default", diamondprice.DiamondPriceRequest{Category: "A", Price: decimal.NewFromInt(1), IsDefault: true, DepartmentID: uuid.NewString()}, diamondpriceerrors.ErrDefaultCannotBeScoped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			defer deps.db.Close()

			_, err := deps.service.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDiamondPriceService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("promote to default", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &diamondprice.DiamondPrice{ID: uuid.New(), Category: "A", Price: decimal.NewFromInt(3), IsActive: true}
		id := existing.ID.String()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().UnsetDefaults(ctx, "A", id).Return(nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)
		deps.redismock.ExpectDel(diamondprice.ActiveCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, id, diamondprice.DiamondPriceRequest{
			Category: "A", Price: decimal.NewFromInt(5), IsDefault: true,
		})

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.True(t, decimal.NewFromInt(5).Equal(resp.Price))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, diamondprice.DiamondPriceRequest{Category: "A", Price: decimal.NewFromInt(1)})

		assert.ErrorIs(t, err, diamondpriceerrors.ErrDiamondPriceNotFound)
	})
}

func TestDiamondPriceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered list served from cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []diamondprice.DiamondPriceResponse{{ID: "p-1", Category: "A", Price: decimal.NewFromInt(4), IsDefault: true, IsActive: true}}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(diamondprice.ActiveCacheKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, diamondprice.ListDiamondPricesRequest{})

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "p-1", resp[0].ID)
	})

	t.Run("filtered list bypasses cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAll(ctx, diamondprice.Filter{Category: "A", ActiveOnly: true}).
			Return([]diamondprice.DiamondPrice{*rule(2)}, nil)

		resp, err := deps.service.GetAll(ctx, diamondprice.ListDiamondPricesRequest{Category: "A"})

		require.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestDiamondPriceService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	id := uuid.NewString()
	deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, deps.service.Delete(ctx, id), diamondpriceerrors.ErrDiamondPriceNotFound)
}

func TestDiamondPriceService_ResolveEndpoint(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deptID := uuid.NewString()
	deps.repo.EXPECT().FindScoped(ctx, "A", deptID, "X").Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().FindDefault(ctx, "A").Return(rule(4), nil)

	resp, err := deps.service.Resolve(ctx, diamondprice.ResolvePriceRequest{
		Category: "A", DepartmentID: deptID, SubDepartment: "X", Mode: "update",
	})

	require.NoError(t, err)
	assert.Equal(t, diamondprice.TierDefault, resp.Tier)
}
