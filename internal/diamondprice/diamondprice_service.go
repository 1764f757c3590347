package diamondprice

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	diamondpriceerrors "go-diamond-payroll/internal/diamondprice/errors"
	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ActiveCacheKey holds the unfiltered list of active rules.
const ActiveCacheKey = "diamondprices:active"

//go:generate mockgen -source=diamondprice_service.go -destination=mock/diamondprice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req DiamondPriceRequest) (DiamondPriceResponse, error)
	GetAll(ctx context.Context, req ListDiamondPricesRequest) ([]DiamondPriceResponse, error)
	GetByID(ctx context.Context, id string) (DiamondPriceResponse, error)
	Update(ctx context.Context, id string, req DiamondPriceRequest) (DiamondPriceResponse, error)
	Delete(ctx context.Context, id string) error
	Resolve(ctx context.Context, req ResolvePriceRequest) (ResolvedPriceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("diamondprice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diamondprice.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req DiamondPriceRequest) (DiamondPriceResponse, error) {
	if err := validateRequest(req); err != nil {
		return DiamondPriceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DiamondPriceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	price := &DiamondPrice{ID: uuid.New(), IsActive: true}
	applyRequest(price, req)

	if price.IsDefault {
		if err := qtx.UnsetDefaults(ctx, price.Category, ""); err != nil {
			return DiamondPriceResponse{}, err
		}
	}

	if err := qtx.Create(ctx, price); err != nil {
		s.logger.Error("create diamond price persist failed", zap.Error(err))
		return DiamondPriceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DiamondPriceResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create diamond price success",
		zap.String("price_id", price.ID.String()),
		zap.String("category", price.Category),
		zap.Bool("is_default", price.IsDefault),
	)
	return mapToResponse(*price), nil
}

func (s *service) GetAll(ctx context.Context, req ListDiamondPricesRequest) ([]DiamondPriceResponse, error) {
	filter := Filter{
		Category:     strings.TrimSpace(req.Category),
		DepartmentID: req.DepartmentID,
		ActiveOnly:   !req.IncludeInactive,
	}
	if filter != (Filter{ActiveOnly: true}) {
		prices, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(prices), nil
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveCacheKey).Result(); err == nil {
			var resp []DiamondPriceResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveCacheKey, func() (interface{}, error) {
		prices, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(prices)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ActiveCacheKey, jsonData, time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get active diamond prices failed", zap.Error(err))
		return nil, err
	}

	return v.([]DiamondPriceResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DiamondPriceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DiamondPriceResponse{}, diamondpriceerrors.ErrInvalidDiamondPriceID
	}

	price, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DiamondPriceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*price), nil
}

func (s *service) Update(ctx context.Context, id string, req DiamondPriceRequest) (DiamondPriceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DiamondPriceResponse{}, diamondpriceerrors.ErrInvalidDiamondPriceID
	}
	if err := validateRequest(req); err != nil {
		return DiamondPriceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DiamondPriceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	price, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DiamondPriceResponse{}, mapRepositoryError(err)
	}

	applyRequest(price, req)

	if price.IsDefault {
		if err := qtx.UnsetDefaults(ctx, price.Category, id); err != nil {
			return DiamondPriceResponse{}, err
		}
	}

	if err := qtx.Update(ctx, price); err != nil {
		s.logger.Error("update diamond price persist failed", zap.Error(err))
		return DiamondPriceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DiamondPriceResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("update diamond price success", zap.String("price_id", id))
	return mapToResponse(*price), nil
}

// Delete removes the rule. Entries keep their snapshotted price.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return diamondpriceerrors.ErrInvalidDiamondPriceID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("delete diamond price success", zap.String("price_id", id))
	return nil
}

func (s *service) Resolve(ctx context.Context, req ResolvePriceRequest) (ResolvedPriceResponse, error) {
	mode := PrecedenceCreate
	if req.Mode == "update" {
		mode = PrecedenceUpdate
	}

	price, tier, err := Resolve(ctx, s.repo, Query{
		Category:      req.Category,
		DepartmentID:  req.DepartmentID,
		SubDepartment: req.SubDepartment,
	}, mode)
	if err != nil {
		return ResolvedPriceResponse{}, err
	}

	return ResolvedPriceResponse{
		RuleID:   price.ID.String(),
		Category: price.Category,
		Price:    price.Price,
		Tier:     tier,
	}, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate diamond price cache", zap.Error(err))
	}
}

func validateRequest(req DiamondPriceRequest) error {
	if !req.Price.IsPositive() {
		return diamondpriceerrors.ErrInvalidPrice
	}
	if !wage.IsMoney(req.Price) {
		return diamondpriceerrors.ErrPricePrecision
	}
	if req.SubDepartment != "" && req.DepartmentID == "" {
		return diamondpriceerrors.ErrSubDepartmentRequiresDepartment
	}
	if req.IsDefault && req.DepartmentID != "" {
		return diamondpriceerrors.ErrDefaultCannotBeScoped
	}
	return nil
}

func applyRequest(p *DiamondPrice, req DiamondPriceRequest) {
	p.Category = strings.TrimSpace(req.Category)
	p.Price = req.Price
	p.DepartmentID = nil
	if id, err := uuid.Parse(req.DepartmentID); err == nil {
		p.DepartmentID = &id
	}
	p.SubDepartment = nil
	if sub := strings.TrimSpace(req.SubDepartment); sub != "" {
		p.SubDepartment = &sub
	}
	p.IsDefault = req.IsDefault
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.Description = req.Description
}

func mapToResponse(p DiamondPrice) DiamondPriceResponse {
	resp := DiamondPriceResponse{
		ID:          p.ID.String(),
		Category:    p.Category,
		Price:       p.Price,
		IsDefault:   p.IsDefault,
		IsActive:    p.IsActive,
		Description: p.Description,
	}
	if p.DepartmentID != nil {
		resp.DepartmentID = p.DepartmentID.String()
	}
	if p.SubDepartment != nil {
		resp.SubDepartment = *p.SubDepartment
	}
	return resp
}

func mapToListResponse(prices []DiamondPrice) []DiamondPriceResponse {
	res := make([]DiamondPriceResponse, len(prices))
	for i, p := range prices {
		res[i] = mapToResponse(p)
	}
	return res
}
