package bankdetail

import (
	"context"
	"database/sql"
	"strings"

	bankdetailerrors "go-diamond-payroll/internal/bankdetail/errors"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bankdetail_service.go -destination=mock/bankdetail_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req BankDetailRequest) (BankDetailResponse, error)
	GetAll(ctx context.Context, req ListBankDetailsRequest) ([]BankDetailResponse, error)
	GetByID(ctx context.Context, id string) (BankDetailResponse, error)
	Update(ctx context.Context, id string, req BankDetailRequest) (BankDetailResponse, error)
	Delete(ctx context.Context, id string) error
	Deposit(ctx context.Context, id string, req DepositRequest) (BankDetailResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("bankdetail.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bankdetail.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req BankDetailRequest) (BankDetailResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if req.Amount.IsNegative() {
		return BankDetailResponse{}, bankdetailerrors.ErrInvalidAmount
	}
	if !wage.IsMoney(req.Amount) {
		return BankDetailResponse{}, bankdetailerrors.ErrAmountPrecision
	}

	bank := &BankDetail{
		ID:       uuid.New(),
		Amount:   req.Amount,
		IsActive: true,
	}
	applyRequest(bank, req)

	if err := s.repo.Create(ctx, bank); err != nil {
		log.Warn("create bank detail failed", zap.Error(err))
		return BankDetailResponse{}, mapRepositoryError(err)
	}

	log.Info("create bank detail success",
		zap.String("bank_detail_id", bank.ID.String()),
		zap.String("bank_name", bank.BankName),
	)
	return mapToResponse(*bank), nil
}

func (s *service) GetAll(ctx context.Context, req ListBankDetailsRequest) ([]BankDetailResponse, error) {
	banks, err := s.repo.FindAll(ctx, !req.IncludeInactive)
	if err != nil {
		return nil, err
	}

	res := make([]BankDetailResponse, len(banks))
	for i, b := range banks {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BankDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BankDetailResponse{}, bankdetailerrors.ErrInvalidBankDetailID
	}

	bank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BankDetailResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*bank), nil
}

// Update rewrites the account fields. The balance can only move through
// deposits and salary debits.
func (s *service) Update(ctx context.Context, id string, req BankDetailRequest) (BankDetailResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return BankDetailResponse{}, bankdetailerrors.ErrInvalidBankDetailID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BankDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	bank, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return BankDetailResponse{}, mapRepositoryError(err)
	}

	applyRequest(bank, req)
	if req.IsActive != nil {
		bank.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, bank); err != nil {
		return BankDetailResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return BankDetailResponse{}, err
	}

	log.Info("update bank detail success", zap.String("bank_detail_id", id))
	return mapToResponse(*bank), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return bankdetailerrors.ErrInvalidBankDetailID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	log.Info("delete bank detail success", zap.String("bank_detail_id", id))
	return nil
}

func (s *service) Deposit(ctx context.Context, id string, req DepositRequest) (BankDetailResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return BankDetailResponse{}, bankdetailerrors.ErrInvalidBankDetailID
	}
	if !req.Amount.IsPositive() {
		return BankDetailResponse{}, bankdetailerrors.ErrInvalidDeposit
	}
	if !wage.IsMoney(req.Amount) {
		return BankDetailResponse{}, bankdetailerrors.ErrAmountPrecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BankDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	bank, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return BankDetailResponse{}, mapRepositoryError(err)
	}
	if !bank.IsActive {
		return BankDetailResponse{}, bankdetailerrors.ErrBankDetailInactive
	}

	bank.Credit(req.Amount)
	if err := qtx.Update(ctx, bank); err != nil {
		return BankDetailResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BankDetailResponse{}, err
	}

	log.Info("deposit bank detail success",
		zap.String("bank_detail_id", id),
		zap.String("amount", req.Amount.String()),
		zap.String("balance", bank.Amount.String()),
	)
	return mapToResponse(*bank), nil
}

func applyRequest(bank *BankDetail, req BankDetailRequest) {
	bank.BankName = strings.TrimSpace(req.BankName)
	bank.AccountNumber = strings.TrimSpace(req.AccountNumber)
	bank.AccountHolderName = strings.TrimSpace(req.AccountHolderName)
	bank.IFSCCode = strings.ToUpper(strings.TrimSpace(req.IFSCCode))
	bank.Branch = strings.TrimSpace(req.Branch)
}

func mapToResponse(b BankDetail) BankDetailResponse {
	return BankDetailResponse{
		ID:                b.ID.String(),
		BankName:          b.BankName,
		AccountNumber:     b.AccountNumber,
		AccountHolderName: b.AccountHolderName,
		IFSCCode:          b.IFSCCode,
		Branch:            b.Branch,
		Amount:            b.Amount.Round(2),
		IsActive:          b.IsActive,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

