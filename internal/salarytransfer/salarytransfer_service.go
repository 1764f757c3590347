package salarytransfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-diamond-payroll/internal/bankdetail"
	bankdetailerrors "go-diamond-payroll/internal/bankdetail/errors"
	"go-diamond-payroll/internal/diamondentry"
	"go-diamond-payroll/internal/employee"
	employeeerrors "go-diamond-payroll/internal/employee/errors"
	"go-diamond-payroll/internal/events"
	"go-diamond-payroll/internal/messaging/kafka"
	salarytransfererrors "go-diamond-payroll/internal/salarytransfer/errors"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/shared/counter"
	"go-diamond-payroll/internal/shared/response"
	"go-diamond-payroll/internal/shared/storage"
	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salarytransfer_service.go -destination=mock/salarytransfer_service_mock.go -package=mock
type Service interface {
	Pay(ctx context.Context, employeeID string, req PayRequest) (PayResponse, error)
	BulkTransfer(ctx context.Context, req BulkTransferRequest) (BulkTransferResponse, error)
	ExportBulkSheet(ctx context.Context, req BulkTransferRequest) ([]byte, string, error)
	GetPayments(ctx context.Context, req ListPaymentsRequest) ([]PaymentResponse, *response.PaginationMeta, error)
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	Receipt(ctx context.Context, employeeID string, req ReceiptRequest) ([]byte, string, error)
	ArchiveReceipt(ctx context.Context, paymentID string) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	empRepo   employee.Repository
	entryRepo diamondentry.Repository
	bankRepo  bankdetail.Repository
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	store     storage.ObjectStore
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	empRepo employee.Repository,
	entryRepo diamondentry.Repository,
	bankRepo bankdetail.Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	store storage.ObjectStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salarytransfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarytransfer.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		empRepo:   empRepo,
		entryRepo: entryRepo,
		bankRepo:  bankRepo,
		counter:   counterRepo,
		outbox:    outbox,
		store:     store,
		now:       time.Now,
		logger:    l,
	}
}

// settle runs the per-employee part of a settlement on an already locked
// employee: refresh figures, delete the period's entries, issue the receipt,
// wipe compensation and queue salary.paid. The caller owns tx and the bank.
func (s *service) settle(
	ctx context.Context,
	tx *sql.Tx,
	emp *employee.Employee,
	month, year int,
	method string,
	bankID *uuid.UUID,
) (*SalaryPayment, error) {
	empRepo := s.empRepo.WithTx(tx)

	var figures []wage.EntryFigures
	if emp.EmployeeType == wage.TypeChutak {
		f, err := empRepo.ListEntryFigures(ctx, emp.ID.String())
		if err != nil {
			return nil, err
		}
		figures = f
	}
	result := emp.Recalculate(figures)

	deleted, err := s.entryRepo.WithTx(tx).DeleteForPeriod(ctx, emp.ID.String(), month, year)
	if err != nil {
		return nil, err
	}

	paidAt := s.now().UTC()
	seq, err := s.counter.WithTx(tx).NextValue(ctx, counter.ReceiptKey(paidAt.Year()))
	if err != nil {
		return nil, err
	}

	if method = strings.TrimSpace(method); method == "" {
		method = DefaultPaymentMethod
	}

	payment := &SalaryPayment{
		ID:            uuid.New(),
		EmployeeID:    emp.ID,
		Month:         month,
		Year:          year,
		Amount:        emp.NetSalary,
		GrossSalary:   result.GrossSalary,
		Deductions:    result.Deductions,
		PaymentMethod: method,
		BankDetailID:  bankID,
		ReceiptNumber: ReceiptNumber(paidAt.Year(), seq),
		EntryCount:    int(deleted),
		PaidAt:        paidAt,
		Status:        PaymentStatusPaid,
	}
	if err := s.repo.WithTx(tx).Create(ctx, payment); err != nil {
		return nil, mapRepositoryError(err)
	}

	emp.ZeroCompensation()
	if err := empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		ev, err := kafka.NewOutboxEvent(rid, "salary_payment", payment.ID.String(), events.SalaryPaidType, events.SalaryPaidTopic,
			events.SalaryPaidEvent{
				EventType:     events.SalaryPaidType,
				RequestID:     rid,
				PaymentID:     payment.ID.String(),
				EmployeeID:    emp.ID.String(),
				ReceiptNumber: payment.ReceiptNumber,
				Month:         month,
				Year:          year,
				Amount:        payment.Amount.StringFixed(2),
				OccurredAt:    paidAt,
			})
		if err != nil {
			return nil, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
			return nil, err
		}
	}

	return payment, nil
}

// Pay settles one employee for month/year inside a single transaction.
func (s *service) Pay(ctx context.Context, employeeID string, req PayRequest) (PayResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !validPeriod(req.Month, req.Year) {
		return PayResponse{}, salarytransfererrors.ErrInvalidPeriod
	}

	var bankID *uuid.UUID
	if req.BankDetailID != "" {
		id, err := uuid.Parse(req.BankDetailID)
		if err != nil {
			return PayResponse{}, bankdetailerrors.ErrInvalidBankDetailID
		}
		bankID = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayResponse{}, err
	}
	defer tx.Rollback()

	emp, err := s.empRepo.WithTx(tx).FindByIDForUpdate(ctx, employeeID)
	if err != nil {
		return PayResponse{}, mapEmployeeError(err)
	}

	var bank *bankdetail.BankDetail
	if bankID != nil {
		bank, err = s.bankRepo.WithTx(tx).FindByIDForUpdate(ctx, bankID.String())
		if err != nil {
			return PayResponse{}, bankdetail.MapRepositoryError(err)
		}
	}

	payment, err := s.settle(ctx, tx, emp, req.Month, req.Year, req.PaymentMethod, bankID)
	if err != nil {
		log.Error("pay salary settle failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PayResponse{}, err
	}

	resp := PayResponse{
		Employee: mapToSettledEmployee(emp),
		Payment:  mapToPaymentResponse(*payment),
	}

	if bank != nil {
		bank.Debit(debitAmount(payment.Amount))
		if err := s.bankRepo.WithTx(tx).Update(ctx, bank); err != nil {
			return PayResponse{}, err
		}
		balance := bank.Amount
		resp.BankDetailID = bank.ID.String()
		resp.BankBalance = &balance
	}

	if err := tx.Commit(); err != nil {
		return PayResponse{}, err
	}

	log.Info("pay salary success",
		zap.String("employee_id", employeeID),
		zap.String("receipt_number", payment.ReceiptNumber),
		zap.String("amount", payment.Amount.String()),
	)
	return resp, nil
}

// BulkTransfer previews or settles every active employee. Each employee is
// settled and debited from the bank in its own transaction; one failure
// never undoes another's settlement.
func (s *service) BulkTransfer(ctx context.Context, req BulkTransferRequest) (BulkTransferResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	month, year := s.period(req.Month, req.Year)
	if !validPeriod(month, year) {
		return BulkTransferResponse{}, salarytransfererrors.ErrInvalidPeriod
	}

	if req.MarkAsPaid && req.BankDetailID == "" {
		return BulkTransferResponse{}, salarytransfererrors.ErrBankDetailRequired
	}

	var bank *bankdetail.BankDetail
	if req.BankDetailID != "" {
		if _, err := uuid.Parse(req.BankDetailID); err != nil {
			return BulkTransferResponse{}, bankdetailerrors.ErrInvalidBankDetailID
		}
		b, err := s.bankRepo.FindByID(ctx, req.BankDetailID)
		if err != nil {
			return BulkTransferResponse{}, bankdetail.MapRepositoryError(err)
		}
		bank = b
	}

	active := true
	emps, _, err := s.empRepo.FindAll(ctx, employee.Filter{Active: &active})
	if err != nil {
		return BulkTransferResponse{}, err
	}

	resp := BulkTransferResponse{
		Month:       month,
		Year:        year,
		MarkAsPaid:  req.MarkAsPaid,
		Employees:   make([]BulkTransferRow, 0, len(emps)),
		TotalAmount: decimal.Zero,
	}
	if bank != nil {
		balance := bank.Amount
		resp.BankDetailID = bank.ID.String()
		resp.BankBalance = &balance
	}

	for i := range emps {
		emp := &emps[i]
		row := bulkRow(emp)

		if !emp.HasBankDetails() {
			row.Status = StatusNoBankDetails
			resp.FailedCount++
			resp.Employees = append(resp.Employees, row)
			continue
		}

		if !req.MarkAsPaid {
			row.Status = StatusPending
			resp.TotalAmount = resp.TotalAmount.Add(debitAmount(row.Amount))
			resp.Employees = append(resp.Employees, row)
			continue
		}

		payment, balance, err := s.settleOne(ctx, emp.ID.String(), month, year, req.PaymentMethod, bank.ID)
		if err != nil {
			log.Warn("bulk transfer employee failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			row.Status = StatusPaymentRecordError
			row.Error = err.Error()
			resp.FailedCount++
			resp.Employees = append(resp.Employees, row)
			continue
		}

		row.Amount = payment.Amount
		row.Status = StatusSuccess
		row.PaymentID = payment.ID.String()
		row.ReceiptNumber = payment.ReceiptNumber
		resp.SuccessCount++
		resp.TotalAmount = resp.TotalAmount.Add(debitAmount(payment.Amount))
		resp.BankBalance = &balance
		resp.Employees = append(resp.Employees, row)
	}

	log.Info("bulk transfer done",
		zap.Bool("mark_as_paid", req.MarkAsPaid),
		zap.Int("success", resp.SuccessCount),
		zap.Int("failed", resp.FailedCount),
		zap.String("total", resp.TotalAmount.String()),
	)
	return resp, nil
}

// settleOne settles one employee and debits the bank in the same
// transaction. It returns the bank balance after the debit.
func (s *service) settleOne(ctx context.Context, employeeID string, month, year int, method string, bankID uuid.UUID) (*SalaryPayment, decimal.Decimal, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer tx.Rollback()

	emp, err := s.empRepo.WithTx(tx).FindByIDForUpdate(ctx, employeeID)
	if err != nil {
		return nil, decimal.Zero, mapEmployeeError(err)
	}

	bankRepo := s.bankRepo.WithTx(tx)
	bank, err := bankRepo.FindByIDForUpdate(ctx, bankID.String())
	if err != nil {
		return nil, decimal.Zero, bankdetail.MapRepositoryError(err)
	}

	payment, err := s.settle(ctx, tx, emp, month, year, method, &bankID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	bank.Debit(debitAmount(payment.Amount))
	if err := bankRepo.Update(ctx, bank); err != nil {
		return nil, decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return nil, decimal.Zero, err
	}
	return payment, bank.Amount, nil
}

func (s *service) ExportBulkSheet(ctx context.Context, req BulkTransferRequest) ([]byte, string, error) {
	req.MarkAsPaid = false
	preview, err := s.BulkTransfer(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := BuildTransferSheet(preview)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("salary-transfer-%d-%02d.xlsx", preview.Year, preview.Month), nil
}

func (s *service) GetPayments(ctx context.Context, req ListPaymentsRequest) ([]PaymentResponse, *response.PaginationMeta, error) {
	filter := Filter{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if filter.Page > 0 && filter.PageSize == 0 {
		filter.PageSize = 20
	}

	payments, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = mapToPaymentResponse(p)
	}

	var meta *response.PaginationMeta
	if filter.Page > 0 {
		m := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
		meta = &m
	}
	return res, meta, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (PaymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PaymentResponse{}, salarytransfererrors.ErrInvalidPaymentID
	}

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	return mapToPaymentResponse(*payment), nil
}

// Receipt renders the PDF for a payment of employeeID, the latest one unless
// req names a payment.
func (s *service) Receipt(ctx context.Context, employeeID string, req ReceiptRequest) ([]byte, string, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, "", employeeerrors.ErrInvalidEmployeeID
	}

	var (
		payment *SalaryPayment
		err     error
	)
	if req.PaymentID != "" {
		payment, err = s.repo.FindByID(ctx, req.PaymentID)
		if err != nil {
			return nil, "", mapRepositoryError(err)
		}
		if payment.EmployeeID.String() != employeeID {
			return nil, "", salarytransfererrors.ErrPaymentEmployeeMismatch
		}
	} else {
		payment, err = s.repo.FindLatestByEmployee(ctx, employeeID)
		if errors.Is(mapRepositoryError(err), salarytransfererrors.ErrPaymentNotFound) {
			return nil, "", salarytransfererrors.ErrNoPaymentsForEmployee
		}
		if err != nil {
			return nil, "", err
		}
	}

	data, err := s.render(ctx, *payment)
	if err != nil {
		return nil, "", err
	}
	return data, payment.ReceiptNumber + ".pdf", nil
}

// ArchiveReceipt stores the receipt PDF of paymentID and records its
// location. Archiving an already archived payment returns the stored URL.
func (s *service) ArchiveReceipt(ctx context.Context, paymentID string) (string, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return "", mapRepositoryError(err)
	}
	if payment.ReceiptURL != "" {
		return payment.ReceiptURL, nil
	}

	data, err := s.render(ctx, *payment)
	if err != nil {
		return "", err
	}

	url, err := s.store.Put(ctx, ReceiptObjectName(*payment), "application/pdf", data)
	if err != nil {
		return "", err
	}

	if err := s.repo.MarkArchived(ctx, paymentID, url); err != nil {
		return "", mapRepositoryError(err)
	}

	log.Info("archive receipt success",
		zap.String("payment_id", paymentID),
		zap.String("receipt_url", url),
	)
	return url, nil
}

func (s *service) render(ctx context.Context, payment SalaryPayment) ([]byte, error) {
	emp, err := s.empRepo.FindByID(ctx, payment.EmployeeID.String())
	if err != nil {
		return nil, mapEmployeeError(err)
	}

	return RenderReceipt(Receipt{
		Payment:       payment,
		EmployeeCode:  emp.EmployeeCode,
		EmployeeName:  emp.Name,
		BankName:      emp.BankName,
		AccountNumber: emp.AccountNumber,
	})
}

func (s *service) period(month, year int) (int, int) {
	if month > 0 && year > 0 {
		return month, year
	}
	now := s.now().UTC()
	return int(now.Month()), now.Year()
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}

// debitAmount keeps a negative net salary from crediting the bank.
func debitAmount(paid decimal.Decimal) decimal.Decimal {
	if paid.IsNegative() {
		return decimal.Zero
	}
	return paid
}

func bulkRow(emp *employee.Employee) BulkTransferRow {
	return BulkTransferRow{
		EmployeeID:        emp.ID.String(),
		EmployeeCode:      emp.EmployeeCode,
		Name:              emp.Name,
		BankName:          emp.BankName,
		AccountNumber:     emp.AccountNumber,
		IFSCCode:          emp.IFSCCode,
		AccountHolderName: emp.AccountHolderName,
		Amount:            emp.NetSalary,
	}
}

func mapToSettledEmployee(emp *employee.Employee) SettledEmployee {
	return SettledEmployee{
		ID:             emp.ID.String(),
		EmployeeCode:   emp.EmployeeCode,
		Name:           emp.Name,
		EmployeeType:   emp.EmployeeType,
		Salary:         emp.Salary,
		AdvancedSalary: emp.AdvancedSalary,
		PF:             emp.PF,
		PT:             emp.PT,
		GrossSalary:    emp.GrossSalary,
		NetSalary:      emp.NetSalary,
	}
}

func mapToPaymentResponse(p SalaryPayment) PaymentResponse {
	resp := PaymentResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		Month:         p.Month,
		Year:          p.Year,
		Amount:        p.Amount,
		GrossSalary:   p.GrossSalary,
		Deductions:    p.Deductions,
		PaymentMethod: p.PaymentMethod,
		ReceiptNumber: p.ReceiptNumber,
		EntryCount:    p.EntryCount,
		PaidAt:        p.PaidAt,
		ReceiptURL:    p.ReceiptURL,
		Status:        p.Status,
	}
	if p.BankDetailID != nil {
		resp.BankDetailID = p.BankDetailID.String()
	}
	return resp
}
