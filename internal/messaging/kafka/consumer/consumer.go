package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-diamond-payroll/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ReceiptArchiver renders a stored payment's receipt and records where it landed.
type ReceiptArchiver interface {
	ArchiveReceipt(ctx context.Context, paymentID string) (string, error)
}

// ErrSkipMessage tells the loop to commit a message without processing it.
var ErrSkipMessage = errors.New("skip message")

// ConsumeSalaryPaid archives a PDF receipt for every salary.paid event.
func ConsumeSalaryPaid(
	ctx context.Context,
	reader MessageReader,
	archiver ReceiptArchiver,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_paid")
	log.Info("salary paid consumer started")

	run(ctx, reader, log, func(msg kafkago.Message) error {
		var event events.SalaryPaidEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary.paid event failed", zap.Error(err))
			return ErrSkipMessage
		}
		if event.PaymentID == "" {
			log.Warn("salary.paid event without payment id", zap.String("employee_id", event.EmployeeID))
			return ErrSkipMessage
		}

		url, err := archiver.ArchiveReceipt(ctx, event.PaymentID)
		if err != nil {
			log.Error("archive salary receipt failed",
				zap.String("payment_id", event.PaymentID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			return err
		}

		log.Info("salary receipt archived",
			zap.String("payment_id", event.PaymentID),
			zap.String("receipt_number", event.ReceiptNumber),
			zap.String("receipt_url", url),
		)
		return nil
	})

	log.Info("salary paid consumer stopped")
}

// run fetches until ctx ends. Messages whose handler fails are left
// uncommitted so the group redelivers them after a rebalance.
func run(ctx context.Context, reader MessageReader, log *zap.Logger, handle func(kafkago.Message) error) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(msg); err != nil && !errors.Is(err, ErrSkipMessage) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
