package app

import (
	"context"
	"errors"

	"go-diamond-payroll/internal/config"
	"go-diamond-payroll/internal/employee"
	"go-diamond-payroll/internal/events"
	"go-diamond-payroll/internal/messaging/kafka/consumer"
	"go-diamond-payroll/internal/salarytransfer"
	salarytransfererrors "go-diamond-payroll/internal/salarytransfer/errors"
	"go-diamond-payroll/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// skipMissingPayments turns a vanished payment into a committed no-op so a
// deleted row cannot wedge the partition.
type skipMissingPayments struct {
	consumer.ReceiptArchiver
}

func (s skipMissingPayments) ArchiveReceipt(ctx context.Context, paymentID string) (string, error) {
	url, err := s.ReceiptArchiver.ArchiveReceipt(ctx, paymentID)
	if errors.Is(err, salarytransfererrors.ErrPaymentNotFound) {
		return "", consumer.ErrSkipMessage
	}
	return url, err
}

// RunConsumer archives salary receipts to object storage until ctx is
// cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("MINIO_ENDPOINT is required")
	}

	// Only ArchiveReceipt is reached from here, which needs the payment,
	// employee and store dependencies.
	transferService := salarytransfer.NewService(
		sqlDB,
		salarytransfer.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		nil, nil, nil, nil,
		store,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.SalaryPaidTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeSalaryPaid(ctx, reader, skipMissingPayments{transferService}, logger)

	log.Info("consumer shutting down")
	return nil
}
