package app

import (
	"context"
	"errors"
	"testing"

	"go-diamond-payroll/internal/messaging/kafka/consumer"
	salarytransfererrors "go-diamond-payroll/internal/salarytransfer/errors"

	"github.com/stretchr/testify/assert"
)

type archiverFunc func(ctx context.Context, paymentID string) (string, error)

func (f archiverFunc) ArchiveReceipt(ctx context.Context, paymentID string) (string, error) {
	return f(ctx, paymentID)
}

func TestSkipMissingPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("missing payment is skipped", func(t *testing.T) {
		a := skipMissingPayments{archiverFunc(func(context.Context, string) (string, error) {
			return "", salarytransfererrors.ErrPaymentNotFound
		})}

		_, err := a.ArchiveReceipt(ctx, "p-1")

		assert.ErrorIs(t, err, consumer.ErrSkipMessage)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		boom := errors.New("minio down")
		a := skipMissingPayments{archiverFunc(func(context.Context, string) (string, error) {
			return "", boom
		})}

		_, err := a.ArchiveReceipt(ctx, "p-1")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("success passes through", func(t *testing.T) {
		a := skipMissingPayments{archiverFunc(func(context.Context, string) (string, error) {
			return "salary-receipts/receipts/2024/03/SR-2024-000001.pdf", nil
		})}

		url, err := a.ArchiveReceipt(ctx, "p-1")

		assert.NoError(t, err)
		assert.Contains(t, url, "SR-2024-000001")
	})
}
