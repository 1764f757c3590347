package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-diamond-payroll/internal/events"
	"go-diamond-payroll/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeArchiver struct {
	calls []string
	fail  string
}

func (a *fakeArchiver) ArchiveReceipt(_ context.Context, paymentID string) (string, error) {
	a.calls = append(a.calls, paymentID)
	if paymentID == a.fail {
		return "", errors.New("minio down")
	}
	return "salary-receipts/" + paymentID + ".pdf", nil
}

func salaryPaid(t *testing.T, paymentID string) kafkago.Message {
	payload, err := json.Marshal(events.SalaryPaidEvent{EventType: events.SalaryPaidType, PaymentID: paymentID})
	assert.NoError(t, err)
	return kafkago.Message{Key: []byte(paymentID), Value: payload}
}

func TestConsumeSalaryPaid(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			salaryPaid(t, "pay-1"),
			{Value: []byte("not json")},
			salaryPaid(t, "pay-2"),
		},
	}
	archiver := &fakeArchiver{fail: "pay-2"}

	consumer.ConsumeSalaryPaid(ctx, reader, archiver, zap.NewNop())

	assert.Equal(t, []string{"pay-1", "pay-2"}, archiver.calls)
	// pay-2 failed and stays uncommitted; the malformed message is skipped.
	assert.Len(t, reader.committed, 2)
	assert.Equal(t, "pay-1", string(reader.committed[0].Key))
}
