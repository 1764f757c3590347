package contextutil_test

import (
	"context"
	"testing"

	"go-diamond-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithRole(ctx, "accountant")

	meta := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "req-1", meta.RequestID)
	assert.Equal(t, "user-1", meta.UserID)
	assert.Equal(t, "accountant", meta.Role)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		def := zap.NewExample()
		assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})

	t.Run("prefers request logger", func(t *testing.T) {
		reqLogger := zap.NewExample().Named("req")
		ctx := contextutil.WithLogger(context.Background(), reqLogger)
		assert.Same(t, reqLogger, contextutil.GetLogger(ctx, zap.NewNop()))
	})
}
