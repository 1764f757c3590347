package app

import (
	"context"

	"go-diamond-payroll/internal/config"
	"go-diamond-payroll/internal/shared/connection"
	"go-diamond-payroll/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the backing services, migrates the schema and mounts
// every module on router. The returned func releases the connections.
func BuildApp(ctx context.Context, cfg *config.Config, router *gin.Engine, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("database schema migrated")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, err
	}

	if err := registerModules(ctx, router, cfg, infra{db: sqlDB, gormDB: gormDB, rdb: rdb, store: store}, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

// newObjectStore returns nil when MinIO is not configured. Only receipt
// archiving needs it, and that runs in the consumer.
func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.MinIO.Endpoint == "" {
		return nil, nil
	}
	client, err := connection.ConnectMinio(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
	if err != nil {
		return nil, err
	}
	return storage.NewMinioStore(client, cfg.MinIO.Bucket), nil
}
