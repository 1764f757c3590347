package app

import (
	"context"
	"database/sql"

	"go-diamond-payroll/internal/auth"
	"go-diamond-payroll/internal/bankdetail"
	"go-diamond-payroll/internal/config"
	"go-diamond-payroll/internal/department"
	"go-diamond-payroll/internal/diamondentry"
	"go-diamond-payroll/internal/diamondprice"
	"go-diamond-payroll/internal/employee"
	"go-diamond-payroll/internal/messaging/kafka"
	"go-diamond-payroll/internal/middleware"
	"go-diamond-payroll/internal/rbac"
	"go-diamond-payroll/internal/salaryreport"
	"go-diamond-payroll/internal/salarytransfer"
	"go-diamond-payroll/internal/shared/counter"
	"go-diamond-payroll/internal/shared/storage"
	"go-diamond-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// infra bundles the connections every module is built from.
type infra struct {
	db     *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	store  storage.ObjectStore
}

func registerModules(ctx context.Context, router *gin.Engine, cfg *config.Config, in infra, logger *zap.Logger) error {
	// --- Repositories ---
	userRepo := user.NewRepository(in.gormDB)
	departmentRepo := department.NewRepository(in.gormDB)
	employeeRepo := employee.NewRepository(in.gormDB)
	priceRepo := diamondprice.NewRepository(in.gormDB)
	entryRepo := diamondentry.NewRepository(in.gormDB)
	bankRepo := bankdetail.NewRepository(in.gormDB)
	paymentRepo := salarytransfer.NewRepository(in.gormDB)
	counterRepo := counter.NewRepository(in.gormDB)
	outboxRepo := kafka.NewOutboxRepository(in.db)

	if err := seedAdmin(ctx, userRepo, cfg.Admin, logger); err != nil {
		return err
	}

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(cfg.RBAC.ModelPath, cfg.RBAC.PolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	tokens := auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTokenExpire,
		RefreshTTL: cfg.JWT.RefreshTokenExpire,
	}
	authMW := middleware.AuthMiddleware(cfg.JWT.Secret)

	// --- Services ---
	authService := auth.NewService(userRepo, tokens, logger)
	userService := user.NewService(in.db, userRepo, logger)
	departmentService := department.NewService(in.db, departmentRepo, in.rdb, logger)
	employeeService := employee.NewService(in.db, employeeRepo, departmentRepo, counterRepo, outboxRepo, in.rdb, logger)
	priceService := diamondprice.NewService(in.db, priceRepo, in.rdb, logger)
	entryService := diamondentry.NewService(in.db, entryRepo, employeeRepo, priceRepo, logger)
	bankService := bankdetail.NewService(in.db, bankRepo, logger)
	transferService := salarytransfer.NewService(in.db, paymentRepo, employeeRepo, entryRepo, bankRepo, counterRepo, outboxRepo, in.store, logger)
	reportService := salaryreport.NewService(employeeRepo, entryRepo, paymentRepo, departmentRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.App.IsProduction(), tokens, logger)
	userHandler := user.NewHandler(userService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	priceHandler := diamondprice.NewHandler(priceService, logger)
	entryHandler := diamondentry.NewHandler(entryService, logger)
	bankHandler := bankdetail.NewHandler(bankService, logger)
	transferHandler := salarytransfer.NewHandler(transferService, in.rdb, logger)
	reportHandler := salaryreport.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	registerHealth(router, in.db, in.rdb)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, rbacService, authMW, logger)
		user.RegisterRoutes(api, userHandler, rbacService, authMW, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, authMW, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authMW, logger)
		diamondprice.RegisterRoutes(api, priceHandler, rbacService, authMW, logger)
		diamondentry.RegisterRoutes(api, entryHandler, rbacService, authMW, logger)
		bankdetail.RegisterRoutes(api, bankHandler, rbacService, authMW, logger)
		salarytransfer.RegisterRoutes(api, transferHandler, rbacService, authMW, logger, in.rdb)
		salaryreport.RegisterRoutes(api, reportHandler, rbacService, authMW, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
	}

	return nil
}
