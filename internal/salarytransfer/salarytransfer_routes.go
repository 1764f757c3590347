package salarytransfer

import (
	"go-diamond-payroll/internal/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	transfers := r.Group("/salary-transfer")
	transfers.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		transfers.POST("/pay/:employeeId", payChain(rbacService, redisClient, h.Pay)...)
		transfers.POST("/bulk", payChain(rbacService, redisClient, h.BulkTransfer)...)
		transfers.GET("/bulk/export", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "salary_transfer", "read"), gzip.Gzip(gzip.DefaultCompression), h.ExportBulkSheet)
		transfers.GET("/payments", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "salary_transfer", "read"), h.GetPayments)
		transfers.GET("/payments/:id", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "salary_transfer", "read"), h.GetPayment)
		transfers.GET("/receipt/:employeeId", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "salary_transfer", "read"), h.Receipt)
	}
}

// payChain guards settlement writes. Without redis, Idempotency-Key headers
// are ignored.
func payChain(rbacService middleware.RBACService, rdb *redis.Client, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{
		middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "salary_transfer", "pay"),
	}
	if rdb != nil {
		chain = append(chain, middleware.Idempotency(rdb))
	}
	return append(chain, h)
}
