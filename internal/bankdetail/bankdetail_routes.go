package bankdetail

import (
	"go-diamond-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	banks := r.Group("/bank-details")
	banks.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		banks.GET("", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "bank_detail", "read"), h.GetAll)
		banks.GET("/:id", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "bank_detail", "read"), h.GetByID)
		banks.POST("", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "bank_detail", "create"), h.Create)
		banks.PUT("/:id", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "bank_detail", "update"), h.Update)
		banks.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), middleware.RBACAuthorize(rbacService, "bank_detail", "delete"), h.Delete)
		banks.POST("/:id/deposit", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "bank_detail", "deposit"), h.Deposit)
	}
}
