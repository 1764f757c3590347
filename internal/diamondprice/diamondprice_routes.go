package diamondprice

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
	prices := r.Group("/diamond-prices")
	prices.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		prices.GET("", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "diamond_price", "read"), h.GetAll)
		prices.GET("/resolve", middleware.RateLimitByUser(10, 40), middleware.RBACAuthorize(rbacService, "diamond_price", "read"), h.Resolve)
		prices.GET("/:id", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "diamond_price", "read"), h.GetByID)
		prices.POST("", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "diamond_price", "create"), h.Create)
		prices.PUT("/:id", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "diamond_price", "update"), h.Update)
		prices.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), middleware.RBACAuthorize(rbacService, "diamond_price", "delete"), h.Delete)
	}
}
