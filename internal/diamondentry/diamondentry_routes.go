package diamondentry

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
	entries := r.Group("/diamond-entries")
	entries.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		entries.GET("", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "diamond_entry", "read"), h.GetAll)
		entries.POST("", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "diamond_entry", "create"), h.Create)
		entries.POST("/bulk", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "diamond_entry", "create"), h.BulkCreate)
		entries.GET("/employee/:employeeId/salary", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "diamond_entry", "read"), h.SalarySummary)
		entries.GET("/department/:departmentId/monthly-salary", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "diamond_entry", "read"), h.DepartmentMonthlySalary)
		entries.GET("/:id", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "diamond_entry", "read"), h.GetByID)
		entries.PUT("/:id", middleware.RateLimitByUser(1, 5), middleware.RBACAuthorize(rbacService, "diamond_entry", "update"), h.Update)
		entries.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "diamond_entry", "delete"), h.Delete)
	}
}
