package department

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
	departments := r.Group("/departments")
	departments.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		departments.GET("", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
		departments.GET("/:id", middleware.RateLimitByUser(5, 20), middleware.RBACAuthorize(rbacService, "department", "read"), h.GetByID)
		departments.POST("", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "department", "create"), h.Create)
		departments.PUT("/:id", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "department", "update"), h.Update)
		departments.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), middleware.RBACAuthorize(rbacService, "department", "delete"), h.Delete)

		departments.POST("/:id/sub-departments", middleware.RBACAuthorize(rbacService, "department", "update"), h.AddSubDepartment)
		departments.DELETE("/:id/sub-departments/:name", middleware.RBACAuthorize(rbacService, "department", "update"), h.RemoveSubDepartment)
	}
}
