package salaryreport

import (
	"go-diamond-payroll/internal/middleware"

	"github.com/gin-contrib/gzip"
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
	reports := r.Group("/salary-report")
	reports.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger), gzip.Gzip(gzip.DefaultCompression))
	{
		reports.GET("", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "salary_report", "read"), h.Report)
		reports.GET("/excel", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "salary_report", "export"), h.Excel)
		reports.GET("/pdf", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "salary_report", "export"), h.PDF)
	}
}
