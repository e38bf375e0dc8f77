package relatorio

import (
	"go-engnet/internal/middleware"
	"go-engnet/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	reports := r.Group("/relatorios")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetAll)
		reports.GET("/:id", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetById)
		reports.POST("", middleware.RBACAuthorize(rbacService, "report", "create"), handler.Create)
		reports.PUT("/:id", middleware.RBACAuthorize(rbacService, "report", "update"), handler.Update)
		reports.DELETE("/:id", middleware.RBACAuthorize(rbacService, "report", "delete"), handler.Delete)
	}
}
