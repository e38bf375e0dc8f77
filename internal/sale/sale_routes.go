package sale

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
	sales := r.Group("/vendas")
	sales.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		sales.GET("", middleware.RBACAuthorize(rbacService, "sale", "read"), handler.GetAll)
		sales.GET("/:id", middleware.RBACAuthorize(rbacService, "sale", "read"), handler.GetById)
		sales.POST("", middleware.RBACAuthorize(rbacService, "sale", "create"), handler.Create)
		sales.PATCH("/:id", middleware.RBACAuthorize(rbacService, "sale", "update"), handler.Update)
		sales.DELETE("/:id", middleware.RBACAuthorize(rbacService, "sale", "delete"), handler.Delete)
	}
}
