package user

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
	users := r.Group("/usuarios")
	users.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetById)
		users.POST("", middleware.RBACAuthorize(rbacService, "user", "create"), handler.Create)
		users.PATCH("/:id", middleware.RBACAuthorize(rbacService, "user", "update"), handler.Update)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, "user", "delete"), handler.Delete)
	}
}
