package client

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
	clients := r.Group("/clientes")
	clients.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		clients.GET("", middleware.RBACAuthorize(rbacService, "client", "read"), handler.GetAll)
		clients.GET("/:id", middleware.RBACAuthorize(rbacService, "client", "read"), handler.GetById)
		clients.POST("", middleware.RBACAuthorize(rbacService, "client", "create"), handler.Create)
		clients.PATCH("/:id", middleware.RBACAuthorize(rbacService, "client", "update"), handler.Update)
		clients.DELETE("/:id", middleware.RBACAuthorize(rbacService, "client", "delete"), handler.Delete)
	}
}
