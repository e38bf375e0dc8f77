package reimbursement

import (
	"go-engnet/internal/middleware"
	"go-engnet/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	reimbursements := r.Group("/reembolsos")
	reimbursements.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		reimbursements.GET("", middleware.RBACAuthorize(rbacService, "reimbursement", "read"), handler.GetAll)
		reimbursements.GET("/:id", middleware.RBACAuthorize(rbacService, "reimbursement", "read"), handler.GetById)
		reimbursements.POST("",
			middleware.RBACAuthorize(rbacService, "reimbursement", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		reimbursements.PATCH("/:id", middleware.RBACAuthorize(rbacService, "reimbursement", "update"), handler.Update)
		reimbursements.DELETE("/:id", middleware.RBACAuthorize(rbacService, "reimbursement", "delete"), handler.Delete)
	}
}
