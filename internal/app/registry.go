package app

import (
	"database/sql"

	"go-engnet/internal/auth"
	"go-engnet/internal/client"
	"go-engnet/internal/messaging/kafka"
	"go-engnet/internal/middleware"
	"go-engnet/internal/rbac"
	"go-engnet/internal/reimbursement"
	"go-engnet/internal/relatorio"
	"go-engnet/internal/sale"
	"go-engnet/internal/shared/counter"
	"go-engnet/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	saleRepo := sale.NewRepository(gormDB)
	reimbursementRepo := reimbursement.NewRepository(gormDB)
	relatorioRepo := relatorio.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	clientService := client.NewService(clientRepo)
	saleService := sale.NewService(saleRepo, counterRepo)
	reimbursementService := reimbursement.NewService(db, reimbursementRepo, counterRepo, outboxRepo)
	relatorioService := relatorio.NewService(relatorioRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	clientHandler := client.NewHandler(clientService)
	saleHandler := sale.NewHandler(saleService)
	reimbursementHandler := reimbursement.NewHandler(reimbursementService)
	relatorioHandler := relatorio.NewHandler(relatorioService)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(zap.L()))

	root := router.Group("")
	{
		auth.RegisterRoutes(root, authHandler)
		user.RegisterRoutes(root, userHandler, rbacService)
		client.RegisterRoutes(root, clientHandler, rbacService)
		sale.RegisterRoutes(root, saleHandler, rbacService)
		reimbursement.RegisterRoutes(root, reimbursementHandler, rbacService, rdb)
		relatorio.RegisterRoutes(root, relatorioHandler, rbacService)
	}

	return nil
}
