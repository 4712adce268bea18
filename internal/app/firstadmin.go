package app

import (
	"os"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildFirstAdminApp mounts only the bootstrap endpoint. It connects with the
// service-role credentials, which can write user_roles; the main API never
// holds them.
func BuildFirstAdminApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("SERVICE_ROLE_DB_USER"),
		os.Getenv("SERVICE_ROLE_DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("service-role database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	repo := firstadmin.NewRepository(sqlDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	service := firstadmin.NewServiceWithOutbox(sqlDB, repo, outboxRepo)
	handler := firstadmin.NewHandler(service)

	firstadmin.RegisterRoutes(router, handler)

	return nil
}
