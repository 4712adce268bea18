package main

import (
	"os"
	"time"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/app"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/bootstrap"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The bootstrap endpoint runs as its own process so the service-role database
// credentials never reach the main API.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	if err := app.BuildFirstAdminApp(r); err != nil {
		logger.Fatal("build firstadmin app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("FIRSTADMIN_PORT")
	if port == "" {
		port = "3001"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
