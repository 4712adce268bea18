package app

import (
	"database/sql"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/alarma"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/auth"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/dashboard"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/empresa"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/portal"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/role"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/sistema"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario"

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
	alarmaRepo := alarma.NewRepository(gormDB)
	aplicativoRepo := aplicativo.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	empresaRepo := empresa.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	portalRepo := portal.NewRepository(db)
	roleRepo := role.NewRepository(gormDB)
	sistemaRepo := sistema.NewRepository(gormDB)
	usuarioRepo := usuario.NewRepository(db)

	// --- Services ---
	roleService := role.NewService(roleRepo, rdb)
	alarmaService := alarma.NewService(alarmaRepo)
	aplicativoService := aplicativo.NewService(aplicativoRepo)
	authService := auth.NewService(authRepo, roleService)
	dashboardService := dashboard.NewService(dashboardRepo)
	empresaService := empresa.NewServiceWithOutbox(db, empresaRepo, outboxRepo, rdb)
	portalService := portal.NewService(portalRepo)
	sistemaService := sistema.NewService(sistemaRepo)
	usuarioService := usuario.NewServiceWithOutbox(db, usuarioRepo, outboxRepo)

	// --- Handlers ---
	alarmaHandler := alarma.NewHandler(alarmaService)
	aplicativoHandler := aplicativo.NewHandler(aplicativoService)
	authHandler := auth.NewHandler(authService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	empresaHandler := empresa.NewHandler(empresaService)
	portalHandler := portal.NewHandler(portalService)
	sistemaHandler := sistema.NewHandler(sistemaService)
	usuarioHandler := usuario.NewHandler(usuarioService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		portal.RegisterRoutes(api, portalHandler)
	}

	// Every admin route sits behind identity plus the role check. Writes
	// accept an Idempotency-Key so a retried POST does not duplicate rows.
	admin := api.Group("/admin",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(zap.L()),
		middleware.AdminGuard(roleService),
		middleware.Idempotency(rdb),
	)
	{
		alarma.RegisterRoutes(admin, alarmaHandler)
		aplicativo.RegisterRoutes(admin, aplicativoHandler)
		dashboard.RegisterRoutes(admin, dashboardHandler)
		empresa.RegisterRoutes(admin, empresaHandler)
		sistema.RegisterRoutes(admin, sistemaHandler)
		usuario.RegisterRoutes(admin, usuarioHandler)
	}

	return nil
}
