package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Klit-Bucinca/SkillHire/internal/api/handler"
	"github.com/Klit-Bucinca/SkillHire/internal/api/middleware"
	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/service"
	"github.com/Klit-Bucinca/SkillHire/internal/infrastructure/db/postgres"
	redisinfra "github.com/Klit-Bucinca/SkillHire/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skillhire"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	hireRepo := postgres.NewHireRepository(db)
	dedup := redisinfra.NewDedupChecker(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	hireService := service.NewHireService(hireRepo, userRepo, dedup, log)
	statsService := service.NewStatsService(hireRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	hireHandler := handler.NewHireHandler(hireService)
	statsHandler := handler.NewStatsHandler(statsService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Hire routes ---
	hire := e.Group("/hire", authn)
	hire.POST("", hireHandler.Create, middleware.RBAC(domain.RoleClient))
	hire.GET("", hireHandler.ListAll, middleware.RBAC(domain.RoleAdmin))
	hire.GET("/admin/stats", statsHandler.AdminStats, middleware.RBAC(domain.RoleAdmin, domain.RoleWorker))
	hire.GET("/client/stats", statsHandler.ClientStats, middleware.RBAC(domain.RoleClient, domain.RoleAdmin))
	hire.GET("/worker/:id", hireHandler.ListForWorker, middleware.RBAC(domain.RoleWorker, domain.RoleAdmin))
	hire.GET("/client/:id", hireHandler.ListForClient, middleware.RBAC(domain.RoleClient, domain.RoleAdmin))
	hire.GET("/:id", hireHandler.Get)
	hire.PUT("/:id", hireHandler.UpdateStatus, middleware.RBAC(domain.RoleWorker, domain.RoleAdmin))

	// --- User routes ---
	users := e.Group("/users", authn)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, middleware.RBAC(domain.RoleAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
