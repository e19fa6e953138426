package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/clockwise/timetracker/docs"
	"github.com/clockwise/timetracker/internal/api/handler"
	"github.com/clockwise/timetracker/internal/api/middleware"
	"github.com/clockwise/timetracker/internal/core/domain"
	"github.com/clockwise/timetracker/internal/core/ports"
	"github.com/clockwise/timetracker/internal/core/service"
	mongodb "github.com/clockwise/timetracker/internal/infrastructure/db/mongo"
	redisdb "github.com/clockwise/timetracker/internal/infrastructure/db/redis"
	"github.com/clockwise/timetracker/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed by the caller so its worker lifecycle is
// owned by main, not by the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timetracker"))

	// --- Dependencies ---
	recordRepo := mongodb.NewRecordRepository(db)
	userRepo := redisdb.NewCachedUserRepository(mongodb.NewUserRepository(db), rdb, log)

	recordService := service.NewRecordService(recordRepo, userRepo, audit, log)
	userService := service.NewUserService(userRepo, log)

	recordHandler := handler.NewRecordHandler(recordService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Record routes ---
	records := e.Group("/v1/records", authMiddleware)
	records.GET("", recordHandler.List)
	records.POST("", recordHandler.Create)
	records.GET("/export", recordHandler.Export)
	records.GET("/:id", recordHandler.Get)
	records.PUT("/:id", recordHandler.Update)
	records.DELETE("/:id", recordHandler.Delete)

	// --- User routes ---
	users := e.Group("/v1/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.PUT("/me/preferred-hours", userHandler.SetPreferredHours, middleware.RequireRank(domain.RoleManager))
	users.GET("", userHandler.Search, middleware.RequireRank(domain.RoleAdmin))

	return e
}
