package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ebuddy/user-api/internal/api/handler"
	"github.com/ebuddy/user-api/internal/api/middleware"
	"github.com/ebuddy/user-api/internal/core/domain"
	"github.com/ebuddy/user-api/internal/core/service"
	"github.com/ebuddy/user-api/internal/infrastructure/config"
	mongodb "github.com/ebuddy/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ebuddy/user-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("ebuddy"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cache := redisdb.NewUserCache(rdb, cfg.Redis.CacheTTL)
	tokens := service.NewJWTTokens(cfg.JWTSecret, cfg.TokenTTL)

	// Verification falls back to the legacy secret so a rotation does not
	// invalidate tokens issued before it.
	verifier := service.VerifierChain{tokens}
	if cfg.JWTLegacySecret != "" {
		verifier = append(verifier, service.NewJWTTokens(cfg.JWTLegacySecret, cfg.TokenTTL))
	}

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	requireAuth := middleware.Auth(verifier)

	// --- Public routes ---
	e.POST("/users/login", authHandler.Login)
	e.POST("/users", authHandler.Register)
	e.POST("/users/create", authHandler.Register)

	// --- Authenticated routes ---
	e.GET("/fetch-user-data", userHandler.List, requireAuth)
	e.GET("/users/:id", userHandler.Get, requireAuth)
	e.PUT("/update-user-data/:id", userHandler.Update, requireAuth)
	e.DELETE("/users/:id", userHandler.Delete, requireAuth, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
