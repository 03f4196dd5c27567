package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quynhnga171088/user-management/internal/api/handler"
	"github.com/quynhnga171088/user-management/internal/api/middleware"
	"github.com/quynhnga171088/user-management/internal/core/domain"
	"github.com/quynhnga171088/user-management/internal/core/ports"
	"github.com/quynhnga171088/user-management/internal/core/service"
	"github.com/quynhnga171088/user-management/internal/infrastructure/config"
	mongodb "github.com/quynhnga171088/user-management/internal/infrastructure/db/mongo"
	redisdb "github.com/quynhnga171088/user-management/internal/infrastructure/db/redis"
	"github.com/quynhnga171088/user-management/internal/infrastructure/http/handlers"
	"github.com/quynhnga171088/user-management/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	issuer := security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)
	}

	authService := service.NewAuthService(userRepo, hasher, issuer, limiter)
	userService := service.NewUserService(userRepo, hasher)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- User CRUD (token + role gated) ---
	users := e.Group("/api/users", middleware.Auth(issuer))
	users.GET("", userHandler.List, middleware.RequireAny(domain.RoleAdmin, domain.RoleUser))
	users.GET("/:id", userHandler.Get, middleware.RequireAny(domain.RoleAdmin, domain.RoleUser))
	users.POST("", userHandler.Create, middleware.RequireAll(domain.RoleAdmin))
	users.PUT("/:id", userHandler.Update, middleware.RequireAll(domain.RoleAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireAll(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Ready)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
