package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/saiketsystems/user-management-api/docs"
	"github.com/saiketsystems/user-management-api/internal/api/handler"
	"github.com/saiketsystems/user-management-api/internal/api/middleware"
	"github.com/saiketsystems/user-management-api/internal/core/domain"
	"github.com/saiketsystems/user-management-api/internal/core/service"
	"github.com/saiketsystems/user-management-api/internal/infrastructure/config"
	mongodb "github.com/saiketsystems/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/saiketsystems/user-management-api/internal/infrastructure/db/redis"
	"github.com/saiketsystems/user-management-api/internal/pkg/password"
	"github.com/saiketsystems/user-management-api/internal/pkg/token"
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
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("user_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	tokens := token.NewManager(token.Config{
		Secret:   cfg.Auth.JWTSecret,
		Lifetime: cfg.Auth.TokenTTL,
	})
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
	userService := service.NewUserService(userRepo, hasher, tokens, limiter, log)

	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/api", handler.Index)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Authenticated user routes ---
	me := e.Group("/api/users/me", authRequired)
	me.GET("", userHandler.GetProfile)
	me.PUT("", userHandler.UpdateProfile)
	me.PUT("/password", userHandler.ChangePassword)
	me.DELETE("", userHandler.DeleteAccount)

	// --- Admin routes ---
	admin := e.Group("/api", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
