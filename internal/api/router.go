package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/morice333/workstation-queue-dashboard/internal/api/handler"
	"github.com/morice333/workstation-queue-dashboard/internal/api/middleware"
	"github.com/morice333/workstation-queue-dashboard/internal/core/ports"
	"github.com/morice333/workstation-queue-dashboard/internal/core/service"
	mongodb "github.com/morice333/workstation-queue-dashboard/internal/infrastructure/db/mongo"

	_ "github.com/morice333/workstation-queue-dashboard/internal/docs"
)

// Options carries everything the router needs beyond its datastore handles.
type Options struct {
	JWTSecret  string
	SessionTTL time.Duration
	Notifier   ports.Notifier
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("workstation_queue"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.SessionTTL)
	reservationService := service.NewReservationService(reservationRepo, opts.Notifier, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, opts.SessionTTL)
	reservationHandler := handler.NewReservationHandler(reservationService)
	adminHandler := handler.NewAdminHandler(reservationService, db)

	authMw := middleware.Auth(opts.JWTSecret)
	adminMw := middleware.RBAC("/", "admin")
	loginLimiter := middleware.NewLoginRateLimiter(10, 10)
	e.Server.RegisterOnShutdown(loginLimiter.Stop)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginPage)
	// Legacy form path kept alongside the JSON endpoint.
	e.POST("/login", authHandler.Login, loginLimiter.Middleware())
	e.POST("/auth/login", authHandler.Login, loginLimiter.Middleware())
	e.POST("/auth/register", authHandler.Register)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Session routes ---
	session := e.Group("", authMw)
	session.GET("/", reservationHandler.Dashboard)
	session.GET("/logout", authHandler.Logout)
	session.POST("/submit", reservationHandler.Submit)

	// --- Admin routes ---
	admin := e.Group("", authMw, adminMw)
	admin.GET("/admin", adminHandler.Dashboard)
	admin.POST("/update_status/:id", adminHandler.UpdateStatus)
	admin.GET("/admin/export", adminHandler.Export)
	admin.GET("/admin/diag", adminHandler.Diag)

	return e
}
