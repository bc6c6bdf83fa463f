package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/acquisitions/acquisitions-api/internal/api/handler"
	"github.com/acquisitions/acquisitions-api/internal/api/middleware"
	"github.com/acquisitions/acquisitions-api/internal/auth"
	"github.com/acquisitions/acquisitions-api/internal/core/ports"
)

// Deps carries everything the router needs to wire routes.
type Deps struct {
	DB           *gorm.DB
	Redis        *redis.Client
	Tokens       *auth.Service
	Denylist     ports.TokenDenylist
	UserService  ports.UserService
	AuthService  ports.AuthService
	SecureCookie bool
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("acquisitions"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookie)
	userHandler := handler.NewUserHandler(deps.UserService)
	healthHandler := handler.NewHealthHandler(time.Now())
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	authMW := middleware.Auth(deps.Tokens, deps.Denylist, deps.Logger)

	// --- Root and probes (no auth required) ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello from Acquisitions!")
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	api := e.Group("/api")
	api.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/auth/sign-up", authHandler.SignUp)
	api.POST("/auth/sign-in", authHandler.SignIn)
	api.POST("/auth/sign-out", authHandler.SignOut, authMW)

	users := api.Group("/users", authMW)
	users.GET("", userHandler.List, middleware.RequireRole("admin"))
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
