package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/policedept/records-system/docs"
	"github.com/policedept/records-system/internal/api/handler"
	"github.com/policedept/records-system/internal/api/middleware"
	"github.com/policedept/records-system/internal/core/ports"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Agents ports.AgentService
	Cases  ports.CaseService
	Auth   ports.AuthService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Resource routes and user deletion require a bearer token; registration,
// login, logout, health, metrics, and swagger are public.
func NewRouter(svc Services, db *sql.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("records"))

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.DELETE("/users/:id", authHandler.DeleteUser, authMiddleware)

	// --- Agent routes ---
	agentHandler := handler.NewAgentHandler(svc.Agents)
	agents := e.Group("/agentes", authMiddleware)
	agents.GET("", agentHandler.List)
	agents.GET("/:id", agentHandler.Get)
	agents.POST("", agentHandler.Create)
	agents.PUT("/:id", agentHandler.Replace)
	agents.PATCH("/:id", agentHandler.Patch)
	agents.DELETE("/:id", agentHandler.Delete)

	// --- Case routes ---
	caseHandler := handler.NewCaseHandler(svc.Cases)
	cases := e.Group("/casos", authMiddleware)
	cases.GET("", caseHandler.List)
	cases.GET("/:id", caseHandler.Get)
	cases.POST("", caseHandler.Create)
	cases.PUT("/:id", caseHandler.Replace)
	cases.PATCH("/:id", caseHandler.Patch)
	cases.DELETE("/:id", caseHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
