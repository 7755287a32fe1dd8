package handler

import (
	"net/http"

	"vending-machine/internal/adapter/http/middleware"
	"vending-machine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsCollector observes requests and serves the scrape endpoint.
type MetricsCollector interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Machine        ports.MachineService
	Operator       ports.OperatorService
	Screen         Screen
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        MetricsCollector // nil = no /metrics
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// rl returns the limiter for group, or a no-op when limiting is off.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := deps.RateLimitRules[group]
		if deps.RateLimitStore == nil || !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Front panel (public) ---
	panelHandler := NewPanelHandler(deps.Machine, deps.Screen)
	panel := v1.Group("/panel", rl("panel"))
	{
		panel.POST("/select", panelHandler.SelectShelf)
		panel.POST("/coins", panelHandler.InsertCoin)
		panel.POST("/cancel", panelHandler.Cancel)
		panel.GET("/transaction", panelHandler.CurrentTransaction)
		panel.GET("/display", panelHandler.Display)
	}

	// --- Operator (JWT) ---
	operatorHandler := NewOperatorHandler(deps.Operator, deps.Machine)
	v1.POST("/operator/login", rl("operator_login"), operatorHandler.Login)

	operator := v1.Group("/operator", middleware.JWTAuth(deps.TokenSvc, deps.Logger), rl("operator"))
	{
		operator.GET("/coins", operatorHandler.CoinCounts)
		operator.POST("/coins", operatorHandler.LoadCoins)
		operator.GET("/shelves", operatorHandler.Shelves)
		operator.POST("/shelves/:id/restock", operatorHandler.Restock)
		operator.GET("/transactions", operatorHandler.Transactions)
	}

	return r
}
