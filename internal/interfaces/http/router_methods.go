package http

import (
	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/interfaces/http/handlers"
	"github.com/texnokross/texnokross/internal/interfaces/http/middleware"
	"github.com/texnokross/texnokross/internal/interfaces/http/routes"
)

func (c *Container) setupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", handlers.HealthCheck)

	api := c.engine.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	limit := c.rateLimit()
	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler: c.hdlrs.orderHandler,
		CreateLimit:  limit,
	})
	routes.SetupPaymentRoutes(api, &routes.PaymentRouteConfig{
		PaymentHandler: c.hdlrs.paymentHandler,
		PaymeHandler:   c.hdlrs.paymeHandler,
		CreateLimit:    limit,
	})
}

// rateLimit returns nil when limiting is disabled or Redis is missing.
func (c *Container) rateLimit() gin.HandlerFunc {
	rl := c.cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	if c.redis == nil {
		c.log.Warnw("rate limiting enabled but no redis client available, requests are not limited")
		return nil
	}
	return middleware.NewRateLimiter(c.redis, c.cfg.Redis.KeyPrefix, rl.Requests, rl.Window(), c.log.Named("ratelimit")).Limit()
}
