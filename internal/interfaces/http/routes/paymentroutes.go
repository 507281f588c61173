package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/texnokross/texnokross/internal/interfaces/http/handlers"
	"github.com/texnokross/texnokross/internal/interfaces/http/handlers/payme"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	PaymeHandler   *payme.Handler
	CreateLimit    gin.HandlerFunc
}

// SetupPaymentRoutes configures the checkout link, the payer return page and
// the provider's merchant endpoint. The provider endpoint is never limited.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	api.POST("/create-payment", withLimit(cfg.CreateLimit, cfg.PaymentHandler.CreatePayment)...)
	api.GET("/payment/callback", cfg.PaymentHandler.Callback)
	api.POST("/payme", cfg.PaymeHandler.Handle)
}
