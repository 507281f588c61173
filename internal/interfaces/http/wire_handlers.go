package http

import (
	"github.com/texnokross/texnokross/internal/interfaces/http/handlers"
	"github.com/texnokross/texnokross/internal/interfaces/http/handlers/payme"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	orderHandler   *handlers.OrderHandler
	paymentHandler *handlers.PaymentHandler
	paymeHandler   *payme.Handler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		orderHandler: handlers.NewOrderHandler(c.svcs.orders, c.log.Named("orders-http")),
		paymentHandler: handlers.NewPaymentHandler(
			c.svcs.paymentLink,
			c.svcs.orders,
			c.cfg.Server.FrontendURL,
			c.log.Named("payment-http"),
		),
		paymeHandler: payme.NewHandler(
			c.svcs.merchant,
			c.cfg.Payme.ActiveSecret(),
			c.log.Named("payme"),
		),
	}
}
