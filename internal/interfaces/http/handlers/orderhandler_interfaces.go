package handlers

import (
	"context"

	orderapp "github.com/texnokross/texnokross/internal/application/order"
	"github.com/texnokross/texnokross/internal/application/paymentlink"
	"github.com/texnokross/texnokross/internal/domain/order"
)

// OrderService is the order lifecycle as seen by the REST surfaces.
type OrderService interface {
	CreateOrder(ctx context.Context, cmd orderapp.CreateOrderCommand) (*order.Order, error)
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)
	ListOrders(ctx context.Context) ([]*order.Order, error)
	MarkDelivered(ctx context.Context, orderID string) (*order.Order, error)
}

type PaymentLinkBuilder interface {
	Build(orderID string, amount float64, returnURL string) (*paymentlink.Link, error)
}

// OrderLookup is the read side the return callback needs.
type OrderLookup interface {
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)
}
