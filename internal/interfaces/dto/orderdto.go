package dto

import (
	"time"

	orderapp "github.com/texnokross/texnokross/internal/application/order"
	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

// CreateOrderRequest is the storefront checkout payload.
type CreateOrderRequest struct {
	Customer CustomerRequest `json:"customer" validate:"required"`
	Items    []ItemRequest   `json:"items" validate:"required,min=1,dive"`
	Total    int64           `json:"total" validate:"gt=0"`
}

// CustomerRequest accepts the delivery fields both in snake_case and in the
// camelCase the storefront cart sends.
type CustomerRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Phone        string `json:"phone" validate:"required,phone"`
	Address      string `json:"address" validate:"max=500"`
	Comment      string `json:"comment" validate:"max=1000"`
	City         string `json:"city" validate:"max=100"`
	DeliveryCost int64  `json:"delivery_cost" validate:"gte=0"`
	DeliveryType string `json:"delivery_type" validate:"omitempty,oneof=free paid"`

	DeliveryCostCamel int64  `json:"deliveryCost" validate:"gte=0"`
	DeliveryTypeCamel string `json:"deliveryType" validate:"omitempty,oneof=free paid"`
}

func (c *CustomerRequest) deliveryCost() int64 {
	if c.DeliveryCost != 0 {
		return c.DeliveryCost
	}
	return c.DeliveryCostCamel
}

func (c *CustomerRequest) deliveryType() string {
	if c.DeliveryType != "" {
		return c.DeliveryType
	}
	return c.DeliveryTypeCamel
}

type ItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=300"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	ImageURL string `json:"image_url"`
}

// ToCommand converts the HTTP payload to the application command.
func (r *CreateOrderRequest) ToCommand() orderapp.CreateOrderCommand {
	items := make([]orderapp.ItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = orderapp.ItemInput{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		}
	}
	return orderapp.CreateOrderCommand{
		Customer: orderapp.CustomerInput{
			Name:         r.Customer.Name,
			Phone:        r.Customer.Phone,
			Address:      r.Customer.Address,
			Comment:      r.Customer.Comment,
			City:         r.Customer.City,
			DeliveryCost: r.Customer.deliveryCost(),
			DeliveryType: r.Customer.deliveryType(),
		},
		Items: items,
		Total: r.Total,
	}
}

type OrderResponse struct {
	ID            string           `json:"id"`
	Customer      CustomerResponse `json:"customer"`
	Items         []ItemResponse   `json:"items"`
	Total         int64            `json:"total"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"payment_status"`
	TransactionID string           `json:"transaction_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	ExpireAt      time.Time        `json:"expire_at"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	CancelledAt   *time.Time       `json:"cancelled_at,omitempty"`
	DeliveredAt   *time.Time       `json:"delivered_at,omitempty"`
}

// CreateOrderResponse carries the new order under "order", the key the
// storefront reads, in addition to the usual envelope.
type CreateOrderResponse struct {
	utils.APIResponse
	Order *OrderResponse `json:"order"`
}

func NewCreateOrderResponse(o *order.Order) *CreateOrderResponse {
	resp := ToOrderResponse(o)
	return &CreateOrderResponse{
		APIResponse: utils.APIResponse{Success: true, Data: resp, Message: "order created"},
		Order:       resp,
	}
}

type CustomerResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	Comment      string `json:"comment,omitempty"`
	City         string `json:"city,omitempty"`
	DeliveryCost int64  `json:"delivery_cost"`
	DeliveryType string `json:"delivery_type"`
}

type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"image_url,omitempty"`
}

func ToOrderResponse(o *order.Order) *OrderResponse {
	c := o.Customer()
	items := o.Items()
	out := &OrderResponse{
		ID: o.ID(),
		Customer: CustomerResponse{
			Name:         c.Name,
			Phone:        c.Phone,
			Address:      c.Address,
			Comment:      c.Comment,
			City:         c.City,
			DeliveryCost: c.DeliveryCost,
			DeliveryType: c.DeliveryType.String(),
		},
		Items:         make([]ItemResponse, len(items)),
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		TransactionID: o.TransactionID(),
		CreatedAt:     o.CreatedAt(),
		ExpireAt:      o.ExpireAt(),
		PaidAt:        o.PaidAt(),
		CancelledAt:   o.CancelledAt(),
		DeliveredAt:   o.DeliveredAt(),
	}
	for i, it := range items {
		out.Items[i] = ItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		}
	}
	return out
}

func ToOrderResponses(list []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(list))
	for i, o := range list {
		out[i] = ToOrderResponse(o)
	}
	return out
}

// CreatePaymentRequest asks for a checkout link. Amount is in sum.
type CreatePaymentRequest struct {
	OrderID   string  `json:"order_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	ReturnURL string  `json:"return_url" validate:"omitempty,url"`
}

type CreatePaymentResponse struct {
	PaymentURL  string  `json:"payment_url"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	AmountTiyin int64   `json:"amount_tiyin"`
}
