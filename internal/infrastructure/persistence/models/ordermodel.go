package models

import "time"

// OrderModel is the stored JSON shape of an order.
type OrderModel struct {
	ID            string           `json:"id"`
	Customer      CustomerModel    `json:"customer"`
	Items         []OrderItemModel `json:"items"`
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

type CustomerModel struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	Comment      string `json:"comment,omitempty"`
	City         string `json:"city,omitempty"`
	DeliveryType string `json:"delivery_type"`
	DeliveryCost int64  `json:"delivery_cost"`
}

type OrderItemModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"image_url,omitempty"`
}
