package valueobjects

import "fmt"

// OrderStatus is the fulfilment status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDelivered OrderStatus = "delivered"
)

func NewOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return st, nil
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus mirrors the provider transaction as seen from the order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

func NewPaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return st, nil
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusPaid,
		PaymentStatusFailed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

type DeliveryType string

const (
	DeliveryTypeFree DeliveryType = "free"
	DeliveryTypePaid DeliveryType = "paid"
)

func NewDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case DeliveryTypeFree, DeliveryTypePaid:
		return DeliveryType(s), nil
	default:
		return "", fmt.Errorf("invalid delivery type: %s", s)
	}
}

func (d DeliveryType) String() string {
	return string(d)
}
