package order

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/texnokross/texnokross/internal/domain/order/valueobjects"
)

// DefaultTTL is how long an order stays payable after creation.
const DefaultTTL = 12 * time.Hour

type Customer struct {
	Name         string
	Phone        string
	Address      string
	Comment      string
	City         string
	DeliveryCost int64
	DeliveryType vo.DeliveryType
}

// Item is one order line. Price is the line total in sum, not the unit price.
type Item struct {
	ID       string
	Name     string
	Price    int64
	Quantity int
	ImageURL string
}

type Order struct {
	id            string
	customer      Customer
	items         []Item
	total         int64
	status        vo.OrderStatus
	paymentStatus vo.PaymentStatus
	transactionID string
	createdAt     time.Time
	expireAt      time.Time
	paidAt        *time.Time
	cancelledAt   *time.Time
	deliveredAt   *time.Time
}

// NewOrder validates the basket and returns a pending order expiring ttl after now.
func NewOrder(id string, customer Customer, items []Item, total int64, now time.Time, ttl time.Duration) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return nil, fmt.Errorf("customer phone is required")
	}
	if customer.DeliveryCost < 0 {
		return nil, fmt.Errorf("delivery cost cannot be negative")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var sum int64
	for i, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive", i)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("item %d: price cannot be negative", i)
		}
		sum += it.Price
	}
	sum += customer.DeliveryCost
	if total != sum {
		return nil, fmt.Errorf("total %d does not match items plus delivery %d", total, sum)
	}
	if total <= 0 {
		return nil, fmt.Errorf("total must be positive")
	}

	if customer.DeliveryType == "" {
		customer.DeliveryType = vo.DeliveryTypeFree
		if customer.DeliveryCost > 0 {
			customer.DeliveryType = vo.DeliveryTypePaid
		}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Order{
		id:            id,
		customer:      customer,
		items:         append([]Item(nil), items...),
		total:         total,
		status:        vo.OrderStatusPending,
		paymentStatus: vo.PaymentStatusPending,
		createdAt:     now,
		expireAt:      now.Add(ttl),
	}, nil
}

// ReconstructParams carries a persisted order snapshot.
type ReconstructParams struct {
	ID            string
	Customer      Customer
	Items         []Item
	Total         int64
	Status        vo.OrderStatus
	PaymentStatus vo.PaymentStatus
	TransactionID string
	CreatedAt     time.Time
	ExpireAt      time.Time
	PaidAt        *time.Time
	CancelledAt   *time.Time
	DeliveredAt   *time.Time
}

// ReconstructOrder rebuilds an order from persistence without validation.
func ReconstructOrder(p ReconstructParams) *Order {
	return &Order{
		id:            p.ID,
		customer:      p.Customer,
		items:         p.Items,
		total:         p.Total,
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		transactionID: p.TransactionID,
		createdAt:     p.CreatedAt,
		expireAt:      p.ExpireAt,
		paidAt:        p.PaidAt,
		cancelledAt:   p.CancelledAt,
		deliveredAt:   p.DeliveredAt,
	}
}

func (o *Order) ID() string { return o.id }
func (o *Order) Customer() Customer { return o.customer }

// Items returns a copy of the basket. Item prices are line totals.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

// Total is the amount due in sum, delivery included.
func (o *Order) Total() int64 { return o.total }

func (o *Order) Status() vo.OrderStatus { return o.status }
func (o *Order) PaymentStatus() vo.PaymentStatus { return o.paymentStatus }

// TransactionID is the merchant transaction last opened for the order.
func (o *Order) TransactionID() string { return o.transactionID }

func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) ExpireAt() time.Time { return o.expireAt }
func (o *Order) PaidAt() *time.Time { return o.paidAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// TotalTiyin is the amount the provider must charge, in minor units.
func (o *Order) TotalTiyin() int64 {
	return o.total * 100
}

// IsExpired reports whether now is strictly past the expiry instant.
func (o *Order) IsExpired(now time.Time) bool {
	return now.After(o.expireAt)
}

func (o *Order) IsPaid() bool {
	return o.paymentStatus == vo.PaymentStatusPaid
}

// MarkProcessing links the provider transaction and flags the payment as in flight.
func (o *Order) MarkProcessing(transactionID string) {
	o.paymentStatus = vo.PaymentStatusProcessing
	o.transactionID = transactionID
}

func (o *Order) MarkPaid(now time.Time) {
	o.status = vo.OrderStatusPaid
	o.paymentStatus = vo.PaymentStatusPaid
	o.paidAt = &now
}

func (o *Order) MarkCancelled(now time.Time) {
	o.status = vo.OrderStatusCancelled
	o.paymentStatus = vo.PaymentStatusCancelled
	o.cancelledAt = &now
}

// MarkDelivered is only valid once the order has been paid.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.status != vo.OrderStatusPaid {
		return fmt.Errorf("cannot deliver order in status %s", o.status)
	}
	o.status = vo.OrderStatusDelivered
	o.deliveredAt = &now
	return nil
}
