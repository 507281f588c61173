package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/texnokross/texnokross/internal/domain/order/valueobjects"
)

// --- helpers ---

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func validCustomer() Customer {
	return Customer{Name: "Aziz", Phone: "+998901234567", City: "Tashkent", DeliveryCost: 0}
}

func validItems() []Item {
	return []Item{
		{ID: "p1", Name: "Kettle", Price: 60000, Quantity: 2},
		{ID: "p2", Name: "Toaster", Price: 40000, Quantity: 1},
	}
}

func validOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("order_1", validCustomer(), validItems(), 100000, baseTime, 0)
	require.NoError(t, err)
	return o
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewOrder_Defaults(t *testing.T) {
	o := validOrder(t)

	assert.Equal(t, vo.OrderStatusPending, o.Status())
	assert.Equal(t, vo.PaymentStatusPending, o.PaymentStatus())
	assert.Equal(t, baseTime.Add(12*time.Hour), o.ExpireAt())
	assert.Equal(t, int64(10000000), o.TotalTiyin())
	assert.Equal(t, vo.DeliveryTypeFree, o.Customer().DeliveryType)
	assert.Empty(t, o.TransactionID())
	assert.Nil(t, o.PaidAt())
}

func TestNewOrder_PaidDeliveryInferred(t *testing.T) {
	c := validCustomer()
	c.DeliveryCost = 15000

	o, err := NewOrder("order_2", c, validItems(), 115000, baseTime, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, vo.DeliveryTypePaid, o.Customer().DeliveryType)
	assert.Equal(t, baseTime.Add(time.Hour), o.ExpireAt())
}

func TestNewOrder_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		customer func(c *Customer)
		items    []Item
		total    int64
	}{
		{name: "missing name", customer: func(c *Customer) { c.Name = " " }, items: validItems(), total: 100000},
		{name: "missing phone", customer: func(c *Customer) { c.Phone = "" }, items: validItems(), total: 100000},
		{name: "negative delivery", customer: func(c *Customer) { c.DeliveryCost = -1 }, items: validItems(), total: 99999},
		{name: "no items", items: nil, total: 0},
		{name: "zero quantity", items: []Item{{Name: "x", Price: 100, Quantity: 0}}, total: 100},
		{name: "total mismatch", items: validItems(), total: 99999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			if tt.customer != nil {
				tt.customer(&c)
			}
			_, err := NewOrder("order_x", c, tt.items, tt.total, baseTime, 0)
			assert.Error(t, err)
		})
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestOrder_IsExpired(t *testing.T) {
	o := validOrder(t)

	assert.False(t, o.IsExpired(baseTime))
	assert.False(t, o.IsExpired(o.ExpireAt()))
	assert.True(t, o.IsExpired(o.ExpireAt().Add(time.Millisecond)))
}

func TestOrder_Transitions(t *testing.T) {
	o := validOrder(t)

	o.MarkProcessing("tx_1")
	assert.Equal(t, vo.PaymentStatusProcessing, o.PaymentStatus())
	assert.Equal(t, "tx_1", o.TransactionID())

	paidAt := baseTime.Add(time.Minute)
	o.MarkPaid(paidAt)
	assert.True(t, o.IsPaid())
	assert.Equal(t, vo.OrderStatusPaid, o.Status())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, paidAt, *o.PaidAt())

	require.NoError(t, o.MarkDelivered(baseTime.Add(time.Hour)))
	assert.Equal(t, vo.OrderStatusDelivered, o.Status())
}

func TestOrder_MarkCancelled(t *testing.T) {
	o := validOrder(t)
	o.MarkCancelled(baseTime)

	assert.Equal(t, vo.OrderStatusCancelled, o.Status())
	assert.Equal(t, vo.PaymentStatusCancelled, o.PaymentStatus())
	require.NotNil(t, o.CancelledAt())
	assert.Error(t, o.MarkDelivered(baseTime))
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	o := validOrder(t)
	items := o.Items()
	items[0].Name = "changed"
	assert.Equal(t, "Kettle", o.Items()[0].Name)
}
