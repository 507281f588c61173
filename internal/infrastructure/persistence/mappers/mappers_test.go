package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/domain/payment"
	pvo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/models"
)

func TestOrderMapping_PreservesLifecycleFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder("order_1", order.Customer{Name: "A", Phone: "+998901234567", DeliveryCost: 5000},
		[]order.Item{{ID: "p", Name: "Iron", Price: 95000, Quantity: 1}}, 100000, now, 0)
	require.NoError(t, err)
	o.MarkProcessing("tx_1")
	o.MarkPaid(now.Add(time.Minute))

	back, err := OrderToEntity(OrderToModel(o))
	require.NoError(t, err)

	assert.Equal(t, o.ID(), back.ID())
	assert.Equal(t, o.Customer(), back.Customer())
	assert.Equal(t, o.Items(), back.Items())
	assert.Equal(t, o.Status(), back.Status())
	assert.Equal(t, o.PaymentStatus(), back.PaymentStatus())
	assert.Equal(t, "tx_1", back.TransactionID())
	assert.Equal(t, o.ExpireAt(), back.ExpireAt())
	require.NotNil(t, back.PaidAt())
	assert.Nil(t, back.CancelledAt())
}

func TestOrderToEntity_RejectsUnknownStatus(t *testing.T) {
	_, err := OrderToEntity(models.OrderModel{ID: "o", Status: "lost", PaymentStatus: "pending"})
	assert.Error(t, err)

	_, err = OrderToEntity(models.OrderModel{ID: "o", Status: "pending", PaymentStatus: "lost"})
	assert.Error(t, err)
}

func TestTransactionMapping_Reason(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tx, err := payment.NewTransaction("tx_1", "pm_1", "order_1", 10000000, 1700000000000, now)
	require.NoError(t, err)

	m := TransactionToModel(tx)
	assert.Nil(t, m.Reason)

	require.NoError(t, tx.Cancel(pvo.ReasonCancelledByUser, now))
	m = TransactionToModel(tx)
	require.NotNil(t, m.Reason)
	assert.Equal(t, 3, *m.Reason)
	assert.Equal(t, -1, m.State)

	back, err := TransactionToEntity(m)
	require.NoError(t, err)
	assert.Equal(t, pvo.StateCancelled, back.State())
	assert.Equal(t, pvo.ReasonCancelledByUser, *back.Reason())
	assert.Equal(t, tx.CancelTime(), back.CancelTime())
}

func TestTransactionToEntity_InvalidState(t *testing.T) {
	_, err := TransactionToEntity(models.TransactionModel{ID: "tx", State: 7})
	assert.Error(t, err)
}
