package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newCreated(t *testing.T) *Transaction {
	t.Helper()
	tx, err := NewTransaction("tx_1", "pm_1", "order_1", 10000000, 1700000000000, baseTime)
	require.NoError(t, err)
	return tx
}

func TestNewTransaction(t *testing.T) {
	tx := newCreated(t)

	assert.Equal(t, vo.StateCreated, tx.State())
	assert.Equal(t, vo.EpochMillis(1700000000000), tx.CreateTime())
	assert.True(t, tx.PerformTime().IsZero())
	assert.True(t, tx.CancelTime().IsZero())
	assert.Nil(t, tx.Reason())
}

func TestNewTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		paymeID string
		orderID string
		amount  vo.Tiyin
	}{
		{"missing id", "", "pm", "o", 100},
		{"missing payme id", "tx", "", "o", 100},
		{"missing order id", "tx", "pm", "", 100},
		{"zero amount", "tx", "pm", "o", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(tt.id, tt.paymeID, tt.orderID, tt.amount, 1, baseTime)
			assert.Error(t, err)
		})
	}
}

func TestTransaction_Perform(t *testing.T) {
	tx := newCreated(t)
	performAt := baseTime.Add(time.Minute)

	require.NoError(t, tx.Perform(performAt))
	assert.Equal(t, vo.StatePerformed, tx.State())
	assert.Equal(t, vo.EpochMillisOf(performAt), tx.PerformTime())

	assert.Error(t, tx.Perform(performAt.Add(time.Minute)))
	assert.Equal(t, vo.EpochMillisOf(performAt), tx.PerformTime())
}

func TestTransaction_Cancel(t *testing.T) {
	t.Run("before perform", func(t *testing.T) {
		tx := newCreated(t)
		require.NoError(t, tx.Cancel(vo.ReasonCancelledByUser, baseTime))
		assert.Equal(t, vo.StateCancelled, tx.State())
		require.NotNil(t, tx.Reason())
		assert.Equal(t, vo.ReasonCancelledByUser, *tx.Reason())
		assert.Equal(t, vo.EpochMillisOf(baseTime), tx.CancelTime())
	})

	t.Run("after perform", func(t *testing.T) {
		tx := newCreated(t)
		require.NoError(t, tx.Perform(baseTime))
		require.NoError(t, tx.Cancel(vo.ReasonRecipientError, baseTime.Add(time.Hour)))
		assert.Equal(t, vo.StateCancelledAfterPerform, tx.State())
		assert.False(t, tx.PerformTime().IsZero())
	})

	t.Run("already cancelled", func(t *testing.T) {
		tx := newCreated(t)
		require.NoError(t, tx.Cancel(vo.ReasonCancelledByUser, baseTime))
		assert.Error(t, tx.Cancel(vo.ReasonCancelledByUser, baseTime))
		assert.Error(t, tx.Perform(baseTime))
	})
}
