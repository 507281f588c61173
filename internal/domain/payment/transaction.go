package payment

import (
	"fmt"
	"time"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// Transaction is the local record of one provider transaction.
type Transaction struct {
	id          string
	paymeID     string
	orderID     string
	amount      vo.Tiyin
	state       vo.TransactionState
	createTime  vo.EpochMillis
	performTime vo.EpochMillis
	cancelTime  vo.EpochMillis
	reason      *vo.CancelReason
	createdAt   time.Time
	performedAt *time.Time
	cancelledAt *time.Time
}

// NewTransaction creates a transaction in the created state. createTime is
// the provider's timestamp, not the local clock.
func NewTransaction(id, paymeID, orderID string, amount vo.Tiyin, createTime vo.EpochMillis, now time.Time) (*Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}
	if paymeID == "" {
		return nil, fmt.Errorf("payme ID is required")
	}
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	return &Transaction{
		id:         id,
		paymeID:    paymeID,
		orderID:    orderID,
		amount:     amount,
		state:      vo.StateCreated,
		createTime: createTime,
		createdAt:  now,
	}, nil
}

// ReconstructParams carries a persisted transaction snapshot.
type ReconstructParams struct {
	ID          string
	PaymeID     string
	OrderID     string
	Amount      vo.Tiyin
	State       vo.TransactionState
	CreateTime  vo.EpochMillis
	PerformTime vo.EpochMillis
	CancelTime  vo.EpochMillis
	Reason      *vo.CancelReason
	CreatedAt   time.Time
	PerformedAt *time.Time
	CancelledAt *time.Time
}

// ReconstructTransaction rebuilds a transaction from persistence without validation.
func ReconstructTransaction(p ReconstructParams) *Transaction {
	return &Transaction{
		id:          p.ID,
		paymeID:     p.PaymeID,
		orderID:     p.OrderID,
		amount:      p.Amount,
		state:       p.State,
		createTime:  p.CreateTime,
		performTime: p.PerformTime,
		cancelTime:  p.CancelTime,
		reason:      p.Reason,
		createdAt:   p.CreatedAt,
		performedAt: p.PerformedAt,
		cancelledAt: p.CancelledAt,
	}
}

// ID is the merchant-side transaction id returned to the provider.
func (t *Transaction) ID() string { return t.id }

// PaymeID is the provider's own transaction id, unique per transaction.
func (t *Transaction) PaymeID() string { return t.paymeID }

// OrderID is the order the transaction pays for.
func (t *Transaction) OrderID() string { return t.orderID }

// Amount is the charged amount in tiyin.
func (t *Transaction) Amount() vo.Tiyin { return t.amount }

func (t *Transaction) State() vo.TransactionState { return t.state }

// CreateTime is the provider-supplied creation time; statements filter on it.
func (t *Transaction) CreateTime() vo.EpochMillis { return t.createTime }

// PerformTime is zero until the transaction is performed.
func (t *Transaction) PerformTime() vo.EpochMillis { return t.performTime }

// CancelTime is zero until the transaction is cancelled.
func (t *Transaction) CancelTime() vo.EpochMillis { return t.cancelTime }

// Reason is nil unless the transaction was cancelled.
func (t *Transaction) Reason() *vo.CancelReason { return t.reason }

// CreatedAt, PerformedAt and CancelledAt are local wall-clock records kept
// alongside the provider timestamps.
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
func (t *Transaction) PerformedAt() *time.Time { return t.performedAt }
func (t *Transaction) CancelledAt() *time.Time { return t.cancelledAt }

// Perform moves a created transaction to performed.
func (t *Transaction) Perform(now time.Time) error {
	if t.state != vo.StateCreated {
		return fmt.Errorf("cannot perform transaction in state %d", t.state)
	}
	t.state = vo.StatePerformed
	t.performTime = vo.EpochMillisOf(now)
	t.performedAt = &now
	return nil
}

// Cancel moves created to -1 and performed to -2.
func (t *Transaction) Cancel(reason vo.CancelReason, now time.Time) error {
	switch t.state {
	case vo.StateCreated:
		t.state = vo.StateCancelled
	case vo.StatePerformed:
		t.state = vo.StateCancelledAfterPerform
	default:
		return fmt.Errorf("cannot cancel transaction in state %d", t.state)
	}
	t.cancelTime = vo.EpochMillisOf(now)
	t.reason = &reason
	t.cancelledAt = &now
	return nil
}
