package models

import "time"

// TransactionModel is the stored JSON shape of a provider transaction.
// Times named *_time are epoch milliseconds, zero when unset.
type TransactionModel struct {
	ID          string     `json:"id"`
	PaymeID     string     `json:"payme_id"`
	OrderID     string     `json:"order_id"`
	Amount      int64      `json:"amount"`
	State       int        `json:"state"`
	CreateTime  int64      `json:"create_time"`
	PerformTime int64      `json:"perform_time"`
	CancelTime  int64      `json:"cancel_time"`
	Reason      *int       `json:"reason"`
	CreatedAt   time.Time  `json:"created_at"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
