package merchant

import (
	"github.com/texnokross/texnokross/internal/domain/payment"
)

// CheckPerformResult answers CheckPerformTransaction.
type CheckPerformResult struct {
	Allow bool `json:"allow"`
}

// CreateTransactionResult answers CreateTransaction, including replays.
type CreateTransactionResult struct {
	CreateTime  int64  `json:"create_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
}

// PerformTransactionResult answers PerformTransaction. PerformTime is in epoch milliseconds.
type PerformTransactionResult struct {
	Transaction string `json:"transaction"`
	PerformTime int64  `json:"perform_time"`
	State       int    `json:"state"`
}

// CancelTransactionResult answers CancelTransaction with the negative state.
type CancelTransactionResult struct {
	Transaction string `json:"transaction"`
	CancelTime  int64  `json:"cancel_time"`
	State       int    `json:"state"`
}

// CheckTransactionResult reports every timestamp of a transaction; unset ones
// are 0 and a missing reason is null.
type CheckTransactionResult struct {
	CreateTime  int64  `json:"create_time"`
	PerformTime int64  `json:"perform_time"`
	CancelTime  int64  `json:"cancel_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
	Reason      *int   `json:"reason"`
}

// StatementAccount is the account object the provider sent at creation.
type StatementAccount struct {
	OrderID string `json:"order_id"`
}

// StatementEntry is one GetStatement row.
type StatementEntry struct {
	ID          string           `json:"id"`
	Time        int64            `json:"time"`
	Amount      int64            `json:"amount"`
	Account     StatementAccount `json:"account"`
	CreateTime  int64            `json:"create_time"`
	PerformTime int64            `json:"perform_time"`
	CancelTime  int64            `json:"cancel_time"`
	Transaction string           `json:"transaction"`
	State       int              `json:"state"`
	Reason      *int             `json:"reason"`
}

// StatementResult answers GetStatement; Transactions is never null.
type StatementResult struct {
	Transactions []StatementEntry `json:"transactions"`
}

// reasonOf reports a zero or missing reason as null.
func reasonOf(tx *payment.Transaction) *int {
	r := tx.Reason()
	if r == nil || *r == 0 {
		return nil
	}
	v := int(*r)
	return &v
}
