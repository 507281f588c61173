package payment

import (
	"context"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// TransactionRepository persists transactions. Lookups return (nil, nil)
// when nothing matches.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, tx *Transaction) error
	GetByPaymeID(ctx context.Context, paymeID string) (*Transaction, error)
	FindActiveByOrderID(ctx context.Context, orderID string) (*Transaction, error)
	ListByCreateTime(ctx context.Context, from, to vo.EpochMillis) ([]*Transaction, error)
}
