package merchant

import (
	"context"
	"fmt"

	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// PerformTransaction completes a created transaction and marks its order paid.
func (s *Service) PerformTransaction(ctx context.Context, paymeID string) (*PerformTransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.transaction(ctx, paymeID)
	if err != nil {
		return nil, err
	}

	switch tx.State() {
	case vo.StatePerformed:
		return performResult(tx), nil
	case vo.StateCreated:
	default:
		return nil, errTxInvalidState()
	}

	if err := tx.Perform(s.now()); err != nil {
		return nil, errTxInvalidState()
	}
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	o, err := s.orders.GetByID(ctx, tx.OrderID())
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if o == nil {
		s.logger.Warnw("performed transaction has no order", "payme_id", paymeID, "order_id", tx.OrderID())
	} else if err := s.lifecycle.MarkPaid(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Infow("transaction performed",
		"transaction_id", tx.ID(),
		"payme_id", paymeID,
		"order_id", tx.OrderID(),
	)
	return performResult(tx), nil
}

func performResult(tx *payment.Transaction) *PerformTransactionResult {
	return &PerformTransactionResult{
		Transaction: tx.ID(),
		PerformTime: tx.PerformTime().Int64(),
		State:       tx.State().Int(),
	}
}
