package merchant

import (
	"context"
	"fmt"

	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// CancelTransaction cancels a created or performed transaction. A missing
// order is logged and does not fail the call.
func (s *Service) CancelTransaction(ctx context.Context, paymeID string, reason vo.CancelReason) (*CancelTransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.transaction(ctx, paymeID)
	if err != nil {
		return nil, err
	}
	if tx.State().IsCancelled() {
		return cancelResult(tx), nil
	}

	if err := tx.Cancel(reason, s.now()); err != nil {
		return nil, errCannotCancel()
	}
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	o, err := s.orders.GetByID(ctx, tx.OrderID())
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if o == nil {
		s.logger.Warnw("cancelled transaction has no order", "payme_id", paymeID, "order_id", tx.OrderID())
	} else if err := s.lifecycle.MarkCancelled(ctx, o, reason); err != nil {
		return nil, err
	}

	s.logger.Infow("transaction cancelled",
		"transaction_id", tx.ID(),
		"payme_id", paymeID,
		"state", tx.State().Int(),
		"reason", int(reason),
	)
	return cancelResult(tx), nil
}

func cancelResult(tx *payment.Transaction) *CancelTransactionResult {
	return &CancelTransactionResult{
		Transaction: tx.ID(),
		CancelTime:  tx.CancelTime().Int64(),
		State:       tx.State().Int(),
	}
}
