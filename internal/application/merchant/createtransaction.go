package merchant

import (
	"context"
	"fmt"

	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/shared/id"
)

type CreateTransactionCommand struct {
	PaymeID string
	Time    vo.EpochMillis
	Amount  vo.Tiyin
	OrderID string
}

// CreateTransaction opens a transaction for the order. Repeating the call
// with the same provider id returns the stored transaction unchanged.
func (s *Service) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (*CreateTransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.checkOrder(ctx, cmd.OrderID, cmd.Amount)
	if err != nil {
		return nil, err
	}

	existing, err := s.transactions.GetByPaymeID(ctx, cmd.PaymeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if existing != nil {
		if existing.State() != vo.StateCreated {
			return nil, errTxInvalidState()
		}
		return createResult(existing), nil
	}

	active, err := s.transactions.FindActiveByOrderID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active transaction: %w", err)
	}
	if active != nil && active.PaymeID() != cmd.PaymeID {
		s.logger.Warnw("order already has an active transaction",
			"order_id", cmd.OrderID,
			"active_payme_id", active.PaymeID(),
			"payme_id", cmd.PaymeID,
		)
		return nil, errOrderBusy()
	}

	now := s.now()
	txID, err := id.NewTransactionID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}
	tx, err := payment.NewTransaction(txID, cmd.PaymeID, cmd.OrderID, cmd.Amount, cmd.Time, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := s.lifecycle.MarkProcessing(ctx, o, tx.ID()); err != nil {
		return nil, err
	}

	s.logger.Infow("transaction created",
		"transaction_id", tx.ID(),
		"payme_id", cmd.PaymeID,
		"order_id", cmd.OrderID,
		"amount", cmd.Amount.Int64(),
	)
	return createResult(tx), nil
}

func createResult(tx *payment.Transaction) *CreateTransactionResult {
	return &CreateTransactionResult{
		CreateTime:  tx.CreateTime().Int64(),
		Transaction: tx.ID(),
		State:       tx.State().Int(),
	}
}
