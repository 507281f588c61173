package merchant

import (
	"context"
	"fmt"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// GetStatement lists transactions whose provider create time lies in
// [from, to], both ends inclusive.
func (s *Service) GetStatement(ctx context.Context, from, to vo.EpochMillis) (*StatementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.transactions.ListByCreateTime(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	entries := make([]StatementEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, StatementEntry{
			ID:          tx.PaymeID(),
			Time:        tx.CreateTime().Int64(),
			Amount:      tx.Amount().Int64(),
			Account:     StatementAccount{OrderID: tx.OrderID()},
			CreateTime:  tx.CreateTime().Int64(),
			PerformTime: tx.PerformTime().Int64(),
			CancelTime:  tx.CancelTime().Int64(),
			Transaction: tx.ID(),
			State:       tx.State().Int(),
			Reason:      reasonOf(tx),
		})
	}
	return &StatementResult{Transactions: entries}, nil
}
