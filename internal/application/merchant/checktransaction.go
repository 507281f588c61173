package merchant

import "context"

func (s *Service) CheckTransaction(ctx context.Context, paymeID string) (*CheckTransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.transaction(ctx, paymeID)
	if err != nil {
		return nil, err
	}
	return &CheckTransactionResult{
		CreateTime:  tx.CreateTime().Int64(),
		PerformTime: tx.PerformTime().Int64(),
		CancelTime:  tx.CancelTime().Int64(),
		Transaction: tx.ID(),
		State:       tx.State().Int(),
		Reason:      reasonOf(tx),
	}, nil
}
