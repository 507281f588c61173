package merchant

import (
	"context"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

// CheckPerformTransaction reports whether the order can be paid with amount.
func (s *Service) CheckPerformTransaction(ctx context.Context, orderID string, amount vo.Tiyin) (*CheckPerformResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.checkOrder(ctx, orderID, amount); err != nil {
		return nil, err
	}
	return &CheckPerformResult{Allow: true}, nil
}
