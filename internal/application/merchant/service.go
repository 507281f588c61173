// Package merchant implements the provider-facing transaction state machine:
// the six merchant API operations and their idempotent replays.
package merchant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/shared/biztime"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

// OrderLifecycle applies payment-driven order transitions.
type OrderLifecycle interface {
	MarkProcessing(ctx context.Context, o *order.Order, transactionID string) error
	MarkPaid(ctx context.Context, o *order.Order) error
	MarkCancelled(ctx context.Context, o *order.Order, reason vo.CancelReason) error
}

// Service runs every operation under one mutex so check-then-act sequences
// are atomic within the process.
type Service struct {
	mu           sync.Mutex
	orders       order.Repository
	transactions payment.TransactionRepository
	lifecycle    OrderLifecycle
	logger       logger.Interface
	now          func() time.Time
}

func NewService(
	orders order.Repository,
	transactions payment.TransactionRepository,
	lifecycle OrderLifecycle,
	log logger.Interface,
) *Service {
	return &Service{
		orders:       orders,
		transactions: transactions,
		lifecycle:    lifecycle,
		logger:       log,
		now:          biztime.NowUTC,
	}
}

// checkOrder runs the CheckPerformTransaction rules and returns the order.
func (s *Service) checkOrder(ctx context.Context, orderID string, amount vo.Tiyin) (*order.Order, error) {
	if orderID == "" {
		return nil, errOrderIDMissing()
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if o == nil {
		return nil, errOrderNotFound()
	}
	if amount.Int64() != o.TotalTiyin() {
		s.logger.Warnw("amount mismatch",
			"order_id", orderID,
			"expected", o.TotalTiyin(),
			"received", amount.Int64(),
		)
		return nil, errInvalidAmount()
	}
	if o.IsExpired(s.now()) {
		return nil, errOrderExpired()
	}
	if o.IsPaid() {
		return nil, errOrderAlreadyPaid()
	}
	return o, nil
}

func (s *Service) transaction(ctx context.Context, paymeID string) (*payment.Transaction, error) {
	tx, err := s.transactions.GetByPaymeID(ctx, paymeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if tx == nil {
		return nil, errTxNotFound()
	}
	return tx, nil
}
