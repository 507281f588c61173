package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/mappers"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/models"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
)

// TransactionRepository stores provider transactions in insertion order.
type TransactionRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

func NewTransactionRepository(store recordstore.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) load(ctx context.Context) ([]models.TransactionModel, error) {
	list, err := recordstore.Load[models.TransactionModel](ctx, r.store, recordstore.CollectionTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return list, nil
}

// Create rejects a second transaction with the same provider id.
func (r *TransactionRepository) Create(ctx context.Context, tx *payment.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		if m.PaymeID == tx.PaymeID() {
			return fmt.Errorf("transaction with payme id %s already exists", tx.PaymeID())
		}
	}

	list = append(list, mappers.TransactionToModel(tx))
	if err := recordstore.Save(ctx, r.store, recordstore.CollectionTransactions, list); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *payment.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].PaymeID == tx.PaymeID() {
			list[i] = mappers.TransactionToModel(tx)
			if err := recordstore.Save(ctx, r.store, recordstore.CollectionTransactions, list); err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("transaction with payme id %s not found", tx.PaymeID())
}

func (r *TransactionRepository) GetByPaymeID(ctx context.Context, paymeID string) (*payment.Transaction, error) {
	return r.findOne(ctx, func(m models.TransactionModel) bool {
		return m.PaymeID == paymeID
	})
}

// FindActiveByOrderID returns the order's transaction still in the created state.
func (r *TransactionRepository) FindActiveByOrderID(ctx context.Context, orderID string) (*payment.Transaction, error) {
	return r.findOne(ctx, func(m models.TransactionModel) bool {
		return m.OrderID == orderID && vo.TransactionState(m.State) == vo.StateCreated
	})
}

// ListByCreateTime returns transactions with from <= create_time <= to.
func (r *TransactionRepository) ListByCreateTime(ctx context.Context, from, to vo.EpochMillis) ([]*payment.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*payment.Transaction, 0)
	for _, m := range list {
		if m.CreateTime < from.Int64() || m.CreateTime > to.Int64() {
			continue
		}
		tx, err := mappers.TransactionToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *TransactionRepository) findOne(ctx context.Context, match func(models.TransactionModel) bool) (*payment.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		if match(m) {
			return mappers.TransactionToEntity(m)
		}
	}
	return nil, nil
}
