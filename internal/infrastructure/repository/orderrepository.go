package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/mappers"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/models"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
)

// OrderRepository stores orders newest-first in the orders collection.
type OrderRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

func NewOrderRepository(store recordstore.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) load(ctx context.Context) ([]models.OrderModel, error) {
	list, err := recordstore.Load[models.OrderModel](ctx, r.store, recordstore.CollectionOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return list, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		if m.ID == o.ID() {
			return fmt.Errorf("order %s already exists", o.ID())
		}
	}

	list = append([]models.OrderModel{mappers.OrderToModel(o)}, list...)
	if err := recordstore.Save(ctx, r.store, recordstore.CollectionOrders, list); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == o.ID() {
			list[i] = mappers.OrderToModel(o)
			if err := recordstore.Save(ctx, r.store, recordstore.CollectionOrders, list); err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("order %s not found", o.ID())
}

func (r *OrderRepository) Mutate(ctx context.Context, id string, fn func(o *order.Order) error) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		o, err := mappers.OrderToEntity(list[i])
		if err != nil {
			return nil, err
		}
		if err := fn(o); err != nil {
			return nil, err
		}
		list[i] = mappers.OrderToModel(o)
		if err := recordstore.Save(ctx, r.store, recordstore.CollectionOrders, list); err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
		return o, nil
	}
	return nil, fmt.Errorf("order %s: %w", id, order.ErrNotFound)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		if m.ID == id {
			return mappers.OrderToEntity(m)
		}
	}
	return nil, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*order.Order, 0, len(list))
	for _, m := range list {
		o, err := mappers.OrderToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
