package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Mutate when the order does not exist.
var ErrNotFound = errors.New("order not found")

// Repository persists order snapshots. GetByID returns (nil, nil) when the
// order does not exist.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	// Mutate loads the current order, applies fn and saves the result as one
	// step with respect to every other write on the repository. Nothing is
	// saved when fn fails.
	Mutate(ctx context.Context, id string, fn func(o *Order) error) (*Order, error)
}
