package http

import (
	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/domain/payment"
	"github.com/texnokross/texnokross/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	orderRepo       order.Repository
	transactionRepo payment.TransactionRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		orderRepo:       repository.NewOrderRepository(c.store),
		transactionRepo: repository.NewTransactionRepository(c.store),
	}
}
