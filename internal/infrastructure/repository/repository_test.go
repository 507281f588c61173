package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texnokross/texnokross/internal/domain/order"
	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, order.Customer{Name: "Aziz", Phone: "+998901234567"},
		[]order.Item{{ID: "p1", Name: "Kettle", Price: 100000, Quantity: 1}}, 100000, baseTime, 0)
	require.NoError(t, err)
	return o
}

func newTx(t *testing.T, id, paymeID, orderID string, createTime int64) *payment.Transaction {
	t.Helper()
	tx, err := payment.NewTransaction(id, paymeID, orderID, 10000000, vo.EpochMillis(createTime), baseTime)
	require.NoError(t, err)
	return tx
}

func TestOrderRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(recordstore.NewMemoryStore())

	missing, err := repo.GetByID(ctx, "order_x")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Create(ctx, newOrder(t, "order_1")))
	require.NoError(t, repo.Create(ctx, newOrder(t, "order_2")))
	assert.Error(t, repo.Create(ctx, newOrder(t, "order_1")), "duplicate id")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "order_2", list[0].ID(), "newest first")

	o, err := repo.GetByID(ctx, "order_1")
	require.NoError(t, err)
	require.NotNil(t, o)
	o.MarkProcessing("tx_1")
	require.NoError(t, repo.Update(ctx, o))

	again, err := repo.GetByID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, "tx_1", again.TransactionID())

	assert.Error(t, repo.Update(ctx, newOrder(t, "order_404")))
}

func TestOrderRepository_Mutate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(recordstore.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newOrder(t, "order_1")))

	updated, err := repo.Mutate(ctx, "order_1", func(o *order.Order) error {
		o.MarkProcessing("tx_1")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "tx_1", updated.TransactionID())

	boom := errors.New("boom")
	_, err = repo.Mutate(ctx, "order_1", func(o *order.Order) error {
		o.MarkProcessing("tx_2")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repo.GetByID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, "tx_1", stored.TransactionID(), "failed mutation is not saved")

	_, err = repo.Mutate(ctx, "order_404", func(*order.Order) error { return nil })
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestTransactionRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(recordstore.NewMemoryStore())

	require.NoError(t, repo.Create(ctx, newTx(t, "tx_1", "pm_1", "order_1", 1000)))
	require.NoError(t, repo.Create(ctx, newTx(t, "tx_2", "pm_2", "order_2", 2000)))
	assert.Error(t, repo.Create(ctx, newTx(t, "tx_3", "pm_1", "order_3", 3000)), "duplicate payme id")

	tx, err := repo.GetByPaymeID(ctx, "pm_2")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "order_2", tx.OrderID())

	none, err := repo.GetByPaymeID(ctx, "pm_9")
	require.NoError(t, err)
	assert.Nil(t, none)

	active, err := repo.FindActiveByOrderID(ctx, "order_1")
	require.NoError(t, err)
	require.NotNil(t, active)

	require.NoError(t, active.Cancel(vo.ReasonCancelledByUser, baseTime))
	require.NoError(t, repo.Update(ctx, active))

	active, err = repo.FindActiveByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Nil(t, active, "cancelled transactions are not active")
}

func TestTransactionRepository_ListByCreateTimeInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(recordstore.NewMemoryStore())
	for i, ct := range []int64{999, 1000, 1500, 2000, 2001} {
		id := string(rune('a' + i))
		require.NoError(t, repo.Create(ctx, newTx(t, "tx_"+id, "pm_"+id, "order_"+id, ct)))
	}

	got, err := repo.ListByCreateTime(ctx, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, vo.EpochMillis(1000), got[0].CreateTime())
	assert.Equal(t, vo.EpochMillis(2000), got[2].CreateTime())

	empty, err := repo.ListByCreateTime(ctx, 5000, 6000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]json.RawMessage, error) {
	return nil, errors.New("disk gone")
}

func (failingStore) Put(context.Context, string, []json.RawMessage) error {
	return errors.New("disk gone")
}

func TestRepositories_PropagateStoreErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewOrderRepository(failingStore{}).GetByID(ctx, "x")
	assert.ErrorContains(t, err, "disk gone")

	_, err = NewTransactionRepository(failingStore{}).GetByPaymeID(ctx, "x")
	assert.ErrorContains(t, err, "disk gone")
}
