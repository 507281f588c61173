// Package order implements the order lifecycle: creation, payment-driven
// status changes and the operator notifications they trigger.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/texnokross/texnokross/internal/application/notification"
	"github.com/texnokross/texnokross/internal/domain/order"
	ovo "github.com/texnokross/texnokross/internal/domain/order/valueobjects"
	pvo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/shared/biztime"
	apperrors "github.com/texnokross/texnokross/internal/shared/errors"
	"github.com/texnokross/texnokross/internal/shared/goroutine"
	"github.com/texnokross/texnokross/internal/shared/id"
	"github.com/texnokross/texnokross/internal/shared/logger"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

const notifyTimeout = 30 * time.Second

type Service struct {
	repo     order.Repository
	notifier notification.OperatorNotifier
	logger   logger.Interface
	ttl      time.Duration
	now      func() time.Time
}

func NewService(repo order.Repository, notifier notification.OperatorNotifier, ttl time.Duration, log logger.Interface) *Service {
	if notifier == nil {
		notifier = notification.NoopNotifier{}
	}
	if ttl <= 0 {
		ttl = order.DefaultTTL
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   log,
		ttl:      ttl,
		now:      biztime.NowUTC,
	}
}

func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	customer, err := toCustomer(cmd.Customer)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid order", err.Error())
	}

	items := make([]order.Item, len(cmd.Items))
	for i, it := range cmd.Items {
		items[i] = order.Item{
			ID:       it.ID,
			Name:     utils.SanitizeText(it.Name),
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		}
	}

	now := s.now()
	orderID, err := id.NewOrderID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	o, err := order.NewOrder(orderID, customer, items, cmd.Total, now, s.ttl)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid order", err.Error())
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Errorw("failed to persist order", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Infow("order created",
		"order_id", o.ID(),
		"total", o.Total(),
		"items", len(items),
		"expire_at", o.ExpireAt(),
	)

	cmdNotify := orderCreatedCommand(o)
	s.notifyAsync("notify-order-created", func(ctx context.Context) error {
		return s.notifier.NotifyOrderCreated(ctx, cmdNotify)
	})

	return o, nil
}

func toCustomer(in CustomerInput) (order.Customer, error) {
	c := order.Customer{
		Name:         utils.SanitizeText(in.Name),
		Phone:        utils.SanitizeText(in.Phone),
		Address:      utils.SanitizeText(in.Address),
		Comment:      utils.SanitizeText(in.Comment),
		City:         utils.SanitizeText(in.City),
		DeliveryCost: in.DeliveryCost,
	}
	if in.DeliveryType != "" {
		dt, err := ovo.NewDeliveryType(in.DeliveryType)
		if err != nil {
			return order.Customer{}, err
		}
		c.DeliveryType = dt
	}
	return c, nil
}

// GetOrder returns a not-found AppError when the order does not exist.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, apperrors.NewNotFoundError("Order not found", orderID)
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*order.Order, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

// MarkProcessing records that the provider opened a transaction for the order.
// Every Mark* transition is applied to the stored order, not to o, so writes
// from the merchant flow and the operator never overwrite each other. o is
// refreshed with the saved state.
func (s *Service) MarkProcessing(ctx context.Context, o *order.Order, transactionID string) error {
	updated, err := s.repo.Mutate(ctx, o.ID(), func(cur *order.Order) error {
		cur.MarkProcessing(transactionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark order processing: %w", err)
	}
	*o = *updated
	s.logger.Infow("order payment processing", "order_id", o.ID(), "transaction_id", transactionID)
	return nil
}

func (s *Service) MarkPaid(ctx context.Context, o *order.Order) error {
	now := s.now()
	updated, err := s.repo.Mutate(ctx, o.ID(), func(cur *order.Order) error {
		cur.MarkPaid(now)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	*o = *updated
	s.logger.Infow("order paid", "order_id", o.ID(), "total", o.Total())

	c := o.Customer()
	cmd := notification.NotifyPaymentReceivedCommand{
		OrderID:      o.ID(),
		CustomerName: c.Name,
		Phone:        c.Phone,
		Total:        o.Total(),
		PaidAt:       now,
	}
	s.notifyAsync("notify-payment-received", func(ctx context.Context) error {
		return s.notifier.NotifyPaymentReceived(ctx, cmd)
	})
	return nil
}

func (s *Service) MarkCancelled(ctx context.Context, o *order.Order, reason pvo.CancelReason) error {
	now := s.now()
	updated, err := s.repo.Mutate(ctx, o.ID(), func(cur *order.Order) error {
		cur.MarkCancelled(now)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark order cancelled: %w", err)
	}
	*o = *updated
	s.logger.Infow("order cancelled", "order_id", o.ID(), "reason", int(reason))

	c := o.Customer()
	cmd := notification.NotifyPaymentCancelledCommand{
		OrderID:      o.ID(),
		CustomerName: c.Name,
		Phone:        c.Phone,
		Total:        o.Total(),
		ReasonText:   reason.Text(),
		CancelledAt:  now,
	}
	s.notifyAsync("notify-payment-cancelled", func(ctx context.Context) error {
		return s.notifier.NotifyPaymentCancelled(ctx, cmd)
	})
	return nil
}

// MarkDelivered is the operator's final step for a paid order.
func (s *Service) MarkDelivered(ctx context.Context, orderID string) (*order.Order, error) {
	var conflict error
	o, err := s.repo.Mutate(ctx, orderID, func(cur *order.Order) error {
		if err := cur.MarkDelivered(s.now()); err != nil {
			conflict = err
			return err
		}
		return nil
	})
	switch {
	case errors.Is(err, order.ErrNotFound):
		return nil, apperrors.NewNotFoundError("Order not found", orderID)
	case conflict != nil:
		return nil, apperrors.NewConflictError("Order cannot be delivered", conflict.Error())
	case err != nil:
		return nil, fmt.Errorf("failed to mark order delivered: %w", err)
	}
	s.logger.Infow("order delivered", "order_id", o.ID())
	return o, nil
}

// notifyAsync runs fn detached from the request so notification latency or
// failure never reaches the caller.
func (s *Service) notifyAsync(name string, fn func(ctx context.Context) error) {
	goroutine.SafeGo(s.logger, name, func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Warnw("operator notification failed", "task", name, "error", err)
		}
	})
}

func orderCreatedCommand(o *order.Order) notification.NotifyOrderCreatedCommand {
	c := o.Customer()
	items := o.Items()
	lines := make([]notification.OrderLine, len(items))
	for i, it := range items {
		lines[i] = notification.OrderLine{Name: it.Name, Quantity: it.Quantity, Price: it.Price}
	}
	return notification.NotifyOrderCreatedCommand{
		OrderID:      o.ID(),
		CustomerName: c.Name,
		Phone:        c.Phone,
		City:         c.City,
		Address:      c.Address,
		Comment:      c.Comment,
		DeliveryCost: c.DeliveryCost,
		Items:        lines,
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}
}
