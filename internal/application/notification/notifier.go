// Package notification tells the shop operator about order and payment events.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/texnokross/texnokross/internal/shared/logger"
)

// OperatorNotifier is what the order lifecycle calls on state changes.
type OperatorNotifier interface {
	NotifyOrderCreated(ctx context.Context, cmd NotifyOrderCreatedCommand) error
	NotifyPaymentReceived(ctx context.Context, cmd NotifyPaymentReceivedCommand) error
	NotifyPaymentCancelled(ctx context.Context, cmd NotifyPaymentCancelledCommand) error
}

type OrderLine struct {
	Name     string
	Quantity int
	Price    int64
}

type NotifyOrderCreatedCommand struct {
	OrderID      string
	CustomerName string
	Phone        string
	City         string
	Address      string
	Comment      string
	DeliveryCost int64
	Items        []OrderLine
	Total        int64
	CreatedAt    time.Time
}

type NotifyPaymentReceivedCommand struct {
	OrderID      string
	CustomerName string
	Phone        string
	Total        int64
	PaidAt       time.Time
}

type NotifyPaymentCancelledCommand struct {
	OrderID      string
	CustomerName string
	Phone        string
	Total        int64
	ReasonText   string
	CancelledAt  time.Time
}

// Service fans each message out to every configured channel.
type Service struct {
	channels []Channel
	logger   logger.Interface
}

func NewService(log logger.Interface, channels ...Channel) *Service {
	return &Service{channels: channels, logger: log}
}

func (s *Service) NotifyOrderCreated(ctx context.Context, cmd NotifyOrderCreatedCommand) error {
	return s.deliver(ctx, "order_created", cmd.OrderID, BuildOrderCreatedMessage(cmd))
}

func (s *Service) NotifyPaymentReceived(ctx context.Context, cmd NotifyPaymentReceivedCommand) error {
	return s.deliver(ctx, "payment_received", cmd.OrderID, BuildPaymentReceivedMessage(cmd))
}

func (s *Service) NotifyPaymentCancelled(ctx context.Context, cmd NotifyPaymentCancelledCommand) error {
	return s.deliver(ctx, "payment_cancelled", cmd.OrderID, BuildPaymentCancelledMessage(cmd))
}

func (s *Service) deliver(ctx context.Context, event, orderID string, msg Message) error {
	if len(s.channels) == 0 {
		s.logger.Debugw("no notification channels configured, skipping", "event", event, "order_id", orderID)
		return nil
	}

	var errs []error
	for _, ch := range s.channels {
		if err := ch.Deliver(ctx, msg); err != nil {
			s.logger.Warnw("failed to deliver notification",
				"event", event,
				"channel", ch.Name(),
				"order_id", orderID,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		s.logger.Infow("notification delivered", "event", event, "channel", ch.Name(), "order_id", orderID)
	}
	return errors.Join(errs...)
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

func (NoopNotifier) NotifyOrderCreated(context.Context, NotifyOrderCreatedCommand) error {
	return nil
}

func (NoopNotifier) NotifyPaymentReceived(context.Context, NotifyPaymentReceivedCommand) error {
	return nil
}

func (NoopNotifier) NotifyPaymentCancelled(context.Context, NotifyPaymentCancelledCommand) error {
	return nil
}
