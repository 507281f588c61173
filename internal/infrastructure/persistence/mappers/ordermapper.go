package mappers

import (
	"fmt"

	"github.com/texnokross/texnokross/internal/domain/order"
	vo "github.com/texnokross/texnokross/internal/domain/order/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) models.OrderModel {
	c := o.Customer()
	items := o.Items()
	itemModels := make([]models.OrderItemModel, len(items))
	for i, it := range items {
		itemModels[i] = models.OrderItemModel{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		}
	}

	return models.OrderModel{
		ID: o.ID(),
		Customer: models.CustomerModel{
			Name:         c.Name,
			Phone:        c.Phone,
			Address:      c.Address,
			Comment:      c.Comment,
			City:         c.City,
			DeliveryType: c.DeliveryType.String(),
			DeliveryCost: c.DeliveryCost,
		},
		Items:         itemModels,
		Total:         o.Total(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		TransactionID: o.TransactionID(),
		CreatedAt:     o.CreatedAt(),
		ExpireAt:      o.ExpireAt(),
		PaidAt:        o.PaidAt(),
		CancelledAt:   o.CancelledAt(),
		DeliveredAt:   o.DeliveredAt(),
	}
}

func OrderToEntity(m models.OrderModel) (*order.Order, error) {
	status, err := vo.NewOrderStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", m.ID, err)
	}
	paymentStatus, err := vo.NewPaymentStatus(m.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", m.ID, err)
	}

	items := make([]order.Item, len(m.Items))
	for i, it := range m.Items {
		items[i] = order.Item{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		}
	}

	return order.ReconstructOrder(order.ReconstructParams{
		ID: m.ID,
		Customer: order.Customer{
			Name:         m.Customer.Name,
			Phone:        m.Customer.Phone,
			Address:      m.Customer.Address,
			Comment:      m.Customer.Comment,
			City:         m.Customer.City,
			DeliveryCost: m.Customer.DeliveryCost,
			DeliveryType: vo.DeliveryType(m.Customer.DeliveryType),
		},
		Items:         items,
		Total:         m.Total,
		Status:        status,
		PaymentStatus: paymentStatus,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		ExpireAt:      m.ExpireAt,
		PaidAt:        m.PaidAt,
		CancelledAt:   m.CancelledAt,
		DeliveredAt:   m.DeliveredAt,
	}), nil
}
