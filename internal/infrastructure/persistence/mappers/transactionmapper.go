package mappers

import (
	"fmt"

	"github.com/texnokross/texnokross/internal/domain/payment"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/persistence/models"
)

func TransactionToModel(tx *payment.Transaction) models.TransactionModel {
	m := models.TransactionModel{
		ID:          tx.ID(),
		PaymeID:     tx.PaymeID(),
		OrderID:     tx.OrderID(),
		Amount:      tx.Amount().Int64(),
		State:       tx.State().Int(),
		CreateTime:  tx.CreateTime().Int64(),
		PerformTime: tx.PerformTime().Int64(),
		CancelTime:  tx.CancelTime().Int64(),
		CreatedAt:   tx.CreatedAt(),
		PerformedAt: tx.PerformedAt(),
		CancelledAt: tx.CancelledAt(),
	}
	if r := tx.Reason(); r != nil {
		reason := int(*r)
		m.Reason = &reason
	}
	return m
}

func TransactionToEntity(m models.TransactionModel) (*payment.Transaction, error) {
	state := vo.TransactionState(m.State)
	if !state.IsValid() {
		return nil, fmt.Errorf("transaction %s: invalid state %d", m.ID, m.State)
	}

	var reason *vo.CancelReason
	if m.Reason != nil {
		r := vo.CancelReason(*m.Reason)
		reason = &r
	}

	return payment.ReconstructTransaction(payment.ReconstructParams{
		ID:          m.ID,
		PaymeID:     m.PaymeID,
		OrderID:     m.OrderID,
		Amount:      vo.Tiyin(m.Amount),
		State:       state,
		CreateTime:  vo.EpochMillis(m.CreateTime),
		PerformTime: vo.EpochMillis(m.PerformTime),
		CancelTime:  vo.EpochMillis(m.CancelTime),
		Reason:      reason,
		CreatedAt:   m.CreatedAt,
		PerformedAt: m.PerformedAt,
		CancelledAt: m.CancelledAt,
	}), nil
}
