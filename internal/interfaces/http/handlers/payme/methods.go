package payme

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/texnokross/texnokross/internal/application/merchant"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

func (h *Handler) checkPerformTransaction(ctx context.Context, raw json.RawMessage) (any, error) {
	var p checkPerformParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	amount, err := integer(p.Amount, "amount")
	if err != nil {
		return nil, err
	}
	return h.service.CheckPerformTransaction(ctx, p.Account.OrderID, vo.Tiyin(amount))
}

func (h *Handler) createTransaction(ctx context.Context, raw json.RawMessage) (any, error) {
	var p createParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: id is required", errInvalidParams)
	}
	amount, err := integer(p.Amount, "amount")
	if err != nil {
		return nil, err
	}
	at, err := integer(p.Time, "time")
	if err != nil {
		return nil, err
	}
	return h.service.CreateTransaction(ctx, merchant.CreateTransactionCommand{
		PaymeID: p.ID,
		Time:    vo.EpochMillis(at),
		Amount:  vo.Tiyin(amount),
		OrderID: p.Account.OrderID,
	})
}

func (h *Handler) performTransaction(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := transactionID(raw)
	if err != nil {
		return nil, err
	}
	return h.service.PerformTransaction(ctx, p)
}

func (h *Handler) cancelTransaction(ctx context.Context, raw json.RawMessage) (any, error) {
	var p cancelParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: id is required", errInvalidParams)
	}
	var reason int64
	if p.Reason != nil {
		r, err := integer(p.Reason, "reason")
		if err != nil {
			return nil, err
		}
		reason = r
	}
	return h.service.CancelTransaction(ctx, p.ID, vo.CancelReason(reason))
}

func (h *Handler) checkTransaction(ctx context.Context, raw json.RawMessage) (any, error) {
	p, err := transactionID(raw)
	if err != nil {
		return nil, err
	}
	return h.service.CheckTransaction(ctx, p)
}

func (h *Handler) getStatement(ctx context.Context, raw json.RawMessage) (any, error) {
	var p statementParams
	if err := decodeParams(raw, &p); err != nil {
		return nil, err
	}
	from, err := integer(p.From, "from")
	if err != nil {
		return nil, err
	}
	to, err := integer(p.To, "to")
	if err != nil {
		return nil, err
	}
	return h.service.GetStatement(ctx, vo.EpochMillis(from), vo.EpochMillis(to))
}

func transactionID(raw json.RawMessage) (string, error) {
	var p transactionParams
	if err := decodeParams(raw, &p); err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", fmt.Errorf("%w: id is required", errInvalidParams)
	}
	return p.ID, nil
}
