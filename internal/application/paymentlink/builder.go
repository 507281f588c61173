// Package paymentlink builds provider checkout URLs for orders.
package paymentlink

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
)

const (
	DefaultCheckoutURL     = "https://checkout.paycom.uz"
	DefaultCheckoutURLTest = "https://test.paycom.uz"
)

var ErrPaymentNotConfigured = errors.New("payment system not configured")

type Config struct {
	MerchantID  string
	CheckoutURL string
}

type Link struct {
	URL         string
	OrderID     string
	Amount      float64
	AmountTiyin vo.Tiyin
}

type Builder struct {
	merchantID string
	baseURL    string
}

func NewBuilder(cfg Config) *Builder {
	base := strings.TrimRight(cfg.CheckoutURL, "/")
	if base == "" {
		base = DefaultCheckoutURL
	}
	return &Builder{merchantID: cfg.MerchantID, baseURL: base}
}

// Configured reports whether a merchant id is set.
func (b *Builder) Configured() bool {
	return b.merchantID != ""
}

// Build encodes m=<merchant>;ac.order_id=<order>;a=<tiyin>[;c=<return>] as
// base64 and appends it to the checkout host.
func (b *Builder) Build(orderID string, amount float64, returnURL string) (*Link, error) {
	if !b.Configured() {
		return nil, ErrPaymentNotConfigured
	}
	if orderID == "" {
		return nil, fmt.Errorf("order id is required")
	}

	tiyin := vo.TiyinFromFloat(amount)
	params := fmt.Sprintf("m=%s;ac.order_id=%s;a=%d", b.merchantID, orderID, tiyin.Int64())
	if returnURL != "" {
		params += ";c=" + returnURL
	}
	token := base64.StdEncoding.EncodeToString([]byte(params))

	return &Link{
		URL:         b.baseURL + "/" + token,
		OrderID:     orderID,
		Amount:      amount,
		AmountTiyin: tiyin,
	}, nil
}
