package paymentlink

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeToken(t *testing.T, url, base string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(url, base+"/"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, base+"/"))
	require.NoError(t, err)
	return string(raw)
}

func TestBuild(t *testing.T) {
	b := NewBuilder(Config{MerchantID: "m123", CheckoutURL: DefaultCheckoutURLTest})

	link, err := b.Build("order_1", 1500.5, "")
	require.NoError(t, err)
	assert.Equal(t, "m=m123;ac.order_id=order_1;a=150050", decodeToken(t, link.URL, DefaultCheckoutURLTest))
	assert.EqualValues(t, 150050, link.AmountTiyin)
	assert.Equal(t, "order_1", link.OrderID)
}

func TestBuildWithReturnURL(t *testing.T) {
	b := NewBuilder(Config{MerchantID: "m123", CheckoutURL: "https://checkout.paycom.uz/"})

	link, err := b.Build("order_1", 100000, "https://shop.example/done")
	require.NoError(t, err)
	assert.Equal(t,
		"m=m123;ac.order_id=order_1;a=10000000;c=https://shop.example/done",
		decodeToken(t, link.URL, DefaultCheckoutURL))
}

func TestBuildDefaultsToProductionHost(t *testing.T) {
	b := NewBuilder(Config{MerchantID: "m"})
	link, err := b.Build("o", 1, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, DefaultCheckoutURL+"/"))
}

func TestBuildNotConfigured(t *testing.T) {
	b := NewBuilder(Config{})
	assert.False(t, b.Configured())

	_, err := b.Build("order_1", 10, "")
	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
}

func TestBuildRequiresOrderID(t *testing.T) {
	_, err := NewBuilder(Config{MerchantID: "m"}).Build("", 10, "")
	assert.Error(t, err)
}
