package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, s, 12)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(alphabet, c))
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	a, err := NewOrderID(now)
	require.NoError(t, err)
	b, err := NewOrderID(now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "order_1700000000123"))
	assert.Len(t, a, len("order_1700000000123")+suffixLength)
	assert.NotEqual(t, a, b)
	assert.True(t, HasPrefix(a, PrefixOrder))
	assert.False(t, HasPrefix(a, PrefixTransaction))
}

func TestNewTransactionID(t *testing.T) {
	tx, err := NewTransactionID(time.UnixMilli(42))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tx, "tx_42"))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "123abc", Short("order_1700000000123abc"))
	assert.Equal(t, "abc", Short("abc"))
}
