// Package id generates the time-derived identifiers used for orders and transactions.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const suffixLength = 4

const (
	PrefixOrder       = "order"
	PrefixTransaction = "tx"
)

// Generate returns a cryptographically random base62 string of the given length.
func Generate(length int) (string, error) {
	alphabetLen := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// WithTime builds "<prefix>_<epoch-ms><random suffix>". The millisecond part keeps
// ids roughly sortable; the suffix separates ids minted in the same millisecond.
func WithTime(prefix string, now time.Time) (string, error) {
	suffix, err := Generate(suffixLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + strconv.FormatInt(now.UnixMilli(), 10) + suffix, nil
}

func NewOrderID(now time.Time) (string, error) {
	return WithTime(PrefixOrder, now)
}

func NewTransactionID(now time.Time) (string, error) {
	return WithTime(PrefixTransaction, now)
}

// Short returns the operator-facing order number: the last six characters of the id.
func Short(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// HasPrefix reports whether id was minted with prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}
