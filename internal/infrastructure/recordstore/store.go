// Package recordstore persists named collections of JSON records.
//
// A collection is an ordered list; writers replace the whole list. Callers
// that need read-modify-write semantics serialize access themselves.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	CollectionOrders       = "orders"
	CollectionTransactions = "transactions"
)

// Store reads and replaces whole collections. Get on an unknown collection
// returns an empty slice.
type Store interface {
	Get(ctx context.Context, collection string) ([]json.RawMessage, error)
	Put(ctx context.Context, collection string, records []json.RawMessage) error
}

// Load decodes every record of a collection into T.
func Load[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", collection, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Save encodes values and replaces the collection with them.
func Save[T any](ctx context.Context, s Store, collection string, values []T) error {
	raw := make([]json.RawMessage, 0, len(values))
	for i, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s[%d]: %w", collection, i, err)
		}
		raw = append(raw, b)
	}
	return s.Put(ctx, collection, raw)
}

func cloneRecords(in []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(in))
	for i, r := range in {
		out[i] = append(json.RawMessage(nil), r...)
	}
	return out
}
