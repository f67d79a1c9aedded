// Package blob persists snapshot collections as keyed JSON-array blobs.
//
// Each collection lives under a single key holding one JSON-serialized
// array, mirroring the original client's keyed local storage. Reads return
// the whole snapshot; writes replace it wholesale (last write wins).
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Collection keys. One independent blob per entity collection.
const (
	KeyJars         = "expense-tracker:jars"
	KeyIncomes      = "expense-tracker:incomes"
	KeyBankAccounts = "expense-tracker:bank-accounts"
)

// Store reads and writes JSON-array blobs in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new blob store over the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// load unmarshals the blob at key into out. A missing key is an empty
// collection, not an error.
func (s *Store) load(ctx context.Context, key string, out any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read blob %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode blob %q: %w", key, err)
	}
	return nil
}

// store marshals in and replaces the blob at key wholesale.
func (s *Store) store(ctx context.Context, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode blob %q: %w", key, err)
	}

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}
	return nil
}
