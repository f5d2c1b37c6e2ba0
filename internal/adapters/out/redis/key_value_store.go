// Package redis adapts a Redis server to the whole-value key-value port.
// Stage collections are small JSON documents, so plain string GET/SET is
// all the store needs.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// KeyValueStore implements the key-value port on a Redis client.
type KeyValueStore struct {
	client *redis.Client
}

// NewKeyValueStore creates a store backed by the given Redis client.
func NewKeyValueStore(client *redis.Client) *KeyValueStore {
	return &KeyValueStore{client: client}
}

// Connect opens a Redis client against addr and verifies the connection.
func Connect(ctx context.Context, addr string, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return client, nil
}

// Get retrieves the value stored under key. A missing key is reported via
// the boolean, not as an error.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set replaces the whole value stored under key. Values never expire: an
// order leaves the store only through an explicit removal.
func (s *KeyValueStore) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
