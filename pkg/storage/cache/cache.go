/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a key is absent or its entry has expired.
	ErrNotFound = errors.New("cache entry not found")
	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("cache key already exists")
)

// Store is an expiring key-value store with single-use semantics.
type Store interface {
	// Add stores value under key for ttl. Fails with ErrKeyExists if the key is live.
	Add(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns the value of a live key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Take atomically returns and removes the value of a live key or fails with ErrNotFound.
	Take(ctx context.Context, key string) ([]byte, error)
}

// Typed is a Store view for one logical use: a key namespace, a TTL and a value type.
type Typed[T any] struct {
	store  Store
	prefix string
	ttl    time.Duration
}

// NewTyped returns a Typed cache storing JSON encoded T values under prefix.
func NewTyped[T any](store Store, prefix string, ttl time.Duration) *Typed[T] {
	return &Typed[T]{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

// TTL returns the lifetime of entries.
func (c *Typed[T]) TTL() time.Duration {
	return c.ttl
}

// Add stores value under key and returns the key.
func (c *Typed[T]) Add(ctx context.Context, key string, value T) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode cache value: %w", err)
	}

	if err = c.store.Add(ctx, c.key(key), b, c.ttl); err != nil {
		return "", err
	}

	return key, nil
}

// Get returns the value stored under key.
func (c *Typed[T]) Get(ctx context.Context, key string) (T, error) {
	b, err := c.store.Get(ctx, c.key(key))
	if err != nil {
		var zero T

		return zero, err
	}

	return c.decode(b)
}

// Take returns the value stored under key and removes it in the same step.
func (c *Typed[T]) Take(ctx context.Context, key string) (T, error) {
	b, err := c.store.Take(ctx, c.key(key))
	if err != nil {
		var zero T

		return zero, err
	}

	return c.decode(b)
}

// Delete removes key.
func (c *Typed[T]) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, c.key(key))
}

func (c *Typed[T]) decode(b []byte) (T, error) {
	var v T

	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode cache value: %w", err)
	}

	return v, nil
}

func (c *Typed[T]) key(k string) string {
	if c.prefix == "" {
		return k
	}

	return c.prefix + "-" + k
}
