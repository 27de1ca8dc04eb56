/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package nonce

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vcissuer/issuer/pkg/otp"
	"github.com/vcissuer/issuer/pkg/storage/cache"
)

const (
	cachePrefix = "nonce"

	// DefaultTTL is the lifetime of a c_nonce.
	DefaultTTL = 10 * time.Minute
)

// Service mints single-use nonces. A nonce is alive while it is stored in the cache under itself.
type Service struct {
	nonces *cache.Typed[string]
}

// NewService creates a nonce service backed by store.
func NewService(store cache.Store, ttl time.Duration) *Service {
	return &Service{
		nonces: cache.NewTyped[string](store, cachePrefix, ttl),
	}
}

// TTL returns the lifetime of minted nonces.
func (s *Service) TTL() time.Duration {
	return s.nonces.TTL()
}

// Mint creates and stores a fresh nonce.
func (s *Service) Mint(ctx context.Context) (string, error) {
	n, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	if _, err = s.nonces.Add(ctx, n, n); err != nil {
		return "", fmt.Errorf("store nonce: %w", err)
	}

	return n, nil
}

// ErrNotAlive is returned when a nonce was already consumed or has expired.
var ErrNotAlive = fmt.Errorf("%w: nonce is not alive", cache.ErrNotFound)

// Rotate consumes old and mints its replacement. Only one caller can consume a
// given nonce; every other caller gets ErrNotAlive.
func (s *Service) Rotate(ctx context.Context, old string) (string, error) {
	if old == "" {
		return "", ErrNotAlive
	}

	if _, err := s.nonces.Take(ctx, old); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", ErrNotAlive
		}

		return "", fmt.Errorf("consume nonce: %w", err)
	}

	return s.Mint(ctx)
}

// IsValid reports whether nonce is alive.
func (s *Service) IsValid(ctx context.Context, nonce string) (bool, error) {
	if nonce == "" {
		return false, nil
	}

	if _, err := s.nonces.Get(ctx, nonce); err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
