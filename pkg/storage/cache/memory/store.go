/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bluele/gcache"

	"github.com/vcissuer/issuer/pkg/storage/cache"
)

const defaultSize = 100000

type options struct {
	size  int
	clock gcache.Clock
}

// Opt configures the in-memory store.
type Opt func(*options)

// WithSize sets the maximum number of entries; least recently used entries are evicted first.
func WithSize(size int) Opt {
	return func(o *options) {
		o.size = size
	}
}

// WithClock sets the clock used to expire entries.
func WithClock(clock gcache.Clock) Opt {
	return func(o *options) {
		o.clock = clock
	}
}

// Store is an in-process cache.Store.
type Store struct {
	mu    sync.Mutex
	cache gcache.Cache
}

// New returns a new in-memory store.
func New(opts ...Opt) *Store {
	o := &options{
		size:  defaultSize,
		clock: gcache.NewRealClock(),
	}

	for _, f := range opts {
		f(o)
	}

	return &Store{
		cache: gcache.New(o.size).LRU().Clock(o.clock).Build(),
	}
}

func (s *Store) Add(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(key); err == nil {
		return cache.ErrKeyExists
	}

	if err := s.cache.SetWithExpire(key, value, ttl); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(key)
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(key)

	return nil
}

func (s *Store) Take(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.get(key)
	if err != nil {
		return nil, err
	}

	s.cache.Remove(key)

	return v, nil
}

func (s *Store) get(key string) ([]byte, error) {
	v, err := s.cache.GetIFPresent(key)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, cache.ErrNotFound
		}

		return nil, fmt.Errorf("get: %w", err)
	}

	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T", v)
	}

	return b, nil
}
