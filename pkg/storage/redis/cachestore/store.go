/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/vcissuer/issuer/pkg/storage/cache"
	"github.com/vcissuer/issuer/pkg/storage/redis"
)

const keySpace = "cache"

type redisDocument struct {
	ExpireAt time.Time `json:"expireAt"`
	Value    []byte    `json:"value"`
}

// Store is a cache.Store backed by redis.
type Store struct {
	redisClient *redis.Client
}

// New creates a new instance of Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func (s *Store) Add(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	doc, err := json.Marshal(&redisDocument{
		ExpireAt: time.Now().UTC().Add(ttl),
		Value:    value,
	})
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	ok, err := s.redisClient.API().SetNX(ctx, s.redisClient.Key(keySpace, key), doc, ttl).Result()
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	if !ok {
		return cache.ErrKeyExists
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.redisClient.API().Get(ctx, s.redisClient.Key(keySpace, key)).Bytes()

	return decode(b, err)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.API().Del(ctx, s.redisClient.Key(keySpace, key)).Err(); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Take uses GETDEL so that two concurrent callers can never both receive the value.
func (s *Store) Take(ctx context.Context, key string) ([]byte, error) {
	b, err := s.redisClient.API().GetDel(ctx, s.redisClient.Key(keySpace, key)).Bytes()

	return decode(b, err)
}

func decode(b []byte, err error) ([]byte, error) {
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, cache.ErrNotFound
		}

		return nil, fmt.Errorf("find: %w", err)
	}

	var doc redisDocument
	if err = json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("document decode: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, cache.ErrNotFound
	}

	return doc.Value, nil
}
