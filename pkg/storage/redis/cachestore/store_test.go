/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cachestore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/vcissuer/issuer/pkg/storage/cache"
	"github.com/vcissuer/issuer/pkg/storage/redis"
	"github.com/vcissuer/issuer/pkg/storage/redis/cachestore"
)

func newStore(t *testing.T) (*cachestore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.New([]string{mr.Addr()})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return cachestore.New(client), mr
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("add get delete", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Add(ctx, "k1", []byte("v1"), time.Minute))

		v, err := store.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte("v1"), v)

		require.NoError(t, store.Delete(ctx, "k1"))

		_, err = store.Get(ctx, "k1")
		require.ErrorIs(t, err, cache.ErrNotFound)

		require.NoError(t, store.Delete(ctx, "k1"))
	})

	t.Run("duplicate key", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Add(ctx, "k1", []byte("v1"), time.Minute))
		require.ErrorIs(t, store.Add(ctx, "k1", []byte("v2"), time.Minute), cache.ErrKeyExists)

		v, err := store.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte("v1"), v)
	})

	t.Run("expired", func(t *testing.T) {
		store, mr := newStore(t)

		require.NoError(t, store.Add(ctx, "k1", []byte("v1"), time.Second))

		mr.FastForward(2 * time.Second)

		_, err := store.Get(ctx, "k1")
		require.ErrorIs(t, err, cache.ErrNotFound)

		require.NoError(t, store.Add(ctx, "k1", []byte("v2"), time.Second))
	})

	t.Run("take is single use", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Add(ctx, "code", []byte("value"), time.Minute))

		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)

		for i := 0; i < 10; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				if _, err := store.Take(ctx, "code"); err == nil {
					wins.Add(1)
				}
			}()
		}

		wg.Wait()

		require.EqualValues(t, 1, wins.Load())

		_, err := store.Take(ctx, "code")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("corrupt document", func(t *testing.T) {
		store, mr := newStore(t)

		require.NoError(t, mr.Set("vcissuer:cache:bad", "not-json"))

		_, err := store.Get(ctx, "bad")
		require.ErrorContains(t, err, "document decode")
	})

	t.Run("connection error", func(t *testing.T) {
		store, mr := newStore(t)

		mr.Close()

		_, err := store.Get(ctx, "k")
		require.Error(t, err)
		require.NotErrorIs(t, err, cache.ErrNotFound)
	})
}
