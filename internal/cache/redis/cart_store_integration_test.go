//go:build integration

package redis_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cartredis "github.com/Gunvolt24/pixelcraft/internal/cache/redis"
	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/testutil"
)

func TestCartStore_Redis_RoundTripAndTTL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	rdb, err := cartredis.Connect(ctx, cartredis.Options{Addr: env.Addr})
	require.NoError(t, err)
	defer rdb.Close()

	store := cartredis.NewCartStore(rdb, 2*time.Second)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	cart := &domain.SessionCart{SessionID: "sid-1"}
	cart.Add(&domain.Product{ID: "pc-1", Name: "PC Gamer", Price: 2999.90})
	cart.Add(&domain.Product{ID: "pc-1", Name: "PC Gamer", Price: 2999.90})
	require.NoError(t, store.Save(ctx, cart))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 1, got.Count())
	require.Equal(t, 2, got.Lines[0].Quantity)

	ttl, err := rdb.TTL(ctx, "pixelcraft:cart:sid-1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "sid-1"))
	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCartStore_Redis_ConcurrentUpdates(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	rdb, err := cartredis.Connect(ctx, cartredis.Options{Addr: env.Addr})
	require.NoError(t, err)
	defer rdb.Close()

	store := cartredis.NewCartStore(rdb, time.Minute)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(ctx, "sid-race", func(c *domain.SessionCart) error {
				c.Add(&domain.Product{ID: fmt.Sprintf("pc-%d", i), Price: 1})
				return nil
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.Get(ctx, "sid-race")
	require.NoError(t, err)
	require.Equal(t, n, got.Count())

	boom := errors.New("boom")
	_, err = store.Update(ctx, "sid-race", func(c *domain.SessionCart) error {
		c.Lines = nil
		return boom
	})
	require.ErrorIs(t, err, boom)
	got, err = store.Get(ctx, "sid-race")
	require.NoError(t, err)
	require.Equal(t, n, got.Count())
}
