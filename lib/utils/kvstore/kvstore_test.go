package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Code  string `json:"code"`
	Tries int    `json:"tries"`
}

func checkProvider(t *testing.T, store Provider, expire func(d time.Duration)) {
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SetJSON(ctx, store, "otp:1", payload{Code: "123456", Tries: 1}, time.Minute))
	var out payload
	found, err = GetJSON(ctx, store, "otp:1", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Code: "123456", Tries: 1}, out)

	require.NoError(t, store.Delete(ctx, "otp:1"))
	found, err = GetJSON(ctx, store, "otp:1", &out)
	require.NoError(t, err)
	require.False(t, found)

	count, err := store.Incr(ctx, "counter", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	count, err = store.Incr(ctx, "counter", time.Minute)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	require.NoError(t, store.Set(ctx, "short", []byte("x"), time.Second))
	expire(2 * time.Second)
	_, found, err = store.Get(ctx, "short")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisProvider(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	checkProvider(t, NewRedis(client), mr.FastForward)
	require.True(t, mr.Exists(redisKeyPrefix+"counter"))
}

func TestMemoryProvider(t *testing.T) {
	checkProvider(t, NewMemory(), func(d time.Duration) {
		time.Sleep(d)
	})
}
