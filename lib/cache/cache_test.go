package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (Provider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewInstance(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run(`set then get round trip`, func(t *testing.T) {
		c, _ := newTestCache(t)
		err := c.Set(ctx, MyEventsKey("john"), []string{"a", "b"}, time.Minute)
		require.Nil(t, err)

		out := []string{}
		found, err := c.Get(ctx, MyEventsKey("john"), &out)
		require.Nil(t, err)
		require.Equal(t, true, found)
		require.Equal(t, []string{"a", "b"}, out)
	})

	t.Run(`missing key is a miss`, func(t *testing.T) {
		c, _ := newTestCache(t)
		out := []string{}
		found, err := c.Get(ctx, FeedKey(), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)
	})

	t.Run(`broken entry behaves like a miss`, func(t *testing.T) {
		c, mr := newTestCache(t)
		mr.Set(EventKey(7), "{not json")

		out := map[string]string{}
		found, err := c.Get(ctx, EventKey(7), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)
	})

	t.Run(`entries expire with their ttl`, func(t *testing.T) {
		c, mr := newTestCache(t)
		err := c.Set(ctx, NotificationsKey("john"), []int{1, 2}, time.Minute)
		require.Nil(t, err)

		mr.FastForward(2 * time.Minute)

		out := []int{}
		found, err := c.Get(ctx, NotificationsKey("john"), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)
	})

	t.Run(`invalidate drops listed keys only`, func(t *testing.T) {
		c, _ := newTestCache(t)
		require.Nil(t, c.Set(ctx, MyEventsKey("john"), 1, time.Minute))
		require.Nil(t, c.Set(ctx, FeedKey(), 2, time.Minute))

		require.Nil(t, c.Invalidate(ctx, MyEventsKey("john")))

		out := 0
		found, err := c.Get(ctx, MyEventsKey("john"), &out)
		require.Nil(t, err)
		require.Equal(t, false, found)

		found, err = c.Get(ctx, FeedKey(), &out)
		require.Nil(t, err)
		require.Equal(t, true, found)
	})

	t.Run(`invalidate with no keys is a no-op`, func(t *testing.T) {
		c, _ := newTestCache(t)
		require.Nil(t, c.Invalidate(ctx))
	})
}
