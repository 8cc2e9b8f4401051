package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Resource cache for upstream reads, keyed by logical resource name.
// Mutations never patch entries, they drop the key and force a refetch.

type Provider interface {
	Get(ctx context.Context, key string, out interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

var Instance Provider

func NewInstance(client *redis.Client) Provider {
	return &impl{
		client: client,
	}
}

func Init(addr, password string, db int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}
	Instance = NewInstance(client)
	return nil
}

type impl struct {
	client *redis.Client
}

func (i impl) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := i.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to read cache key (%v)", key)
	}
	if err = json.Unmarshal([]byte(data), out); err != nil {
		// a broken entry behaves like a miss, the fresh fetch overwrites it
		log.WithError(err).WithField("cache_key", key).Warn("dropping unreadable cache entry")
		return false, nil
	}
	return true, nil
}

func (i impl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize cache value (%v)", key)
	}
	return i.client.Set(ctx, key, data, ttl).Err()
}

func (i impl) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return i.client.Del(ctx, keys...).Err()
}

// Logical key builders, the names mirror the resources the SPA used.

func MyEventsKey(username string) string {
	return fmt.Sprintf("events:%v", username)
}

func FeedKey() string {
	return "eventsFeed"
}

func EventKey(eventID int64) string {
	return fmt.Sprintf("event:%v", eventID)
}

func NotificationsKey(username string) string {
	return fmt.Sprintf("notifications:%v", username)
}
