package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// tombstone marks a key whose entity was deleted. It lives for the cache TTL
// so that a read which loaded the entity before the delete cannot re-populate
// the key afterwards.
const tombstone = "\x00deleted"

// setUnlessTombstoned writes ARGV[1] to KEYS[1] (with an optional PX of
// ARGV[2]) unless the key currently holds a tombstone.
var setUnlessTombstoned = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[3] then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// delUnlessTombstoned removes KEYS[1] unless it holds a tombstone.
var delUnlessTombstoned = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return 0
end
return redis.call('DEL', KEYS[1])
`)

// ViewCache is a JSON-backed Redis cache for read model projections of type T.
// A zero TTL stores keys without expiry. Every failure is logged and treated
// as a miss: the cache never fails a request.
//
// Writers use Set, readers warming the cache use SetIfAbsent, and deletes
// leave a Tombstone. A tombstone is only ever replaced by expiry.
type ViewCache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
	log    *logrus.Entry
}

func NewViewCache[T any](client *goredis.Client, ttl time.Duration, log *logrus.Entry) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl, log: log}
}

// Get returns (nil, false) on a miss, a tombstone, a Redis error or a
// corrupt entry.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.WithError(err).WithField("key", key).Warn("view cache read failed")
		}
		return nil, false
	}
	if string(data) == tombstone {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache entry is corrupt")
		return nil, false
	}
	return &v, true
}

// Set stores value, replacing any live entry but never a tombstone.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, ok := c.marshal(key, value)
	if !ok {
		return
	}
	err := setUnlessTombstoned.Run(ctx, c.client, []string{key}, data, c.ttl.Milliseconds(), tombstone).Err()
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache write failed")
	}
}

// SetIfAbsent stores value only when key is empty. Readers warm the cache
// with it so a value loaded before a concurrent write or delete never
// replaces what that write or delete left behind.
func (c *ViewCache[T]) SetIfAbsent(ctx context.Context, key string, value *T) {
	data, ok := c.marshal(key, value)
	if !ok {
		return
	}
	if err := c.client.SetNX(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache warm failed")
	}
}

// Delete drops a live entry. Tombstones are left in place.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := delUnlessTombstoned.Run(ctx, c.client, []string{key}, tombstone).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache delete failed")
	}
}

// Tombstone records that the entity behind key no longer exists.
func (c *ViewCache[T]) Tombstone(ctx context.Context, key string) {
	if err := c.client.Set(ctx, key, tombstone, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache tombstone failed")
	}
}

func (c *ViewCache[T]) marshal(key string, value *T) ([]byte, bool) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("view cache marshal failed")
		return nil, false
	}
	return data, true
}
