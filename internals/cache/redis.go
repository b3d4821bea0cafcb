package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	entryPrefix = "entry:" // String: {prefix}entry:{key} -> encoded value
	tagPrefix   = "tag:"   // Set: {prefix}tag:{table} -> entry keys reading that table
	verPrefix   = "ver:"   // Counter: {prefix}ver:{table} -> tag generation
	epochKey    = "epoch"  // Counter: {prefix}epoch -> bumped by Clear

	clearBatch = 500
)

// KEYS: entry, epoch, ver:{tag}..., tag:{tag}...
// ARGV: value, ttl ms (0 = none), stamp (epoch first, then one per tag)
var setIfCurrentScript = redis.NewScript(`
local n = (#KEYS - 2) / 2
for i = 0, n do
	local k = (i == 0) and KEYS[2] or KEYS[2 + i]
	if tonumber(redis.call('GET', k) or '0') ~= tonumber(ARGV[3 + i]) then
		return 0
	end
end
local ttl = tonumber(ARGV[2])
if ttl > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ttl)
else
	redis.call('SET', KEYS[1], ARGV[1])
end
for i = 1, n do
	local tk = KEYS[2 + n + i]
	redis.call('SADD', tk, KEYS[1])
	if ttl > 0 then
		redis.call('PEXPIRE', tk, 2 * ttl)
	end
end
return 1
`)

// KEYS: tag:{tag}, ver:{tag} pairs. Members and the set go in one step, so a
// concurrent SADD either lands before (and is dropped) or after (and survives tagged).
var invalidateScript = redis.NewScript(`
for i = 1, #KEYS, 2 do
	local members = redis.call('SMEMBERS', KEYS[i])
	for _, m in ipairs(members) do
		redis.call('DEL', m)
	end
	redis.call('DEL', KEYS[i])
	redis.call('INCR', KEYS[i + 1])
end
return 1
`)

// Redis shares cached results between every process pointed at the same server.
type Redis struct {
	client *redis.Client
	prefix string
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedis connects and pings. The caller decides whether a failure is fatal.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address is empty")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return NewRedisFromClient(client, opts.Prefix), nil
}

func NewRedisFromClient(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "coachingku:"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) entryKey(key string) string { return r.prefix + entryPrefix + key }
func (r *Redis) tagKey(tag string) string   { return r.prefix + tagPrefix + tag }
func (r *Redis) verKey(tag string) string   { return r.prefix + verPrefix + tag }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.entryKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, tags []string, ttl time.Duration) error {
	ek := r.entryKey(key)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, ek, value, ttl)
	for _, t := range tags {
		tk := r.tagKey(t)
		pipe.SAdd(ctx, tk, ek)
		if ttl > 0 {
			// tag sets outlive their entries a little; stale members are harmless on DEL
			pipe.Expire(ctx, tk, 2*ttl)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

func (r *Redis) Versions(ctx context.Context, tags ...string) (Stamp, error) {
	keys := make([]string, 0, len(tags)+1)
	keys = append(keys, r.prefix+epochKey)
	for _, t := range tags {
		keys = append(keys, r.verKey(t))
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read tag versions: %w", err)
	}
	st := make(Stamp, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // missing counter = generation 0
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tag version %s: %w", keys[i], err)
		}
		st[i] = n
	}
	return st, nil
}

func (r *Redis) SetIfCurrent(ctx context.Context, key string, value []byte, tags []string, stamp Stamp, ttl time.Duration) (bool, error) {
	if len(stamp) != len(tags)+1 {
		return false, nil
	}
	keys := make([]string, 0, 2+2*len(tags))
	keys = append(keys, r.entryKey(key), r.prefix+epochKey)
	for _, t := range tags {
		keys = append(keys, r.verKey(t))
	}
	for _, t := range tags {
		keys = append(keys, r.tagKey(t))
	}
	args := make([]any, 0, 2+len(stamp))
	args = append(args, value, ttl.Milliseconds())
	for _, v := range stamp {
		args = append(args, v)
	}
	n, err := setIfCurrentScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return false, fmt.Errorf("set cache entry: %w", err)
	}
	return n == 1, nil
}

func (r *Redis) InvalidateTags(ctx context.Context, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, 2*len(tags))
	for _, t := range tags {
		keys = append(keys, r.tagKey(t), r.verKey(t))
	}
	if err := invalidateScript.Run(ctx, r.client, keys).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate tags %v: %w", tags, err)
	}
	return nil
}

// Clear bumps the epoch, so loads that started earlier cannot store their results,
// then deletes every other key under the prefix in SCAN batches.
func (r *Redis) Clear(ctx context.Context) error {
	epoch := r.prefix + epochKey
	if err := r.client.Incr(ctx, epoch).Err(); err != nil {
		return fmt.Errorf("bump cache epoch: %w", err)
	}
	iter := r.client.Scan(ctx, 0, r.prefix+"*", clearBatch).Iterator()
	batch := make([]string, 0, clearBatch)
	for iter.Next(ctx) {
		if iter.Val() == epoch {
			continue
		}
		batch = append(batch, iter.Val())
		if len(batch) == clearBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}
	return nil
}

func (r *Redis) Name() string { return "redis" }

func (r *Redis) Close() error { return r.client.Close() }
