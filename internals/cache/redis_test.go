package cache

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T, prefix string) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFromClient(client, prefix), mr
}

func TestRedisTagInvalidation(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, "test:")

	_ = r.Set(ctx, "t:student", []byte("a"), []string{"student"}, time.Minute)
	_ = r.Set(ctx, "q:join", []byte("b"), []string{"student", "course"}, time.Minute)
	_ = r.Set(ctx, "t:lead", []byte("c"), []string{"lead"}, time.Minute)

	if !mr.Exists("test:entry:q:join") || !mr.Exists("test:tag:course") {
		t.Fatalf("keys not prefixed: %v", mr.Keys())
	}
	if ttl := mr.TTL("test:tag:student"); ttl != 2*time.Minute {
		t.Fatalf("tag ttl = %v, want 2m", ttl)
	}

	if err := r.InvalidateTags(ctx, "course"); err != nil {
		t.Fatalf("InvalidateTags: %v", err)
	}
	if _, ok, _ := r.Get(ctx, "q:join"); ok {
		t.Fatalf("q:join should be gone after course invalidation")
	}
	if v, ok, _ := r.Get(ctx, "t:student"); !ok || string(v) != "a" {
		t.Fatalf("t:student should survive, got %q %v", v, ok)
	}
	if v, ok, _ := r.Get(ctx, "t:lead"); !ok || string(v) != "c" {
		t.Fatalf("t:lead should survive, got %q %v", v, ok)
	}
	if mr.Exists("test:tag:course") {
		t.Fatalf("tag set left behind")
	}
}

func TestRedisExpiry(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, "")

	_ = r.Set(ctx, "k", []byte("v"), nil, time.Minute)
	if _, ok, _ := r.Get(ctx, "k"); !ok {
		t.Fatalf("fresh entry missing")
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := r.Get(ctx, "k"); ok {
		t.Fatalf("expired entry still served")
	}
}

func TestRedisSetIfCurrent(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, "test:")
	tags := []string{"student", "course"}

	stale, err := r.Versions(ctx, tags...)
	if err != nil || len(stale) != 3 {
		t.Fatalf("Versions = %v, %v", stale, err)
	}
	_ = r.InvalidateTags(ctx, "course")
	if ok, err := r.SetIfCurrent(ctx, "q:join", []byte("old"), tags, stale, time.Minute); ok || err != nil {
		t.Fatalf("SetIfCurrent after invalidation = %v, %v", ok, err)
	}
	if _, ok, _ := r.Get(ctx, "q:join"); ok {
		t.Fatalf("stale entry stored")
	}

	cur, _ := r.Versions(ctx, tags...)
	if ok, err := r.SetIfCurrent(ctx, "q:join", []byte("new"), tags, cur, time.Minute); !ok || err != nil {
		t.Fatalf("current stamp rejected: %v", err)
	}
	if v, ok, _ := r.Get(ctx, "q:join"); !ok || string(v) != "new" {
		t.Fatalf("Get = %q %v", v, ok)
	}
	if ttl := mr.TTL("test:entry:q:join"); ttl != time.Minute {
		t.Fatalf("entry ttl = %v", ttl)
	}
	if members, _ := mr.Members("test:tag:student"); len(members) != 1 || members[0] != "test:entry:q:join" {
		t.Fatalf("tag members = %v", members)
	}

	// the conditional entry is tagged like any other
	_ = r.InvalidateTags(ctx, "student")
	if _, ok, _ := r.Get(ctx, "q:join"); ok {
		t.Fatalf("q:join survived student invalidation")
	}

	beforeClear, _ := r.Versions(ctx, tags...)
	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if ok, _ := r.SetIfCurrent(ctx, "q:join", []byte("x"), tags, beforeClear, time.Minute); ok {
		t.Fatalf("stamp taken before Clear accepted")
	}
}

func TestRedisClearBatches(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, "a:")

	other := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "b:")
	t.Cleanup(func() { _ = other.Close() })
	_ = other.Set(ctx, "keep", []byte("1"), []string{"student"}, 0)

	for i := 0; i < 2*clearBatch+37; i++ {
		if err := r.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), nil, 0); err != nil {
			t.Fatalf("Set %d: %v", i, err)
		}
	}
	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	for _, k := range mr.Keys() {
		if k != "a:epoch" && strings.HasPrefix(k, "a:") {
			t.Fatalf("key %q survived Clear", k)
		}
	}
	if v, ok, _ := other.Get(ctx, "keep"); !ok || string(v) != "1" {
		t.Fatalf("other prefix touched: %q %v", v, ok)
	}
}

func TestNewRedisRequiresAddr(t *testing.T) {
	if _, err := NewRedis(context.Background(), RedisOptions{}); err == nil {
		t.Fatalf("empty address accepted")
	}
}
