package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryTagInvalidation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_ = m.Set(ctx, "t:student", []byte("a"), []string{"student"}, 0)
	_ = m.Set(ctx, "q:join", []byte("b"), []string{"student", "course"}, 0)
	_ = m.Set(ctx, "t:lead", []byte("c"), []string{"lead"}, 0)

	if err := m.InvalidateTags(ctx, "course"); err != nil {
		t.Fatalf("InvalidateTags: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "q:join"); ok {
		t.Fatalf("q:join should be gone after course invalidation")
	}
	if v, ok, _ := m.Get(ctx, "t:student"); !ok || string(v) != "a" {
		t.Fatalf("t:student should survive, got %q %v", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("Len after Clear = %d", m.Len())
	}
}

func TestMemorySetIfCurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	tags := []string{"student", "course"}

	stale, _ := m.Versions(ctx, tags...)
	_ = m.InvalidateTags(ctx, "course")
	if ok, err := m.SetIfCurrent(ctx, "q:join", []byte("old"), tags, stale, 0); ok || err != nil {
		t.Fatalf("SetIfCurrent after invalidation = %v, %v", ok, err)
	}
	if _, ok, _ := m.Get(ctx, "q:join"); ok {
		t.Fatalf("stale entry stored")
	}

	// other tags do not disturb the stamp
	cur, _ := m.Versions(ctx, tags...)
	_ = m.InvalidateTags(ctx, "lead")
	if ok, _ := m.SetIfCurrent(ctx, "q:join", []byte("new"), tags, cur, 0); !ok {
		t.Fatalf("current stamp rejected")
	}
	if v, ok, _ := m.Get(ctx, "q:join"); !ok || string(v) != "new" {
		t.Fatalf("Get = %q %v", v, ok)
	}

	beforeClear, _ := m.Versions(ctx, tags...)
	_ = m.Clear(ctx)
	if ok, _ := m.SetIfCurrent(ctx, "q:join", []byte("x"), tags, beforeClear, 0); ok {
		t.Fatalf("stamp taken before Clear accepted")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	_ = m.Set(ctx, "k", []byte("v"), nil, time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatalf("fresh entry missing")
	}
	now = now.Add(2 * time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expired entry still served")
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Set(ctx, "k", []byte("abc"), nil, 0)
	v, _, _ := m.Get(ctx, "k")
	v[0] = 'x'
	again, _, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("cached value mutated: %q", again)
	}
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Close()
	if _, _, err := m.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Get after Close = %v", err)
	}
	if err := m.Set(ctx, "k", nil, nil, 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Set after Close = %v", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	c, err := Open(ctx, "memory", RedisOptions{})
	if err != nil || c.Name() != "memory" {
		t.Fatalf("Open(memory) = %v, %v", c, err)
	}
	c, err = Open(ctx, "off", RedisOptions{})
	if err != nil || c.Name() != "none" {
		t.Fatalf("Open(off) = %v, %v", c, err)
	}
	if _, err := Open(ctx, "memcached", RedisOptions{}); err == nil {
		t.Fatalf("unknown driver accepted")
	}
}
