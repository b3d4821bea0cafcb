// Package cache stores encoded query results tagged with the tables they read,
// so a write can drop exactly the entries that depend on the mutated table.
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrClosed = errors.New("cache: closed")

// Stamp is an opaque snapshot of tag generations taken before a load. Compare it only
// through SetIfCurrent.
type Stamp []int64

type Cache interface {
	// Get returns the stored value and whether it was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key and indexes it under every tag.
	Set(ctx context.Context, key string, value []byte, tags []string, ttl time.Duration) error
	// Versions stamps the current generation of tags. InvalidateTags and Clear advance it.
	Versions(ctx context.Context, tags ...string) (Stamp, error)
	// SetIfCurrent stores like Set only while tags are still at the generations in stamp.
	// A write that landed during the load makes it a no-op reporting false.
	SetIfCurrent(ctx context.Context, key string, value []byte, tags []string, stamp Stamp, ttl time.Duration) (bool, error)
	// InvalidateTags drops every entry indexed under any of tags.
	InvalidateTags(ctx context.Context, tags ...string) error
	// Clear drops every entry.
	Clear(ctx context.Context) error
	Name() string
	Close() error
}

// Nop never stores anything. Used when caching is disabled.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, []string, time.Duration) error {
	return nil
}
func (Nop) Versions(context.Context, ...string) (Stamp, error) { return nil, nil }
func (Nop) SetIfCurrent(context.Context, string, []byte, []string, Stamp, time.Duration) (bool, error) {
	return false, nil
}
func (Nop) InvalidateTags(context.Context, ...string) error { return nil }
func (Nop) Clear(context.Context) error                     { return nil }
func (Nop) Name() string                                    { return "none" }
func (Nop) Close() error                                    { return nil }
