package cache

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value   []byte
	tags    []string
	expires time.Time
}

// Memory is a process-local cache. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memEntry
	byTag   map[string]map[string]struct{}
	gen     map[string]int64 // per tag, bumped by InvalidateTags
	epoch   int64            // bumped by Clear
	now     func() time.Time
	closed  bool
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memEntry),
		byTag:   make(map[string]map[string]struct{}),
		gen:     make(map[string]int64),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		m.deleteLocked(key)
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, tags []string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.setLocked(key, value, tags, ttl)
	return nil
}

func (m *Memory) Versions(_ context.Context, tags ...string) (Stamp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	return m.stampLocked(tags), nil
}

func (m *Memory) SetIfCurrent(_ context.Context, key string, value []byte, tags []string, stamp Stamp, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false, ErrClosed
	}
	cur := m.stampLocked(tags)
	if len(cur) != len(stamp) {
		return false, nil
	}
	for i := range cur {
		if cur[i] != stamp[i] {
			return false, nil
		}
	}
	m.setLocked(key, value, tags, ttl)
	return true, nil
}

// stampLocked is [epoch, gen(tags[0]), gen(tags[1]), ...].
func (m *Memory) stampLocked(tags []string) Stamp {
	st := make(Stamp, 0, len(tags)+1)
	st = append(st, m.epoch)
	for _, t := range tags {
		st = append(st, m.gen[t])
	}
	return st
}

func (m *Memory) setLocked(key string, value []byte, tags []string, ttl time.Duration) {
	m.deleteLocked(key)

	e := memEntry{value: append([]byte(nil), value...), tags: append([]string(nil), tags...)}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
	for _, t := range tags {
		set, ok := m.byTag[t]
		if !ok {
			set = make(map[string]struct{})
			m.byTag[t] = set
		}
		set[key] = struct{}{}
	}
}

func (m *Memory) InvalidateTags(_ context.Context, tags ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	for _, t := range tags {
		for key := range m.byTag[t] {
			m.deleteLocked(key)
		}
		delete(m.byTag, t)
		m.gen[t]++
	}
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.entries = make(map[string]memEntry)
	m.byTag = make(map[string]map[string]struct{})
	m.epoch++
	return nil
}

// Len reports the number of live entries, expired ones included until touched.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.entries = nil
	m.byTag = nil
	m.gen = nil
	return nil
}

func (m *Memory) deleteLocked(key string) {
	e, ok := m.entries[key]
	if !ok {
		return
	}
	delete(m.entries, key)
	for _, t := range e.tags {
		if set, ok := m.byTag[t]; ok {
			delete(set, key)
			if len(set) == 0 {
				delete(m.byTag, t)
			}
		}
	}
}
