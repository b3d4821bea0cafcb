// Package store is the data access layer shared by every page: reads go through a
// tag-indexed result cache, writes invalidate the tags of the table they touch.
package store

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coachingku_backend/internals/cache"
	"coachingku_backend/internals/tabular"
)

const schemaTag = "schema"

// int columns survive a cache round trip as int64 instead of float64
var codec = sonic.Config{UseInt64: true}.Froze()

type Store struct {
	db    *gorm.DB
	cache cache.Cache
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func New(db *gorm.DB, c cache.Cache, ttl time.Duration, log *zap.SugaredLogger) *Store {
	if c == nil {
		c = cache.Nop{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{db: db, cache: c, ttl: ttl, log: log}
}

func (s *Store) DB() *gorm.DB       { return s.db }
func (s *Store) Cache() cache.Cache { return s.cache }
func (s *Store) Dialect() string    { return s.db.Dialector.Name() }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

/* =========================================================
   Reads
========================================================= */

// Query runs a read statement on the shared pool and returns its rows in column order.
func (s *Store) Query(ctx context.Context, q string, args ...any) (tabular.Table, error) {
	rows, err := s.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return tabular.Table{}, err
	}
	defer rows.Close()
	return scan(rows)
}

// CachedQuery is Query memoized by statement identity. tables lists every table q
// reads; a write to any of them drops the entry.
func (s *Store) CachedQuery(ctx context.Context, tables []string, q string, args ...any) (tabular.Table, error) {
	return s.remember(ctx, "q:"+key(q, args), tables, func() (tabular.Table, error) {
		return s.Query(ctx, q, args...)
	})
}

// Table returns a whole-table snapshot, memoized by table name.
func (s *Store) Table(ctx context.Context, name string) (tabular.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return tabular.Table{}, Invalid("table name is required")
	}
	return s.remember(ctx, "t:"+name, []string{name}, func() (tabular.Table, error) {
		return s.Query(ctx, "SELECT * FROM ?", clause.Table{Name: name})
	})
}

// Scalar returns the first column of the first row as a number; NULL and no rows read as 0.
func (s *Store) Scalar(ctx context.Context, tables []string, q string, args ...any) (float64, error) {
	t, err := s.CachedQuery(ctx, tables, q, args...)
	if err != nil {
		return 0, err
	}
	if t.Empty() || len(t.Columns) == 0 {
		return 0, nil
	}
	f, _ := tabular.Float(t.Rows[0][t.Columns[0]])
	return f, nil
}

// ListTables enumerates the tables of the connected database, sorted by name. Memoized.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	k := "tables"
	if b, ok, err := s.cache.Get(ctx, k); err != nil {
		s.log.Warnw("cache get failed", "key", k, "error", err)
	} else if ok {
		var names []string
		if err := codec.Unmarshal(b, &names); err == nil {
			return names, nil
		}
	}

	tags := []string{schemaTag}
	stamp, stampErr := s.cache.Versions(ctx, tags...)
	names, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	if b, err := codec.Marshal(names); err == nil {
		s.put(ctx, k, b, tags, stamp, stampErr)
	}
	return names, nil
}

/* =========================================================
   Writes
========================================================= */

// Exec runs a single auto-committed statement against table and drops every cached
// read that depends on it. Zero rows affected is not an error.
func (s *Store) Exec(ctx context.Context, table, stmt string, args ...any) (int64, error) {
	res := s.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return 0, res.Error
	}
	s.Invalidate(ctx, table)
	return res.RowsAffected, nil
}

// Invalidate drops cached reads of the given tables. If the tag index cannot be
// reached the whole cache is cleared instead.
func (s *Store) Invalidate(ctx context.Context, tables ...string) {
	if len(tables) == 0 {
		return
	}
	if err := s.cache.InvalidateTags(ctx, tables...); err != nil {
		s.log.Warnw("tag invalidation failed, clearing cache", "tables", tables, "error", err)
		if err := s.cache.Clear(ctx); err != nil {
			s.log.Errorw("cache clear failed", "error", err)
		}
	}
}

func (s *Store) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

/* =========================================================
   Internals
========================================================= */

func (s *Store) remember(ctx context.Context, k string, tags []string, load func() (tabular.Table, error)) (tabular.Table, error) {
	if b, ok, err := s.cache.Get(ctx, k); err != nil {
		s.log.Warnw("cache get failed", "key", k, "error", err)
	} else if ok {
		var t tabular.Table
		if err := codec.Unmarshal(b, &t); err == nil {
			s.log.Debugw("cache hit", "key", k)
			return normalizeDecoded(t), nil
		}
	}

	// stamp before loading: a write that lands mid-load must keep this result out of the cache
	stamp, stampErr := s.cache.Versions(ctx, tags...)
	t, err := load()
	if err != nil {
		return tabular.Table{}, err
	}

	b, err := codec.Marshal(t)
	if err != nil {
		s.log.Warnw("encode cache entry failed", "key", k, "error", err)
		return t, nil
	}
	s.put(ctx, k, b, tags, stamp, stampErr)
	return t, nil
}

func (s *Store) put(ctx context.Context, k string, b []byte, tags []string, stamp cache.Stamp, stampErr error) {
	if stampErr != nil {
		s.log.Warnw("cache versions failed, not caching", "key", k, "error", stampErr)
		return
	}
	ok, err := s.cache.SetIfCurrent(ctx, k, b, tags, stamp, s.ttl)
	switch {
	case err != nil:
		s.log.Warnw("cache set failed", "key", k, "error", err)
	case !ok:
		s.log.Debugw("cache set skipped, tables written during load", "key", k, "tags", tags)
	}
}

func key(q string, args []any) string {
	h := sha1.New()
	h.Write([]byte(q))
	for _, a := range args {
		h.Write([]byte{0})
		fmt.Fprintf(h, "%T:%v", a, a)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func scan(rows *sql.Rows) (tabular.Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return tabular.Table{}, err
	}
	out := make([]tabular.Row, 0)
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return tabular.Table{}, err
		}
		r := make(tabular.Row, len(cols))
		for i, c := range cols {
			r[c] = tabular.Normalize(vals[i])
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return tabular.Table{}, err
	}
	return tabular.New(cols, out), nil
}

// decoded json may carry nil Rows and nested json numbers; bring them back to Row value types.
func normalizeDecoded(t tabular.Table) tabular.Table {
	if t.Rows == nil {
		t.Rows = []tabular.Row{}
	}
	for _, r := range t.Rows {
		for k, v := range r {
			r[k] = tabular.Normalize(v)
		}
	}
	return t
}
