// Package storetest opens throwaway SQLite-backed stores for package tests.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coachingku_backend/internals/cache"
	model "coachingku_backend/internals/models"
	"coachingku_backend/internals/seeds"
	"coachingku_backend/internals/store"
)

var seq atomic.Int64

// OpenDB returns a private in-memory SQLite database with every model table created.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// the in-memory database lives as long as its single connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Open returns an empty store with a memory cache.
func Open(t testing.TB) *store.Store {
	t.Helper()
	return store.New(OpenDB(t), cache.NewMemory(), time.Minute, nil)
}

// OpenSeeded returns a store holding the demo institute.
func OpenSeeded(t testing.TB) *store.Store {
	t.Helper()
	st := Open(t)
	if _, err := seeds.RunAllSeeds(context.Background(), st.DB()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return st
}
