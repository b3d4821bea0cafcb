package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"coachingku_backend/internals/cache"
	"coachingku_backend/internals/configs"
	database "coachingku_backend/internals/databases"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
	middlewares "coachingku_backend/internals/middlewares"
	model "coachingku_backend/internals/models"
	routes "coachingku_backend/internals/route"
	"coachingku_backend/internals/scheduler"
	"coachingku_backend/internals/seeds"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/views"
)

func main() {
	configs.LoadEnv()

	if _, err := logger.Init(configs.LogLevel, configs.LogFormat); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		AppName:               configs.AppName,
		Views:                 views.Engine(),
		ErrorHandler:          helper.FromFiberError,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), configs.RequestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		logger.L.Debugw("[REQ]", "id", id, "method", c.Method(), "url", c.OriginalURL(),
			"status", c.Response().StatusCode(), "dur", time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if configs.DBAutoMigrate {
		if err := model.AutoMigrate(database.DB.WithContext(bootCtx)); err != nil {
			logger.L.Fatalf("❌ auto migrate failed: %v", err)
		}
		logger.L.Info("✅ schema migrated")
	}
	if configs.DBSeed {
		if _, err := seeds.RunAllSeeds(bootCtx, database.DB); err != nil {
			logger.L.Errorw("seed failed", "error", err)
		}
	}

	// 🧠 query cache (redis jatuh ke memory kalau tidak bisa dihubungi)
	qc, err := cache.Open(bootCtx, configs.CacheDriver, cache.RedisOptions{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err != nil {
		logger.L.Warnw("cache unavailable, falling back to memory", "driver", configs.CacheDriver, "error", err)
		qc = cache.NewMemory()
	}
	bootCancel()

	st := store.New(database.DB, qc, configs.CacheTTL, logger.L)

	// ⏱ scheduler setelah cache siap
	flushCron, err := scheduler.StartCacheFlushScheduler(configs.CacheFlushCron, st)
	if err != nil {
		logger.L.Errorw("invalid CACHE_FLUSH_CRON, scheduler disabled", "spec", configs.CacheFlushCron, "error", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, st)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		logger.L.Infof("✅ Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			logger.L.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB & cache
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if flushCron != nil {
		<-flushCron.Stop().Done()
	}
	if err := qc.Close(); err != nil {
		logger.L.Warnw("cache close", "error", err)
	}
	database.Close()
}
