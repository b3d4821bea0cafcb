package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"coachingku_backend/internals/logger"
)

// Flusher is the part of the store the scheduler needs.
type Flusher interface {
	ClearCache(ctx context.Context) error
}

// StartCacheFlushScheduler clears the query cache on spec (standard 5-field cron, or
// descriptors such as "@every 15m"). An empty spec disables it and returns nil.
// The caller stops the returned cron on shutdown.
func StartCacheFlushScheduler(spec string, f Flusher) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { flush(f) }); err != nil {
		return nil, err
	}
	c.Start()
	logger.L.Infow("cache flush scheduled", "spec", spec)
	return c, nil
}

func flush(f Flusher) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	if err := f.ClearCache(ctx); err != nil {
		logger.L.Errorw("[CLEANUP] scheduled cache flush failed", "error", err)
		return
	}
	logger.L.Infow("[CLEANUP] cache flushed", "took", time.Since(start))
}
