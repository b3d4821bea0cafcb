package seeds

import (
	"context"

	"gorm.io/gorm"

	"coachingku_backend/internals/logger"
	"coachingku_backend/internals/seeds/coaching"
)

// RunAllSeeds loads the demo institute when the student table is still empty.
// It reports whether anything was inserted.
func RunAllSeeds(ctx context.Context, db *gorm.DB) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Table("student").Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		logger.L.Infow("seed skipped, student table not empty", "rows", n)
		return false, nil
	}

	//* Coaching demo data
	if err := coaching.SeedCoachingFromJSON(db.WithContext(ctx), coaching.DemoData); err != nil {
		return false, err
	}
	logger.L.Info("demo data seeded")
	return true, nil
}
