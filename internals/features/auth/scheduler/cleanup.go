package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"promo_backend/internals/features/auth/model"
)

// StartBlacklistCleanupCron purges token_blacklist rows whose expiry is
// older than the retention window. Default schedule is daily at 03:00.
func StartBlacklistCleanupCron(db *gorm.DB) *cron.Cron {
	schedule := os.Getenv("TOKEN_CLEANUP_CRON")
	if schedule == "" {
		schedule = "0 3 * * *"
	}
	ttlDays := 7
	if raw := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		deleteBefore := time.Now().UTC().Add(-time.Duration(ttlDays) * 24 * time.Hour)

		res := db.Unscoped().
			Where("expired_at < ?", deleteBefore).
			Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[cleanup] token_blacklist purge failed: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[cleanup] purged %d expired blacklist tokens", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[cleanup] invalid schedule %q: %v", schedule, err)
		return c
	}

	c.Start()
	return c
}
