package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"promo_backend/internals/features/gallery/model"
	helperOSS "promo_backend/internals/helpers/oss"
)

// purgeCutoff is the moment before which a soft-deleted image becomes
// eligible for permanent removal. Admin delete never touches storage;
// everything younger than this stays retrievable for restore.
func purgeCutoff(now time.Time, retentionDays int) time.Time {
	return now.UTC().Add(-time.Duration(retentionDays) * 24 * time.Hour)
}

// StartGalleryPurgeCron permanently removes gallery rows that have been
// soft-deleted longer than the retention window, together with their
// objects in storage. Default schedule is daily at 04:00.
func StartGalleryPurgeCron(db *gorm.DB) *cron.Cron {
	schedule := os.Getenv("GALLERY_PURGE_CRON")
	if schedule == "" {
		schedule = "0 4 * * *"
	}
	retentionDays := 30
	if raw := os.Getenv("GALLERY_PURGE_RETENTION_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			retentionDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cutoff := purgeCutoff(time.Now(), retentionDays)

		var rows []model.GalleryImageModel
		if err := db.Unscoped().
			Where("gallery_image_deleted_at IS NOT NULL AND gallery_image_deleted_at < ?", cutoff).
			Limit(100).
			Find(&rows).Error; err != nil {
			log.Printf("[purge] gallery scan failed: %v", err)
			return
		}
		if len(rows) == 0 {
			return
		}

		svc, err := helperOSS.NewOSSServiceFromEnv("gallery")
		if err != nil {
			// Storage not configured; rows wait for the next run.
			log.Printf("[purge] storage unavailable, skipping: %v", err)
			return
		}

		purged := 0
		for _, row := range rows {
			if err := svc.DeleteByPublicURL(ctx, row.GalleryImageURL); err != nil {
				continue
			}
			if err := db.Unscoped().
				Delete(&model.GalleryImageModel{}, "gallery_image_id = ?", row.GalleryImageID).Error; err != nil {
				log.Printf("[purge] row delete failed id=%s: %v", row.GalleryImageID, err)
				continue
			}
			purged++
		}
		log.Printf("[purge] removed %d gallery images", purged)
	})
	if err != nil {
		log.Printf("[purge] invalid schedule %q: %v", schedule, err)
		return c
	}

	c.Start()
	return c
}
