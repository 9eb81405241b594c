package database

import (
	"log"
	"strconv"

	"promo_backend/internals/configs"
	authModel "promo_backend/internals/features/auth/model"
	eventModel "promo_backend/internals/features/events/model"
	fundModel "promo_backend/internals/features/fund/model"
	galleryModel "promo_backend/internals/features/gallery/model"
	settingsModel "promo_backend/internals/features/settings/model"
	studentModel "promo_backend/internals/features/students/model"
)

// AutoMigrate runs schema migration when AUTO_MIGRATE=true.
// Production schemas are expected to be managed externally; this exists
// for local development and first boot.
func AutoMigrate() {
	run, _ := strconv.ParseBool(configs.GetEnv("AUTO_MIGRATE", "false"))
	if !run {
		return
	}
	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&settingsModel.SiteSettingsModel{},
		&studentModel.StudentModel{},
		&fundModel.FundSettingsModel{},
		&fundModel.FundPaymentModel{},
		&eventModel.EventModel{},
		&eventModel.TicketSaleModel{},
		&galleryModel.GalleryImageModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("auto-migrate done")
}
