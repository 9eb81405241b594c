package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	authModel "promo_backend/internals/features/auth/model"
	authService "promo_backend/internals/features/auth/service"
)

// RunAllSeeds creates the initial admin account when ADMIN_USERNAME and
// ADMIN_PASSWORD are set and no such user exists yet. Safe to run on
// every boot.
func RunAllSeeds(db *gorm.DB) {
	seedAdminUser(db)
}

func seedAdminUser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("user_username = ?", username).
		Count(&count).Error; err != nil {
		log.Printf("[seed] admin lookup failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[seed] hash failed: %v", err)
		return
	}
	user := authModel.UserModel{
		UserUsername:     username,
		UserPasswordHash: hash,
		UserRole:         authModel.RoleAdmin,
		UserIsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[seed] admin create failed: %v", err)
		return
	}
	log.Printf("[seed] admin account %q created", username)
}
