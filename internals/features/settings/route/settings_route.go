package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/settings/controller"
)

// SettingsAdminRoutes mounts site settings management under the admin group.
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiteSettingsController(db)

	settings := admin.Group("/settings")
	settings.Get("/", ctrl.Get)
	settings.Put("/", ctrl.Update)
	settings.Put("/hero", ctrl.UploadHero)
}

// SettingsPublicRoutes exposes the read side to visitors.
func SettingsPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiteSettingsController(db)
	public.Get("/settings", ctrl.Get)
}
