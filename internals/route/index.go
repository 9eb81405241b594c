package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "promo_backend/internals/features/auth/route"
	eventRoute "promo_backend/internals/features/events/route"
	fundRoute "promo_backend/internals/features/fund/route"
	galleryRoute "promo_backend/internals/features/gallery/route"
	settingsRoute "promo_backend/internals/features/settings/route"
	studentRoute "promo_backend/internals/features/students/route"
	authmw "promo_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API surface.
//
//	/api/auth      login, logout
//	/api/public    read-only visitor endpoints
//	/api/payments  gateway webhook (signature authenticated)
//	/api/a         admin endpoints behind JWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	eventRoute.PaymentWebhookRoutes(api, db)

	public := api.Group("/public")
	settingsRoute.SettingsPublicRoutes(public, db)
	studentRoute.StudentPublicRoutes(public, db)
	fundRoute.FundPublicRoutes(public, db)
	eventRoute.EventPublicRoutes(public, db)
	galleryRoute.GalleryPublicRoutes(public, db)

	admin := api.Group("/a", authmw.AuthJWT(db))
	authRoute.AuthAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	fundRoute.FundAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	galleryRoute.GalleryAdminRoutes(admin, db)
}
