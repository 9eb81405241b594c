package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/controller"
)

// FundAdminRoutes mounts the dues back office under the admin group.
func FundAdminRoutes(admin fiber.Router, db *gorm.DB) {
	payments := controller.NewFundPaymentController(db)
	stats := controller.NewFundStatsController(db)
	settings := controller.NewFundSettingsController(db)

	grp := admin.Group("/fund")
	grp.Post("/payments", payments.Create)
	grp.Post("/payments/bulk", payments.CreateBulk)
	grp.Get("/payments", payments.List)
	grp.Put("/payments/:id", payments.Update)
	grp.Delete("/payments/:id", payments.Delete)

	grp.Get("/ranking", stats.Ranking)

	grp.Get("/settings", settings.Get)
	grp.Put("/settings", settings.Update)
}
