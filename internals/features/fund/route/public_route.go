package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/fund/controller"
)

// FundPublicRoutes mounts the read-only dues endpoints.
func FundPublicRoutes(public fiber.Router, db *gorm.DB) {
	stats := controller.NewFundStatsController(db)

	public.Get("/fund/stats", stats.Stats)
	public.Get("/students/:id/dues", stats.StudentDues)
}
