package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/events/controller"
)

// EventAdminRoutes mounts event and ticket sale management under the
// authenticated admin group.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	saleCtrl := controller.NewTicketSaleController(db)

	events := admin.Group("/events")
	events.Post("/", eventCtrl.Create)
	events.Get("/", eventCtrl.List)
	events.Put("/:id", eventCtrl.Update)
	events.Put("/:id/flyer", eventCtrl.UploadFlyer)
	events.Delete("/:id", eventCtrl.Delete)

	sales := admin.Group("/ticket-sales")
	sales.Post("/", saleCtrl.Create)
	sales.Get("/", saleCtrl.List)
	sales.Put("/:id", saleCtrl.Update)
	sales.Delete("/:id", saleCtrl.Delete)
}
