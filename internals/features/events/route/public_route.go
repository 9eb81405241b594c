package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/events/controller"
)

// EventPublicRoutes mounts the visitor-facing event endpoints.
func EventPublicRoutes(public fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	checkoutCtrl := controller.NewCheckoutController(db)

	public.Get("/events", eventCtrl.PublicList)
	public.Get("/events/:slug", eventCtrl.PublicBySlug)
	public.Post("/events/:slug/checkout", checkoutCtrl.Checkout)
}

// PaymentWebhookRoutes mounts the gateway notification endpoint. It sits
// outside the public and admin groups because midtrans authenticates by
// signature, not by JWT.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	checkoutCtrl := controller.NewCheckoutController(db)
	api.Post("/payments/notification", checkoutCtrl.Notification)
}
