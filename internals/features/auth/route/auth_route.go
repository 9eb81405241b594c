package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/auth/controller"
	"promo_backend/internals/middlewares"
)

// AuthRoutes mounts login/logout under /api/auth. Login carries its own
// tighter rate limit.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}

// AuthAdminRoutes mounts the session endpoints that require a valid JWT.
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	admin.Get("/me", ctrl.Me)
	admin.Put("/me/password", ctrl.ChangePassword)
}
