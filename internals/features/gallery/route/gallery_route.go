package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/gallery/controller"
)

// GalleryAdminRoutes mounts gallery management under the admin group.
func GalleryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGalleryImageController(db)

	gallery := admin.Group("/gallery")
	gallery.Post("/", ctrl.Create)
	gallery.Get("/", ctrl.List)
	gallery.Put("/:id", ctrl.Update)
	gallery.Delete("/:id", ctrl.Delete)
}

// GalleryPublicRoutes mounts the visitor-facing gallery.
func GalleryPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGalleryImageController(db)
	public.Get("/gallery", ctrl.PublicList)
}
