package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"promo_backend/internals/features/students/controller"
)

// StudentAdminRoutes mounts student management under the admin group.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
	students.Put("/:id", ctrl.Update)
	students.Put("/:id/photo", ctrl.UploadPhoto)
	students.Delete("/:id", ctrl.Delete)
}

// StudentPublicRoutes mounts the visitor-facing roster.
func StudentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	public.Get("/students", ctrl.PublicList)
}
