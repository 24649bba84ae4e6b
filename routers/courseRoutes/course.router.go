package courseRoutes

import (
	courseController "codeeasy/controllers/course"
	"codeeasy/middleware"
	courseValidator "codeeasy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public catalog and admin catalog management
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", courseController.ListCourses)

	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/create", courseValidator.CreateCourse(), courseController.AdminCreateCourse)
	adminGroup.Put("/:id", courseValidator.UpdateCourse(), courseController.AdminUpdateCourse)
	adminGroup.Delete("/:id", courseController.AdminDeleteCourse)
}
