package contactRoutes

import (
	contactController "codeeasy/controllers/contact"
	"codeeasy/middleware"
	contactValidator "codeeasy/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes sets up the public contact form and admin inbox
func SetupContactRoutes(app *fiber.App) {
	contactGroup := app.Group("/contact")
	contactGroup.Post("/submit", contactValidator.SubmitMessage(), contactController.SubmitMessage)

	adminGroup := app.Group("/admin/contact", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Get("/list", contactController.AdminListMessages)
	adminGroup.Patch("/:id/handled", contactController.AdminMarkHandled)
}
