package reviewRoutes

import (
	reviewController "codeeasy/controllers/review"
	"codeeasy/middleware"
	reviewValidator "codeeasy/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up the public review intake and testimonial list
func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	// Rate limit runs before validation: a throttled caller gets 429
	// regardless of what it sent
	reviewGroup.Post("/submit", middleware.ReviewRateLimit(), reviewValidator.SubmitReview(), reviewController.SubmitReview)
	reviewGroup.Get("/list", reviewController.GetPublicReviews)
}

// SetupAdminReviewRoutes sets up the moderation dashboard routes
func SetupAdminReviewRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/review", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/list", reviewController.AdminListReviews)
	adminGroup.Patch("/:id/approve", reviewController.ApproveReview)
	adminGroup.Patch("/:id/reject", reviewController.RejectReview)
	adminGroup.Delete("/:id", reviewController.DeleteReview)
}
