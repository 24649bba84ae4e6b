package reviewController

import (
	"codeeasy/database"
	"codeeasy/middleware"
	"codeeasy/models"
	"codeeasy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview accepts a public review submission. Rate limiting and field
// validation have already run (route middleware); this handler logs the
// rate-limit attempt and persists the review in pending state.
// Responses keep the bare {message}/{error} shape the public form consumes.
func SubmitReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*struct {
		StudentName string
		Rating      int
		Comment     string
	})
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	identifier := middleware.ClientIP(c)
	db := database.Database.Db

	// Record the attempt first. The record stays even if the review insert
	// below fails, so a failed submission still counts against the window.
	record := models.RateLimitRecord{
		Identifier: identifier,
		Action:     models.ActionReviewSubmit,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Rate limit record insert error for %s: %v", identifier, err)
	}

	review := models.Review{
		StudentName: reqData.StudentName,
		Rating:      reqData.Rating,
		Comment:     reqData.Comment,
		Status:      models.ReviewStatusPending,
	}
	if err := db.Create(&review).Error; err != nil {
		log.Printf("Review insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit review. Please try again.",
		})
	}

	// Notify the institute out of band; failures are logged, never surfaced
	go utils.SendReviewNotificationEmail(review.StudentName, review.Rating, review.Comment)
	go utils.NotifyReviewWebhook(review)

	return c.JSON(fiber.Map{"message": "Review submitted successfully"})
}

// GetPublicReviews returns approved reviews, newest first. Pending and
// rejected reviews never leave the moderation dashboard.
func GetPublicReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	err := database.Database.Db.
		Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
	})
}
