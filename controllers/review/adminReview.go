package reviewController

import (
	"codeeasy/database"
	"codeeasy/middleware"
	"codeeasy/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminListReviews returns every review regardless of status, newest first,
// plus per-status counts derived from the same set.
func AdminListReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	err := database.Database.Db.
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	var pending, approved, rejected int
	for _, r := range reviews {
		switch r.Status {
		case models.ReviewStatusPending:
			pending++
		case models.ReviewStatusApproved:
			approved++
		case models.ReviewStatusRejected:
			rejected++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"counts": fiber.Map{
			"pending":  pending,
			"approved": approved,
			"rejected": rejected,
			"total":    len(reviews),
		},
	})
}

// updateReviewStatus moves a review into the given status. Re-applying the
// current status is a no-op success.
func updateReviewStatus(c *fiber.Ctx, status string) error {
	reviewID := c.Params("id")

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	review.Status = status
	if err := db.Save(&review).Error; err != nil {
		log.Printf("Review status update error for id %s: %v", reviewID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	message := "Review approved!"
	if status == models.ReviewStatusRejected {
		message = "Review rejected"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, review)
}

// ApproveReview makes a review publicly visible
func ApproveReview(c *fiber.Ctx) error {
	return updateReviewStatus(c, models.ReviewStatusApproved)
}

// RejectReview hides a review from the public site
func RejectReview(c *fiber.Ctx) error {
	return updateReviewStatus(c, models.ReviewStatusRejected)
}

// DeleteReview permanently removes a review. A second delete of the same id
// reports not found and touches nothing else.
func DeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Unscoped().Delete(&review).Error; err != nil {
		log.Printf("Review delete error for id %s: %v", reviewID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted!", nil)
}
