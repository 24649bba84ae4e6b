package middleware

import (
	"codeeasy/database"
	"codeeasy/models"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ClientIP resolves the submitter's network address from proxy headers.
// Falls back to the literal "unknown" when no header is present.
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := c.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}

// ReviewRateLimit rejects a submission once the caller's address has logged
// ReviewSubmitMaxPerIP review_submit attempts inside the trailing window.
// Runs before field validation, so a rate-limited caller always gets a 429.
func ReviewRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := ClientIP(c)
		windowStart := time.Now().Add(-models.ReviewSubmitWindow)

		var count int64
		err := database.Database.Db.Model(&models.RateLimitRecord{}).
			Where("identifier = ? AND action = ? AND created_at >= ?",
				identifier, models.ActionReviewSubmit, windowStart).
			Count(&count).Error
		if err != nil {
			log.Printf("Rate limit check error for %s: %v", identifier, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}

		if count >= models.ReviewSubmitMaxPerIP {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. You can submit up to 3 reviews per day. Please try again tomorrow.",
			})
		}

		return c.Next()
	}
}
