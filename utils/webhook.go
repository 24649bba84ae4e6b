package utils

import (
	"codeeasy/config"
	"codeeasy/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyReviewWebhook posts an accepted review to REVIEW_WEBHOOK_URL so the
// institute can pipe submissions into chat tooling. No-op when unset;
// failures are logged and never reach the submitter.
func NotifyReviewWebhook(review models.Review) {
	url := config.AppConfig.ReviewWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":        "review.submitted",
			"review_id":    review.ID,
			"student_name": review.StudentName,
			"rating":       review.Rating,
			"status":       review.Status,
			"submitted_at": review.CreatedAt,
		}).
		Post(url)
	if err != nil {
		log.Printf("Review webhook error: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Review webhook returned status %d", resp.StatusCode())
	}
}
