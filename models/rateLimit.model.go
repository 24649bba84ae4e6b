package models

import "time"

// RateLimitRecord is one logged attempt of a rate-limited action. Records are
// never deleted; expiry is implicit in the trailing-window count.
type RateLimitRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Identifier string    `json:"identifier" gorm:"not null;index;size:255"` // client IP, or "unknown"
	Action     string    `json:"action" gorm:"not null;index;size:50"`
	CreatedAt  time.Time `json:"created_at"`
}

const ActionReviewSubmit = "review_submit"

// Review submission limits: 3 per IP per trailing 24 hours.
const (
	ReviewSubmitMaxPerIP = 3
	ReviewSubmitWindow   = 24 * time.Hour
)
