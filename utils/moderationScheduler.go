package utils

import (
	"codeeasy/database"
	"codeeasy/models"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeModerationScheduler sets up the daily moderation digest
func InitializeModerationScheduler() {
	log.Println("[MODERATION-SCHEDULER] Initializing moderation scheduler...")

	c := cron.New()

	// Run daily at 8 AM to remind admins about the pending queue
	c.AddFunc("0 8 * * *", func() {
		log.Println("[MODERATION-SCHEDULER] Running daily moderation digest...")
		SendPendingReviewDigest()
	})

	c.Start()
	log.Println("[MODERATION-SCHEDULER] Moderation scheduler started - runs daily at 8 AM")
}

// SendPendingReviewDigest emails the institute inbox when reviews are stuck
// in the pending queue
func SendPendingReviewDigest() {
	db := database.Database.Db

	var pending []models.Review
	if err := db.Where("status = ?", models.ReviewStatusPending).Find(&pending).Error; err != nil {
		log.Printf("[MODERATION-SCHEDULER] Error fetching pending reviews: %v", err)
		return
	}

	var todayCount int64
	if err := db.Model(&models.Review{}).
		Where("created_at >= ?", now.BeginningOfDay()).
		Count(&todayCount).Error; err != nil {
		log.Printf("[MODERATION-SCHEDULER] Error counting today's reviews: %v", err)
		return
	}

	log.Printf("[MODERATION-SCHEDULER] %d pending review(s), %d submitted today", len(pending), todayCount)

	if len(pending) == 0 {
		return // nothing to nag about
	}

	SendModerationDigestEmail(len(pending), todayCount)
}
