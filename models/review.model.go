package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	StudentName string `json:"student_name" gorm:"size:100;not null"`         // stored trimmed, 1-100 chars
	Rating      int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment     string `json:"comment" gorm:"type:text;not null"`             // stored trimmed, 1-1000 chars
	Status      string `json:"status" gorm:"default:'pending';index"`
}

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)
