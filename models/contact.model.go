package models

import "gorm.io/gorm"

type ContactMessage struct {
	gorm.Model
	Reference string `json:"reference" gorm:"uniqueIndex;size:36;not null"` // uuid handed back to the visitor
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone" gorm:"default:''"`
	Course    string `json:"course" gorm:"default:''"` // course the visitor asked about
	Message   string `json:"message" gorm:"type:text;not null"`
	Status    string `json:"status" gorm:"default:'new'"` // new, handled
}

const (
	ContactStatusNew     = "new"
	ContactStatusHandled = "handled"
)
