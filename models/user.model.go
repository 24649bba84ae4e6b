package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Role      string    `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Password  string    `json:"-" gorm:"not null"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false"`
}

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
