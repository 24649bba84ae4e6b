package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Tagline   string `json:"tagline" gorm:"default:''"`
	Category  string `json:"category" gorm:"index;not null"`     // stem, technical, entrance, finance, language, personal
	Topics    string `json:"topics" gorm:"type:text;default:''"` // comma separated topic list
	SortOrder int    `json:"sort_order" gorm:"default:0"`
	// No column default: gorm omits zero values on Create when a default
	// tag is set, which would store a draft (IsPublished=false) as published.
	IsPublished bool `json:"is_published"`
	IsDeleted   bool `json:"is_deleted" gorm:"default:false"`
}

const (
	CourseCategoryStem      = "stem"
	CourseCategoryTechnical = "technical"
	CourseCategoryEntrance  = "entrance"
	CourseCategoryFinance   = "finance"
	CourseCategoryLanguage  = "language"
	CourseCategoryPersonal  = "personal"
)
