package database

import (
	"codeeasy/config"
	"codeeasy/models"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10) // Maximum open connections
	sqlDB.SetMaxIdleConns(5)  // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Seed data the site depends on
	seedFirstAdmin(db)
	seedCourseCatalog(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Review{},
		&models.RateLimitRecord{},
		&models.Course{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedFirstAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Without it the moderation dashboard is unreachable.
func seedFirstAdmin(db *gorm.DB) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var existing models.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		return // already seeded
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Role:     models.RoleAdmin,
		Password: string(hashedPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}
	log.Printf("Seeded admin account: %s", cfg.AdminEmail)
}

// seedCourseCatalog inserts the institute's course categories on a fresh database
func seedCourseCatalog(db *gorm.DB) {
	var count int64
	db.Model(&models.Course{}).Count(&count)
	if count > 0 {
		return
	}

	catalog := []models.Course{
		{Title: "STEM Learning", Tagline: "Experience the Atom of STEM Learning", Category: models.CourseCategoryStem,
			Topics: "Coding for Kids,Scratch & Block Coding,Python,Web Development,Robotics", SortOrder: 1, IsPublished: true},
		{Title: "Technical Training", Tagline: "Master Industry-Ready Skills", Category: models.CourseCategoryTechnical,
			Topics: "C Programming,Java,Python Advanced,Data Structures,Algorithms", SortOrder: 2, IsPublished: true},
		{Title: "Entrance Coaching", Tagline: "Your Gateway to Success", Category: models.CourseCategoryEntrance,
			Topics: "PGCET - MCA,PGCET - MBA,Competitive Exams", SortOrder: 3, IsPublished: true},
		{Title: "Finance & Commerce", Tagline: "Build Business Acumen", Category: models.CourseCategoryFinance,
			Topics: "Income Tax & GST,Accounts,Business,Economics,Statistics", SortOrder: 4, IsPublished: true},
		{Title: "Language Courses", Tagline: "Communicate with Confidence", Category: models.CourseCategoryLanguage,
			Topics: "Kannada,Sanskrit,Hindi", SortOrder: 5, IsPublished: true},
		{Title: "Personal Development", Tagline: "Unlock Your Potential", Category: models.CourseCategoryPersonal,
			Topics: "Meditation,Psychology,Soft Skills", SortOrder: 6, IsPublished: true},
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("Error seeding course catalog: %v", err)
		return
	}
	log.Printf("Seeded course catalog with %d categories", len(catalog))
}
