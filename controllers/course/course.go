package courseController

import (
	"codeeasy/database"
	"codeeasy/middleware"
	"codeeasy/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListCourses returns the published catalog for the public site,
// optionally filtered by category
func ListCourses(c *fiber.Ctx) error {
	category := c.Query("category")

	query := database.Database.Db.
		Where("is_published = ? AND is_deleted = ?", true, false)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []models.Course
	if err := query.Order("sort_order ASC, created_at ASC").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", fiber.Map{
		"courses": courses,
	})
}

// AdminCreateCourse creates a new catalog entry
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Tagline     string `json:"tagline"`
		Category    string `json:"category"`
		Topics      string `json:"topics"`
		SortOrder   int    `json:"sort_order"`
		IsPublished *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Tagline:     reqData.Tagline,
		Category:    reqData.Category,
		Topics:      reqData.Topics,
		SortOrder:   reqData.SortOrder,
		IsPublished: true,
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Course create error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing catalog entry
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       *string `json:"title"`
		Tagline     *string `json:"tagline"`
		Category    *string `json:"category"`
		Topics      *string `json:"topics"`
		SortOrder   *int    `json:"sort_order"`
		IsPublished *bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Tagline != nil {
		course.Tagline = *reqData.Tagline
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Topics != nil {
		course.Topics = *reqData.Topics
	}
	if reqData.SortOrder != nil {
		course.SortOrder = *reqData.SortOrder
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Course update error for id %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft-deletes a catalog entry
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsPublished = false
	if err := db.Save(&course).Error; err != nil {
		log.Printf("Course delete error for id %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted!", nil)
}
