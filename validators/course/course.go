package courseValidator

import (
	"codeeasy/middleware"
	"codeeasy/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowedCategories = map[string]bool{
	models.CourseCategoryStem:      true,
	models.CourseCategoryTechnical: true,
	models.CourseCategoryEntrance:  true,
	models.CourseCategoryFinance:   true,
	models.CourseCategoryLanguage:  true,
	models.CourseCategoryPersonal:  true,
}

// CreateCourse validates the admin course-creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Tagline     string `json:"tagline"`
			Category    string `json:"category"`
			Topics      string `json:"topics"`
			SortOrder   int    `json:"sort_order"`
			IsPublished *bool  `json:"is_published"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) == 0 {
			errors["title"] = "Title is required!"
		}
		if !allowedCategories[reqData.Category] {
			errors["category"] = "Unknown course category!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course-update request; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string `json:"title"`
			Tagline     *string `json:"tagline"`
			Category    *string `json:"category"`
			Topics      *string `json:"topics"`
			SortOrder   *int    `json:"sort_order"`
			IsPublished *bool   `json:"is_published"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) == 0 {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Category != nil && !allowedCategories[*reqData.Category] {
			errors["category"] = "Unknown course category!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
