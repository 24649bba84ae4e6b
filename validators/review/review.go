package reviewValidator

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview validates the public review submission. Responses use the bare
// {error} shape the public form consumes, and checks run in a fixed order:
// name, rating, comment. The first failure wins.
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentName string  `json:"student_name"`
			Rating      float64 `json:"rating"` // kept as float to reject non-integer ratings explicitly
			Comment     string  `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		// Validate student_name
		if reqData.StudentName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
		}
		// Bounds are in characters, not bytes; names in Kannada or
		// Devanagari run 3 bytes per rune.
		trimmedName := strings.TrimSpace(reqData.StudentName)
		if nameLen := utf8.RuneCountInString(trimmedName); nameLen == 0 || nameLen > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name must be between 1 and 100 characters"})
		}

		// Validate rating
		if reqData.Rating < 1 || reqData.Rating > 5 || reqData.Rating != math.Trunc(reqData.Rating) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be an integer between 1 and 5"})
		}

		// Validate comment
		if reqData.Comment == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment is required"})
		}
		trimmedComment := strings.TrimSpace(reqData.Comment)
		if commentLen := utf8.RuneCountInString(trimmedComment); commentLen == 0 || commentLen > 1000 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment must be between 1 and 1000 characters"})
		}

		// Pass the trimmed, validated submission to the controller
		c.Locals("validatedReview", &struct {
			StudentName string
			Rating      int
			Comment     string
		}{
			StudentName: trimmedName,
			Rating:      int(reqData.Rating),
			Comment:     trimmedComment,
		})
		return c.Next()
	}
}
