package contactValidator

import (
	"codeeasy/middleware"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\+?\d{10,13}$`)
	return re.MatchString(phone)
}

// SubmitMessage validates the public contact form
func SubmitMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Course  string `json:"course"`
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Length limits count characters, not bytes
		if nameLen := utf8.RuneCountInString(strings.TrimSpace(reqData.Name)); nameLen == 0 || nameLen > 100 {
			errors["name"] = "Name must be between 1 and 100 characters!"
		}

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Phone is optional
		if reqData.Phone != "" && !isValidPhone(strings.TrimSpace(reqData.Phone)) {
			errors["phone"] = "Invalid phone number!"
		}

		trimmedMessage := strings.TrimSpace(reqData.Message)
		if messageLen := utf8.RuneCountInString(trimmedMessage); messageLen == 0 || messageLen > 2000 {
			errors["message"] = "Message must be between 1 and 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
