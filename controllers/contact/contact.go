package contactController

import (
	"codeeasy/database"
	"codeeasy/middleware"
	"codeeasy/models"
	"codeeasy/utils"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitMessage accepts the public contact form and hands back a reference
// code the visitor can quote when following up
func SubmitMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Course  string `json:"course"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Reference: uuid.NewString(),
		Name:      strings.TrimSpace(reqData.Name),
		Email:     reqData.Email,
		Phone:     strings.TrimSpace(reqData.Phone),
		Course:    strings.TrimSpace(reqData.Course),
		Message:   strings.TrimSpace(reqData.Message),
		Status:    models.ContactStatusNew,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Contact message insert error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	go utils.SendContactNotificationEmail(message.Name, message.Email, message.Course, message.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent! We will get back to you soon.", fiber.Map{
		"reference": message.Reference,
	})
}

// AdminListMessages lists contact messages newest first, optionally by status
func AdminListMessages(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.Database.Db.Model(&models.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched!", fiber.Map{
		"messages": messages,
	})
}

// AdminMarkHandled closes out a contact message
func AdminMarkHandled(c *fiber.Ctx) error {
	messageID := c.Params("id")

	db := database.Database.Db

	var message models.ContactMessage
	if err := db.Where("id = ?", messageID).First(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	message.Status = models.ContactStatusHandled
	if err := db.Save(&message).Error; err != nil {
		log.Printf("Contact message update error for id %s: %v", messageID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as handled!", message)
}
