package util

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MoodyShoo/simple-calculator/internal/models"
)

const (
	ContentType     = "Content-Type"
	ApplicationJson = "application/json"
)

// SendResponse отправляет ответ клиенту
func SendResponse(c *fiber.Ctx, response models.Response, status int) error {
	resp, err := response.ToJSON()
	if err != nil {
		return SendError(c, "Failed to encode response", "", fiber.StatusInternalServerError)
	}
	c.Set(ContentType, ApplicationJson)
	log.Printf("Response sent.")
	return c.Status(status).Send(resp)
}

// SendError отправляет ошибку клиенту.
func SendError(c *fiber.Ctx, message string, kind models.ErrorKind, status int) error {
	resp, _ := (&models.ErrorResponse{Error: message, Kind: kind}).ToJSON()
	c.Set(ContentType, ApplicationJson)
	log.Printf("Error response sent.")
	return c.Status(status).Send(resp)
}
