package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ID           = "requestID"
	RequestIDHdr = "X-Request-ID"
)

func GetRequestID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(ID).(string)
	return id, ok
}

// RequestID присваивает запросу идентификатор (или берет присланный клиентом)
// и пишет строку лога после ответа.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.Clone(c.Get(RequestIDHdr))
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(ID, id)
		c.Set(RequestIDHdr, id)

		start := time.Now()
		err := c.Next()

		log.Printf("[%s] %s %s -> %d (%s)", id, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
