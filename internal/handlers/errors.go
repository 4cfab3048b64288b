package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// saveSession persists session changes. A failed save only loses the
// fallback values, so the response still goes out.
func saveSession(sess *Session) {
	if err := sess.Save(); err != nil {
		log.Printf("⚠️  %v\n", err)
	}
}
