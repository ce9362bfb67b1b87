package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const mimePDF = "application/pdf"

// sendDocument responde con un archivo descargable.
func sendDocument(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
