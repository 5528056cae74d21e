// Package respond формирует JSON-ответы об ошибках и служебных сообщениях.
package respond

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// Responder строит тела ошибок вида {code, message, error}.
// Поле error с исходным текстом ошибки включается только в режиме разработки.
type Responder struct {
	Development bool
}

// NewResponder создает новый Responder.
func NewResponder(development bool) *Responder {
	return &Responder{Development: development}
}

// Error отправляет структурированное тело ошибки с указанным статусом.
func (r *Responder) Error(ctx fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{
		"code":    status,
		"message": message,
	}
	if err != nil && r.Development {
		body["error"] = err.Error()
	}

	if sendErr := ctx.Status(status).JSON(body); sendErr != nil {
		return fmt.Errorf("failed to send error response: %w", sendErr)
	}
	return nil
}

// Message отправляет тело {message} с указанным статусом.
func Message(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"message": message}); err != nil {
		return fmt.Errorf("failed to send message response: %w", err)
	}
	return nil
}
