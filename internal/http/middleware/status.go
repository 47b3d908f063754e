package middleware

import "github.com/gofiber/fiber/v2"

// settle runs the app error handler for a chain error so the final status is
// visible to middlewares that record it. It returns whatever the handler
// returns, normally nil.
func settle(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}
