package lib

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope: {success, message?, data?,
// errors?}; list endpoints add the pagination block next to data.

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func OKMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func OKList(c *fiber.Ctx, data interface{}, p Pagination) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}
