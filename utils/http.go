// utils/http.go - JSON response helpers for Fiber handlers
package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// JSONError sends {"success": false, "error": message}.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// JSONSuccess sends {"success": true, ...}. A fiber.Map is merged into the
// envelope; anything else goes under "data".
func JSONSuccess(c *fiber.Ctx, data interface{}) error {
	response := fiber.Map{
		"success": true,
	}

	if dataMap, ok := data.(fiber.Map); ok {
		for k, v := range dataMap {
			response[k] = v
		}
	} else {
		response["data"] = data
	}

	return c.JSON(response)
}

// QueryInt reads an integer query parameter clamped to [lo, hi], falling
// back to def when absent or malformed.
func QueryInt(c *fiber.Ctx, key string, def, lo, hi int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return max(lo, min(n, hi))
}
