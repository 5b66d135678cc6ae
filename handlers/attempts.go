package handlers

import (
	"github.com/gofiber/fiber/v2"

	"urecite/middleware"
	"urecite/utils"
)

// GetAttempts returns the caller's recent recitations.
func (h *Handler) GetAttempts(c *fiber.Ctx) error {
	if h.attempts == nil {
		return utils.JSONError(c, fiber.StatusServiceUnavailable, "Attempt history is disabled")
	}
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	history, err := h.attempts.History(c.UserContext(), userID, utils.QueryInt(c, "limit", 50, 1, 200))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attempts")
	}
	return utils.JSONSuccess(c, fiber.Map{"attempts": history, "count": len(history)})
}

// GetAttemptStats summarises the caller's recitations.
func (h *Handler) GetAttemptStats(c *fiber.Ctx) error {
	if h.attempts == nil {
		return utils.JSONError(c, fiber.StatusServiceUnavailable, "Attempt history is disabled")
	}
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.attempts.Stats(c.UserContext(), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load stats")
	}
	return utils.JSONSuccess(c, fiber.Map{"stats": stats})
}
