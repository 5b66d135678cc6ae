package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"urecite/middleware"
	"urecite/recite"
	"urecite/utils"
)

type reciteRequest struct {
	Transcript string `json:"transcript"`
	SessionID  string `json:"session_id"`
}

// Recite grades one transcript.
func (h *Handler) Recite(c *fiber.Ctx) error {
	var req reciteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "transcript is required")
	}

	res := h.matcher.Match(req.Transcript)
	h.recordAttempt(c.UserContext(), middleware.UserIDPtr(c), req.SessionID, req.Transcript, res)

	resp := reciteResponse(res, h.matcher.Threshold())
	resp["user"] = viewer(c)
	return utils.JSONSuccess(c, resp)
}

// viewer describes who is reciting, as set by the auth middleware.
func viewer(c *fiber.Ctx) fiber.Map {
	return fiber.Map{
		"username": middleware.GetUsername(c),
		"guest":    middleware.IsGuest(c),
	}
}

func reciteResponse(res recite.MatchResult, threshold float64) fiber.Map {
	return fiber.Map{
		"result":    res,
		"message":   res.Message(),
		"passed":    res.Passed(),
		"threshold": threshold,
	}
}

// recordAttempt never fails the request; history is best effort.
func (h *Handler) recordAttempt(ctx context.Context, userID *uint, sessionID, transcript string, res recite.MatchResult) {
	if h.attempts == nil {
		return
	}
	if _, err := h.attempts.Record(ctx, userID, sessionID, transcript, res); err != nil {
		log.Printf("❌ Failed to record attempt: %v", err)
	}
}
