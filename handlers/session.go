// handlers/session.go - Live recitation over a websocket
package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"urecite/middleware"
	"urecite/navigation"
	"urecite/utils"
)

// Client → server: {"type":"recite","transcript":"..."}, {"type":"next"},
// {"type":"previous"}, {"type":"select","book":"..."}.
// Server → client: {"type": "...", "payload": ...}.
type sessionMessage struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript,omitempty"`
	Book       string `json:"book,omitempty"`
}

type sessionReply struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// session is the per-connection state. It is only touched by the
// connection's read loop.
type session struct {
	id     string
	userID *uint
	cursor *navigation.Cursor
	// next/previous unlock after the first matched recitation
	unlocked bool
	limiter  *middleware.TokenBucket
}

func (h *Handler) newSession(userID *uint) *session {
	return &session{
		id:      uuid.NewString(),
		userID:  userID,
		cursor:  navigation.NewCursor(h.books),
		limiter: middleware.NewTokenBucket(float64(h.sessionBurst), h.sessionRefill),
	}
}

// UpgradeSession only lets websocket upgrades through to Session.
func (h *Handler) UpgradeSession(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return utils.JSONError(c, fiber.StatusUpgradeRequired, "Connect with a websocket client")
	}
	c.Locals("sessionUserId", middleware.UserIDPtr(c))
	c.Locals("sessionViewer", viewer(c))
	return c.Next()
}

// Session serves /ws/recite.
func (h *Handler) Session() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("sessionUserId").(*uint)
		s := h.newSession(userID)
		defer conn.Close()

		log.Printf("🎤 Recitation session started: %s (UserID: %v)", s.id, userID)

		if err := conn.WriteJSON(sessionReply{Type: "connected", Payload: fiber.Map{
			"session_id": s.id,
			"user":       conn.Locals("sessionViewer"),
			"books":      len(h.books),
			"position":   navigationPayload(s.cursor),
		}}); err != nil {
			return
		}

		for {
			var msg sessionMessage
			if err := conn.ReadJSON(&msg); err != nil {
				break
			}
			reply := h.handleSessionMessage(context.Background(), s, msg)
			if err := conn.WriteJSON(reply); err != nil {
				log.Printf("WebSocket write error for session %s: %v", s.id, err)
				break
			}
		}

		log.Printf("🔌 Recitation session ended: %s", s.id)
	})
}

func errorReply(message string) sessionReply {
	return sessionReply{Type: "error", Payload: fiber.Map{"error": message}}
}

func (h *Handler) handleSessionMessage(ctx context.Context, s *session, msg sessionMessage) sessionReply {
	if !s.limiter.Allow() {
		return errorReply("Rate limit exceeded. Please slow down.")
	}

	kind := strings.ToLower(msg.Type)
	switch kind {
	case "recite":
		if strings.TrimSpace(msg.Transcript) == "" {
			return errorReply("transcript is required")
		}
		res := h.matcher.Match(msg.Transcript)
		if res.Passed() {
			s.unlocked = true
		}
		h.recordAttempt(ctx, s.userID, s.id, msg.Transcript, res)

		payload := reciteResponse(res, h.matcher.Threshold())
		payload["can_advance"] = s.unlocked
		return sessionReply{Type: "result", Payload: payload}

	case "next", "previous":
		if !s.unlocked {
			return errorReply("Recite a verse before moving on.")
		}
		if kind == "next" {
			s.cursor.Next()
		} else {
			s.cursor.Previous()
		}
		return sessionReply{Type: "position", Payload: navigationPayload(s.cursor)}

	case "select":
		book, ok := h.resolveBookParam(msg.Book)
		if !ok || !s.cursor.Select(book) {
			return errorReply("Unknown book")
		}
		return sessionReply{Type: "position", Payload: navigationPayload(s.cursor)}

	default:
		return errorReply("Unknown message type")
	}
}
