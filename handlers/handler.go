// handlers/handler.go - Route wiring for the recitation API
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"urecite/middleware"
	"urecite/recite"
	"urecite/services"
)

// Handler serves the REST and websocket API over one matcher.
type Handler struct {
	matcher   *recite.Matcher
	lookup    recite.Lookup
	books     []string
	attempts  *services.AttemptService
	jwtSecret string

	// per-connection message budget on /ws/recite
	sessionBurst  int
	sessionRefill float64
}

// New builds a Handler. attempts may be nil, which disables history.
func New(matcher *recite.Matcher, lookup recite.Lookup, attempts *services.AttemptService, jwtSecret string) *Handler {
	return &Handler{
		matcher:       matcher,
		lookup:        lookup,
		books:         matcher.Books(),
		attempts:      attempts,
		jwtSecret:     jwtSecret,
		sessionBurst:  20,
		sessionRefill: 1,
	}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"books":     len(h.books),
		})
	})

	api := app.Group("/api", middleware.OptionalAuth(h.jwtSecret))

	api.Get("/books", h.GetBooks)
	api.Get("/books/suggest", h.SuggestBooks)
	api.Get("/verses/:book/:chapter/:verse", h.GetVerse)
	api.Post("/recite", h.Recite)
	api.Get("/navigation", h.Navigate)

	attempts := app.Group("/api/attempts", middleware.RequireAuth(h.jwtSecret))
	attempts.Get("/", h.GetAttempts)
	attempts.Get("/stats", h.GetAttemptStats)

	app.Get("/ws/recite", middleware.OptionalAuth(h.jwtSecret), h.UpgradeSession, h.Session())
}
