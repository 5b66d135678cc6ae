package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"urecite/corpus"
	"urecite/recite"
	"urecite/utils"
)

// GetBooks lists the canonical book order split by testament.
func (h *Handler) GetBooks(c *fiber.Ctx) error {
	old, nt := corpus.Testaments(h.books)
	return utils.JSONSuccess(c, fiber.Map{
		"books":         h.books,
		"count":         len(h.books),
		"old_testament": old,
		"new_testament": nt,
	})
}

// SuggestBooks ranks book titles for a partial or misheard name.
func (h *Handler) SuggestBooks(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "query parameter q is required")
	}

	limit := utils.QueryInt(c, "limit", 5, 1, 20)
	suggestions := recite.SuggestBooks(q, h.books, limit)
	if suggestions == nil {
		suggestions = []recite.Suggestion{}
	}

	resolved, _ := recite.ResolveBook(q, h.books)
	return utils.JSONSuccess(c, fiber.Map{
		"query":       q,
		"resolved":    resolved,
		"suggestions": suggestions,
	})
}
