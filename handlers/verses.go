// handlers/verses.go
package handlers

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"urecite/recite"
	"urecite/utils"
)

// resolveBookParam accepts an exact title or anything ResolveBook maps to one.
func (h *Handler) resolveBookParam(raw string) (string, bool) {
	book, err := url.PathUnescape(raw)
	if err != nil {
		book = raw
	}
	if slices.Contains(h.books, book) {
		return book, true
	}
	return recite.ResolveBook(book, h.books)
}

// GetVerse returns the canonical text for /api/verses/:book/:chapter/:verse.
func (h *Handler) GetVerse(c *fiber.Ctx) error {
	chapter, err := strconv.Atoi(c.Params("chapter"))
	if err != nil || chapter < 1 {
		return utils.JSONError(c, fiber.StatusBadRequest, "chapter must be a positive integer")
	}
	verse, err := strconv.Atoi(c.Params("verse"))
	if err != nil || verse < 1 {
		return utils.JSONError(c, fiber.StatusBadRequest, "verse must be a positive integer")
	}

	book, ok := h.resolveBookParam(c.Params("book"))
	if !ok {
		return utils.JSONError(c, fiber.StatusNotFound, "Unknown book")
	}

	key := recite.VerseKey{Book: book, Chapter: chapter, Verse: verse}
	text, ok := h.lookup.Verse(key)
	if !ok {
		return utils.JSONError(c, fiber.StatusNotFound, "Verse "+strconv.Quote(key.String())+" not found in Bible data.")
	}

	return utils.JSONSuccess(c, fiber.Map{
		"reference": key.String(),
		"verse":     key,
		"text":      text,
	})
}
