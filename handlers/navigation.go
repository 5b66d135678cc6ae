package handlers

import (
	"github.com/gofiber/fiber/v2"

	"urecite/corpus"
	"urecite/navigation"
	"urecite/utils"
)

// Navigate steps from ?book= (default: the first book) by ?step=
// current|next|previous, wrapping at both ends.
func (h *Handler) Navigate(c *fiber.Ctx) error {
	cursor := navigation.NewCursor(h.books)
	if cursor.Len() == 0 {
		return utils.JSONError(c, fiber.StatusServiceUnavailable, "No books loaded")
	}

	if raw := c.Query("book"); raw != "" {
		book, ok := h.resolveBookParam(raw)
		if !ok || !cursor.Select(book) {
			return utils.JSONError(c, fiber.StatusNotFound, "Unknown book")
		}
	}

	switch c.Query("step", "current") {
	case "current":
	case "next":
		cursor.Next()
	case "previous", "prev":
		cursor.Previous()
	default:
		return utils.JSONError(c, fiber.StatusBadRequest, "step must be current, next or previous")
	}

	return utils.JSONSuccess(c, navigationPayload(cursor))
}

func navigationPayload(cursor *navigation.Cursor) fiber.Map {
	book := cursor.Current()
	old, _ := corpus.Testaments(cursor.Books())
	testament := "new"
	for _, b := range old {
		if b == book {
			testament = "old"
			break
		}
	}
	return fiber.Map{
		"book":      book,
		"testament": testament,
		"progress":  cursor.Progress(),
	}
}
