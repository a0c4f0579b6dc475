package handlers

import (
	"github.com/gofiber/fiber/v2"

	"samscout/contract-agent/internal/models"
	"samscout/contract-agent/internal/services"
)

type SearchHandler struct {
	presenter services.ResultPresenter
}

func NewSearchHandler(presenter services.ResultPresenter) *SearchHandler {
	return &SearchHandler{
		presenter: presenter,
	}
}

// HandleSearch handles POST /api/v1/search. The response is a single HTML
// blob; keyword validation happens inside the presenter so an empty keyword
// still renders a message instead of an API error.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	markup := h.presenter.Present(c.UserContext(), req.Keyword, req.Profile())

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(markup)
}

// HandleIndex handles GET / with the search form.
func (h *SearchHandler) HandleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}
