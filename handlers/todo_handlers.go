package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/models"
	"github.com/SangWon7242/next-board/utils"
)

// ListTodos fetches every todo, newest first. A store failure is surfaced to
// the caller instead of masquerading as an empty list.
func (h *ApplicationHandler) ListTodos(c *fiber.Ctx) error {
	todos := []models.Todo{}
	err := h.Records.SelectAll(c.Context(), "todos", &todos,
		gateway.Order{Column: "created_at", Ascending: false},
	)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list todos")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "could not list todos")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, todos)
}
