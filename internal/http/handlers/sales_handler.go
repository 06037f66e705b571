package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tillpoint/internal/services"
)

type SalesHandler struct {
	Sales *services.SalesService
}

func (h *SalesHandler) List(c *fiber.Ctx) error {
	rows, err := h.Sales.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.Sales.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sum)
}
