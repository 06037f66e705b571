package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tillpoint/internal/services"
)

type ReceiptHandler struct {
	Sales    *services.SalesService
	Receipts services.ReceiptService
}

// Download streams the receipt PDF for one sale as an attachment.
func (h *ReceiptHandler) Download(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sale id"})
	}

	sale, err := h.Sales.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "sale not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	doc, err := h.Receipts.Render(sale)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=receipt_%d.pdf", id))
	return c.Send(doc)
}
