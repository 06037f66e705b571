package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tillpoint/internal/services"
	"tillpoint/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type productBody struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

func parseProductBody(c *fiber.Ctx) (productBody, bool) {
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return body, false
	}
	name, ok := validate.ProductName(body.Name)
	if !ok || !validate.Amount(body.Price) || !validate.StockQty(body.Quantity) {
		return body, false
	}
	body.Name = name
	return body, true
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	rows, err := h.Catalog.List(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	body, ok := parseProductBody(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required; price and quantity must be non-negative",
		})
	}
	id, err := h.Catalog.Create(body.Name, body.Price, body.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"id": id})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	body, ok := parseProductBody(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required; price and quantity must be non-negative",
		})
	}
	n, err := h.Catalog.Update(id, body.Name, body.Price, body.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	n, err := h.Catalog.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": n})
}

func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.Catalog.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}
