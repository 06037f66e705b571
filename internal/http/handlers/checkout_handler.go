package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

type cartLineBody struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
	Price    int64 `json:"price"`
}

type checkoutBody struct {
	Cart        []cartLineBody `json:"cart"`
	PaymentMode string         `json:"payment_mode"`
}

func (h *CheckoutHandler) Post(c *fiber.Ctx) error {
	var body checkoutBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	mode, ok := validate.PaymentMode(body.PaymentMode)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payment mode"})
	}

	lines := make([]services.CartLine, 0, len(body.Cart))
	for _, ln := range body.Cart {
		if ln.ID <= 0 || !validate.CartQty(ln.Quantity) || !validate.Amount(ln.Price) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed cart line"})
		}
		lines = append(lines, services.CartLine{ProductID: ln.ID, Qty: ln.Quantity, UnitPrice: ln.Price})
	}

	if err := h.Checkout.Checkout(lines, mode); err != nil {
		if errors.Is(err, repos.ErrUnknownProduct) {
			applog.Info(c, "checkout.reject", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "checkout.complete", map[string]any{"lines": len(lines), "payment_mode": mode})
	return c.JSON(fiber.Map{"message": "Checkout complete"})
}
